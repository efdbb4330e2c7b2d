package bot

import (
	"errors"
	"fmt"
	"testing"

	"pointsjack/internal/game"
	"pointsjack/internal/player"

	"github.com/stretchr/testify/assert"
)

func snapshot(visibility game.Visibility, reveal bool) game.Snapshot {
	return game.Snapshot{
		Round:        1,
		Phase:        game.PhaseInProgress,
		PlayerCards:  game.MustParseCards("10-H", "8-H"),
		PlayerTotal:  18,
		DealerCards:  game.MustParseCards("9-D", "7-C"),
		DealerTotal:  16,
		PlayerPoints: 100,
		DealerPoints: 100,
		Visibility:   visibility,
		FinalReveal:  reveal,
		DeckLeft:     48,
	}
}

func TestFormatTable(t *testing.T) {
	tests := []struct {
		name       string
		visibility game.Visibility
		reveal     bool
		dealer     string
	}{
		{"one card", game.VisibilityOneCard, false, "🃏 Dealer: [9-D, ?] (?)"},
		{"all cards", game.VisibilityAllCards, false, "🃏 Dealer: [9-D, 7-C] (?)"},
		{"full", game.VisibilityFull, false, "🃏 Dealer: [9-D, 7-C] (16)"},
		{"final reveal", game.VisibilityOneCard, true, "🃏 Dealer: [9-D, 7-C] (16)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := formatTable(snapshot(tt.visibility, tt.reveal))
			assert.Contains(t, out, tt.dealer)
			assert.Contains(t, out, "🎴 You: [10-H, 8-H] (18)")
			assert.Contains(t, out, "🂠 Cards left: 48")
			assert.Contains(t, out, "💵 Your points: 100 | Dealer points: 100")
		})
	}
}

func TestFormatTableBeforeFirstRound(t *testing.T) {
	out := formatTable(game.Snapshot{PlayerPoints: 100, DealerPoints: 100, Message: "Press Start to begin."})
	assert.NotContains(t, out, "Dealer:")
	assert.NotContains(t, out, "Cards left")
	assert.Contains(t, out, "Press Start to begin.")
}

func TestKeyboardFor(t *testing.T) {
	s := snapshot(game.VisibilityOneCard, false)
	assert.Equal(t, GameKeyboard(), keyboardFor(s))

	s.Phase = game.PhaseFinished
	assert.Equal(t, EndRoundKeyboard(), keyboardFor(s))

	s.MatchOver = true
	assert.Equal(t, MatchOverKeyboard(), keyboardFor(s))
}

func TestSettingsKeyboard(t *testing.T) {
	kb := SettingsKeyboard(game.VisibilityAllCards)
	row := kb.InlineKeyboard[0]

	assert.Len(t, row, 3)
	assert.Equal(t, "Normal", row[0].Text)
	assert.Equal(t, "✅ Easy", row[1].Text)
	for i, btn := range row {
		v, ok := parseVisibilityCallback(*btn.CallbackData)
		assert.True(t, ok)
		assert.Equal(t, game.Visibility(i+1), v)
	}
}

func TestParseVisibilityCallback(t *testing.T) {
	_, ok := parseVisibilityCallback("vis_9")
	assert.False(t, ok)
	_, ok = parseVisibilityCallback(CallbackHit)
	assert.False(t, ok)
}

func TestRejectionText(t *testing.T) {
	assert.Equal(t, "The match is over. Start a new match.", rejectionText(game.ErrMatchOver))
	assert.Equal(t, "No round in progress", rejectionText(fmt.Errorf("%w: x", game.ErrInvalidTransition)))
	assert.Equal(t, "Error", rejectionText(errors.New("boom")))
}

func TestFormatStatsAndTop(t *testing.T) {
	p := &player.Player{Rounds: 4, Wins: 2, Losses: 1, Pushes: 1, MatchesWon: 1, MatchesLost: 1, BestPoints: 150}
	out := formatStats(p)
	assert.Contains(t, out, "Wins: 2 (50.0%)")
	assert.Contains(t, out, "Matches won: 1 of 2")

	assert.Equal(t, "🏆 Nobody has played yet!", formatTop(nil))

	top := formatTop([]player.Stats{
		{MatchesWon: 3, BestPoints: 200, Rounds: 10, WinRate: 60},
		{MatchesWon: 1, BestPoints: 150, Rounds: 5, WinRate: 40},
		{MatchesWon: 0, BestPoints: 125, Rounds: 2, WinRate: 50},
		{MatchesWon: 0, BestPoints: 100, Rounds: 1, WinRate: 0},
	})
	assert.Contains(t, top, "🥇 3 🏆 | best 200 | 10 rounds (60%)")
	assert.Contains(t, top, "4. 0 🏆")
}

func TestChatKey(t *testing.T) {
	assert.Equal(t, "tg:-100123", chatKey(-100123))
}
