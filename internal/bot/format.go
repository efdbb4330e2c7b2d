package bot

import (
	"fmt"
	"strconv"
	"strings"

	"pointsjack/internal/game"
	"pointsjack/internal/player"
)

func visibilityCallback(v game.Visibility) string {
	return callbackVisibilityPrefix + strconv.Itoa(int(v))
}

func parseVisibilityCallback(data string) (game.Visibility, bool) {
	rest, ok := strings.CutPrefix(data, callbackVisibilityPrefix)
	if !ok {
		return 0, false
	}
	v, err := game.ParseVisibility(rest)
	return v, err == nil
}

func formatCards(cards []game.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatTable renders the dealer row with the same redaction as the web page.
func formatTable(s game.Snapshot) string {
	var sb strings.Builder

	if s.Round > 0 {
		dealer := s.DealerView()
		cards := formatCards(dealer.Cards)
		if dealer.Hidden > 0 {
			cards = strings.TrimSuffix(cards, "]") + strings.Repeat(", ?", dealer.Hidden) + "]"
		}
		total := "?"
		if dealer.TotalShown {
			total = strconv.Itoa(dealer.Total)
		}
		sb.WriteString(fmt.Sprintf("🃏 Dealer: %s (%s)\n", cards, total))
		sb.WriteString(fmt.Sprintf("🎴 You: %s (%d)\n", formatCards(s.PlayerCards), s.PlayerTotal))
		sb.WriteString(fmt.Sprintf("🂠 Cards left: %d\n\n", s.DeckLeft))
	}

	sb.WriteString(fmt.Sprintf("💵 Your points: %d | Dealer points: %d", s.PlayerPoints, s.DealerPoints))
	if s.Message != "" {
		sb.WriteString("\n\n" + s.Message)
	}
	return sb.String()
}

func formatStats(p *player.Player) string {
	return fmt.Sprintf(
		"📊 Stats:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d\n"+
			"🤝 Pushes: %d\n"+
			"🎰 Naturals: %d\n"+
			"🏆 Matches won: %d of %d\n"+
			"💰 Best points: %d",
		p.Rounds, p.Wins, p.WinRate(), p.Losses, p.Pushes, p.Naturals,
		p.MatchesWon, p.Matches(), p.BestPoints)
}

func formatTop(stats []player.Stats) string {
	if len(stats) == 0 {
		return "🏆 Nobody has played yet!"
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %d 🏆 | best %d | %d rounds (%.0f%%)\n",
			medal, s.MatchesWon, s.BestPoints, s.Rounds, s.WinRate))
	}
	return sb.String()
}

func formatHelp(rules game.Rules) string {
	return fmt.Sprintf(
		"📖 Rules:\n\n"+
			"🎯 Get closer to 21 than the dealer without going over.\n\n"+
			"📊 Values:\n"+
			"• 2-10: face value\n"+
			"• J, Q, K: 10\n"+
			"• A: 11 or 1\n\n"+
			"🎮 Hit takes a card, Stay hands over to the dealer, who draws to %d.\n"+
			"💵 Each round moves %d points. Reach %d to win the match, drop to %d and it is over.\n\n"+
			"/play: new round\n"+
			"/newmatch: start over with %d points\n"+
			"/settings: dealer visibility\n"+
			"/stats, /top",
		rules.DealerStandsOn, rules.Stake, rules.WinAt, rules.LoseAt, rules.StartingPoints)
}
