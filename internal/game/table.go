package game

import (
	"fmt"
	"slices"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in_progress"
	case PhaseFinished:
		return "finished"
	}
	return "not_started"
}

type Result int

const (
	ResultNone Result = iota
	ResultPlayerWin
	ResultDealerWin
	ResultPush
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWin:
		return "player_win"
	case ResultDealerWin:
		return "dealer_win"
	case ResultPush:
		return "push"
	}
	return "none"
}

func (r Result) Message() string {
	switch r {
	case ResultPlayerWin:
		return "You win this round!"
	case ResultDealerWin:
		return "Dealer wins this round."
	case ResultPush:
		return "Push - no one wins this round."
	}
	return ""
}

const (
	msgWelcome  = "Press Start to begin."
	msgNewRound = "Press Start for a new round."
)

// Table is one player's seat against the dealer: the deck, both hands, the
// round state and the match points. It is not safe for concurrent use; see
// Manager.
//
// Every intent either completes or leaves the table untouched. Cards are
// drawn from a copy of the deck and committed only once the intent succeeds.
//
// A settled round stays in PhaseFinished, with its hands and result, until
// the next Start; it does not fall back to PhaseNotStarted. Start accepts
// both phases, so the only visible difference is that the last round can
// still be rendered.
type Table struct {
	rules Rules
	src   Source

	deck   *Deck
	player []Card
	dealer []Card

	phase       Phase
	result      Result
	match       Match
	visibility  Visibility
	finalReveal bool
	round       int
	message     string
}

func NewTable(rules Rules, src Source) *Table {
	if src == nil {
		src = NewSource()
	}

	return &Table{
		rules:      rules,
		src:        src,
		deck:       NewDeck(src),
		match:      NewMatch(rules),
		visibility: VisibilityOneCard,
		message:    msgWelcome,
	}
}

func (t *Table) Rules() Rules {
	return t.rules
}

func (t *Table) Phase() Phase {
	return t.phase
}

func (t *Table) Match() Match {
	return t.match
}

// Start shuffles a fresh deck and deals player, player, dealer, dealer.
// A natural 21 for the player wins the round on the spot; the dealer's
// hole card is not checked.
func (t *Table) Start() error {
	if t.match.Over() {
		return ErrMatchOver
	}
	if t.phase == PhaseInProgress {
		return t.rejected("start")
	}

	deck := NewDeck(t.src)
	var player, dealer []Card
	for _, hand := range []*[]Card{&player, &player, &dealer, &dealer} {
		card, err := deck.Draw()
		if err != nil {
			return err
		}
		*hand = append(*hand, card)
	}

	t.deck = deck
	t.player = player
	t.dealer = dealer
	t.phase = PhaseInProgress
	t.result = ResultNone
	t.finalReveal = false
	t.round++
	t.message = ""

	if CalculateScore(t.player) == Target {
		t.finish(ResultPlayerWin)
	}
	return nil
}

// Hit deals one card to the player. Going over 21 loses the round and
// reaching exactly 21 wins it.
func (t *Table) Hit() error {
	if t.phase != PhaseInProgress {
		return t.rejected("hit")
	}

	deck := t.deck.Clone()
	card, err := deck.Draw()
	if err != nil {
		return err
	}

	t.deck = deck
	t.player = append(t.player, card)

	switch score := CalculateScore(t.player); {
	case score > Target:
		t.finish(ResultDealerWin)
	case score == Target:
		t.finish(ResultPlayerWin)
	}
	return nil
}

// Stay ends the player's turn, plays the dealer out and settles the round.
func (t *Table) Stay() error {
	if t.phase != PhaseInProgress {
		return t.rejected("stay")
	}

	deck := t.deck.Clone()
	dealer, err := DealerPlay(deck, slices.Clone(t.dealer), t.rules.DealerStandsOn)
	if err != nil {
		return err
	}

	t.deck = deck
	t.dealer = dealer
	t.finalReveal = true

	playerScore := CalculateScore(t.player)
	dealerScore := CalculateScore(t.dealer)

	switch {
	case dealerScore > Target, playerScore > dealerScore:
		t.finish(ResultPlayerWin)
	case playerScore < dealerScore:
		t.finish(ResultDealerWin)
	default:
		t.finish(ResultPush)
	}
	return nil
}

// SetVisibility changes how much of the dealer hand snapshots reveal.
// It has no effect on how rounds are decided.
func (t *Table) SetVisibility(v Visibility) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidVisibility, int(v))
	}
	t.visibility = v
	return nil
}

func (t *Table) finish(result Result) {
	t.phase = PhaseFinished
	t.result = result

	msg := result.Message()
	if t.match.Settle(result, t.rules) {
		switch t.match.Outcome {
		case MatchLost:
			msg += " Game over - you ran out of points."
		case MatchWon:
			msg += fmt.Sprintf(" Congratulations - you reached %d points!", t.rules.WinAt)
		}
	} else {
		msg += " " + msgNewRound
	}
	t.message = msg
}

func (t *Table) rejected(intent string) error {
	return fmt.Errorf("%w: cannot %s while round is %s", ErrInvalidTransition, intent, t.phase)
}

// Snapshot copies the table state for rendering. The totals are always the
// real ones; redaction is left to DealerView.
func (t *Table) Snapshot() Snapshot {
	return Snapshot{
		Round:        t.round,
		Phase:        t.phase,
		Result:       t.result,
		PlayerCards:  slices.Clone(t.player),
		DealerCards:  slices.Clone(t.dealer),
		PlayerTotal:  CalculateScore(t.player),
		DealerTotal:  CalculateScore(t.dealer),
		PlayerPoints: t.match.PlayerPoints,
		DealerPoints: t.match.DealerPoints,
		MatchOver:    t.match.Over(),
		MatchOutcome: t.match.Outcome,
		FinalReveal:  t.finalReveal,
		Visibility:   t.visibility,
		DeckLeft:     t.deck.Remaining(),
		Message:      t.message,
	}
}
