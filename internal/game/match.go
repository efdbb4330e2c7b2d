package game

import "fmt"

// Rules are the fixed numbers of a match.
type Rules struct {
	StartingPoints int
	Stake          int
	WinAt          int
	LoseAt         int
	DealerStandsOn int
}

func DefaultRules() Rules {
	return Rules{
		StartingPoints: 100,
		Stake:          25,
		WinAt:          200,
		LoseAt:         0,
		DealerStandsOn: 17,
	}
}

func (r Rules) Validate() error {
	switch {
	case r.Stake <= 0:
		return fmt.Errorf("%w: stake must be positive, got %d", ErrInvalidRules, r.Stake)
	case r.LoseAt >= r.StartingPoints:
		return fmt.Errorf("%w: lose threshold %d not below starting points %d", ErrInvalidRules, r.LoseAt, r.StartingPoints)
	case r.WinAt <= r.StartingPoints:
		return fmt.Errorf("%w: win threshold %d not above starting points %d", ErrInvalidRules, r.WinAt, r.StartingPoints)
	case r.DealerStandsOn < 2 || r.DealerStandsOn > Target:
		return fmt.Errorf("%w: dealer stand value %d out of range", ErrInvalidRules, r.DealerStandsOn)
	}
	return nil
}

type MatchOutcome int

const (
	MatchOngoing MatchOutcome = iota
	MatchWon
	MatchLost
)

func (o MatchOutcome) String() string {
	switch o {
	case MatchWon:
		return "won"
	case MatchLost:
		return "lost"
	}
	return "ongoing"
}

// Match holds the points carried from round to round.
type Match struct {
	PlayerPoints int
	DealerPoints int
	Outcome      MatchOutcome
}

func NewMatch(rules Rules) Match {
	return Match{
		PlayerPoints: rules.StartingPoints,
		DealerPoints: rules.StartingPoints,
	}
}

func (m Match) Over() bool {
	return m.Outcome != MatchOngoing
}

// Settle moves the stake for a finished round and reports whether the match
// ended with it. Points are not clamped to the thresholds.
func (m *Match) Settle(result Result, rules Rules) bool {
	switch result {
	case ResultPlayerWin:
		m.PlayerPoints += rules.Stake
		m.DealerPoints -= rules.Stake
	case ResultDealerWin:
		m.PlayerPoints -= rules.Stake
		m.DealerPoints += rules.Stake
	}

	switch {
	case m.PlayerPoints <= rules.LoseAt:
		m.Outcome = MatchLost
	case m.PlayerPoints >= rules.WinAt:
		m.Outcome = MatchWon
	}
	return m.Over()
}
