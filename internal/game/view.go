package game

import (
	"fmt"
	"slices"
	"strconv"
)

// Visibility controls what the dealer row shows while a round is played.
type Visibility int

const (
	VisibilityOneCard  Visibility = 1 // first card up, total hidden
	VisibilityAllCards Visibility = 2 // all cards up, total hidden
	VisibilityFull     Visibility = 3 // all cards up, real total
)

func (v Visibility) Valid() bool {
	return v >= VisibilityOneCard && v <= VisibilityFull
}

func (v Visibility) String() string {
	switch v {
	case VisibilityOneCard:
		return "Normal"
	case VisibilityAllCards:
		return "Easy"
	case VisibilityFull:
		return "Very easy"
	}
	return "Unknown"
}

func ParseVisibility(s string) (Visibility, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !Visibility(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVisibility, s)
	}
	return Visibility(n), nil
}

// Snapshot is a read-only copy of a table after a transition.
type Snapshot struct {
	Round        int
	Phase        Phase
	Result       Result
	PlayerCards  []Card
	DealerCards  []Card
	PlayerTotal  int
	DealerTotal  int
	PlayerPoints int
	DealerPoints int
	MatchOver    bool
	MatchOutcome MatchOutcome

	// FinalReveal is set when the dealer played out the hand; the whole
	// dealer hand and total are shown whatever the visibility.
	FinalReveal bool
	Visibility  Visibility
	DeckLeft    int
	Message     string
}

// DealerView is the part of the dealer hand that may be rendered.
type DealerView struct {
	Cards      []Card
	Hidden     int
	Total      int
	TotalShown bool
}

func (s Snapshot) DealerView() DealerView {
	mode := s.Visibility
	if s.FinalReveal {
		mode = VisibilityFull
	}

	switch mode {
	case VisibilityFull:
		return DealerView{
			Cards:      slices.Clone(s.DealerCards),
			Total:      s.DealerTotal,
			TotalShown: true,
		}
	case VisibilityAllCards:
		return DealerView{Cards: slices.Clone(s.DealerCards)}
	}

	if len(s.DealerCards) == 0 {
		return DealerView{}
	}
	return DealerView{
		Cards:  slices.Clone(s.DealerCards[:1]),
		Hidden: len(s.DealerCards) - 1,
	}
}

// CanHit reports whether Hit and Stay are accepted.
func (s Snapshot) CanHit() bool {
	return s.Phase == PhaseInProgress
}

func (s Snapshot) CanStart() bool {
	return s.Phase != PhaseInProgress && !s.MatchOver
}
