package web

import "pointsjack/internal/game"

type cardView struct {
	Code   string `json:"code,omitempty"`
	Image  string `json:"image"`
	Hidden bool   `json:"hidden,omitempty"`
}

type stateView struct {
	Round           int        `json:"round"`
	Phase           string     `json:"phase"`
	Result          string     `json:"result"`
	PlayerCards     []cardView `json:"player_cards"`
	PlayerTotal     int        `json:"player_total"`
	DealerCards     []cardView `json:"dealer_cards"`
	DealerTotal     *int       `json:"dealer_total"`
	PlayerPoints    int        `json:"player_points"`
	DealerPoints    int        `json:"dealer_points"`
	MatchOver       bool       `json:"match_over"`
	MatchOutcome    string     `json:"match_outcome"`
	Visibility      int        `json:"visibility"`
	VisibilityLabel string     `json:"visibility_label"`
	DeckLeft        int        `json:"deck_left"`
	CanStart        bool       `json:"can_start"`
	CanHit          bool       `json:"can_hit"`
	Message         string     `json:"message"`
}

func newStateView(s game.Snapshot) stateView {
	v := stateView{
		Round:           s.Round,
		Phase:           s.Phase.String(),
		Result:          s.Result.String(),
		PlayerCards:     cardViews(s.PlayerCards),
		PlayerTotal:     s.PlayerTotal,
		PlayerPoints:    s.PlayerPoints,
		DealerPoints:    s.DealerPoints,
		MatchOver:       s.MatchOver,
		MatchOutcome:    s.MatchOutcome.String(),
		Visibility:      int(s.Visibility),
		VisibilityLabel: s.Visibility.String(),
		DeckLeft:        s.DeckLeft,
		CanStart:        s.CanStart(),
		CanHit:          s.CanHit(),
		Message:         s.Message,
	}

	dealer := s.DealerView()
	v.DealerCards = cardViews(dealer.Cards)
	for i := 0; i < dealer.Hidden; i++ {
		v.DealerCards = append(v.DealerCards, cardView{Image: game.BackImagePath, Hidden: true})
	}
	if dealer.TotalShown {
		total := dealer.Total
		v.DealerTotal = &total
	}
	return v
}

func cardViews(cards []game.Card) []cardView {
	out := make([]cardView, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardView{Code: c.String(), Image: c.ImagePath()})
	}
	return out
}
