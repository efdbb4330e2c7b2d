package game

import "fmt"

// FixedSource makes a deck deal a chosen sequence of cards, for replays and
// tests. Every fresh 52-card deck starts over with whatever cards are left in
// the sequence. It panics if asked for more cards than it was given or for a
// card already dealt from the current deck.
type FixedSource struct {
	cards []Card
	dealt []Card
}

func NewFixedSource(cards ...Card) *FixedSource {
	return &FixedSource{cards: cards}
}

// Intn returns the index of the next card among the undealt ones. Decks keep
// undealt cards in identity order, so the index is the card minus the number
// of lower cards already dealt.
func (s *FixedSource) Intn(n int) int {
	if n == DeckSize {
		s.dealt = s.dealt[:0]
	}
	if len(s.cards) == 0 {
		panic("fixed source: out of cards")
	}

	c := s.cards[0]
	s.cards = s.cards[1:]

	idx := int(c)
	for _, d := range s.dealt {
		if d == c {
			panic(fmt.Sprintf("fixed source: %s already dealt", c))
		}
		if d < c {
			idx--
		}
	}
	s.dealt = append(s.dealt, c)

	if idx >= n {
		panic(fmt.Sprintf("fixed source: %s not in a deck of %d", c, n))
	}
	return idx
}

// Left is the number of cards not yet dealt.
func (s *FixedSource) Left() int {
	return len(s.cards)
}
