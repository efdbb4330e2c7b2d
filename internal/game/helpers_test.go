package game

import "testing"

func stacked(_ *testing.T, cards ...string) *FixedSource {
	return NewFixedSource(MustParseCards(cards...)...)
}

func hand(cards ...string) []Card {
	return MustParseCards(cards...)
}
