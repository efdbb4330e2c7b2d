package game

import (
	"math/rand"
	"time"
)

// Source picks a random index in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

type Deck struct {
	cards []Card
	src   Source
}

func NewDeck(src Source) *Deck {
	if src == nil {
		src = NewSource()
	}

	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		src:   src,
	}
	d.Build()
	return d
}

// Build resets the deck to all 52 cards in identity order.
func (d *Deck) Build() {
	d.cards = d.cards[:0]
	for i := 0; i < DeckSize; i++ {
		d.cards = append(d.cards, Card(i))
	}
}

// Draw removes and returns a uniformly chosen card. The deck is never
// refilled here: an empty deck is an error.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return 0, ErrEmptyDeck
	}

	i := d.src.Intn(len(d.cards))
	card := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Clone shares the random source but not the card slice.
func (d *Deck) Clone() *Deck {
	return &Deck{cards: d.Cards(), src: d.src}
}
