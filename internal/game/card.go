package game

import (
	"fmt"
	"strconv"
	"strings"
)

// DeckSize is the number of distinct cards in a standard deck.
const DeckSize = 52

const ranksPerSuit = 13

// Card identifies one card of the deck, 0..51.
type Card int

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitLetters = [...]string{"H", "D", "C", "S"}

func (s Suit) Letter() string {
	if s < Hearts || s > Spades {
		return "?"
	}
	return suitLetters[s]
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	}
	return "Unknown"
}

// Rank is the card position inside its suit: 0 is the ace, 12 the king.
type Rank int

const (
	Ace   Rank = 0
	Jack  Rank = 10
	Queen Rank = 11
	King  Rank = 12
)

func (r Rank) Letter() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r) + 1)
}

func (c Card) Valid() bool {
	return c >= 0 && c < DeckSize
}

func (c Card) Suit() Suit {
	return Suit(int(c) / ranksPerSuit)
}

func (c Card) Rank() Rank {
	return Rank(int(c) % ranksPerSuit)
}

// Value is the blackjack value before any ace softening.
func (c Card) Value() int {
	r := c.Rank()
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	}
	return int(r) + 1
}

// String renders the card as rank-suit, e.g. "A-H" or "10-S".
func (c Card) String() string {
	return c.Rank().Letter() + "-" + c.Suit().Letter()
}

// BackImagePath is shown in place of a hidden card.
const BackImagePath = "cards/BACK.png"

func (c Card) ImagePath() string {
	return "cards/" + c.String() + ".png"
}

// ParseCard reads the rank-suit form produced by Card.String.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	rankStr, suitStr, ok := strings.Cut(s, "-")
	if !ok {
		return 0, fmt.Errorf("invalid card %q", s)
	}

	suit := Suit(-1)
	for i, l := range suitLetters {
		if l == suitStr {
			suit = Suit(i)
		}
	}
	if suit < 0 {
		return 0, fmt.Errorf("invalid suit in %q", s)
	}

	var rank Rank
	switch rankStr {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		n, err := strconv.Atoi(rankStr)
		if err != nil || n < 2 || n > 10 {
			return 0, fmt.Errorf("invalid rank in %q", s)
		}
		rank = Rank(n - 1)
	}

	return Card(int(suit)*ranksPerSuit + int(rank)), nil
}

// MustParseCards is ParseCard over a list; it panics on bad input.
func MustParseCards(ss ...string) []Card {
	out := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}
