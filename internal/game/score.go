package game

// Target is the best possible hand total.
const Target = 21

// CalculateScore counts aces as 11 and softens them one at a time while the
// hand would bust.
func CalculateScore(hand []Card) int {
	score, _ := scoreAndSoftAces(hand)
	return score
}

func scoreAndSoftAces(hand []Card) (int, int) {
	score := 0
	aces := 0

	for _, card := range hand {
		v := card.Value()
		if v == 11 {
			aces++
		}
		score += v
	}

	for score > Target && aces > 0 {
		score -= 10
		aces--
	}

	return score, aces
}

func IsNatural(hand []Card) bool {
	return len(hand) == 2 && CalculateScore(hand) == Target
}

func IsBust(hand []Card) bool {
	return CalculateScore(hand) > Target
}

// IsSoft reports whether an ace is still counted as 11.
func IsSoft(hand []Card) bool {
	_, aces := scoreAndSoftAces(hand)
	return aces > 0
}
