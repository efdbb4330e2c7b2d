package game

// DealerPlay draws for the dealer until the score reaches standOn. A bust
// also stops the loop. On error the returned hand is what was drawn so far.
func DealerPlay(deck *Deck, hand []Card, standOn int) ([]Card, error) {
	for CalculateScore(hand) < standOn {
		card, err := deck.Draw()
		if err != nil {
			return hand, err
		}
		hand = append(hand, card)
	}
	return hand, nil
}
