package blackjack

const (
	// BlackjackScore is the best possible score; anything above busts.
	BlackjackScore = 21
	// DealerStandScore is the score at which the dealer stops drawing.
	DealerStandScore = 17
)

// Hand is the ordered sequence of cards held by one party during a round.
type Hand []Card

// Score returns the Blackjack total of the hand.
func (h Hand) Score() int {
	return ScoreRanks(h.Ranks())
}

// Ranks returns the ranks of the cards in the hand, in order.
func (h Hand) Ranks() []uint8 {
	ranks := make([]uint8, len(h))
	for i, c := range h {
		ranks[i] = c.rank
	}
	return ranks
}

// Busted reports whether the hand scores over 21.
func (h Hand) Busted() bool {
	return h.Score() > BlackjackScore
}

// Last returns the most recently added card, or false for an empty hand.
func (h Hand) Last() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}
	return h[len(h)-1], true
}

// ScoreRanks computes the Blackjack total of a sequence of ranks.
// Face cards count 10, an ace counts 11 and is reduced to 1, one at a time,
// while the total is over 21. The result can still be over 21.
func ScoreRanks(ranks []uint8) int {
	score := 0
	aces := 0
	for _, rank := range ranks {
		switch {
		case rank == Ace:
			aces++
			score += 11
		case rank >= Jack:
			score += 10
		default:
			score += int(rank)
		}
	}
	for score > BlackjackScore && aces > 0 {
		score -= 10
		aces--
	}
	return score
}
