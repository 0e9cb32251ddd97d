package blackjack

// Odds is the estimated outcome of drawing one more card, in percent.
type Odds struct {
	Bust float64
	Safe float64
}

// EstimateOdds estimates the chance that the next card keeps the hand at 21 or
// less. The remaining population starts at four copies of every rank and loses
// one copy per known card: the cards in hand and, when not zero, the dealer's
// visible rank. It ignores the dealer's hidden card and everything else already
// dealt.
func EstimateOdds(hand []uint8, dealerVisible uint8) Odds {
	var pool [King + 1]int
	for rank := Ace; rank <= King; rank++ {
		pool[rank] = 4
	}
	for _, rank := range hand {
		if rank >= Ace && rank <= King && pool[rank] > 0 {
			pool[rank]--
		}
	}
	if dealerVisible >= Ace && dealerVisible <= King && pool[dealerVisible] > 0 {
		pool[dealerVisible]--
	}

	total := 0
	for _, count := range pool {
		total += count
	}
	if total == 0 {
		return Odds{}
	}

	safe := 0
	next := make([]uint8, len(hand)+1)
	copy(next, hand)
	for rank := Ace; rank <= King; rank++ {
		if pool[rank] == 0 {
			continue
		}
		next[len(hand)] = uint8(rank)
		if ScoreRanks(next) <= BlackjackScore {
			safe += pool[rank]
		}
	}
	safeProb := float64(safe) / float64(total) * 100
	return Odds{Bust: 100 - safeProb, Safe: safeProb}
}
