package deck

import "math/rand/v2"

// Shuffle refills the deck with every card number and permutes it.
func (d *Deck) Shuffle() {
	d.cards = permutation(d.DeckSize, d.Rand)
}

// Helper function to generate a random permutation of the card numbers 1..permSize
func permutation(permSize int, r *rand.Rand) []int {
	var perm []int
	if r != nil {
		perm = r.Perm(permSize)
	} else {
		perm = rand.Perm(permSize)
	}
	for i := 0; i < permSize; i++ {
		perm[i]++
	}
	return perm
}
