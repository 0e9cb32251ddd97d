package deck

import (
	"errors"
	"math/rand/v2"
)

// ErrEmpty is returned when drawing from a deck with no cards left.
var ErrEmpty = errors.New("deck is empty")

// Deck is a pool of card numbers 1..DeckSize.
// The index of a card in the pool is its position from the bottom: Draw always
// takes the top, that is the last element.
type Deck struct {
	DeckSize int
	// Rand is the source used by Shuffle. A nil Rand uses the global generator.
	Rand  *rand.Rand
	cards []int
}

// New returns a shuffled deck of size cards.
func New(size int) *Deck {
	d := &Deck{DeckSize: size}
	d.Shuffle()
	return d
}

// Draw removes the top card and returns it.
func (d *Deck) Draw() (int, error) {
	if len(d.cards) == 0 {
		return 0, ErrEmpty
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, nil
}

// Len returns the number of cards still in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}
