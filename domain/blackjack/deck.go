package blackjack

import (
	"errors"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Shoe dispenses cards without replacement.
type Shoe interface {
	Draw() (Card, error)
}

// Deck wraps a numbered deck and converts its card numbers to Cards.
type Deck struct {
	*deck.Deck
}

// NewDeck returns a freshly shuffled 52-card deck.
func NewDeck() Deck {
	return Deck{Deck: deck.New(DeckSize)}
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (hearts, diamonds, clubs, spades) with ranks 1-13 within each suit.
//
// Card numbering:
//   - 1-13: Hearts (Ace through King)
//   - 14-26: Diamonds (Ace through King)
//   - 27-39: Clubs (Ace through King)
//   - 40-52: Spades (Ace through King)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	suit := uint8((rawCard - 1) / 13)
	rank := uint8((rawCard-1)%13 + 1)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}

// Draw removes the top card of the deck.
func (d Deck) Draw() (Card, error) {
	c, err := d.Deck.Draw()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(c)
}
