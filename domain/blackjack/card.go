package blackjack

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Heart   = 0 // ♥ (red)
	Diamond = 1 // ♦ (red)
	Club    = 2 // ♣ (black)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// Card represents a playing card with suit and rank.
type Card struct {
	suit uint8 // 0-3: hearts, diamonds, clubs, spades
	rank uint8 // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Heart, Diamond, Club, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// Suit returns the suit value of the Card (0-3: hearts, diamonds, clubs, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// Name returns the plain representation of the Card, for example "A♥" or "10♠".
func (c Card) Name() string {
	return c.rankName() + c.suitSymbol()
}

// String returns the Card name with red suits colored.
func (c Card) String() string {
	suit := c.suitSymbol()
	if c.suit == Heart || c.suit == Diamond {
		suit = pterm.LightRed(suit)
	}
	return c.rankName() + suit
}

func (c Card) rankName() string {
	switch c.rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", c.rank)
	}
}

func (c Card) suitSymbol() string {
	switch c.suit {
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}
