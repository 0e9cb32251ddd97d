package blackjack

import (
	"fmt"
	"time"
)

// State is a step of the round state machine.
type State int

const (
	DealPlayer State = iota
	DealerShowCard
	PlayerTurn
	DealerReveal
	DealerAutoplay
	Settle
	End
)

func (s State) String() string {
	switch s {
	case DealPlayer:
		return "deal player"
	case DealerShowCard:
		return "dealer show card"
	case PlayerTurn:
		return "player turn"
	case DealerReveal:
		return "dealer reveal"
	case DealerAutoplay:
		return "dealer autoplay"
	case Settle:
		return "settle"
	case End:
		return "end"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Seat is the player side of the table as seen by the dealer.
type Seat interface {
	// Deal shows a card to the player together with the current result.
	Deal(c Card, result Result) error
	// Decide blocks until the player makes a move.
	Decide() (Decision, error)
}

// Round drives one deal-through-settlement cycle. The dealer's hidden card
// is only shown to the Seat in the DealerReveal step.
type Round struct {
	Player Hand
	Dealer Hand
	Result Result
	// Pace is the pause before each dealer draw.
	Pace time.Duration

	shoe   Shoe
	state  State
	hidden Card
}

// NewRound returns a round drawing from shoe, ready to deal.
func NewRound(shoe Shoe) *Round {
	return &Round{shoe: shoe, state: DealPlayer}
}

// State returns the step the round will execute next.
func (r *Round) State() State {
	return r.state
}

// Play runs the round until it ends. On error the round stops where it failed
// and must be discarded.
func (r *Round) Play(seat Seat) error {
	for r.state != End {
		if err := r.Step(seat); err != nil {
			return fmt.Errorf("%s: %w", r.state, err)
		}
	}
	return nil
}

// Step executes a single transition of the state machine.
func (r *Round) Step(seat Seat) error {
	switch r.state {
	case DealPlayer:
		return r.dealPlayer(seat)
	case DealerShowCard:
		return r.dealerShowCard(seat)
	case PlayerTurn:
		return r.playerTurn(seat)
	case DealerReveal:
		if err := seat.Deal(r.hidden, NotOver); err != nil {
			return err
		}
		r.state = DealerAutoplay
		return nil
	case DealerAutoplay:
		return r.dealerAutoplay(seat)
	case Settle:
		return r.settle(seat)
	case End:
		return nil
	default:
		return fmt.Errorf("unknown state %d", r.state)
	}
}

func (r *Round) draw() (Card, error) {
	c, err := r.shoe.Draw()
	if err != nil {
		return Card{}, fmt.Errorf("draw: %w", err)
	}
	return c, nil
}

func (r *Round) dealPlayer(seat Seat) error {
	for range 2 {
		c, err := r.draw()
		if err != nil {
			return err
		}
		r.Player = append(r.Player, c)
		if r.Player.Busted() {
			return r.bust(seat, c)
		}
		if err := seat.Deal(c, NotOver); err != nil {
			return err
		}
	}
	r.state = DealerShowCard
	return nil
}

func (r *Round) dealerShowCard(seat Seat) error {
	visible, err := r.draw()
	if err != nil {
		return err
	}
	hidden, err := r.draw()
	if err != nil {
		return err
	}
	r.Dealer = Hand{visible, hidden}
	r.hidden = hidden
	if err := seat.Deal(visible, NotOver); err != nil {
		return err
	}
	r.state = PlayerTurn
	return nil
}

func (r *Round) playerTurn(seat Seat) error {
	decision, err := seat.Decide()
	if err != nil {
		return err
	}
	switch decision {
	case Hit:
		c, err := r.draw()
		if err != nil {
			return err
		}
		r.Player = append(r.Player, c)
		if r.Player.Busted() {
			return r.bust(seat, c)
		}
		return seat.Deal(c, NotOver)
	case Stand:
		r.state = DealerReveal
	}
	return nil
}

func (r *Round) dealerAutoplay(seat Seat) error {
	if r.Dealer.Score() >= DealerStandScore {
		r.state = Settle
		return nil
	}
	if r.Pace > 0 {
		time.Sleep(r.Pace)
	}
	c, err := r.draw()
	if err != nil {
		return err
	}
	r.Dealer = append(r.Dealer, c)
	return seat.Deal(c, NotOver)
}

func (r *Round) settle(seat Seat) error {
	r.Result = Outcome(r.Player.Score(), r.Dealer.Score())
	last, _ := r.Dealer.Last()
	r.state = End
	return seat.Deal(last, r.Result)
}

// bust settles the round as a loss on the card that broke the player's hand.
// The dealer does not play.
func (r *Round) bust(seat Seat, c Card) error {
	r.Result = Loss
	r.state = End
	return seat.Deal(c, Loss)
}

// Outcome compares the final scores of a round where the player did not bust.
func Outcome(player, dealer int) Result {
	switch {
	case dealer > BlackjackScore:
		return Win
	case player > dealer:
		return Win
	case player < dealer:
		return Loss
	default:
		return Tie
	}
}
