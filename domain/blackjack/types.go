package blackjack

// Result is the outcome of a round from the player's point of view.
type Result uint8

const (
	NotOver Result = 0
	Tie     Result = 1
	Loss    Result = 2
	Win     Result = 3
)

func (r Result) String() string {
	switch r {
	case NotOver:
		return "not over"
	case Tie:
		return "tie"
	case Loss:
		return "loss"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Decision is the move of the player during its turn.
type Decision string

const (
	Hit   Decision = "Hit"
	Stand Decision = "Stand"
)
