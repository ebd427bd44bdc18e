package board

import "fmt"

// Outcome is the terminal status of a game.
type Outcome uint8

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "?"
	}
}

// Reason classifies why a game reached its Outcome, for reporting to a UCI/console
// caller. It never changes the Outcome's meaning. Board.NoProgress reports the
// no-progress ply counter on its own; repetition is reported only through Reason.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	Repetition3
	Repetition5
	NoProgress
	InsufficientMaterial
)

func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition3:
		return "threefold repetition"
	case Repetition5:
		return "fivefold repetition"
	case NoProgress:
		return "50-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "in progress"
	}
}

// Result represents the result of a game, if decided, and why.
type Result struct {
	Outcome Outcome
	Reason  Reason
}

func (r Result) String() string {
	if r.Outcome == Undecided {
		return r.Outcome.String()
	}
	return fmt.Sprintf("%v (%v)", r.Outcome, r.Reason)
}

// Loss returns the Outcome of the color to move losing, e.g. by checkmate.
func Loss(c Color) Outcome {
	if c == White {
		return BlackWins
	}
	return WhiteWins
}
