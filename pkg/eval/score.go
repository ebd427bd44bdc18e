package eval

import "fmt"

// mateBias separates mate scores from heuristic (material/positional) scores in the
// total order induced by Less: any mate score outranks any heuristic score, and among
// mate scores a faster mate is preferred. It is chosen far larger than any realistic
// heuristic score, which is bounded in the hundreds of pawns.
const mateBias = 1 << 20

// Score is a signed evaluation from the perspective of the side to move: positive
// favors the mover. A Score is either a plain heuristic value in pawns, or a forced
// mate expressed as a ply distance (positive: the mover delivers mate; negative: the
// mover is mated), never both.
type Score struct {
	Pawns float64
	Mate  int // 0 if not a mate score

	invalid bool
}

// ZeroScore is a neutral, non-mate evaluation, e.g. a known draw.
var ZeroScore = Score{}

// InvalidScore is a sentinel for "unset", distinct from ZeroScore. Used for default
// alpha/beta window bounds that a caller did not explicitly supply.
var InvalidScore = Score{invalid: true}

// NegInfScore and InfScore bound every reachable Score, including mate scores, and
// are the default alpha-beta search window when the caller supplies no bound.
var (
	NegInfScore = Score{Pawns: -1e9}
	InfScore    = Score{Pawns: 1e9}
)

// HeuristicScore constructs a plain, non-mate score from a centipawn value.
func HeuristicScore(centipawns int) Score {
	return Score{Pawns: float64(centipawns) / 100}
}

// MateInXScore constructs a forced-mate score for the mover, given as a ply distance
// to mate (not moves). Use a negative distance for a mate against the mover.
func MateInXScore(plies int) Score {
	return Score{Mate: plies}
}

// IsInvalid returns true iff the score is the InvalidScore sentinel.
func (s Score) IsInvalid() bool {
	return s.invalid
}

// IsHeuristic returns true iff the score is a plain evaluation rather than a forced mate.
func (s Score) IsHeuristic() bool {
	return s.Mate == 0
}

// MateDistance returns the number of plies to mate and true, iff the score represents
// a forced mate (for or against the mover).
func (s Score) MateDistance() (int, bool) {
	if s.Mate == 0 {
		return 0, false
	}
	if s.Mate < 0 {
		return -s.Mate, true
	}
	return s.Mate, true
}

// Negate flips the score to the opponent's perspective.
func (s Score) Negate() Score {
	return Score{Pawns: -s.Pawns, Mate: -s.Mate, invalid: s.invalid}
}

// Less returns true iff s is strictly worse for the mover than o.
func (s Score) Less(o Score) bool {
	return s.key() < o.key()
}

// key induces a total order over Score: mate-for-mover scores outrank all heuristic
// scores and are preferred faster-is-better; mate-against-mover scores are ranked
// below all heuristic scores and are preferred slower-is-better.
func (s Score) key() float64 {
	switch {
	case s.Mate > 0:
		return mateBias - float64(s.Mate)
	case s.Mate < 0:
		return -mateBias - float64(s.Mate)
	default:
		return s.Pawns
	}
}

// Max returns the greater (better for its own mover) of the two scores.
func Max(a, b Score) Score {
	if a.Less(b) {
		return b
	}
	return a
}

// Min returns the lesser of the two scores.
func Min(a, b Score) Score {
	if b.Less(a) {
		return b
	}
	return a
}

// IncrementMateDistance adds one ply to a mate score as it propagates up the search
// tree from a child node; heuristic scores are returned unchanged.
func IncrementMateDistance(s Score) Score {
	if s.Mate == 0 {
		return s
	}
	if s.Mate > 0 {
		return Score{Pawns: s.Pawns, Mate: s.Mate + 1}
	}
	return Score{Pawns: s.Pawns, Mate: s.Mate - 1}
}

func (s Score) String() string {
	if s.Mate != 0 {
		return fmt.Sprintf("mate(%v)", s.Mate)
	}
	return fmt.Sprintf("%.2f", s.Pawns)
}
