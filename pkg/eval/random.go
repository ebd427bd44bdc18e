package eval

import (
	"math/rand"
)

// Random adds a bounded amount of noise to leaf evaluations, to avoid the engine
// playing the identical game every time it faces the identical position. The zero
// value never perturbs a score.
type Random struct {
	rand  *rand.Rand
	limit int // millipawns, symmetric range [-limit/2; limit/2]
}

// NewRandom returns a Random that perturbs evaluations by up to limit/2 millipawns
// either way, seeded deterministically from seed.
func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// Sample draws a perturbation in [-limit/2; limit/2) millipawns and returns it in
// centipawns (divided by ten, truncated toward zero), or zero for the zero-value Random.
func (n Random) Sample() int {
	if n.limit <= 0 || n.rand == nil {
		return 0
	}
	return (n.rand.Intn(n.limit) - n.limit/2) / 10
}
