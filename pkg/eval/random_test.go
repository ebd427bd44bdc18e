package eval_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestRandomZeroValueNeverPerturbs(t *testing.T) {
	var n eval.Random
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0, n.Sample())
	}
}

func TestRandomBounded(t *testing.T) {
	n := eval.NewRandom(200, 42)
	for i := 0; i < 1000; i++ {
		s := n.Sample()
		assert.GreaterOrEqual(t, s, -10)
		assert.LessOrEqual(t, s, 10)
	}
}

func TestRandomDeterministicForSeed(t *testing.T) {
	a := eval.NewRandom(200, 7)
	b := eval.NewRandom(200, 7)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Sample(), b.Sample())
	}
}
