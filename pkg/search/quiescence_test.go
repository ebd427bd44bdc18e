package search_test

import (
	"context"
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuiescenceBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves)
}

func TestQuiescenceDefaultsExploreWhenUnset(t *testing.T) {
	// Regression: Quiescence with a nil Explore must fall back to NonQuiescent instead
	// of panicking on a nil exploration function.
	b := newQuiescenceBoard(t, fen.Initial)
	q := search.Quiescence{Eval: search.Heuristic{Eval: eval.PieceSquare{}}}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: search.NoTranspositionTable{}}

	assert.NotPanics(t, func() {
		_, _ = q.QuietSearch(context.Background(), sctx, b)
	})
}

func TestQuiescenceCapturesWinningMaterial(t *testing.T) {
	// White to move can win a queen for free in the noisy phase.
	b := newQuiescenceBoard(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	q := search.Quiescence{Eval: search.Heuristic{Eval: eval.PieceSquare{}}}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: search.NoTranspositionTable{}}

	_, score := q.QuietSearch(context.Background(), sctx, b)
	assert.True(t, eval.HeuristicScore(400).Less(score))
}

func TestQuiescencePrunesBadCapture(t *testing.T) {
	// The only capture available loses the rook for a pawn; quiescence must not take
	// it, so the returned score should be close to the stand-pat evaluation.
	b := newQuiescenceBoard(t, "4k3/8/8/3p4/2b5/8/8/3RK3 w - - 0 1")
	q := search.Quiescence{Eval: search.Heuristic{Eval: eval.PieceSquare{}}}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: search.NoTranspositionTable{}}

	_, score := q.QuietSearch(context.Background(), sctx, b)
	assert.True(t, score.Pawns < 3)
}
