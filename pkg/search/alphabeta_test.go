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

func newAlphaBetaBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves)
}

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	b := newAlphaBetaBoard(t, "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")

	s := search.AlphaBeta{
		StaticEval: search.Heuristic{Eval: eval.PieceSquare{}},
		Eval: search.Quiescence{
			Eval: search.Heuristic{Eval: eval.PieceSquare{}},
		},
	}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: search.NoTranspositionTable{}}

	_, score, moves, err := s.Search(ctx, sctx, b, 3)
	require.NoError(t, err)
	require.NotEmpty(t, moves)

	md, ok := score.MateDistance()
	require.True(t, ok)
	assert.Equal(t, uint(1), uint(md))
}

func TestAlphaBetaPrefersWinningExchange(t *testing.T) {
	ctx := context.Background()
	// The rook's only capture takes the queen on d5, which the bishop on c4 defends:
	// queen for rook is still a winning exchange, and the search must prefer it.
	b := newAlphaBetaBoard(t, "4k3/8/8/3qp3/2b5/8/8/3RK3 w - - 0 1")

	s := search.AlphaBeta{
		StaticEval: search.Heuristic{Eval: eval.PieceSquare{}},
		Eval: search.Quiescence{
			Eval: search.Heuristic{Eval: eval.PieceSquare{}},
		},
	}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: search.NoTranspositionTable{}}

	_, _, moves, err := s.Search(ctx, sctx, b, 2)
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	assert.Equal(t, board.D5, moves[0].To)
}

func TestFreeRookCapture(t *testing.T) {
	ctx := context.Background()
	b := newAlphaBetaBoard(t, "r3k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	s := search.AlphaBeta{
		StaticEval: search.Heuristic{Eval: eval.PieceSquare{}},
		Eval: search.Quiescence{
			Eval: search.Heuristic{Eval: eval.PieceSquare{}},
		},
	}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: search.NoTranspositionTable{}}

	_, _, moves, err := s.Search(ctx, sctx, b, 1)
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	assert.Equal(t, board.A1, moves[0].From)
	assert.Equal(t, board.A8, moves[0].To)
}

func TestBetterCaptureTarget(t *testing.T) {
	ctx := context.Background()
	// Rook on d4 can take either bishop: a4 is defended by the king, h4 is not.
	b := newAlphaBetaBoard(t, "8/8/8/1k6/b2R3b/8/8/4K3 w - - 0 1")

	s := search.AlphaBeta{
		StaticEval: search.Heuristic{Eval: eval.PieceSquare{}},
		Eval: search.Quiescence{
			Eval: search.Heuristic{Eval: eval.PieceSquare{}},
		},
	}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: search.NoTranspositionTable{}}

	_, _, moves, err := s.Search(ctx, sctx, b, 2)
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	assert.Equal(t, board.D4, moves[0].From)
	assert.Equal(t, board.H4, moves[0].To)
}

func TestPromotionSequence(t *testing.T) {
	ctx := context.Background()
	// Rook check on d8 forces the black king or rook to answer, clearing e8 so the pawn
	// queens unopposed on the following ply.
	b := newAlphaBetaBoard(t, "k3r3/4P3/8/8/8/8/3R4/5K2 w - - 0 1")

	s := search.AlphaBeta{
		StaticEval: search.Heuristic{Eval: eval.PieceSquare{}},
		Eval: search.Quiescence{
			Eval: search.Heuristic{Eval: eval.PieceSquare{}},
		},
	}
	sctx := &search.Context{Alpha: eval.InvalidScore, Beta: eval.InvalidScore, TT: search.NoTranspositionTable{}}

	_, _, moves, err := s.Search(ctx, sctx, b, 3)
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	assert.Equal(t, board.D2, moves[0].From)
	assert.Equal(t, board.D8, moves[0].To)
}
