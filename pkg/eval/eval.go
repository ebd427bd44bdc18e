// Package eval contains static position evaluation: material and piece-square scoring
// used by the search to rank positions in the absence of a deeper search.
package eval

import (
	"context"

	"github.com/kestrelchess/kestrel/pkg/board"
)

// Evaluator is a static position evaluator, reporting the Score from the perspective of
// the side to move.
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board) Score
}

// PieceSquare evaluates a position by nominal material balance plus a tapered
// piece-square table bonus, blended between midgame and endgame by the remaining
// non-pawn material.
type PieceSquare struct{}

func (PieceSquare) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := b.Turn()

	phase := 0
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		if _, p, ok := pos.Square(sq); ok {
			phase += phaseWeight[p]
		}
	}

	centipawns := 0
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		c, p, ok := pos.Square(sq)
		if !ok {
			continue
		}

		value := 100*NominalValue(p) + psqtValue(c, p, sq, phase)
		if c == turn {
			centipawns += value
		} else {
			centipawns -= value
		}
	}
	return HeuristicScore(centipawns)
}

// NominalValue is the absolute nominal value, in pawns, of a piece kind. The King is
// given an arbitrary, large value so it always dominates MVV-LVA move ordering.
func NominalValue(p board.Piece) int {
	switch p {
	case board.Pawn:
		return 1
	case board.Bishop, board.Knight:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 100
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain, in pawns, of making the given move: the
// value of the captured piece (plus the value a promotion adds), or zero for a quiet
// move.
func NominalValueGain(m board.Move) int {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}
