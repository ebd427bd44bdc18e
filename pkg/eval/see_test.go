package eval_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestSeeWinningCapture(t *testing.T) {
	// White rook takes a defenseless queen on D5.
	b := newBoard(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	m := board.Move{Type: board.Capture, From: board.D1, To: board.D5, Piece: board.Rook, Capture: board.Queen}

	got := eval.See(b.Position(), board.White, m)
	assert.Equal(t, eval.NominalValue(board.Queen), got)
}

func TestSeeLosingCapture(t *testing.T) {
	// White rook takes a pawn on D5 that is defended by a bishop, so White nets a
	// pawn before losing the rook back.
	b := newBoard(t, "4k3/8/8/3p4/2b5/8/8/3RK3 w - - 0 1")
	m := board.Move{Type: board.Capture, From: board.D1, To: board.D5, Piece: board.Rook, Capture: board.Pawn}

	got := eval.See(b.Position(), board.White, m)
	assert.Equal(t, eval.NominalValue(board.Pawn)-eval.NominalValue(board.Rook), got)
}

func TestSeePawnTakesUndefendedPawn(t *testing.T) {
	// Pawn takes a pawn on an undefended square: a straight, even gain.
	b := newBoard(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	m := board.Move{Type: board.Capture, From: board.E4, To: board.D5, Piece: board.Pawn, Capture: board.Pawn}

	got := eval.See(b.Position(), board.White, m)
	assert.Equal(t, eval.NominalValue(board.Pawn), got)
}

func TestSeeQuietMoveIsZero(t *testing.T) {
	b := newBoard(t, fenStartingPosition)
	m := board.Move{Type: board.Normal, From: board.E2, To: board.E4, Piece: board.Pawn}

	assert.Equal(t, 0, eval.See(b.Position(), board.White, m))
}

func TestSeeMonotonicitySingleDefenderWeakerThanAttacker(t *testing.T) {
	// Rook takes a pawn defended by a single knight: defender value <= attacker value,
	// so the knight recaptures and SEE nets captured-minus-attacker.
	b := newBoard(t, "4k3/8/1n6/3p4/8/8/8/3RK3 w - - 0 1")
	m := board.Move{Type: board.Capture, From: board.D1, To: board.D5, Piece: board.Rook, Capture: board.Pawn}

	got := eval.See(b.Position(), board.White, m)
	assert.Equal(t, eval.NominalValue(board.Pawn)-eval.NominalValue(board.Rook), got)
}

func TestSeeMonotonicitySingleDefenderStrongerThanAttacker(t *testing.T) {
	// Pawn takes a knight defended by a single rook: defender value > attacker value, so
	// the rook declines to recapture and SEE is just the captured value.
	b := newBoard(t, "3rk3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	m := board.Move{Type: board.Capture, From: board.E4, To: board.D5, Piece: board.Pawn, Capture: board.Knight}

	got := eval.See(b.Position(), board.White, m)
	assert.Equal(t, eval.NominalValue(board.Knight), got)
}

const fenStartingPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
