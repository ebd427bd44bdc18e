package board_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves)
}

func TestPushPopNullMoveTogglesTurnAndHash(t *testing.T) {
	b := newBoard(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")

	before := b.Hash()
	beforeTurn := b.Turn()

	ok := b.PushNullMove()
	require.True(t, ok)
	assert.NotEqual(t, beforeTurn, b.Turn())
	assert.NotEqual(t, before, b.Hash())

	ep, has := b.Position().EnPassant()
	assert.False(t, has)
	assert.Equal(t, board.ZeroSquare, ep)

	b.PopNullMove()
	assert.Equal(t, beforeTurn, b.Turn())
	assert.Equal(t, before, b.Hash())
}

func TestPushNullMoveRefusedInCheck(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.False(t, b.PushNullMove())
}

// TestPushPopMoveRoundTrip checks that applying and undoing any legal move restores the
// board exactly: piece mapping, side-to-move, castling rights, en passant square and
// Zobrist hash all bit-for-bit equal to before the move.
func TestPushPopMoveRoundTrip(t *testing.T) {
	positions := []string{
		fen.Initial,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}

	for _, position := range positions {
		b := newBoard(t, position)
		before := *b.Position()
		beforeTurn := b.Turn()
		beforeHash := b.Hash()

		for _, m := range before.PseudoLegalMoves(beforeTurn) {
			if !b.PushMove(m) {
				continue // not legal
			}

			undone, ok := b.PopMove()
			require.True(t, ok)
			assert.True(t, undone.Equals(m))
			assert.Equal(t, before, *b.Position())
			assert.Equal(t, beforeTurn, b.Turn())
			assert.Equal(t, beforeHash, b.Hash())
		}
	}
}

// TestCastlingRightsLostOnRookCapture covers the "castling rights via rook capture"
// scenario: once the black rook on a8 is captured, black can no longer castle queenside,
// even though no black king or rook move ever happened.
func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	b := newBoard(t, "r3k3/8/8/8/8/8/8/R3K3 w Qq - 0 1")
	require.True(t, b.Position().Castling().IsAllowed(board.BlackQueenSideCastle))

	m := board.Move{Type: board.Capture, From: board.A1, To: board.A8, Piece: board.Rook, Capture: board.Rook}
	require.True(t, b.PushMove(m))

	assert.False(t, b.Position().Castling().IsAllowed(board.BlackQueenSideCastle))
}

// TestBongcloudThreefoldRepetition covers the "bongcloud threefold" scenario: the king
// shuffle 1.e4 e5 2.Ke2 Ke7 3.Ke1 Ke8 4.Ke2 Ke7 5.Ke1 Ke8 6.Ke2 Ke7 reaches the same
// position with White to move for the third time immediately after Black's sixth move.
func TestBongcloudThreefoldRepetition(t *testing.T) {
	b := newBoard(t, fen.Initial)

	// White repeats Ke2/Ke1, Black repeats Ke7/Ke8, three times total.
	sequence := []string{
		"e2e4", "e7e5",
		"e1e2", "e8e7",
		"e2e1", "e7e8",
		"e1e2", "e8e7",
		"e2e1", "e7e8",
		"e1e2", "e8e7",
	}

	for i, move := range sequence {
		m, err := board.ParseMove(move)
		require.NoError(t, err)

		applied := false
		for _, candidate := range b.Position().PseudoLegalMoves(b.Turn()) {
			if candidate.Equals(m) {
				require.True(t, b.PushMove(candidate), "move %d (%v) illegal", i, move)
				applied = true
				break
			}
		}
		require.True(t, applied, "move %d (%v) not found", i, move)

		if i < len(sequence)-1 {
			assert.NotEqual(t, board.Repetition3, b.Result().Reason, "repetition detected too early at move %d", i)
		}
	}

	assert.Equal(t, board.Draw, b.Result().Outcome)
	assert.Equal(t, board.Repetition3, b.Result().Reason)
}

// TestSicilianFENRoundTrip covers the "Sicilian FEN round-trip" scenario: applying
// 1.e4 c5 2.Nf3 d6 3.d4 cxd4 4.Nxd4 to the starting position must reach the same board
// as parsing the resulting FEN directly.
func TestSicilianFENRoundTrip(t *testing.T) {
	b := newBoard(t, fen.Initial)

	for _, move := range []string{"e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4", "f3d4"} {
		m, err := board.ParseMove(move)
		require.NoError(t, err)

		applied := false
		for _, candidate := range b.Position().PseudoLegalMoves(b.Turn()) {
			if candidate.Equals(m) {
				require.True(t, b.PushMove(candidate))
				applied = true
				break
			}
		}
		require.True(t, applied, "move %v not found", move)
	}

	want := newBoard(t, "rnbqkbnr/pp2pppp/3p4/8/3NP3/8/PPP2PPP/RNBQKB1R b KQkq - 0 4")
	assert.Equal(t, *want.Position(), *b.Position())
	assert.Equal(t, want.Turn(), b.Turn())
}
