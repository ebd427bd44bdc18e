package san_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/kestrelchess/kestrel/pkg/board/san"
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

func TestFormat(t *testing.T) {
	tests := []struct {
		name, fen, move, want string
	}{
		// Squares print uppercase throughout this module (see Square.String), so SAN
		// output follows suit instead of the usual lowercase file letters.
		{"knight disambiguation by file", "8/8/8/8/8/2N5/8/4K1N1 w - - 0 1", "c3e2", "NCE2"},
		{"knight pinned, no disambiguation needed", "8/8/8/8/1b6/2N5/8/4K1N1 w - - 0 1", "g1e2", "NE2"},
		{"pawn capture-promotion", "4b3/3P1P2/8/8/8/8/8/8 w - - 0 1", "d7e8q", "DxE8=Q"},
		{"knight capture", "rnbqkb1r/pppppppp/5n2/8/3PP3/8/PPP2PPP/RNBQKBNR b KQkq - 0 1", "f6e4", "NxE4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t, tt.fen)
			m, err := board.ParseMove(tt.move)
			require.NoError(t, err)

			var found *board.Move
			for _, candidate := range b.Position().LegalMoves(b.Turn()) {
				if candidate.Equals(m) {
					found = &candidate
					break
				}
			}
			require.NotNil(t, found, "move %v not legal in %v", tt.move, tt.fen)

			assert.Equal(t, tt.want, san.Format(b, *found))
		})
	}
}

func TestFormatCheckmate(t *testing.T) {
	b := newBoard(t, "2k5/Qr6/Q7/8/8/8/8/3R4 w - - 0 1")
	m, err := board.ParseMove("a6b7")
	require.NoError(t, err)

	var found *board.Move
	for _, candidate := range b.Position().LegalMoves(b.Turn()) {
		if candidate.Equals(m) {
			found = &candidate
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Q6xB7#", san.Format(b, *found))
}

func TestFormatCastling(t *testing.T) {
	b := newBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	for _, m := range b.Position().LegalMoves(b.Turn()) {
		switch m.Type {
		case board.KingSideCastle:
			assert.Equal(t, "O-O", san.Format(b, m))
		case board.QueenSideCastle:
			assert.Equal(t, "O-O-O", san.Format(b, m))
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	b := newBoard(t, fen.Initial)
	for _, m := range b.Position().LegalMoves(b.Turn()) {
		token := san.Format(b, m)

		parsed, err := san.Parse(b, token)
		require.NoError(t, err)
		assert.True(t, m.Equals(parsed), "SAN %v round-tripped to %v, want %v", token, parsed, m)
	}
}
