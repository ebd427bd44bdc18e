package eval

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestTaper(t *testing.T) {
	tests := []struct {
		mid, end, phase, want int
	}{
		{100, 0, maxPhase, 100},
		{100, 0, 0, 0},
		{100, 0, maxPhase * 2, 100}, // clamped above maxPhase
		{100, 0, -5, 0},             // clamped below zero
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, taper(tt.mid, tt.end, tt.phase))
	}
}

func TestPsqtValueMirrorsForBlack(t *testing.T) {
	// A White knight on G1 and a Black knight on G8 occupy each side's mirror-equivalent
	// home square, so they must score identically from their own side's perspective.
	white := psqtValue(board.White, board.Knight, board.G1, maxPhase)
	black := psqtValue(board.Black, board.Knight, board.G8, maxPhase)
	assert.Equal(t, white, black)
}

func TestPsqtValueKingTapersBetweenMidAndEnd(t *testing.T) {
	mid := psqtValue(board.White, board.King, board.E1, maxPhase)
	end := psqtValue(board.White, board.King, board.E1, 0)
	assert.Equal(t, kingMidPST[0][3], mid)
	assert.Equal(t, kingEndPST[0][3], end)
}
