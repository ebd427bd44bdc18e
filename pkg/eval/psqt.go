package eval

import "github.com/kestrelchess/kestrel/pkg/board"

// Piece-square tables, in centipawns, indexed [rank][file] from White's point of view
// (rank 0 = Rank1, White's home rank). Knight/Bishop/Rook/Queen are single-phase; Pawn
// and King carry separate midgame and endgame tables, blended by the phase argument of
// psqtValue. Eight tables are stored explicitly; psqtValue reads Black pieces from the
// same tables with the rank mirrored vertically, since a symmetric board favors the
// side to move identically up to which rank is "home".
var (
	knightPST = [8][8]int{
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	}
	bishopPST = [8][8]int{
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	}
	rookPST = [8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{0, 0, 0, 5, 5, 0, 0, 0},
	}
	queenPST = [8][8]int{
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{-10, 5, 5, 5, 5, 5, 5, -10},
		{-10, 0, 5, 0, 0, 5, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	}
	pawnMidPST = [8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	pawnEndPST = [8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{15, 15, 15, 15, 15, 15, 15, 15},
		{30, 30, 30, 30, 30, 30, 30, 30},
		{55, 55, 55, 55, 55, 55, 55, 55},
		{85, 85, 85, 85, 85, 85, 85, 85},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	kingMidPST = [8][8]int{
		{20, 30, 10, 0, 0, 10, 30, 20},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
	}
	kingEndPST = [8][8]int{
		{-50, -30, -30, -30, -30, -30, -30, -50},
		{-30, -30, 0, 0, 0, 0, -30, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -20, -10, 0, 0, -10, -20, -30},
		{-50, -40, -30, -20, -20, -30, -40, -50},
	}
)

// phaseWeight is the non-pawn material contribution of each piece kind to the tapering
// phase counter, capped at maxPhase (the full-material, pure-midgame value).
var phaseWeight = map[board.Piece]int{
	board.Knight: 1,
	board.Bishop: 1,
	board.Rook:   2,
	board.Queen:  4,
}

const maxPhase = 4*1 + 4*1 + 4*2 + 2*4 // 4N+4B+4R+2Q: both sides' full non-pawn material

// psqtValue returns the piece-square contribution for a piece of the given color and
// kind on the given square, blending midgame/endgame tables by phase in [0;maxPhase],
// where maxPhase is the full-material opening value and 0 is a bare-king endgame.
func psqtValue(c board.Color, p board.Piece, sq board.Square, phase int) int {
	rank, file := int(sq.Rank()), int(sq.File())
	if c == board.Black {
		rank = 7 - rank
	}

	switch p {
	case board.Knight:
		return knightPST[rank][file]
	case board.Bishop:
		return bishopPST[rank][file]
	case board.Rook:
		return rookPST[rank][file]
	case board.Queen:
		return queenPST[rank][file]
	case board.Pawn:
		return taper(pawnMidPST[rank][file], pawnEndPST[rank][file], phase)
	case board.King:
		return taper(kingMidPST[rank][file], kingEndPST[rank][file], phase)
	default:
		return 0
	}
}

// taper blends a midgame and endgame value by phase, where phase == maxPhase is a pure
// midgame (full material) position and phase == 0 is a pure endgame (bare kings and
// pawns) position.
func taper(mid, end, phase int) int {
	if phase > maxPhase {
		phase = maxPhase
	}
	if phase < 0 {
		phase = 0
	}
	return (mid*phase + end*(maxPhase-phase)) / maxPhase
}
