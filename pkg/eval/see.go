package eval

import "github.com/kestrelchess/kestrel/pkg/board"

// occupancy is a synthetic snapshot of a position's pieces, mutated in place as See
// simulates removing attackers from the capture square.
type occupancy struct {
	pieces   [board.NumColors][board.NumPieces]board.Bitboard
	occupied board.Bitboard
}

func snapshot(pos *board.Position) occupancy {
	var o occupancy
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		c, p, ok := pos.Square(sq)
		if !ok {
			continue
		}
		o.pieces[c][p] |= board.BitMask(sq)
		o.occupied |= board.BitMask(sq)
	}
	return o
}

// attackersTo returns every piece of either color that attacks sq under the synthetic
// occupancy o, re-deriving sliding attacks so that x-rays revealed by removed pieces are
// picked up on the next call.
func attackersTo(o *occupancy, sq board.Square) board.Bitboard {
	rot := board.NewRotatedBitboard(o.occupied)

	diagonal := o.pieces[board.White][board.Bishop] | o.pieces[board.Black][board.Bishop] |
		o.pieces[board.White][board.Queen] | o.pieces[board.Black][board.Queen]
	straight := o.pieces[board.White][board.Rook] | o.pieces[board.Black][board.Rook] |
		o.pieces[board.White][board.Queen] | o.pieces[board.Black][board.Queen]

	var ret board.Bitboard
	ret |= board.KnightAttackboard(sq) & (o.pieces[board.White][board.Knight] | o.pieces[board.Black][board.Knight])
	ret |= board.KingAttackboard(sq) & (o.pieces[board.White][board.King] | o.pieces[board.Black][board.King])
	ret |= board.BishopAttackboard(rot, sq) & diagonal
	ret |= board.RookAttackboard(rot, sq) & straight
	ret |= board.PawnCaptureboard(board.Black, board.BitMask(sq)) & o.pieces[board.White][board.Pawn]
	ret |= board.PawnCaptureboard(board.White, board.BitMask(sq)) & o.pieces[board.Black][board.Pawn]
	return ret & o.occupied
}

// attackerOrder lists piece kinds from least to most valuable, the order in which a side
// picks its recapturing piece during a swap-off.
var attackerOrder = []board.Piece{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King}

func leastValuableAttacker(o *occupancy, attackers board.Bitboard, side board.Color) (board.Square, board.Piece, bool) {
	for _, p := range attackerOrder {
		if bb := attackers & o.pieces[side][p]; bb != 0 {
			return bb.LastPopSquare(), p, true
		}
	}
	return board.ZeroSquare, board.NoPiece, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// See runs a static exchange evaluation of the capture m, simulating the swap-off of
// least-valuable-attacker recaptures on m.To until a side has no attacker left or
// declines a losing recapture. A side declines to recapture whenever its least valuable
// attacker is worth more than the piece standing on m.To. The result is in pawns,
// positive if side comes out materially ahead of the exchange.
//
// En passant is approximated by the value of the captured pawn: the captured piece never
// occupies m.To, so the swap-list below does not apply to it.
func See(pos *board.Position, side board.Color, m board.Move) int {
	if m.Type == board.EnPassant {
		return NominalValue(board.Pawn)
	}
	if !m.IsCapture() {
		return 0
	}

	o := snapshot(pos)
	to := m.To

	aPiece := m.Piece
	if m.Promotion.IsValid() {
		aPiece = m.Promotion
	}

	o.pieces[side][m.Piece] &^= board.BitMask(m.From)
	o.occupied &^= board.BitMask(m.From)

	gain := []int{NominalValue(m.Capture)}
	turn := side

	for {
		attackers := attackersTo(&o, to)
		turn = turn.Opponent()

		sq, p, ok := leastValuableAttacker(&o, attackers, turn)
		if !ok || NominalValue(p) > NominalValue(aPiece) {
			break // no attacker left, or the cheapest one is worth more than its target
		}

		gain = append(gain, NominalValue(aPiece)-gain[len(gain)-1])
		if maxInt(-gain[len(gain)-2], gain[len(gain)-1]) < 0 {
			break
		}

		o.pieces[turn][p] &^= board.BitMask(sq)
		o.occupied &^= board.BitMask(sq)
		aPiece = p
	}

	for d := len(gain) - 1; d > 0; d-- {
		gain[d-1] = -maxInt(-gain[d-1], gain[d])
	}
	return gain[0]
}
