package search

import (
	"context"
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
)

// Exploration defines move selection and priority in a given position. Limited exploration is required
// by quiescence search and can be used for forward pruning in full search. Default
// (FullExploration): explore all moves, captures ordered by SEE and the rest by MVVLVA.
type Exploration func(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn)

func FullExploration(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn) {
	return SEEOrdering(ctx, b)
}

// Selection returns a move order and priority for exploring the given moves.
func Selection(list []board.Move) (board.MovePriorityFn, board.MovePredicateFn) {
	rank := map[board.Move]board.MovePriority{}
	for i, m := range list {
		rank[m] = board.MovePriority(len(list) - i)
	}

	priority := func(move board.Move) board.MovePriority {
		return rank[move]
	}
	pick := func(move board.Move) bool {
		_, ok := rank[move]
		return ok
	}
	return priority, pick
}

// MVVLVA implements the MVV-LVA move priority.
func MVVLVA(m board.Move) board.MovePriority {
	if p := board.MovePriority(100 * eval.NominalValueGain(m)); p > 0 {
		return p - board.MovePriority(eval.NominalValue(m.Piece))
	}
	return 0
}

// IsAnyMove selects all moves.
func IsAnyMove(m board.Move) bool {
	return true
}

// NonQuiescent is the default Exploration for quiescence search: captures and
// promotions, the "noisy" moves whose omission would misjudge a position mid-exchange.
// Captures are ordered by static exchange evaluation, descending, and other moves rank
// as an even exchange (SEE zero), so the search loop can stop at the first bad capture.
func NonQuiescent(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn) {
	pos := b.Position()
	turn := b.Turn()

	priority := func(m board.Move) board.MovePriority {
		if m.IsCapture() {
			return board.MovePriority(1000 + eval.See(pos, turn, m))
		}
		return 1000
	}
	pick := func(m board.Move) bool {
		return m.IsCapture() || m.Type == board.Promotion || m.Type == board.CapturePromotion
	}
	return priority, pick
}

// SEEOrdering scores captures by static exchange evaluation, descending, leaving
// non-captures to sort after by their MVVLVA priority. Used for full-width move ordering
// ahead of the hash move.
func SEEOrdering(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn) {
	pos := b.Position()
	turn := b.Turn()

	priority := func(m board.Move) board.MovePriority {
		if m.IsCapture() {
			return board.MovePriority(10000 + eval.See(pos, turn, m))
		}
		return MVVLVA(m)
	}
	return priority, IsAnyMove
}
