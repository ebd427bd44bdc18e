// Package search contains move search functionality: alpha-beta pruning over a
// pseudo-legal move generator, quiescence search at the leaves, a lockless
// transposition table, and move ordering/exploration policies.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
)

// ErrHalted is returned by Search when the context is cancelled mid-search.
var ErrHalted = errors.New("search halted")

// Context carries the per-call search window and shared resources threaded down
// through recursive search calls.
type Context struct {
	// Alpha and Beta bound the search window. InvalidScore selects the default,
	// unbounded window.
	Alpha, Beta eval.Score
	// TT is the transposition table to consult and populate. Required.
	TT TranspositionTable
	// Noise perturbs leaf evaluations, for variety across repeated games.
	Noise eval.Random
	// Ponder, if non-empty, is a move sequence to follow from the root, regardless of
	// move ordering: AlphaBeta searches only the sequence's next move at each ply
	// along it, while Root searches every root move and passes the rest of the
	// sequence to the child of the matching one.
	Ponder []board.Move
}

// Search finds the best move and its score for the position to the given depth.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}

// QuietSearch resolves a leaf position, typically through a quiescence search that only
// explores captures and promotions (every reply when in check) until the position is
// quiet.
type QuietSearch interface {
	QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score)
}

// Evaluator is a leaf evaluator in centipawns, from the perspective of the side to move.
// Unlike eval.Evaluator, it has access to the search Context, so it can apply Noise.
type Evaluator interface {
	Evaluate(ctx context.Context, sctx *Context, b *board.Board) int
}

// Heuristic adapts an eval.Evaluator into an Evaluator, applying the Context's noise on
// top of the static evaluation.
type Heuristic struct {
	Eval eval.Evaluator
}

func (h Heuristic) Evaluate(ctx context.Context, sctx *Context, b *board.Board) int {
	score := h.Eval.Evaluate(ctx, b)
	return int(score.Pawns*100) + sctx.Noise.Sample()
}

// ZeroPly implements QuietSearch by returning the static evaluation directly, without
// any further search. Suitable for engines that forgo quiescence search entirely.
type ZeroPly struct {
	Eval eval.Evaluator
}

func (z ZeroPly) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	return 1, z.Eval.Evaluate(ctx, b)
}

// PV represents the principal variation found for some search depth.
type PV struct {
	Depth int           // depth of search
	Moves []board.Move  // principal variation
	Score eval.Score    // evaluation at depth
	Nodes uint64        // interior/leaf nodes searched
	Time  time.Duration // time taken by search
	Hash  float64       // transposition table fill ratio, [0;1]
}

func (p PV) String() string {
	pv := board.PrintMoves(p.Moves)
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v", p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), pv)
}
