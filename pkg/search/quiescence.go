package search

import (
	"context"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// deltaMargin bounds quiescence's stand-pat delta pruning: a capture that cannot possibly
// recover this much material even with the best case gain is not worth searching. Set to
// a queen, the largest single gain a capture can realize.
var deltaMargin = float64(eval.NominalValue(board.Queen))

// Quiescence extends a leaf node with captures and promotions until the position is
// "quiet", avoiding the horizon effect of stopping mid-exchange. Explore defaults to
// NonQuiescent when unset.
type Quiescence struct {
	Explore Exploration
	Eval    Evaluator
}

func (q Quiescence) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	explore := q.Explore
	if explore == nil {
		explore = NonQuiescent
	}
	run := &runQuiescence{explore: explore, eval: q.Eval, b: b}

	low, high := eval.NegInfScore, eval.InfScore
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	score := run.search(ctx, sctx, low, high)
	return run.nodes, score
}

type runQuiescence struct {
	explore Exploration
	eval    Evaluator
	b       *board.Board
	nodes   uint64
}

// search returns the positive score for the color to move.
func (r *runQuiescence) search(ctx context.Context, sctx *Context, alpha, beta eval.Score) eval.Score {
	if contextx.IsCancelled(ctx) {
		return eval.ZeroScore
	}
	if r.b.Result().Outcome == board.Draw {
		return eval.ZeroScore
	}
	r.nodes++

	turn := r.b.Turn()
	pos := r.b.Position()
	inCheck := pos.IsChecked(turn)

	standPat := eval.HeuristicScore(r.eval.Evaluate(ctx, sctx, r.b))
	if !inCheck {
		if !standPat.Less(beta) {
			return beta
		}
		if standPat.IsHeuristic() && alpha.IsHeuristic() && standPat.Pawns < alpha.Pawns-deltaMargin {
			return alpha
		}
		alpha = eval.Max(alpha, standPat)
	}

	priority, pick := r.explore(ctx, r.b)

	var candidates []board.Move
	if inCheck {
		// Captures alone may not resolve a check: every reply must be considered here,
		// as in the main search.
		candidates = pos.PseudoLegalMoves(turn)
	} else {
		for _, m := range pos.PseudoLegalMoves(turn) {
			if pick(m) {
				candidates = append(candidates, m)
			}
		}
	}
	moves := board.NewMoveList(candidates, priority)

	hasLegalMoves := false
	for {
		m, ok := moves.Next()
		if !ok {
			break
		}
		if !inCheck && m.IsCapture() && eval.See(pos, turn, m) < 0 {
			// Moves are SEE-sorted descending: once one is a bad capture, every
			// remaining move is at least as bad.
			break
		}
		if !r.b.PushMove(m) {
			continue // skip: not legal
		}
		hasLegalMoves = true

		score := r.search(ctx, sctx, beta.Negate(), alpha.Negate())
		score = eval.IncrementMateDistance(score).Negate()

		r.b.PopMove()
		alpha = eval.Max(alpha, score)

		if alpha == beta || beta.Less(alpha) {
			break // cutoff
		}
	}

	if !hasLegalMoves && inCheck {
		if result := r.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return eval.MateInXScore(-1)
		}
		return eval.ZeroScore
	}
	return alpha
}
