package search

import (
	"context"
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// futilityMargin approximates FUTILITY_MARGIN, a minor piece, in pawns: at one ply from
// the horizon a quiet position this far below alpha is assumed un-recoverable.
const futilityMargin = 3.0

// nullMoveReduction is R, the depth reduction applied to the null-move search.
const nullMoveReduction = 2

// AlphaBeta implements alpha-beta pruning. Pseudo-code:
//
// function alphabeta(node, depth, α, β, maximizingPlayer) is
//
//	if depth = 0 or node is a terminal node then
//	    return the heuristic value of node
//	if maximizingPlayer then
//	    value := −∞
//	    for each child of node do
//	        value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return value
//	else
//	    value := +∞
//	    for each child of node do
//	        value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
//	        β := min(β, value)
//	        if β ≤ α then
//	            break (* α cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Alpha–beta_pruning.
type AlphaBeta struct {
	Explore Exploration
	Eval    QuietSearch

	// StaticEval is a cheap position evaluator used for futility pruning. Futility
	// pruning is skipped at nodes where it is unset.
	StaticEval Evaluator
}

func (p AlphaBeta) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runAlphaBeta{
		explore:    fullIfNotSet(p.Explore),
		eval:       p.Eval,
		staticEval: p.StaticEval,
		tt:         sctx.TT,
		noise:      sctx.Noise,
		ponder:     sctx.Ponder,
		b:          b,
	}
	low, high := eval.NegInfScore, eval.InfScore
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	score, moves := run.search(ctx, depth, low, high, true)
	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore, nil, ErrHalted
	}
	return run.nodes, score, moves, nil
}

type runAlphaBeta struct {
	explore    Exploration
	eval       QuietSearch
	staticEval Evaluator
	tt         TranspositionTable
	noise      eval.Random
	b          *board.Board
	nodes      uint64

	ponder []board.Move
}

// search returns the positive score for the color to move. canPrune is false at nodes
// reached by a capture, where static-evaluation-based forward pruning is unsound.
func (m *runAlphaBeta) search(ctx context.Context, depth int, alpha, beta eval.Score, canPrune bool) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return eval.InvalidScore, nil
	}
	if m.b.Result().Outcome == board.Draw {
		return eval.ZeroScore, nil
	}

	if depth == 0 {
		sctx := &Context{Alpha: alpha, Beta: beta, TT: m.tt, Noise: m.noise}
		nodes, score := m.eval.QuietSearch(ctx, sctx, m.b)
		m.nodes += nodes

		m.tt.Write(m.b.Hash(), ExactBound, m.b.Ply(), 0, score, board.Move{})
		return score, nil
	}

	turn := m.b.Turn()
	inCheck := m.b.Position().IsChecked(turn)

	if depth == 1 && canPrune && !inCheck && m.staticEval != nil && alpha.IsHeuristic() {
		sctx := &Context{Alpha: alpha, Beta: beta, TT: m.tt, Noise: m.noise}
		centipawns := m.staticEval.Evaluate(ctx, sctx, m.b)
		if float64(centipawns)/100+futilityMargin < alpha.Pawns {
			return alpha, nil
		}
	}

	var best board.Move
	if ttBound, d, score, mv, ok := m.tt.Read(m.b.Hash()); ok {
		best = mv
		if d >= depth {
			switch ttBound {
			case ExactBound:
				return score, nil // cutoff
			case LowerBound:
				alpha = eval.Max(alpha, score)
			case UpperBound:
				beta = eval.Min(beta, score)
			}
			if !alpha.Less(beta) {
				return alpha, nil // cutoff
			}
		} // else: not deep enough
	}

	if canPrune && !inCheck && depth >= nullMoveReduction+1 && hasNonPawnMaterial(m.b.Position(), turn) {
		if m.b.PushNullMove() {
			nullAlpha := beta.Negate()
			nullBeta := nextAbove(nullAlpha)
			score, _ := m.search(ctx, depth-1-nullMoveReduction, nullAlpha, nullBeta, false)
			score = eval.IncrementMateDistance(score).Negate()
			m.b.PopNullMove()

			if !score.Less(beta) {
				return beta, nil // null-move cutoff
			}
		}
	}

	m.nodes++

	origAlpha := alpha
	hasLegalMove := false
	bound := UpperBound // no move has raised alpha yet
	var pv []board.Move

	priority, explore := m.explore(ctx, m.b)

	if len(m.ponder) > 0 {
		explore = m.ponder[0].Equals // overwrite: use ponder move even if not intended to be explored
		m.ponder = m.ponder[1:]
	}

	moves := board.NewMoveList(m.b.Position().PseudoLegalMoves(turn), board.First(best, priority))
	for {
		move, ok := moves.Next()
		if !ok {
			break
		}
		if !m.b.PushMove(move) {
			continue // skip: not legal
		}

		if explore(move) {
			score, rem := m.search(ctx, depth-1, beta.Negate(), alpha.Negate(), !move.IsCapture())
			score = eval.IncrementMateDistance(score).Negate()
			if alpha.Less(score) {
				alpha = score
				pv = append([]board.Move{move}, rem...)
			}
		}

		m.b.PopMove()
		hasLegalMove = true

		if alpha == beta || beta.Less(alpha) {
			bound = LowerBound
			break // cutoff
		}
	}

	if !hasLegalMove {
		if result := m.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return eval.MateInXScore(-1), nil
		}
		return eval.ZeroScore, nil
	}

	if bound != LowerBound && origAlpha.Less(alpha) {
		bound = ExactBound
	}
	m.tt.Write(m.b.Hash(), bound, m.b.Ply(), depth, alpha, firstOrNone(pv))
	return alpha, pv
}

// hasNonPawnMaterial reports whether c has a knight, bishop, rook, or queen on the board,
// the null-move pruning zugzwang guard: without one, passing the move can look
// artificially good in pawn-only endgames.
func hasNonPawnMaterial(pos *board.Position, c board.Color) bool {
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		if color, p, ok := pos.Square(sq); ok && color == c {
			switch p {
			case board.Knight, board.Bishop, board.Rook, board.Queen:
				return true
			}
		}
	}
	return false
}

// nextAbove returns the smallest heuristic score greater than s, used to build the
// minimal-width null-move search window [-beta, -beta+1].
func nextAbove(s eval.Score) eval.Score {
	return eval.Score{Pawns: s.Pawns + 0.01, Mate: s.Mate}
}

func firstOrNone(pv []board.Move) board.Move {
	if len(pv) == 0 {
		return board.Move{}
	}
	return pv[0]
}

func fullIfNotSet(p Exploration) Exploration {
	if p == nil {
		return FullExploration
	}
	return p
}
