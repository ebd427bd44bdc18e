package search

import (
	"context"
	"sync"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"go.uber.org/atomic"
)

// Root implements parallel-at-the-root search: it generates the legal moves for the
// position and dispatches one task per move to a bounded worker pool. Each worker forks
// the board, applies its root move and calls Inner at depth-1 with a full window,
// negating the result. A coordinator collects (move, score) pairs over a channel and
// selects the highest-scoring move once all tasks have returned; the winning move is
// then written into the shared transposition table. Interior nodes stay sequential
// within one worker -- only the root splits.
type Root struct {
	Inner Search
	// NumThreads bounds the worker pool size, read fresh on every Search call so it can
	// be reconfigured live (e.g. by a UCI "Threads" setoption). A nil NumThreads, or a
	// non-positive value, is treated as one.
	NumThreads *atomic.Int32
}

func (r Root) numWorkers() int {
	if r.NumThreads == nil {
		return 1
	}
	if n := int(r.NumThreads.Load()); n > 0 {
		return n
	}
	return 1
}

type rootResult struct {
	move  board.Move
	score eval.Score
	pv    []board.Move
	nodes uint64
}

func (r Root) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	moves := b.Position().LegalMoves(b.Turn())
	if len(moves) == 0 {
		if result := b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return 0, eval.MateInXScore(-1), nil, nil
		}
		return 0, eval.ZeroScore, nil, nil
	}

	sem := make(chan struct{}, r.numWorkers())
	out := make(chan rootResult, len(moves))

	var wg sync.WaitGroup
	for _, m := range moves {
		m := m

		ponder := sctx.Ponder
		if len(ponder) > 0 && ponder[0].Equals(m) {
			ponder = ponder[1:]
		} else {
			ponder = nil
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			child := b.Fork()
			if !child.PushMove(m) {
				out <- rootResult{move: m, score: eval.InvalidScore}
				return
			}

			childCtx := &Context{Alpha: eval.NegInfScore, Beta: eval.InfScore, TT: sctx.TT, Noise: sctx.Noise, Ponder: ponder}
			nodes, score, pv, err := r.Inner.Search(ctx, childCtx, child, depth-1)
			if err != nil {
				out <- rootResult{move: m, score: eval.InvalidScore}
				return
			}

			score = eval.IncrementMateDistance(score).Negate()
			out <- rootResult{move: m, score: score, pv: pv, nodes: nodes}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	var (
		totalNodes uint64
		best       rootResult
		found      bool
	)
	for res := range out {
		totalNodes += res.nodes
		if res.score.IsInvalid() {
			continue
		}
		if !found || best.score.Less(res.score) {
			best = res
			found = true
		}
	}

	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore, nil, ErrHalted
	}
	if !found {
		return totalNodes, eval.InvalidScore, nil, ErrHalted
	}

	pv := append([]board.Move{best.move}, best.pv...)
	if sctx.TT != nil {
		sctx.TT.Write(b.Hash(), ExactBound, b.Ply(), depth, best.score, best.move)
	}
	return totalNodes, best.score, pv, nil
}
