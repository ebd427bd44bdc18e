package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kestrelchess/kestrel/pkg/engine"
	"github.com/kestrelchess/kestrel/pkg/engine/console"
	"github.com/kestrelchess/kestrel/pkg/engine/uci"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

var (
	noise   = flag.Int("noise", 10, "Evaluation noise in millipawns (zero if deterministic)")
	hash    = flag.Uint("hash", 32, "Transposition table size in MB (zero disables it)")
	threads = flag.Uint("threads", 1, "Root-split worker pool size")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: kestrel [options]

KESTREL is a simple UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	threadPool := atomic.NewInt32(int32(*threads))
	s := search.Root{
		NumThreads: threadPool,
		Inner: search.AlphaBeta{
			StaticEval: search.Heuristic{Eval: eval.PieceSquare{}},
			Eval: search.Quiescence{
				Eval: search.Heuristic{Eval: eval.PieceSquare{}},
			},
		},
	}
	e := engine.New(ctx, "kestrel", "kestrelchess", s,
		engine.WithOptions(engine.Options{Hash: *hash, Noise: uint(*noise), Threads: *threads}),
		engine.WithThreadPool(threadPool),
	)

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
