// Package nonogram solves picture-logic puzzles by deterministic
// constraint propagation: each row and column is refined to the cells every
// feasible block placement agrees on, and the passes repeat until the grid
// stabilizes or a contradiction surfaces. Ambiguous puzzles are reported as
// unsolvable rather than guessed.
package nonogram

import (
	"context"
	"time"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/pool"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/ports"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/solver"
)

// Failure kinds returned by the entry points; test with errors.Is.
var (
	ErrInvalidInput   = solver.ErrInvalidInput
	ErrUnsolvable     = solver.ErrUnsolvable
	ErrMaxIterations  = solver.ErrMaxIterations
	ErrAborted        = solver.ErrAborted
	ErrTimedOut       = solver.ErrTimedOut
	ErrPoolTerminated = pool.ErrTerminated
)

// Result is a fully determined grid: Grid[r][c] is true for filled cells.
type Result struct {
	Grid       [][]bool
	Height     int
	Width      int
	Iterations int
	Duration   time.Duration
}

// Options tunes SolveAsync.
type Options struct {
	// MaxIterations caps full propagation passes; <=0 uses the default.
	MaxIterations int
	// Timeout bounds the whole solve; 0 means no deadline.
	Timeout time.Duration
	// Workers bounds the pool; <=0 uses the host's available parallelism.
	Workers int
}

// Solve runs the synchronous, single-threaded solver.
func Solve(rowHints, colHints [][]int) (*Result, error) {
	return SolveContext(context.Background(), rowHints, colHints)
}

// SolveContext is Solve with caller cancellation, observed at iteration
// boundaries. A canceled context yields ErrAborted, an expired deadline
// ErrTimedOut.
func SolveContext(ctx context.Context, rowHints, colHints [][]int) (*Result, error) {
	f := solver.New(solver.Config{})
	board, st, err := f.Solve(ctx, toHints(rowHints), toHints(colHints))
	if err != nil {
		return nil, err
	}
	return toResult(board, st), nil
}

// AsyncResult carries the eventual outcome of SolveAsync.
type AsyncResult struct {
	Result *Result
	Err    error
}

// SolveAsync solves on a bounded worker pool, one task per line per pass,
// and delivers the outcome on the returned channel. Timeout expiry or
// context cancellation aborts the run and terminates the pool so in-flight
// workers are reclaimed.
func SolveAsync(ctx context.Context, rowHints, colHints [][]int, opts Options) <-chan AsyncResult {
	out := make(chan AsyncResult, 1)
	go func() {
		runCtx := ctx
		cancel := context.CancelFunc(func() {})
		if opts.Timeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		}
		defer cancel()

		f := solver.NewParallel(solver.Config{
			MaxIterations: opts.MaxIterations,
			Workers:       opts.Workers,
		}, nil)
		defer f.Close()
		stop := context.AfterFunc(runCtx, f.Close)
		defer stop()

		board, st, err := f.Solve(runCtx, toHints(rowHints), toHints(colHints))
		if err != nil {
			out <- AsyncResult{Err: err}
			return
		}
		out <- AsyncResult{Result: toResult(board, st)}
	}()
	return out
}

func toHints(in [][]int) []domain.Hints {
	out := make([]domain.Hints, len(in))
	for i, h := range in {
		out[i] = domain.Hints(h)
	}
	return out
}

func toResult(b *domain.Board, st ports.Stats) *Result {
	return &Result{
		Grid:       b.FilledMask(),
		Height:     b.Height,
		Width:      b.Width,
		Iterations: st.Iterations,
		Duration:   st.Duration,
	}
}
