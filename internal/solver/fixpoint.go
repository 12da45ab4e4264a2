package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/pool"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/ports"
)

// DefaultMaxIterations bounds a fixpoint run when the caller sets no budget.
const DefaultMaxIterations = 100

// Config tunes a Fixpoint solver.
type Config struct {
	// MaxIterations caps full row+column passes; <=0 means DefaultMaxIterations.
	MaxIterations int
	// Workers bounds the worker pool of a parallel solver; <=0 lets the
	// host decide from available parallelism.
	Workers int
}

// Fixpoint alternates row-pass and column-pass propagation until the grid
// stabilizes or is proven unsolvable. It is the sole mutator of the board;
// line solves only ever see snapshots.
type Fixpoint struct {
	cfg  Config
	pool *pool.Pool // nil means line solves run inline
}

// New builds a synchronous solver that runs line solves inline.
func New(cfg Config) *Fixpoint {
	return &Fixpoint{cfg: cfg}
}

// NewParallel builds a solver whose batches run on a worker pool spawned
// from host. Close releases the pool's workers.
func NewParallel(cfg Config, host pool.Host) *Fixpoint {
	if host == nil {
		host = pool.NewGoroutineHost(runTask)
	}
	return &Fixpoint{cfg: cfg, pool: pool.New(host, cfg.Workers)}
}

// runTask adapts the line solver to the pool's worker contract.
func runTask(t pool.Task) pool.Result {
	cells, probes, err := solveLine(t.Hints, t.Cells)
	return pool.Result{TaskID: t.ID, Cells: cells, Probes: probes, Err: err}
}

// Close terminates the underlying pool, if any. Safe to call twice.
func (f *Fixpoint) Close() {
	if f.pool != nil {
		f.pool.Terminate()
	}
}

// Pool exposes the underlying pool for instrumentation; nil for the
// synchronous variant.
func (f *Fixpoint) Pool() *pool.Pool { return f.pool }

// Solve propagates rows and cols to a fixpoint over a fresh board.
// Cancellation is observed at iteration boundaries only.
func (f *Fixpoint) Solve(ctx context.Context, rows, cols []domain.Hints) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}
	if len(rows) == 0 || len(cols) == 0 {
		return nil, st, fmt.Errorf("%w: empty hint set", ErrInvalidInput)
	}

	maxIter := f.cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	board := domain.NewBoard(len(rows), len(cols))
	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return nil, st, abortErr(err)
		}
		st.Iterations++

		changed, err := f.pass(ctx, domain.RowLine, rows, board, &st)
		if err != nil {
			st.Duration = time.Since(start)
			return nil, st, err
		}
		colChanged, err := f.pass(ctx, domain.ColLine, cols, board, &st)
		if err != nil {
			st.Duration = time.Since(start)
			return nil, st, err
		}
		changed += colChanged

		if changed == 0 {
			st.Duration = time.Since(start)
			if board.Unknowns() == 0 {
				return board, st, nil
			}
			// Propagation stalled below full determinacy; this engine does
			// not guess, so ambiguity reads as failure.
			return nil, st, fmt.Errorf("%w: propagation stalled with %d cells undetermined", ErrUnsolvable, board.Unknowns())
		}
	}
	st.Duration = time.Since(start)
	return nil, st, fmt.Errorf("%w: no fixpoint after %d iterations", ErrMaxIterations, maxIter)
}

// pass solves every line of one orientation against the current board and
// merges the results. Merging is keyed by line index, so the board state is
// deterministic regardless of completion order.
func (f *Fixpoint) pass(ctx context.Context, kind domain.LineKind, hints []domain.Hints, board *domain.Board, st *ports.Stats) (int, error) {
	n := len(hints)
	results := make([][]domain.Cell, n)

	if f.pool == nil {
		for i := 0; i < n; i++ {
			cells, probes, err := solveLine(hints[i], snapshot(board, kind, i))
			st.Probes += probes
			if err != nil {
				return 0, lineErr(kind, i, err)
			}
			results[i] = cells
		}
	} else {
		futures := make([]*pool.Future, n)
		for i := 0; i < n; i++ {
			futures[i] = f.pool.Submit(pool.Task{
				ID:    uuid.NewString(),
				Hints: hints[i],
				Cells: snapshot(board, kind, i),
			})
		}
		// Await the whole batch before merging anything; the first failing
		// line (lowest index) decides the error for determinism.
		var firstErr error
		for i, fut := range futures {
			res := fut.Wait()
			st.Probes += res.Probes
			if res.Err != nil {
				if firstErr == nil {
					firstErr = batchErr(ctx, kind, i, res.Err)
				}
				continue
			}
			results[i] = res.Cells
		}
		if firstErr != nil {
			return 0, firstErr
		}
	}

	changed := 0
	for i, cells := range results {
		if kind == domain.RowLine {
			changed += board.SetRow(i, cells)
		} else {
			changed += board.SetCol(i, cells)
		}
	}
	return changed, nil
}

func snapshot(board *domain.Board, kind domain.LineKind, i int) []domain.Cell {
	if kind == domain.RowLine {
		return board.Row(i)
	}
	return board.Col(i)
}

// lineErr folds a single line's failure into the run-level verdict: an
// infeasible line makes the whole puzzle unsolvable.
func lineErr(kind domain.LineKind, i int, err error) error {
	if errors.Is(err, ErrInfeasible) {
		return fmt.Errorf("%w: %s %d: %v", ErrUnsolvable, kind, i, err)
	}
	return fmt.Errorf("%s %d: %w", kind, i, err)
}

// batchErr classifies a pooled task failure. Termination during an active
// solve surfaces as the caller's cancellation when one is pending, or as
// the pool's own shutdown otherwise; worker runtime errors count as
// infeasibility, same as a local detection.
func batchErr(ctx context.Context, kind domain.LineKind, i int, err error) error {
	if errors.Is(err, pool.ErrTerminated) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return abortErr(ctxErr)
		}
		return fmt.Errorf("%s %d: %w", kind, i, err)
	}
	if errors.Is(err, ErrInfeasible) {
		return lineErr(kind, i, err)
	}
	return fmt.Errorf("%w: %s %d: worker: %v", ErrUnsolvable, kind, i, err)
}

// abortErr distinguishes caller cancellation from deadline expiry.
func abortErr(ctxErr error) error {
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimedOut, ctxErr)
	}
	return fmt.Errorf("%w: %v", ErrAborted, ctxErr)
}

// StatusOf maps a Solve error to the orchestrator's terminal state.
func StatusOf(err error) domain.Status {
	switch {
	case err == nil:
		return domain.Converged
	case errors.Is(err, ErrMaxIterations):
		return domain.IterationCap
	case errors.Is(err, ErrAborted), errors.Is(err, ErrTimedOut):
		return domain.Aborted
	default:
		return domain.Unsolvable
	}
}
