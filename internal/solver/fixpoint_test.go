package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

func hints(in ...[]int) []domain.Hints {
	out := make([]domain.Hints, len(in))
	for i, h := range in {
		out[i] = domain.Hints(h)
	}
	return out
}

// A 3×3 puzzle with a unique solution:
//
//	X . X
//	X X X
//	. . X
var (
	sampleRows = hints([]int{1, 1}, []int{3}, []int{1})
	sampleCols = hints([]int{2}, []int{1}, []int{3})
	sampleGrid = [][]bool{
		{true, false, true},
		{true, true, true},
		{false, false, true},
	}
)

func requireGrid(t *testing.T, b *domain.Board, want [][]bool) {
	t.Helper()
	got := b.FilledMask()
	if len(got) != len(want) {
		t.Fatalf("height mismatch: got %d want %d", len(got), len(want))
	}
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Fatalf("cell (%d,%d): got %v want %v (grid %v)", r, c, got[r][c], want[r][c], got)
			}
		}
	}
}

func TestSolveSample(t *testing.T) {
	f := New(Config{})
	b, st, err := f.Solve(context.Background(), sampleRows, sampleCols)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	requireGrid(t, b, sampleGrid)
	if st.Iterations == 0 {
		t.Fatal("stats must count iterations")
	}
}

func TestSolveSampleParallel(t *testing.T) {
	f := NewParallel(Config{Workers: 2}, nil)
	defer f.Close()
	b, _, err := f.Solve(context.Background(), sampleRows, sampleCols)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	requireGrid(t, b, sampleGrid)
}

func TestSolveDeterministic(t *testing.T) {
	first, _, err := New(Config{}).Solve(context.Background(), sampleRows, sampleCols)
	if err != nil {
		t.Fatalf("first solve failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		f := NewParallel(Config{Workers: 3}, nil)
		b, _, err := f.Solve(context.Background(), sampleRows, sampleCols)
		f.Close()
		if err != nil {
			t.Fatalf("solve %d failed: %v", i, err)
		}
		requireGrid(t, b, first.FilledMask())
	}
}

func TestSolveHintRoundTrip(t *testing.T) {
	b, _, err := New(Config{}).Solve(context.Background(), sampleRows, sampleCols)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for r := 0; r < b.Height; r++ {
		got := domain.LineHints(b.Row(r))
		if len(got) != len(sampleRows[r]) {
			t.Fatalf("row %d hints: got %v want %v", r, got, sampleRows[r])
		}
		for i := range got {
			if got[i] != sampleRows[r][i] {
				t.Fatalf("row %d hints: got %v want %v", r, got, sampleRows[r])
			}
		}
	}
	for c := 0; c < b.Width; c++ {
		got := domain.LineHints(b.Col(c))
		if len(got) != len(sampleCols[c]) {
			t.Fatalf("col %d hints: got %v want %v", c, got, sampleCols[c])
		}
		for i := range got {
			if got[i] != sampleCols[c][i] {
				t.Fatalf("col %d hints: got %v want %v", c, got, sampleCols[c])
			}
		}
	}
}

func TestSolveUnsolvable(t *testing.T) {
	// 1×3 over-determination: the row demands three filled cells but the
	// first column must stay blank.
	rows := hints([]int{3})
	cols := hints([]int{}, []int{1}, []int{1})
	_, _, err := New(Config{}).Solve(context.Background(), rows, cols)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
}

func TestSolveStalledIsUnsolvable(t *testing.T) {
	// Two symmetric placements, nothing forced: propagation stalls with
	// Unknowns remaining and the engine refuses to guess.
	rows := hints([]int{1}, []int{1})
	cols := hints([]int{1}, []int{1})
	_, _, err := New(Config{}).Solve(context.Background(), rows, cols)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
}

func TestSolveInvalidInput(t *testing.T) {
	_, _, err := New(Config{}).Solve(context.Background(), nil, hints([]int{1}))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestSolveAbortedBeforeFirstIteration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := New(Config{}).Solve(ctx, sampleRows, sampleCols)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("want ErrAborted even for a trivially solvable puzzle, got %v", err)
	}
}

func TestSolveTimedOut(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, _, err := New(Config{}).Solve(ctx, sampleRows, sampleCols)
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("want ErrTimedOut, got %v", err)
	}
}

func TestSolveIterationCap(t *testing.T) {
	// One iteration is not enough: the sample needs a second pass to
	// confirm the fixpoint.
	_, _, err := New(Config{MaxIterations: 1}).Solve(context.Background(), sampleRows, sampleCols)
	if !errors.Is(err, ErrMaxIterations) {
		t.Fatalf("want ErrMaxIterations, got %v", err)
	}
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want domain.Status
	}{
		{nil, domain.Converged},
		{ErrUnsolvable, domain.Unsolvable},
		{ErrInfeasible, domain.Unsolvable},
		{ErrMaxIterations, domain.IterationCap},
		{ErrAborted, domain.Aborted},
		{ErrTimedOut, domain.Aborted},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.err); got != tc.want {
			t.Fatalf("StatusOf(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
