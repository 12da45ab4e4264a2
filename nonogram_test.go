package nonogram

import (
	"context"
	"errors"
	"testing"
	"time"
)

var (
	sampleRows = [][]int{{1, 1}, {3}, {1}}
	sampleCols = [][]int{{2}, {1}, {3}}
	sampleGrid = [][]bool{
		{true, false, true},
		{true, true, true},
		{false, false, true},
	}
)

func checkGrid(t *testing.T, got, want [][]bool) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("height: got %d want %d", len(got), len(want))
	}
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Fatalf("cell (%d,%d): got %v want %v", r, c, got[r][c], want[r][c])
			}
		}
	}
}

func TestSolve(t *testing.T) {
	res, err := Solve(sampleRows, sampleCols)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Height != 3 || res.Width != 3 {
		t.Fatalf("dims: %dx%d", res.Height, res.Width)
	}
	checkGrid(t, res.Grid, sampleGrid)
}

func TestSolveUnsolvable(t *testing.T) {
	_, err := Solve([][]int{{3}}, [][]int{{}, {1}, {1}})
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
}

func TestSolveInvalidInput(t *testing.T) {
	_, err := Solve(nil, sampleCols)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestSolveContextAborted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SolveContext(ctx, sampleRows, sampleCols)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("want ErrAborted, got %v", err)
	}
}

func TestSolveAsync(t *testing.T) {
	out := SolveAsync(context.Background(), sampleRows, sampleCols, Options{
		MaxIterations: 50,
		Workers:       2,
		Timeout:       5 * time.Second,
	})
	select {
	case res := <-out:
		if res.Err != nil {
			t.Fatalf("SolveAsync failed: %v", res.Err)
		}
		checkGrid(t, res.Result.Grid, sampleGrid)
	case <-time.After(10 * time.Second):
		t.Fatal("SolveAsync did not complete")
	}
}

func TestSolveAsyncAborted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := <-SolveAsync(ctx, sampleRows, sampleCols, Options{Workers: 2})
	if !errors.Is(res.Err, ErrAborted) {
		t.Fatalf("want ErrAborted, got %v", res.Err)
	}
}

func TestSolveRepeatedlyDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		res := <-SolveAsync(context.Background(), sampleRows, sampleCols, Options{Workers: 4})
		if res.Err != nil {
			t.Fatalf("solve %d failed: %v", i, res.Err)
		}
		checkGrid(t, res.Result.Grid, sampleGrid)
	}
}
