package solver

import (
	"errors"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

var (
	// ErrInvalidInput signals an empty or malformed hint set.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInfeasible signals that a single line cannot satisfy its hints.
	ErrInfeasible = errors.New("line infeasible")
	// ErrUnsolvable signals that the whole puzzle admits no solution, or
	// that propagation stalled short of full determinacy.
	ErrUnsolvable = errors.New("puzzle unsolvable")
	// ErrMaxIterations signals the iteration budget ran out before a fixpoint.
	ErrMaxIterations = errors.New("max iterations exceeded")
	// ErrAborted signals caller cancellation observed at an iteration boundary.
	ErrAborted = errors.New("solve aborted")
	// ErrTimedOut signals the overall solve deadline expired.
	ErrTimedOut = errors.New("solve timed out")
)

// ForcedCellSolver refines one line at a time by probing each Unknown cell
// both ways and keeping only the outcomes every feasible placement agrees on.
type ForcedCellSolver struct{}

func NewForcedCellSolver() *ForcedCellSolver { return &ForcedCellSolver{} }

func (s *ForcedCellSolver) SolveLine(hints domain.Hints, cells []domain.Cell) ([]domain.Cell, error) {
	out, _, err := solveLine(hints, cells)
	return out, err
}

// solveLine is the real worker; it also reports how many feasibility probes
// the search engine ran, for stats and instrumentation.
func solveLine(hints domain.Hints, cells []domain.Cell) ([]domain.Cell, int, error) {
	// Quick rejection, no search attempted.
	if hints.MinSpace() > len(cells) {
		return nil, 0, ErrInfeasible
	}
	filled := 0
	for _, v := range cells {
		if v == domain.Filled {
			filled++
		}
	}
	if filled > hints.Sum() {
		return nil, 0, ErrInfeasible
	}

	line := make([]domain.Cell, len(cells))
	copy(line, cells)
	memo := newMemoCache()

	if !canPlace(hints, line, 0, 0, memo) {
		return nil, memo.probes, ErrInfeasible
	}

	for i, v := range line {
		if v != domain.Unknown {
			continue
		}
		line[i] = domain.Filled
		asFilled := canPlace(hints, line, 0, 0, memo)
		line[i] = domain.Empty
		asEmpty := canPlace(hints, line, 0, 0, memo)
		switch {
		case asFilled && asEmpty:
			line[i] = domain.Unknown
		case asFilled:
			line[i] = domain.Filled
		case asEmpty:
			line[i] = domain.Empty
		default:
			// Both probes failing contradicts the feasibility check above.
			return nil, memo.probes, ErrInfeasible
		}
	}
	return line, memo.probes, nil
}
