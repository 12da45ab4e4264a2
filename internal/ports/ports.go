package ports

import (
	"context"
	"time"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Iterations int
	Probes     int
	Duration   time.Duration
}

// Solver propagates row/column hints to a fixpoint over the grid.
type Solver interface {
	Solve(ctx context.Context, rows, cols []domain.Hints) (*domain.Board, Stats, error)
}

// LineSolver refines a single row or column. The returned slice has the
// same length as cells with values only ever refined out of Unknown.
type LineSolver interface {
	SolveLine(hints domain.Hints, cells []domain.Cell) ([]domain.Cell, error)
}

// Validator performs fast pre-solve checks on a hint set.
type Validator interface {
	Validate(ctx context.Context, rows, cols []domain.Hints) (ok bool, conflicts []domain.LineRef, err error)
}

// Hinter returns the next forced cell for the current position.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle, b *domain.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzle definitions.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
