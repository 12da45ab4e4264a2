package hint

import (
	"context"
	"fmt"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/ports"
)

// ForcedCell implements a minimal Hinter that suggests the first cell the
// current position forces, rows before columns.
type ForcedCell struct {
	Line ports.LineSolver
}

func NewForcedCell(ls ports.LineSolver) *ForcedCell { return &ForcedCell{Line: ls} }

// Hint refines each line of the board in turn and returns the first newly
// determined cell. The board itself is never modified.
func (h *ForcedCell) Hint(ctx context.Context, p *domain.Puzzle, b *domain.Board) (domain.Hint, bool, error) {
	for r := 0; r < b.Height; r++ {
		if err := ctx.Err(); err != nil {
			return domain.Hint{}, false, err
		}
		before := b.Row(r)
		after, err := h.Line.SolveLine(p.Rows[r], before)
		if err != nil {
			continue // infeasible line: nothing playable to suggest here
		}
		if c, ok := firstForced(before, after); ok {
			return makeHint(r, c, after[c]), true, nil
		}
	}
	for c := 0; c < b.Width; c++ {
		if err := ctx.Err(); err != nil {
			return domain.Hint{}, false, err
		}
		before := b.Col(c)
		after, err := h.Line.SolveLine(p.Cols[c], before)
		if err != nil {
			continue
		}
		if r, ok := firstForced(before, after); ok {
			return makeHint(r, c, after[r]), true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func firstForced(before, after []domain.Cell) (int, bool) {
	for i := range before {
		if before[i] == domain.Unknown && after[i] != domain.Unknown {
			return i, true
		}
	}
	return 0, false
}

func makeHint(r, c int, v domain.Cell) domain.Hint {
	verb := "blank"
	if v == domain.Filled {
		verb = "filled"
	}
	return domain.Hint{
		Message: fmt.Sprintf("Forced: this cell must be %s", verb),
		Cell:    domain.CellCoord{Row: r, Col: c},
		Value:   v,
	}
}
