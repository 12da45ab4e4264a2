package validator

import (
	"context"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

// FastValidator runs cheap structural checks on a hint set before any
// solving is attempted.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the hint set can describe any grid at all:
// positive block lengths, every line's blocks fitting its length, and row
// and column totals demanding the same number of filled cells. Conflicting
// lines are returned for the UI.
func (v *FastValidator) Validate(ctx context.Context, rows, cols []domain.Hints) (bool, []domain.LineRef, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return false, nil, nil
	}
	conf := make([]domain.LineRef, 0, 4)
	height, width := len(rows), len(cols)
	// rows
	for i, h := range rows {
		if badBlocks(h) || h.MinSpace() > width {
			conf = append(conf, domain.LineRef{Kind: domain.RowLine, Index: i})
		}
	}
	// cols
	for i, h := range cols {
		if badBlocks(h) || h.MinSpace() > height {
			conf = append(conf, domain.LineRef{Kind: domain.ColLine, Index: i})
		}
	}
	if len(conf) > 0 {
		return false, conf, nil
	}
	// grand totals must agree
	rowSum, colSum := 0, 0
	for _, h := range rows {
		rowSum += h.Sum()
	}
	for _, h := range cols {
		colSum += h.Sum()
	}
	if rowSum != colSum {
		return false, nil, nil
	}
	return true, nil, nil
}

func badBlocks(h domain.Hints) bool {
	for _, b := range h {
		if b <= 0 {
			return true
		}
	}
	return false
}
