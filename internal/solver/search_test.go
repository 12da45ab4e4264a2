package solver

import (
	"testing"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

const (
	u = domain.Unknown
	e = domain.Empty
	x = domain.Filled
)

func place(hints domain.Hints, cells []domain.Cell) bool {
	return canPlace(hints, cells, 0, 0, newMemoCache())
}

func TestCanPlaceNoHints(t *testing.T) {
	if !place(domain.Hints{}, []domain.Cell{u, e, u}) {
		t.Fatal("empty hints must fit a line with no filled cells")
	}
	if place(domain.Hints{}, []domain.Cell{u, x, u}) {
		t.Fatal("empty hints cannot cover a filled cell")
	}
}

func TestCanPlaceSingleBlock(t *testing.T) {
	cases := []struct {
		name  string
		hints domain.Hints
		cells []domain.Cell
		want  bool
	}{
		{"exact fit", domain.Hints{3}, []domain.Cell{u, u, u}, true},
		{"too long", domain.Hints{4}, []domain.Cell{u, u, u}, false},
		{"blocked by empty", domain.Hints{3}, []domain.Cell{u, e, u}, false},
		{"covers filled", domain.Hints{2}, []domain.Cell{u, x, u}, true},
		{"stranded filled", domain.Hints{1}, []domain.Cell{x, u, x}, false},
		{"empty then block", domain.Hints{2}, []domain.Cell{e, u, u}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := place(tc.hints, tc.cells); got != tc.want {
				t.Fatalf("canPlace(%v, %v) = %v, want %v", tc.hints, tc.cells, got, tc.want)
			}
		})
	}
}

func TestCanPlaceSeparatorRequired(t *testing.T) {
	// Two blocks of one need a blank between them: impossible in two cells.
	if place(domain.Hints{1, 1}, []domain.Cell{u, u}) {
		t.Fatal("adjacent blocks without a gap must be rejected")
	}
	if !place(domain.Hints{1, 1}, []domain.Cell{u, u, u}) {
		t.Fatal("1,1 fits in three cells")
	}
	// A block may not butt against a filled cell it cannot also cover.
	if place(domain.Hints{2}, []domain.Cell{x, u, x}) {
		t.Fatal("block ending against a filled cell it does not cover must be rejected")
	}
}

func TestCanPlaceMemoReuse(t *testing.T) {
	memo := newMemoCache()
	cells := []domain.Cell{u, u, u, u, u, u, u, u}
	hints := domain.Hints{2, 1, 2}
	if !canPlace(hints, cells, 0, 0, memo) {
		t.Fatal("expected feasible")
	}
	first := memo.probes
	if !canPlace(hints, cells, 0, 0, memo) {
		t.Fatal("expected feasible on repeat")
	}
	if memo.probes != first+1 {
		t.Fatalf("repeat probe must hit the cache: probes %d -> %d", first, memo.probes)
	}
}
