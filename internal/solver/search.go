package solver

import (
	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

// memoKey identifies one feasibility sub-search: which hints remain, the
// exact line snapshot being probed, and where the scan starts. Entries are
// only valid within a single SolveLine invocation; the map is created there
// and discarded with it.
type memoKey struct {
	hintIdx int
	start   int
	line    string
}

type memoCache struct {
	entries map[memoKey]bool
	probes  int
}

func newMemoCache() *memoCache {
	return &memoCache{entries: make(map[memoKey]bool)}
}

// packLine encodes a line snapshot for use as a cache key.
func packLine(cells []domain.Cell) string {
	buf := make([]byte, len(cells))
	for i, v := range cells {
		buf[i] = byte(v)
	}
	return string(buf)
}

// canPlace reports whether hints[hintIdx:] can be placed on cells[start:]
// consistently with every already-determined cell: Filled cells must be
// covered by some block, Empty cells must not be, and blocks must keep at
// least one non-filled cell between them.
func canPlace(hints domain.Hints, cells []domain.Cell, hintIdx, start int, memo *memoCache) bool {
	memo.probes++
	key := memoKey{hintIdx: hintIdx, start: start, line: packLine(cells)}
	if v, ok := memo.entries[key]; ok {
		return v
	}
	res := canPlaceUncached(hints, cells, hintIdx, start, memo)
	memo.entries[key] = res
	return res
}

func canPlaceUncached(hints domain.Hints, cells []domain.Cell, hintIdx, start int, memo *memoCache) bool {
	// No blocks left: feasible iff nothing behind the cursor is Filled.
	if hintIdx == len(hints) {
		for i := start; i < len(cells); i++ {
			if cells[i] == domain.Filled {
				return false
			}
		}
		return true
	}

	block := hints[hintIdx]
	rest := domain.Hints(hints[hintIdx+1:]).MinSpace()
	maxStart := len(cells) - block - rest
	if rest > 0 {
		maxStart-- // separating blank before the remaining blocks
	}

	for p := start; p <= maxStart; p++ {
		if fits(cells, p, block) {
			next := p + block + 1
			if canPlace(hints, cells, hintIdx+1, next, memo) {
				return true
			}
		}
		// A Filled cell at p must be covered by this block; no later start
		// can reach back to cover it, so stop scanning.
		if cells[p] == domain.Filled {
			break
		}
	}
	return false
}

// fits reports whether a block of the given length may start at p: no Empty
// cell underneath it and no Filled cell butting against its right edge.
func fits(cells []domain.Cell, p, block int) bool {
	for i := p; i < p+block; i++ {
		if cells[i] == domain.Empty {
			return false
		}
	}
	after := p + block
	if after < len(cells) && cells[after] == domain.Filled {
		return false
	}
	return true
}
