package domain

// Hints is one line's ordered block lengths, in placement order.
// An empty sequence means the line is entirely blank.
type Hints []int

// MinSpace returns the minimum line length the blocks require:
// the blocks themselves plus one separating blank between neighbours.
func (h Hints) MinSpace() int {
	if len(h) == 0 {
		return 0
	}
	n := len(h) - 1
	for _, b := range h {
		n += b
	}
	return n
}

// Sum returns the total number of filled cells the blocks demand.
func (h Hints) Sum() int {
	n := 0
	for _, b := range h {
		n += b
	}
	return n
}

// Board holds the current cell values of a height×width grid.
// It is never resized after creation; cells only refine Unknown→Empty
// or Unknown→Filled.
type Board struct {
	Height int      `json:"height"`
	Width  int      `json:"width"`
	Cells  [][]Cell `json:"cells"`
}

// NewBoard creates an all-Unknown board.
func NewBoard(height, width int) *Board {
	cells := make([][]Cell, height)
	for r := range cells {
		cells[r] = make([]Cell, width)
	}
	return &Board{Height: height, Width: width, Cells: cells}
}

// Row returns a copy of row r; writes to the copy do not touch the board.
func (b *Board) Row(r int) []Cell {
	out := make([]Cell, b.Width)
	copy(out, b.Cells[r])
	return out
}

// Col returns a copy of column c.
func (b *Board) Col(c int) []Cell {
	out := make([]Cell, b.Height)
	for r := 0; r < b.Height; r++ {
		out[r] = b.Cells[r][c]
	}
	return out
}

// SetRow writes cells back into row r and reports how many cells left Unknown.
func (b *Board) SetRow(r int, cells []Cell) int {
	changed := 0
	for c, v := range cells {
		if b.Cells[r][c] == Unknown && v != Unknown {
			b.Cells[r][c] = v
			changed++
		}
	}
	return changed
}

// SetCol writes cells back into column c and reports how many cells left Unknown.
func (b *Board) SetCol(c int, cells []Cell) int {
	changed := 0
	for r, v := range cells {
		if b.Cells[r][c] == Unknown && v != Unknown {
			b.Cells[r][c] = v
			changed++
		}
	}
	return changed
}

// Unknowns counts cells still undetermined.
func (b *Board) Unknowns() int {
	n := 0
	for _, row := range b.Cells {
		for _, v := range row {
			if v == Unknown {
				n++
			}
		}
	}
	return n
}

// FilledMask exports the board as a boolean grid, true for Filled cells.
func (b *Board) FilledMask() [][]bool {
	out := make([][]bool, b.Height)
	for r, row := range b.Cells {
		out[r] = make([]bool, b.Width)
		for c, v := range row {
			out[r][c] = v == Filled
		}
	}
	return out
}

// LineHints recomputes the block-length sequence of a determined line.
func LineHints(cells []Cell) Hints {
	out := Hints{}
	run := 0
	for _, v := range cells {
		if v == Filled {
			run++
			continue
		}
		if run > 0 {
			out = append(out, run)
			run = 0
		}
	}
	if run > 0 {
		out = append(out, run)
	}
	return out
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LineRef identifies one row or column, used for conflict reporting.
type LineRef struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

// Hint describes a forced-cell suggestion for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   Cell      `json:"value"`
}

// Puzzle is a persisted nonogram definition with metadata. Only the hint
// sets are stored, never a solved grid.
type Puzzle struct {
	ID        string  `json:"id,omitempty"`
	Rows      []Hints `json:"rows"`
	Cols      []Hints `json:"cols"`
	CreatedAt int64   `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	CreatedAt int64  `json:"createdAt"`
}
