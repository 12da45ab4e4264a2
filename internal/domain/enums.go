package domain

// Cell is the tri-state value of one grid square.
type Cell int8

const (
	Unknown Cell = iota // not yet determined
	Empty               // proven blank
	Filled              // proven filled
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	default:
		return "unknown"
	}
}

// LineKind distinguishes row views from column views.
type LineKind int

const (
	RowLine LineKind = iota
	ColLine
)

func (k LineKind) String() string {
	if k == ColLine {
		return "col"
	}
	return "row"
}

// Status is the terminal state of a fixpoint run.
type Status int

const (
	Converged    Status = iota // every cell determined, no further changes
	Unsolvable                 // a line is infeasible, or propagation stalled short of full determinacy
	IterationCap               // iteration budget spent before reaching a fixpoint
	Aborted                    // caller cancellation observed at an iteration boundary
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Unsolvable:
		return "unsolvable"
	case IterationCap:
		return "iteration-limit"
	default:
		return "aborted"
	}
}
