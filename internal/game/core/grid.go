package core

// CellStatus is the pellet state of a single cell.
type CellStatus int

const (
	CellEmpty CellStatus = iota
	CellPoisoned
)

const (
	MaxRows = 20
	MaxCols = 20
)

func (s CellStatus) IsValid() bool { return s == CellEmpty || s == CellPoisoned }

func (s CellStatus) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellPoisoned:
		return "poisoned"
	default:
		return "unknown"
	}
}

// Grid is a bounded rows x cols array of cell statuses.
// Dimensions are fixed at construction.
type Grid struct {
	rows, cols int
	cells      []CellStatus // length = rows*cols (row-major)
}

// NewGrid creates an all-empty grid. Both dimensions must be in [1,20].
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || rows > MaxRows || cols < 1 || cols > MaxCols {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellStatus, rows*cols),
	}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds checks if a position lies inside the grid
func (g *Grid) InBounds(pos Coordinate) bool {
	return pos.IsValid(g.rows, g.cols)
}

// Status returns the status of the cell at pos
func (g *Grid) Status(pos Coordinate) (CellStatus, error) {
	if !g.InBounds(pos) {
		return CellEmpty, WrapPositionError(pos, ErrOutOfBounds)
	}
	return g.cells[pos.ToIndex(g.cols)], nil
}

// SetStatus sets the status of the cell at pos. Nothing is mutated on error.
func (g *Grid) SetStatus(pos Coordinate, status CellStatus) error {
	if !g.InBounds(pos) {
		return WrapPositionError(pos, ErrOutOfBounds)
	}
	if !status.IsValid() {
		return WrapPositionError(pos, ErrInvalidStatus)
	}
	g.cells[pos.ToIndex(g.cols)] = status
	return nil
}
