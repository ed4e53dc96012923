package arena

import "github.com/mitchelldurbincs/ratarena/internal/game/core"

// CellView is the drawable state of one cell
type CellView struct {
	Status core.CellStatus
	Rats   int // live rats in the cell
}

// PlayerView is the drawable state of the player
type PlayerView struct {
	Position core.Coordinate
	Dead     bool
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Rows     int
	Cols     int
	Cells    []CellView // length = Rows*Cols (row-major)
	Player   *PlayerView
	RatCount int
	Turns    int
	Message  string
}

// Cell returns the view of the cell at pos; out-of-bounds positions read as empty.
func (s Snapshot) Cell(pos core.Coordinate) CellView {
	if !pos.IsValid(s.Rows, s.Cols) {
		return CellView{}
	}
	return s.Cells[pos.ToIndex(s.Cols)]
}

// Snapshot captures the current state together with the last action's message
func (a *Arena) Snapshot(message string) Snapshot {
	rows, cols := a.grid.Rows(), a.grid.Cols()
	s := Snapshot{
		Rows:     rows,
		Cols:     cols,
		Cells:    make([]CellView, rows*cols),
		RatCount: len(a.rats),
		Turns:    a.turns,
		Message:  message,
	}

	for i := range s.Cells {
		status, _ := a.grid.Status(core.FromIndex(i, cols))
		s.Cells[i].Status = status
	}
	for _, r := range a.rats {
		if !r.IsDead() {
			s.Cells[r.pos.ToIndex(cols)].Rats++
		}
	}
	if a.player != nil {
		s.Player = &PlayerView{Position: a.player.pos, Dead: a.player.dead}
	}

	return s
}
