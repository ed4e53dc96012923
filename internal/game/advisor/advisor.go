// Package advisor recommends the player's next action with a one-step
// lookahead that steers away from rats.
package advisor

import (
	"math"

	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

// ArenaView is the read-only arena state the advisor inspects
type ArenaView interface {
	Rows() int
	Cols() int
	NumberOfRatsAt(pos core.Coordinate) int
	CellStatus(pos core.Coordinate) (core.CellStatus, error)
}

// Recommendation is either a move in Direction or, when Move is false,
// dropping a poison pellet where the player stands.
type Recommendation struct {
	Move      bool
	Direction core.Direction
}

// DropPellet is the "no move" recommendation
var DropPellet = Recommendation{}

func (r Recommendation) String() string {
	if !r.Move {
		return "drop pellet"
	}
	return "move " + r.Direction.String()
}

// threatOrder is the order in which adjacent rats are reacted to
var threatOrder = [core.NumDirections]core.Direction{core.South, core.North, core.East, core.West}

// Recommend picks the action for a player standing at pos.
func Recommend(view ArenaView, pos core.Coordinate) Recommendation {
	for _, threat := range threatOrder {
		if view.NumberOfRatsAt(pos.Move(threat)) == 0 {
			continue
		}
		return escape(view, pos, threat)
	}

	status, err := view.CellStatus(pos)
	if err != nil || status != core.CellPoisoned {
		return DropPellet
	}
	return leavePellet(view, pos)
}

// escape picks the least exposed safe step away from the threat direction.
func escape(view ArenaView, pos core.Coordinate, threat core.Direction) Recommendation {
	var exposure [core.NumDirections]int
	for i := range exposure {
		exposure[i] = math.MaxInt
	}

	found := false
	for _, d := range core.Directions {
		if d == threat || !isSafeStep(view, pos, d) {
			continue
		}
		exposure[d] = Exposure(view, pos, d)
		found = true
	}
	if !found {
		return DropPellet
	}

	best := core.North
	for _, d := range core.Directions {
		if exposure[d] < exposure[best] {
			best = d
		}
	}
	return Recommendation{Move: true, Direction: best}
}

// leavePellet looks for a step off a poisoned cell onto an empty cell with
// no rats around it.
func leavePellet(view ArenaView, pos core.Coordinate) Recommendation {
	for _, d := range core.Directions {
		if !isSafeStep(view, pos, d) || Exposure(view, pos, d) != 0 {
			continue
		}
		status, err := view.CellStatus(pos.Move(d))
		if err == nil && status == core.CellEmpty {
			return Recommendation{Move: true, Direction: d}
		}
	}
	return DropPellet
}

// isSafeStep reports whether stepping in d stays in bounds and lands on a
// cell with no live rats.
func isSafeStep(view ArenaView, pos core.Coordinate, d core.Direction) bool {
	dest := pos.Move(d)
	if !dest.IsValid(view.Rows(), view.Cols()) {
		return false
	}
	return view.NumberOfRatsAt(dest) == 0
}

// Exposure counts the live rats next to the cell reached by stepping in d,
// ignoring the neighbour back toward pos.
func Exposure(view ArenaView, pos core.Coordinate, d core.Direction) int {
	dest := pos.Move(d)
	return view.NumberOfRatsAt(dest.Move(d)) +
		view.NumberOfRatsAt(dest.Move(d.Left())) +
		view.NumberOfRatsAt(dest.Move(d.Right()))
}
