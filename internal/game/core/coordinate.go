package core

import (
	"fmt"
	"strings"
)

// Coordinate is a 1-based (row, column) position in the arena
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a new coordinate with the given row and column
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// FromIndex creates a coordinate from a row-major cell index
func FromIndex(idx, cols int) Coordinate {
	return Coordinate{
		Row: idx/cols + 1,
		Col: idx%cols + 1,
	}
}

// IsValid checks if the coordinate is within a rows x cols arena
func (c Coordinate) IsValid(rows, cols int) bool {
	return c.Row >= 1 && c.Row <= rows && c.Col >= 1 && c.Col <= cols
}

// ToIndex converts the coordinate to a row-major cell index
func (c Coordinate) ToIndex(cols int) int {
	return (c.Row-1)*cols + (c.Col - 1)
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		Row: c.Row + other.Row,
		Col: c.Col + other.Col,
	}
}

// Move returns a new coordinate moved one step in the given direction.
// Invalid directions leave the coordinate unchanged.
func (c Coordinate) Move(d Direction) Coordinate {
	if !d.IsValid() {
		return c
	}
	return c.Add(d.Offset())
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction represents a compass direction. The declaration order is the
// tie-break order used wherever directions are scanned.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// NumDirections is the number of compass directions
const NumDirections = 4

// Directions lists every direction in scan order
var Directions = [NumDirections]Direction{North, East, South, West}

var directionOffsets = [NumDirections]Coordinate{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// IsValid reports whether d is one of the four compass directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Offset returns the unit step for the direction
func (d Direction) Offset() Coordinate {
	return directionOffsets[d]
}

// Left returns the direction a quarter turn counter-clockwise
func (d Direction) Left() Direction {
	return (d + 3) % NumDirections
}

// Right returns the direction a quarter turn clockwise
func (d Direction) Right() Direction {
	return (d + 1) % NumDirections
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection decodes a single-letter direction (n/e/s/w, any case)
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "n":
		return North, nil
	case "e":
		return East, nil
	case "s":
		return South, nil
	case "w":
		return West, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
	}
}
