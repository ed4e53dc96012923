package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	c := NewCoordinate(3, 5)
	assert.Equal(t, 3, c.Row)
	assert.Equal(t, 5, c.Col)
}

func TestCoordinate_FromIndex(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		cols     int
		expected Coordinate
	}{
		{"TopLeft", 0, 10, Coordinate{1, 1}},
		{"TopRight", 9, 10, Coordinate{1, 10}},
		{"SecondRow", 10, 10, Coordinate{2, 1}},
		{"Middle", 55, 10, Coordinate{6, 6}},
		{"BottomRight", 99, 10, Coordinate{10, 10}},
		{"SmallArena", 7, 4, Coordinate{2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromIndex(tt.index, tt.cols))
		})
	}
}

func TestCoordinate_RoundTrip(t *testing.T) {
	cols := 7
	for i := 0; i < 7*5; i++ {
		coord := FromIndex(i, cols)
		assert.Equal(t, i, coord.ToIndex(cols), "Round trip failed for index %d", i)
	}
}

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		valid bool
	}{
		{"Valid_Origin", Coordinate{1, 1}, true},
		{"Valid_Edge", Coordinate{4, 6}, true},
		{"Invalid_ZeroRow", Coordinate{0, 3}, false},
		{"Invalid_ZeroCol", Coordinate{3, 0}, false},
		{"Invalid_TooLargeRow", Coordinate{5, 3}, false},
		{"Invalid_TooLargeCol", Coordinate{3, 7}, false},
		{"Invalid_Negative", Coordinate{-1, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.coord.IsValid(4, 6))
		})
	}
}

func TestCoordinate_Move(t *testing.T) {
	c := Coordinate{3, 3}
	assert.Equal(t, Coordinate{2, 3}, c.Move(North))
	assert.Equal(t, Coordinate{3, 4}, c.Move(East))
	assert.Equal(t, Coordinate{4, 3}, c.Move(South))
	assert.Equal(t, Coordinate{3, 2}, c.Move(West))
	assert.Equal(t, c, c.Move(Direction(9)), "invalid direction should not move")
}

func TestDirection_Relations(t *testing.T) {
	tests := []struct {
		dir   Direction
		left  Direction
		right Direction
	}{
		{North, West, East},
		{East, North, South},
		{South, East, West},
		{West, South, North},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.left, tt.dir.Left())
			assert.Equal(t, tt.right, tt.dir.Right())
			assert.Equal(t, tt.dir, tt.dir.Left().Right())

			// Offsets of opposite directions cancel out
			sum := tt.dir.Offset().Add(tt.dir.Left().Left().Offset())
			assert.Equal(t, Coordinate{0, 0}, sum)
		})
	}
}

func TestDirections_ScanOrder(t *testing.T) {
	assert.Equal(t, [NumDirections]Direction{North, East, South, West}, Directions)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
		wantErr  bool
	}{
		{"n", North, false},
		{"N", North, false},
		{"e", East, false},
		{"S", South, false},
		{"w", West, false},
		{"x", 0, true},
		{"", 0, true},
		{"nn", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dir, err := ParseDirection(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dir)
		})
	}
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "north", North.String())
	assert.Equal(t, "west", West.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
}
