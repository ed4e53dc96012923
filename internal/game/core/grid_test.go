package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		wantErr bool
	}{
		{"minimum grid", 1, 1, false},
		{"rectangular grid", 4, 9, false},
		{"maximum grid", MaxRows, MaxCols, false},
		{"zero rows", 0, 5, true},
		{"zero cols", 5, 0, true},
		{"negative rows", -3, 5, true},
		{"too many rows", MaxRows + 1, 5, true},
		{"too many cols", 5, MaxCols + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.rows, tt.cols)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimensions)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, g.Rows())
			assert.Equal(t, tt.cols, g.Cols())

			// Every cell starts empty
			for r := 1; r <= tt.rows; r++ {
				for c := 1; c <= tt.cols; c++ {
					s, err := g.Status(Coordinate{r, c})
					require.NoError(t, err)
					assert.Equal(t, CellEmpty, s)
				}
			}
		})
	}
}

func TestGrid_SetStatus(t *testing.T) {
	g, err := NewGrid(3, 4)
	require.NoError(t, err)

	require.NoError(t, g.SetStatus(Coordinate{2, 3}, CellPoisoned))

	s, err := g.Status(Coordinate{2, 3})
	require.NoError(t, err)
	assert.Equal(t, CellPoisoned, s)

	// Neighbours are untouched
	s, _ = g.Status(Coordinate{2, 4})
	assert.Equal(t, CellEmpty, s)

	require.NoError(t, g.SetStatus(Coordinate{2, 3}, CellEmpty))
	s, _ = g.Status(Coordinate{2, 3})
	assert.Equal(t, CellEmpty, s)
}

func TestGrid_OutOfBounds(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	for _, pos := range []Coordinate{{0, 1}, {1, 0}, {4, 1}, {1, 4}, {-1, -1}} {
		t.Run(pos.String(), func(t *testing.T) {
			_, err := g.Status(pos)
			assert.ErrorIs(t, err, ErrOutOfBounds)

			err = g.SetStatus(pos, CellPoisoned)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			for i := 1; i <= 3; i++ {
				for j := 1; j <= 3; j++ {
					s, _ := g.Status(Coordinate{i, j})
					assert.Equal(t, CellEmpty, s, "failed set must not mutate")
				}
			}
		})
	}
}

func TestGrid_SetStatus_InvalidStatus(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)

	err = g.SetStatus(Coordinate{1, 1}, CellStatus(42))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	s, _ := g.Status(Coordinate{1, 1})
	assert.Equal(t, CellEmpty, s)
}
