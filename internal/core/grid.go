package core

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid reports a grid with zero width or height.
var ErrEmptyGrid = errors.New("empty grid")

// ErrIrregularGrid reports a grid whose rows are not all the same length.
var ErrIrregularGrid = errors.New("irregular grid")

// Grid stores a 2D field of binary cell values in row-major order.
type Grid struct {
	W, H  int
	Cells []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}
	return Grid{W: w, H: h, Cells: make([]uint8, w*h)}, nil
}

// GridFromRows builds a grid from explicit rows, normalizing any nonzero
// value to 1. Rows of differing lengths and zero-sized inputs are rejected so
// an automaton is never constructed over a malformed field.
func GridFromRows(rows [][]uint8) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrEmptyGrid)
	}
	w := len(rows[0])
	g := Grid{W: w, H: len(rows), Cells: make([]uint8, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrIrregularGrid, y, len(row), w)
		}
		for x, v := range row {
			if v != 0 {
				g.Cells[y*w+x] = 1
			}
		}
	}
	return g, nil
}

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// At reports the cell value at (x, y).
func (g Grid) At(x, y int) uint8 { return g.Cells[y*g.W+x] }

// Set writes the cell value at (x, y).
func (g Grid) Set(x, y int, v uint8) { g.Cells[y*g.W+x] = v }

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	c := Grid{W: g.W, H: g.H, Cells: make([]uint8, len(g.Cells))}
	copy(c.Cells, g.Cells)
	return c
}
