// Package pattern builds starting grids for the two-dimensional automaton:
// named seed shapes, pattern files, and random fills.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"term-ca/internal/core"
)

// ErrInvalidPattern reports a pattern file containing runes other than '0' and '1'.
var ErrInvalidPattern = errors.New("invalid pattern file")

// Glider returns the classic five-cell spaceship. It translates one cell
// down-right every four generations.
func Glider() [][]uint8 {
	return [][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
}

// RPentomino returns the five-cell methuselah that evolves chaotically for
// over a thousand generations.
func RPentomino() [][]uint8 {
	return [][]uint8{
		{0, 1, 1},
		{1, 1, 0},
		{0, 1, 0},
	}
}

// Load reads a pattern file from disk. See Read for the format.
func Load(path string) ([][]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses a pattern: one line per row, '0' for dead cells and '1' for
// live ones, every row the same width. Blank lines are skipped.
func Read(r io.Reader) ([][]uint8, error) {
	sc := bufio.NewScanner(r)
	var rows [][]uint8
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		row := make([]uint8, 0, len(line))
		for _, c := range line {
			switch c {
			case '0':
				row = append(row, 0)
			case '1':
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w: unexpected %q on line %d", ErrInvalidPattern, c, lineno)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", core.ErrEmptyGrid)
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", core.ErrIrregularGrid, i, len(row), w)
		}
	}
	return rows, nil
}

// Center returns a w-by-h grid with the stamp placed as close to the middle
// as the dimensions allow.
func Center(w, h int, stamp [][]uint8) (core.Grid, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return core.Grid{}, err
	}
	if len(stamp) == 0 || len(stamp[0]) == 0 {
		return core.Grid{}, fmt.Errorf("%w: empty stamp", core.ErrEmptyGrid)
	}
	sh, sw := len(stamp), len(stamp[0])
	if sw > w || sh > h {
		return core.Grid{}, fmt.Errorf("pattern is %dx%d, grid is only %dx%d", sw, sh, w, h)
	}
	dy, dx := (h-sh)/2, (w-sw)/2
	for y, row := range stamp {
		if len(row) != sw {
			return core.Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", core.ErrIrregularGrid, y, len(row), sw)
		}
		for x, v := range row {
			if v != 0 {
				g.Set(dx+x, dy+y, 1)
			}
		}
	}
	return g, nil
}

// Random returns a w-by-h grid where each cell is live with probability one
// half, drawn deterministically from the seed.
func Random(seed int64, w, h int) (core.Grid, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return core.Grid{}, err
	}
	core.FillBinary(core.NewRNG(seed).Source(), g.Cells)
	return g, nil
}
