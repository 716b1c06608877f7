// Package term presents automata in the terminal: grid sizing, bordered
// text output, and an interactive tcell runner.
package term

import (
	"errors"
	"fmt"
)

// ErrTerminalTooSmall reports a terminal below the minimum playable size.
var ErrTerminalTooSmall = errors.New("terminal too small")

// Fit converts a terminal size in character cells into interior grid
// dimensions. One column and row are held back so the cursor never pushes
// the frame off screen, the width is rounded down to even and the height to
// odd so the title screen centers cleanly, and two cells per axis go to the
// border.
func Fit(cols, rows int) (w, h int, err error) {
	cols--
	rows--
	if cols%2 != 0 {
		cols--
	}
	if rows%2 == 0 {
		rows--
	}
	if cols < 5 || rows < 5 {
		return 0, 0, fmt.Errorf("%w: need at least 5x5, have %dx%d", ErrTerminalTooSmall, cols, rows)
	}
	return cols - 2, rows - 2, nil
}

// Inset applies the border allowance to explicit dimensions, validating the
// same minimum Fit enforces.
func Inset(w, h int) (int, int, error) {
	if w < 5 || h < 5 {
		return 0, 0, fmt.Errorf("%w: need at least 5x5, have %dx%d", ErrTerminalTooSmall, w, h)
	}
	return w - 2, h - 2, nil
}
