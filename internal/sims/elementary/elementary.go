package elementary

import (
	"fmt"
	"strconv"

	"term-ca/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration. Rule 90 is the classic
// Sierpinski generator and the rule the CLI falls back to.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 90}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary projects the one-dimensional automaton vertically: the top row
// is the live generation and every Step scrolls older generations downward.
type Elementary struct {
	w, h  int
	table Table
	row   *Row
	cells []uint8
}

// New creates an automaton with the given display dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	e := &Elementary{w: w, h: h, table: tableFor(rule), cells: make([]uint8, w*h)}
	e.seed()
	return e
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.cells }

// Generation returns the number of completed steps.
func (e *Elementary) Generation() int { return e.row.Generation() }

// Description summarizes the configured rule for status displays.
func (e *Elementary) Description() string { return fmt.Sprintf("rule %d", e.table.Rule()) }

// Reset clears the history and reseeds a single live cell at the top center.
// The seed argument is ignored; the starting state is deterministic.
func (e *Elementary) Reset(seed int64) {
	e.seed()
}

func (e *Elementary) seed() {
	for i := range e.cells {
		e.cells[i] = 0
	}
	initial := make([]uint8, e.w)
	if center := e.w / 2; center < e.w {
		initial[center] = 1
	}
	e.row = NewRow(initial, e.table)
	copy(e.cells[:e.w], e.row.Cells())
}

// Step advances one generation and scrolls history downwards.
func (e *Elementary) Step() {
	e.row.Step()
	copy(e.cells[e.w:], e.cells[:e.w*(e.h-1)])
	copy(e.cells[:e.w], e.row.Cells())
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
