package life

import (
	"errors"
	"fmt"
	"strconv"

	"term-ca/internal/core"
)

// ErrIncompatibleRule reports a rule set that references neighbor counts the
// chosen neighborhood can never produce.
var ErrIncompatibleRule = errors.New("rule incompatible with neighborhood")

// Config holds parameters for the two-dimensional automaton.
type Config struct {
	Width  int
	Height int
	Rules  RuleSet
	Shape  Neighborhood
}

// DefaultConfig returns Conway's Game of Life on a Moore neighborhood.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rules: ConwayRule(), Shape: Moore}
}

// FromMap populates a Config from a string map. Unparseable values keep
// their defaults, and a rule set the neighborhood cannot satisfy reverts to
// Conway's so the factory always yields a runnable simulation.
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
		if parsed, err := ParseRuleSet(v); err == nil {
			c.Rules = parsed
		}
	}
	if v, ok := cfg["neighborhood"]; ok {
		if parsed, err := ParseNeighborhood(v); err == nil {
			c.Shape = parsed
		}
	}
	if c.Rules.MaxCount() > c.Shape.Size() {
		c.Rules = ConwayRule()
	}
	return c
}

// Board runs a life-family automaton on a toroidal grid: neighborhoods wrap
// around both edges, so every cell always has a full complement of neighbors.
type Board struct {
	w, h  int
	rules RuleSet
	shape Neighborhood
	cur   []uint8
	nxt   []uint8
	gen   int
}

// NewBoard creates a board over the given starting grid. The grid must be
// well formed and the rule set must only count neighbors the neighborhood
// can produce.
func NewBoard(g core.Grid, rules RuleSet, shape Neighborhood) (*Board, error) {
	if g.W <= 0 || g.H <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrEmptyGrid, g.W, g.H)
	}
	if len(g.Cells) != g.W*g.H {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", core.ErrIrregularGrid, len(g.Cells), g.W, g.H)
	}
	if m := rules.MaxCount(); m > shape.Size() {
		return nil, fmt.Errorf("%w: %v counts up to %d neighbors, %v has %d", ErrIncompatibleRule, rules, m, shape, shape.Size())
	}
	b := newBoard(g.W, g.H, rules, shape)
	for i, v := range g.Cells {
		if v != 0 {
			b.cur[i] = 1
		}
	}
	return b, nil
}

// New creates an empty Conway board with a Moore neighborhood.
func New(w, h int) *Board {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return newBoard(w, h, ConwayRule(), Moore)
}

func newBoard(w, h int, rules RuleSet, shape Neighborhood) *Board {
	return &Board{
		w:     w,
		h:     h,
		rules: rules,
		shape: shape,
		cur:   make([]uint8, w*h),
		nxt:   make([]uint8, w*h),
	}
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "life" }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Rules returns the birth/survival rule set.
func (b *Board) Rules() RuleSet { return b.rules }

// Shape returns the neighborhood in use.
func (b *Board) Shape() Neighborhood { return b.shape }

// Cells exposes the live generation buffer.
func (b *Board) Cells() []uint8 { return b.cur }

// Generation returns the number of completed steps.
func (b *Board) Generation() int { return b.gen }

// Description summarizes the rules and neighborhood for status displays.
func (b *Board) Description() string { return fmt.Sprintf("%v %v", b.rules, b.shape) }

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, v := range b.cur {
		if v != 0 {
			n++
		}
	}
	return n
}

// Reset fills the board with random cells, each live with probability one
// half, and rewinds the generation counter.
func (b *Board) Reset(seed int64) {
	rng := core.NewRNG(seed)
	core.FillBinary(rng.Source(), b.cur)
	b.gen = 0
}

// Step advances the board one generation. The whole next state is computed
// from the current one before it becomes visible, so update order never
// influences the result.
func (b *Board) Step() {
	offs := b.shape.Offsets()
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			n := 0
			for _, o := range offs {
				yy := (y + o[0] + b.h) % b.h
				xx := (x + o[1] + b.w) % b.w
				if b.cur[yy*b.w+xx] != 0 {
					n++
				}
			}
			var next uint8
			if b.cur[y*b.w+x] != 0 {
				if b.rules.Survives(n) {
					next = 1
				}
			} else if b.rules.Born(n) {
				next = 1
			}
			b.nxt[y*b.w+x] = next
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.gen++
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return newBoard(c.Width, c.Height, c.Rules, c.Shape)
	})
}
