//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"term-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusHeight is the pixel height reserved under the grid for the bar.
const StatusHeight = 16

type describer interface {
	Description() string
}

// Status renders a one-line simulation summary under the grid view.
type Status struct {
	sim core.Sim
}

// NewStatus constructs a status bar for the provided simulation.
func NewStatus(sim core.Sim) *Status { return &Status{sim: sim} }

// Draw paints the bar with its top edge at y.
func (s *Status) Draw(screen *ebiten.Image, y int, paused bool) {
	if s == nil || s.sim == nil {
		return
	}
	line := fmt.Sprintf("%s  gen %d", s.sim.Name(), s.sim.Generation())
	if d, ok := s.sim.(describer); ok {
		line = fmt.Sprintf("%s [%s]  gen %d", s.sim.Name(), d.Description(), s.sim.Generation())
	}
	if paused {
		line += "  paused"
	}
	text.Draw(screen, line, basicfont.Face7x13, 4, y+12, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
