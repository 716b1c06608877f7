//go:build !ebiten

package ui

import "term-ca/internal/core"

// StatusHeight is zero in headless builds; no bar is drawn.
const StatusHeight = 0

// Status is a no-op placeholder used when the ebiten build tag is absent.
type Status struct{}

// NewStatus constructs a stub status bar.
func NewStatus(core.Sim) *Status { return &Status{} }

// Draw is a no-op placeholder.
func (s *Status) Draw(any, int, bool) {}
