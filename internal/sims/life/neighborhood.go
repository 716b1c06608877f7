package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNeighborhood reports an unrecognized neighborhood name.
var ErrInvalidNeighborhood = errors.New("invalid neighborhood")

// Neighborhood selects which cells around a position are counted.
type Neighborhood uint8

const (
	// Moore counts all 8 surrounding cells.
	Moore Neighborhood = iota
	// VonNeumann counts only the 4 orthogonal cells.
	VonNeumann
)

var mooreOffsets = [][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var vonNeumannOffsets = [][2]int{
	{-1, 0},
	{0, -1}, {0, 1},
	{1, 0},
}

// ParseNeighborhood accepts "moore" or "vonneumann", case-insensitively.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch strings.ToLower(s) {
	case "moore":
		return Moore, nil
	case "vonneumann":
		return VonNeumann, nil
	}
	return Moore, fmt.Errorf("%w: %q (want moore or vonneumann)", ErrInvalidNeighborhood, s)
}

// Offsets returns the (dy, dx) pairs making up the neighborhood. The slice
// is shared; callers must not modify it.
func (n Neighborhood) Offsets() [][2]int {
	if n == VonNeumann {
		return vonNeumannOffsets
	}
	return mooreOffsets
}

// Size returns the number of cells in the neighborhood.
func (n Neighborhood) Size() int { return len(n.Offsets()) }

// String returns the parseable lower-case name.
func (n Neighborhood) String() string {
	if n == VonNeumann {
		return "vonneumann"
	}
	return "moore"
}
