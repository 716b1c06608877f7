package elementary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule reports a Wolfram rule number outside [0, 255].
var ErrInvalidRule = errors.New("invalid rule")

// Table is the immutable transition table of an elementary automaton. Bit k
// of the rule byte is the output for the 3-cell window whose binary value
// (left neighbor most significant) equals k, so rule 90 reads:
//
//	|111|110|101|100|011|010|001|000|
//	| 0 | 1 | 0 | 1 | 1 | 0 | 1 | 0 |
type Table struct {
	rule uint8
	out  [8]uint8
}

// NewTable decodes an integer rule number into its transition table.
func NewTable(rule int) (Table, error) {
	if rule < 0 || rule > 255 {
		return Table{}, fmt.Errorf("%w: %d not in [0, 255]", ErrInvalidRule, rule)
	}
	return tableFor(uint8(rule)), nil
}

func tableFor(rule uint8) Table {
	t := Table{rule: rule}
	for k := 0; k < 8; k++ {
		t.out[k] = (rule >> k) & 1
	}
	return t
}

// Next returns the successor state for a cell given its 3-cell window.
func (t Table) Next(left, center, right uint8) uint8 {
	idx := (left&1)<<2 | (center&1)<<1 | right&1
	return t.out[idx]
}

// Rule returns the rule number the table was built from.
func (t Table) Rule() int { return int(t.rule) }

// String renders the table in the conventional two-row notation.
func (t Table) String() string {
	var header, bits strings.Builder
	for k := 7; k >= 0; k-- {
		fmt.Fprintf(&header, "|%03b", k)
		fmt.Fprintf(&bits, "| %d ", t.out[k])
	}
	return header.String() + "|\n" + bits.String() + "|"
}
