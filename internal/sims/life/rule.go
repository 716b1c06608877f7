package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRuleSpec reports a birth/survival string that does not match the
// B<digits>/S<digits> grammar or names a neighbor count outside [0, 8].
var ErrInvalidRuleSpec = errors.New("invalid rule spec")

// DefaultRuleSpec is Conway's rule: birth on 3 neighbors, survival on 2 or 3.
const DefaultRuleSpec = "B3/S23"

// RuleSet holds the neighbor counts that make a dead cell come alive and a
// live cell stay alive. It is immutable once parsed.
type RuleSet struct {
	born    [9]bool
	survive [9]bool
}

// ParseRuleSet decodes a rule specification such as "B3/S23". The letter prefixes
// are case-insensitive, digit runs may be empty, and duplicate digits are
// harmless since membership is all that matters.
func ParseRuleSet(spec string) (RuleSet, error) {
	var rs RuleSet
	parts := strings.Split(spec, "/")
	if len(parts) != 2 {
		return RuleSet{}, fmt.Errorf("%w: %q is not B<digits>/S<digits>", ErrInvalidRuleSpec, spec)
	}
	if err := parseCounts(parts[0], 'B', &rs.born); err != nil {
		return RuleSet{}, fmt.Errorf("%w: %q: %v", ErrInvalidRuleSpec, spec, err)
	}
	if err := parseCounts(parts[1], 'S', &rs.survive); err != nil {
		return RuleSet{}, fmt.Errorf("%w: %q: %v", ErrInvalidRuleSpec, spec, err)
	}
	return rs, nil
}

func parseCounts(s string, prefix byte, set *[9]bool) error {
	if len(s) == 0 || (s[0] != prefix && s[0] != prefix+'a'-'A') {
		return fmt.Errorf("missing %c prefix", prefix)
	}
	for _, r := range s[1:] {
		if r < '0' || r > '8' {
			return fmt.Errorf("count %q not in [0, 8]", r)
		}
		set[r-'0'] = true
	}
	return nil
}

// ConwayRule returns the standard B3/S23 rule set.
func ConwayRule() RuleSet {
	var rs RuleSet
	rs.born[3] = true
	rs.survive[2] = true
	rs.survive[3] = true
	return rs
}

// Born reports whether a dead cell with the given live-neighbor count comes
// alive next generation.
func (rs RuleSet) Born(count int) bool {
	return count >= 0 && count < len(rs.born) && rs.born[count]
}

// Survives reports whether a live cell with the given live-neighbor count
// stays alive next generation.
func (rs RuleSet) Survives(count int) bool {
	return count >= 0 && count < len(rs.survive) && rs.survive[count]
}

// MaxCount returns the largest neighbor count the rule set mentions, or -1
// for the empty rule.
func (rs RuleSet) MaxCount() int {
	max := -1
	for i := 0; i < 9; i++ {
		if rs.born[i] || rs.survive[i] {
			max = i
		}
	}
	return max
}

// String renders the canonical ascending-digit form, e.g. "B3/S23".
func (rs RuleSet) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for i := 0; i < 9; i++ {
		if rs.born[i] {
			b.WriteByte(byte('0' + i))
		}
	}
	b.WriteString("/S")
	for i := 0; i < 9; i++ {
		if rs.survive[i] {
			b.WriteByte(byte('0' + i))
		}
	}
	return b.String()
}
