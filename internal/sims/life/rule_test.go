package life

import (
	"errors"
	"testing"
)

func TestParseRuleSetConway(t *testing.T) {
	rs, err := ParseRuleSet("B3/S23")
	if err != nil {
		t.Fatalf("ParseRuleSet: %v", err)
	}
	if !rs.Born(3) {
		t.Fatalf("B3/S23 should birth on 3 neighbors")
	}
	if !rs.Survives(2) || !rs.Survives(3) {
		t.Fatalf("B3/S23 should survive on 2 and 3 neighbors")
	}
	for _, n := range []int{0, 1, 2, 4, 5, 6, 7, 8} {
		if rs.Born(n) {
			t.Fatalf("B3/S23 should not birth on %d neighbors", n)
		}
	}
	if rs != ConwayRule() {
		t.Fatalf("parsed B3/S23 differs from ConwayRule()")
	}
}

func TestParseRuleSetCanonicalizes(t *testing.T) {
	cases := []struct {
		spec string
		want string
	}{
		{"B3/S23", "B3/S23"},
		{"b3/s32", "B3/S23"},
		{"B36/S23", "B36/S23"},
		{"b33/s22", "B3/S2"},
		{"B/S", "B/S"},
		{"B012345678/S012345678", "B012345678/S012345678"},
	}
	for _, c := range cases {
		rs, err := ParseRuleSet(c.spec)
		if err != nil {
			t.Fatalf("ParseRuleSet(%q): %v", c.spec, err)
		}
		if got := rs.String(); got != c.want {
			t.Fatalf("ParseRuleSet(%q).String() = %q, want %q", c.spec, got, c.want)
		}
	}
}

func TestParseRuleSetRejectsMalformed(t *testing.T) {
	for _, spec := range []string{
		"",
		"B3S23",
		"3/S23",
		"B3/23",
		"S23/B3",
		"B9/S23",
		"B3/S29",
		"B3x/S23",
		"B3/S23/extra",
	} {
		if _, err := ParseRuleSet(spec); !errors.Is(err, ErrInvalidRuleSpec) {
			t.Fatalf("ParseRuleSet(%q) = %v, want ErrInvalidRuleSpec", spec, err)
		}
	}
}

func TestRuleSetMaxCount(t *testing.T) {
	cases := []struct {
		spec string
		want int
	}{
		{"B3/S23", 3},
		{"B36/S23", 6},
		{"B/S", -1},
		{"B/S8", 8},
		{"B2/S", 2},
	}
	for _, c := range cases {
		rs, err := ParseRuleSet(c.spec)
		if err != nil {
			t.Fatalf("ParseRuleSet(%q): %v", c.spec, err)
		}
		if got := rs.MaxCount(); got != c.want {
			t.Fatalf("MaxCount(%q) = %d, want %d", c.spec, got, c.want)
		}
	}
}

func TestRuleSetMembershipBounds(t *testing.T) {
	rs := ConwayRule()
	for _, n := range []int{-1, 9, 100} {
		if rs.Born(n) || rs.Survives(n) {
			t.Fatalf("count %d outside 0..8 should never match", n)
		}
	}
}
