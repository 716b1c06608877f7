package elementary

import (
	"errors"
	"testing"
)

func TestTableRoundTripAllRules(t *testing.T) {
	for rule := 0; rule <= 255; rule++ {
		table, err := NewTable(rule)
		if err != nil {
			t.Fatalf("rule %d: %v", rule, err)
		}
		rebuilt := 0
		for k := 0; k < 8; k++ {
			left := uint8(k >> 2 & 1)
			center := uint8(k >> 1 & 1)
			right := uint8(k & 1)
			rebuilt |= int(table.Next(left, center, right)) << k
		}
		if rebuilt != rule {
			t.Fatalf("rule %d decoded back as %d", rule, rebuilt)
		}
		if table.Rule() != rule {
			t.Fatalf("Rule() = %d, want %d", table.Rule(), rule)
		}
	}
}

func TestTableRejectsOutOfRange(t *testing.T) {
	for _, rule := range []int{-1, 256, 1000, -90} {
		if _, err := NewTable(rule); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("rule %d: err = %v, want ErrInvalidRule", rule, err)
		}
	}
}

func TestTableRule90Entries(t *testing.T) {
	table, err := NewTable(90)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	// 90 = 0b01011010, laid out against the descending pattern order.
	cases := []struct {
		left, center, right uint8
		want                uint8
	}{
		{1, 1, 1, 0},
		{1, 1, 0, 1},
		{1, 0, 1, 0},
		{1, 0, 0, 1},
		{0, 1, 1, 1},
		{0, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := table.Next(c.left, c.center, c.right); got != c.want {
			t.Fatalf("Next(%d,%d,%d) = %d, want %d", c.left, c.center, c.right, got, c.want)
		}
	}
}

func TestTableNextMasksWideValues(t *testing.T) {
	table, err := NewTable(90)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if table.Next(7, 0, 0) != table.Next(1, 0, 0) {
		t.Fatal("Next should only consider the low bit of each input")
	}
}

func TestTableString(t *testing.T) {
	table, err := NewTable(90)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	want := "|111|110|101|100|011|010|001|000|\n| 0 | 1 | 0 | 1 | 1 | 0 | 1 | 0 |"
	if got := table.String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
}
