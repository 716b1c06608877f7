package elementary

import (
	"slices"
	"testing"
)

func parseCells(t *testing.T, s string) []uint8 {
	t.Helper()
	cells := make([]uint8, len(s))
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			cells[i] = 1
		default:
			t.Fatalf("bad cell rune %q", r)
		}
	}
	return cells
}

func cellString(cells []uint8) string {
	buf := make([]byte, len(cells))
	for i, v := range cells {
		buf[i] = '0' + v
	}
	return string(buf)
}

func TestRowRule90Sierpinski(t *testing.T) {
	table, err := NewTable(90)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	row := NewRow(parseCells(t, "000000010000000"), table)

	// Rule 90 is the XOR of the two neighbors, with dead cells beyond the
	// edges, so a single seed unfolds into the Sierpinski triangle.
	want := []string{
		"000000010000000",
		"000000101000000",
		"000001000100000",
		"000010101010000",
		"000100000010000",
		"001010000010100",
	}
	for gen, expected := range want {
		if got := cellString(row.Cells()); got != expected {
			t.Fatalf("generation %d = %s, want %s", gen, got, expected)
		}
		if row.Generation() != gen {
			t.Fatalf("Generation() = %d, want %d", row.Generation(), gen)
		}
		row.Step()
	}
}

func TestRowEdgesAreFixedDead(t *testing.T) {
	table, err := NewTable(90)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	row := NewRow(parseCells(t, "10000"), table)
	row.Step()

	// With constant-0 edges the live edge cell only feeds its inner
	// neighbor. A wrapping row would also light the far edge (index 4).
	if got := cellString(row.Cells()); got != "01000" {
		t.Fatalf("after one step got %s, want 01000", got)
	}
}

func TestRowWidthConstant(t *testing.T) {
	table, err := NewTable(30)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	row := NewRow(make([]uint8, 9), table)
	for i := 0; i < 5; i++ {
		row.Step()
		if row.Width() != 9 {
			t.Fatalf("width changed to %d after step %d", row.Width(), i+1)
		}
	}
}

func TestRowNormalizesInitial(t *testing.T) {
	table, err := NewTable(90)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	row := NewRow([]uint8{0, 5, 0, 255}, table)
	if got := cellString(row.Cells()); got != "0101" {
		t.Fatalf("initial cells = %s, want 0101", got)
	}
}

func TestRowDeterministic(t *testing.T) {
	table, err := NewTable(110)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	initial := parseCells(t, "0010110100101101")
	a := NewRow(initial, table)
	b := NewRow(initial, table)
	for i := 0; i < 32; i++ {
		a.Step()
		b.Step()
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identically constructed rows diverged")
	}
}

func TestRowZeroWidth(t *testing.T) {
	table, err := NewTable(90)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	row := NewRow(nil, table)
	row.Step()
	if row.Width() != 0 || row.Generation() != 1 {
		t.Fatalf("zero-width row: width=%d generation=%d", row.Width(), row.Generation())
	}
}
