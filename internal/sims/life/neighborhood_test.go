package life

import (
	"errors"
	"testing"
)

func TestNeighborhoodOffsets(t *testing.T) {
	if got := Moore.Size(); got != 8 {
		t.Fatalf("Moore.Size() = %d, want 8", got)
	}
	if got := VonNeumann.Size(); got != 4 {
		t.Fatalf("VonNeumann.Size() = %d, want 4", got)
	}
	for _, o := range VonNeumann.Offsets() {
		if o[0] != 0 && o[1] != 0 {
			t.Fatalf("von Neumann offset %v is diagonal", o)
		}
	}
	seen := map[[2]int]bool{}
	for _, o := range Moore.Offsets() {
		if o == [2]int{0, 0} {
			t.Fatalf("Moore offsets include the cell itself")
		}
		if seen[o] {
			t.Fatalf("duplicate Moore offset %v", o)
		}
		seen[o] = true
	}
}

func TestParseNeighborhood(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Neighborhood
	}{
		{"moore", Moore},
		{"Moore", Moore},
		{"MOORE", Moore},
		{"vonneumann", VonNeumann},
		{"VonNeumann", VonNeumann},
	} {
		got, err := ParseNeighborhood(c.in)
		if err != nil {
			t.Fatalf("ParseNeighborhood(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseNeighborhood(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, in := range []string{"", "hexagonal", "von neumann"} {
		if _, err := ParseNeighborhood(in); !errors.Is(err, ErrInvalidNeighborhood) {
			t.Fatalf("ParseNeighborhood(%q) = %v, want ErrInvalidNeighborhood", in, err)
		}
	}
}

func TestNeighborhoodStringRoundTrip(t *testing.T) {
	for _, n := range []Neighborhood{Moore, VonNeumann} {
		got, err := ParseNeighborhood(n.String())
		if err != nil || got != n {
			t.Fatalf("round trip %v: got %v, err %v", n, got, err)
		}
	}
}
