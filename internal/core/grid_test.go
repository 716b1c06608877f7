package core

import (
	"errors"
	"slices"
	"testing"
)

func TestGridFromRowsNormalizes(t *testing.T) {
	g, err := GridFromRows([][]uint8{
		{0, 7, 0},
		{255, 0, 1},
	})
	if err != nil {
		t.Fatalf("GridFromRows: %v", err)
	}
	if g.W != 3 || g.H != 2 {
		t.Fatalf("got %dx%d, want 3x2", g.W, g.H)
	}
	want := []uint8{0, 1, 0, 1, 0, 1}
	if !slices.Equal(g.Cells, want) {
		t.Fatalf("cells = %v, want %v", g.Cells, want)
	}
}

func TestGridFromRowsRejectsRagged(t *testing.T) {
	_, err := GridFromRows([][]uint8{
		{0, 1, 0},
		{1, 0},
	})
	if !errors.Is(err, ErrIrregularGrid) {
		t.Fatalf("err = %v, want ErrIrregularGrid", err)
	}
}

func TestGridFromRowsRejectsEmpty(t *testing.T) {
	for _, rows := range [][][]uint8{nil, {}, {{}}} {
		if _, err := GridFromRows(rows); !errors.Is(err, ErrEmptyGrid) {
			t.Fatalf("rows %v: err = %v, want ErrEmptyGrid", rows, err)
		}
	}
}

func TestNewGridRejectsZeroDimensions(t *testing.T) {
	if _, err := NewGrid(0, 4); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("w=0: err = %v, want ErrEmptyGrid", err)
	}
	if _, err := NewGrid(4, 0); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("h=0: err = %v, want ErrEmptyGrid", err)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(1, 1, 1)
	c := g.Clone()
	c.Set(0, 0, 1)
	if g.At(0, 0) != 0 {
		t.Fatal("mutating the clone changed the source grid")
	}
	if c.At(1, 1) != 1 {
		t.Fatal("clone lost cell values")
	}
}

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	FillBinary(NewRNG(7).Source(), a)
	FillBinary(NewRNG(7).Source(), b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed should produce the same fill")
	}
	for _, v := range a {
		if v > 1 {
			t.Fatalf("fill produced value %d outside {0,1}", v)
		}
	}
}
