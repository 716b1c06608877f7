package elementary

// Row holds one generation of a one-dimensional automaton and advances it
// under a Table. Cells beyond either edge act as constant dead neighbors;
// unlike the 2D board the row does not wrap.
type Row struct {
	table Table
	cur   []uint8
	nxt   []uint8
	gen   int
}

// NewRow copies the initial cells (any nonzero value counts as live) and
// binds them to the transition table. The width is fixed for the lifetime of
// the row.
func NewRow(initial []uint8, table Table) *Row {
	cur := make([]uint8, len(initial))
	for i, v := range initial {
		if v != 0 {
			cur[i] = 1
		}
	}
	return &Row{table: table, cur: cur, nxt: make([]uint8, len(initial))}
}

// Width returns the fixed cell count.
func (r *Row) Width() int { return len(r.cur) }

// Cells exposes the current generation. Callers must treat it as read-only;
// the buffer is replaced wholesale on Step.
func (r *Row) Cells() []uint8 { return r.cur }

// Generation returns the number of completed steps.
func (r *Row) Generation() int { return r.gen }

// Table returns the transition table driving the row.
func (r *Row) Table() Table { return r.table }

// Step computes the next generation into a fresh buffer and swaps it in, so
// no cell ever reads an already-updated neighbor.
func (r *Row) Step() {
	w := len(r.cur)
	for x := 0; x < w; x++ {
		var left, right uint8
		if x > 0 {
			left = r.cur[x-1]
		}
		if x < w-1 {
			right = r.cur[x+1]
		}
		r.nxt[x] = r.table.Next(left, r.cur[x], right)
	}
	r.cur, r.nxt = r.nxt, r.cur
	r.gen++
}
