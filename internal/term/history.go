package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"term-ca/internal/core"
)

// WriteHistory writes generations as a bordered text block, one line per
// generation with '█' for live cells:
//
//	————————
//	|   █  |
//	|  █ █ |
//	————————
func WriteHistory(w io.Writer, rows [][]uint8) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no rows", core.ErrEmptyGrid)
	}
	width := len(rows[0])
	bar := strings.Repeat("—", width+4)
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, bar)
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", core.ErrIrregularGrid, i, len(row), width)
		}
		bw.WriteString("| ")
		for _, v := range row {
			if v != 0 {
				bw.WriteRune('█')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteString(" |\n")
	}
	fmt.Fprintln(bw, bar)
	return bw.Flush()
}
