package integral

import (
	"errors"
	"fmt"

	"github.com/conneroisu/steroscopic-hardware/grid"
)

var (
	// ErrShapeMismatch indicates a source whose shape does not fit the table.
	ErrShapeMismatch = errors.New("integral: source shape does not match table")
	// ErrNilSource indicates a nil source grid.
	ErrNilSource = errors.New("integral: source is nil")
)

// Table is a zero-padded summed-area table.
// rows and cols include the padding row/column: rows = H+1, cols = W+1.
type Table struct {
	rows, cols int
	data       []uint32 // row-major, length rows*cols
}

// Build returns the summed-area table of src.
// Complexity: O(H×W) time and memory.
func Build(src *grid.Image) (*Table, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	t := &Table{
		rows: src.Height() + 1,
		cols: src.Width() + 1,
		data: make([]uint32, (src.Height()+1)*(src.Width()+1)),
	}
	t.fill(src)

	return t, nil
}

// Rebuild overwrites t with the summed-area table of src, which must have
// exactly t.Rows()-1 rows and t.Cols()-1 columns.
// Complexity: O(H×W) time, no allocation.
func (t *Table) Rebuild(src *grid.Image) error {
	if src == nil {
		return ErrNilSource
	}
	if src.Height() != t.rows-1 || src.Width() != t.cols-1 {
		return fmt.Errorf("Table.Rebuild: %dx%d source for %dx%d table: %w",
			src.Height(), src.Width(), t.rows, t.cols, ErrShapeMismatch)
	}
	t.fill(src)

	return nil
}

// fill writes the prefix sums; the padding row and column are (re)zeroed.
func (t *Table) fill(src *grid.Image) {
	c := t.cols
	clear(t.data[:c])
	for y := 0; y < src.Height(); y++ {
		row := src.Row(y)
		above := t.data[y*c : (y+1)*c]
		cur := t.data[(y+1)*c : (y+2)*c]
		cur[0] = 0
		for x, v := range row {
			// T[y+1][x+1] = T[y][x+1] + T[y+1][x] − T[y][x] + S[y][x]
			cur[x+1] = above[x+1] + cur[x] - above[x] + uint32(v)
		}
	}
}

// Rows returns the number of table rows (source height + 1).
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of table columns (source width + 1).
func (t *Table) Cols() int { return t.cols }

// At returns T[row][col]: the sum of source entries with y < row and x < col.
// Panics when out of range, like slice indexing.
func (t *Table) At(row, col int) uint32 {
	return t.data[row*t.cols+col]
}

// RegionSum returns the source sum over [top, top+height) × [left, left+width).
// The rectangle must lie inside the source; callers guarantee this, typically
// by padding the source so every query window fits.
// Complexity: O(1).
func (t *Table) RegionSum(top, left, height, width int) uint32 {
	c := t.cols
	bottom, right := top+height, left+width

	return t.data[bottom*c+right] - t.data[top*c+right] - t.data[bottom*c+left] + t.data[top*c+left]
}
