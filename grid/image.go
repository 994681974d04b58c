package grid

import (
	"fmt"
	"image"
)

// Image is a row-major grid of 8-bit intensities.
// h is rows, w is columns, and pix holds h*w bytes in row-major order.
// Matchers only read an Image; Set exists for the code that builds one.
type Image struct {
	h, w int     // number of rows and columns
	pix  []uint8 // flat backing storage, length == h*w
}

// New creates an h×w Image initialized to zeros.
// Stage 1 (Validate): ensure h and w > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(h*w) time and memory.
func New(h, w int) (*Image, error) {
	if h <= 0 || w <= 0 {
		return nil, ErrEmptyImage
	}

	return &Image{h: h, w: w, pix: make([]uint8, h*w)}, nil
}

// MustNew is like New but panics on invalid dimensions.
// Intended for fixtures and internal buffers whose shape is already validated.
func MustNew(h, w int) *Image {
	img, err := New(h, w)
	if err != nil {
		panic(err)
	}

	return img
}

// FromRows builds an Image from a non-empty rectangular [][]uint8.
// The input is deep-copied; later edits to rows do not affect the Image.
// Returns ErrEmptyImage or ErrNonRectangular.
// Complexity: O(h*w).
func FromRows(rows [][]uint8) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	img := &Image{h: h, w: w, pix: make([]uint8, h*w)}
	for y, row := range rows {
		copy(img.pix[y*w:(y+1)*w], row)
	}

	return img, nil
}

// FromPix wraps a copy of a flat row-major buffer of length h*w.
// Returns ErrEmptyImage for non-positive dimensions and ErrShapeMismatch
// when len(pix) != h*w.
func FromPix(h, w int, pix []uint8) (*Image, error) {
	if h <= 0 || w <= 0 {
		return nil, ErrEmptyImage
	}
	if len(pix) != h*w {
		return nil, fmt.Errorf("FromPix: %d bytes for %dx%d: %w", len(pix), h, w, ErrShapeMismatch)
	}
	cp := make([]uint8, len(pix))
	copy(cp, pix)

	return &Image{h: h, w: w, pix: cp}, nil
}

// Height returns the number of rows.
func (m *Image) Height() int { return m.h }

// Width returns the number of columns.
func (m *Image) Width() int { return m.w }

// Bounds returns the grid as an image.Rectangle anchored at the origin.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.w, m.h) }

// SameShape reports whether m and o have identical dimensions.
func (m *Image) SameShape(o *Image) bool {
	return m.h == o.h && m.w == o.w
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (m *Image) InBounds(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

// At returns the intensity at column x, row y.
// Panics when (x,y) is out of bounds, like slice indexing.
func (m *Image) At(x, y int) uint8 {
	return m.pix[y*m.w+x]
}

// Set assigns v at column x, row y.
// Returns ErrOutOfRange when (x,y) is outside the grid.
func (m *Image) Set(x, y int, v uint8) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("Image.Set(%d,%d): %w", x, y, ErrOutOfRange)
	}
	m.pix[y*m.w+x] = v

	return nil
}

// Row returns row y as a view into the backing storage.
// The slice aliases the Image and must be treated as read-only by matchers.
func (m *Image) Row(y int) []uint8 {
	return m.pix[y*m.w : (y+1)*m.w]
}

// Pix returns the backing row-major buffer (aliased, read-only by convention).
func (m *Image) Pix() []uint8 { return m.pix }

// Clone returns a deep copy of the Image.
// Complexity: O(h*w).
func (m *Image) Clone() *Image {
	cp := make([]uint8, len(m.pix))
	copy(cp, m.pix)

	return &Image{h: m.h, w: m.w, pix: cp}
}

// Equal reports whether m and o have the same shape and the same pixels.
func (m *Image) Equal(o *Image) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.SameShape(o) {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != o.pix[i] {
			return false
		}
	}

	return true
}

// Crop copies the pixels inside r into a new Image.
// r must be non-empty and fully contained in m.Bounds(); otherwise
// ErrOutOfRange is returned.
// Complexity: O(r.Dx()*r.Dy()).
func (m *Image) Crop(r image.Rectangle) (*Image, error) {
	if r.Empty() || !r.In(m.Bounds()) {
		return nil, fmt.Errorf("Image.Crop(%v): %w", r, ErrOutOfRange)
	}
	out := &Image{h: r.Dy(), w: r.Dx(), pix: make([]uint8, r.Dx()*r.Dy())}
	for y := 0; y < out.h; y++ {
		src := m.pix[(r.Min.Y+y)*m.w+r.Min.X:]
		copy(out.pix[y*out.w:(y+1)*out.w], src[:out.w])
	}

	return out, nil
}
