package grid

import (
	"errors"
	"fmt"
)

// ErrNegativeOffset indicates a negative padding margin or shift distance.
var ErrNegativeOffset = errors.New("grid: margin and shift must be non-negative")

// ShiftFill selects what ShiftRightInto writes into the columns vacated by a shift.
type ShiftFill int

const (
	// FillRetain keeps the unshifted source values in columns [0, d).
	FillRetain ShiftFill = iota
	// FillZero writes zeros into columns [0, d).
	FillZero
)

// String implements fmt.Stringer.
func (f ShiftFill) String() string {
	switch f {
	case FillRetain:
		return "retain"
	case FillZero:
		return "zero"
	default:
		return fmt.Sprintf("ShiftFill(%d)", int(f))
	}
}

// Pad returns a copy of src surrounded by margin rows/columns of value on
// every side. The result is (H+2·margin)×(W+2·margin).
// Complexity: O((H+2m)×(W+2m)).
func Pad(src *Image, margin int, value uint8) (*Image, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if margin < 0 {
		return nil, fmt.Errorf("Pad(%d): %w", margin, ErrNegativeOffset)
	}
	h, w := src.h+2*margin, src.w+2*margin
	out := &Image{h: h, w: w, pix: make([]uint8, h*w)}
	if value != 0 {
		for i := range out.pix {
			out.pix[i] = value
		}
	}
	for y := 0; y < src.h; y++ {
		copy(out.pix[(y+margin)*w+margin:], src.Row(y))
	}

	return out, nil
}

// ShiftRightInto writes src shifted right by d columns into dst:
// dst[y][x] = src[y][x-d] for x >= d. Columns [0, d) follow fill.
// A shift of d >= width leaves every column to the fill policy.
// dst and src must have the same shape and must not alias.
// Complexity: O(H×W).
func ShiftRightInto(dst, src *Image, d int, fill ShiftFill) error {
	if dst == nil || src == nil {
		return ErrNilImage
	}
	if !dst.SameShape(src) {
		return fmt.Errorf("ShiftRightInto: %dx%d into %dx%d: %w", src.h, src.w, dst.h, dst.w, ErrShapeMismatch)
	}
	if d < 0 {
		return fmt.Errorf("ShiftRightInto(%d): %w", d, ErrNegativeOffset)
	}
	keep := min(d, src.w) // columns owned by the fill policy
	for y := 0; y < src.h; y++ {
		s, t := src.Row(y), dst.Row(y)
		if fill == FillRetain {
			copy(t[:keep], s[:keep])
		} else {
			clear(t[:keep])
		}
		if keep < src.w {
			copy(t[keep:], s[:src.w-keep])
		}
	}

	return nil
}

// AbsDiffInto writes |a[i] - b[i]| into dst for every pixel.
// All three grids must share one shape; dst may alias a or b.
// Complexity: O(H×W).
func AbsDiffInto(dst, a, b *Image) error {
	if dst == nil || a == nil || b == nil {
		return ErrNilImage
	}
	if !a.SameShape(b) || !dst.SameShape(a) {
		return fmt.Errorf("AbsDiffInto: %w", ErrShapeMismatch)
	}
	for i := range a.pix {
		x, y := a.pix[i], b.pix[i]
		if x >= y {
			dst.pix[i] = x - y
		} else {
			dst.pix[i] = y - x
		}
	}

	return nil
}

// AbsDiff allocates and returns the absolute-difference image of a and b.
func AbsDiff(a, b *Image) (*Image, error) {
	if a == nil || b == nil {
		return nil, ErrNilImage
	}
	out := &Image{h: a.h, w: a.w, pix: make([]uint8, len(a.pix))}
	if err := AbsDiffInto(out, a, b); err != nil {
		return nil, err
	}

	return out, nil
}
