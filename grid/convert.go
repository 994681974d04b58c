package grid

import (
	"image"

	"golang.org/x/image/draw"
)

// FromGray copies an *image.Gray into a new Image anchored at the origin.
// Non-zero rectangle origins and padded strides are handled.
// Complexity: O(h*w).
func FromGray(src *image.Gray) (*Image, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	out := &Image{h: b.Dy(), w: b.Dx(), pix: make([]uint8, b.Dx()*b.Dy())}
	for y := 0; y < out.h; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(out.pix[y*out.w:(y+1)*out.w], src.Pix[off:off+out.w])
	}

	return out, nil
}

// FromImage converts any decoded image to an intensity grid.
// Gray images are copied directly; everything else is drawn into a Gray
// canvas, which applies the standard ITU-R 601 luma weights.
// Complexity: O(h*w).
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if g, ok := src.(*image.Gray); ok {
		return FromGray(g)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	canvas := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Src)

	return FromGray(canvas)
}

// ToGray copies m into a new *image.Gray with bounds (0,0)-(W,H).
func (m *Image) ToGray() *image.Gray {
	out := image.NewGray(m.Bounds())
	copy(out.Pix, m.pix)

	return out
}
