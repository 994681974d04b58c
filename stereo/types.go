package stereo

import (
	"image"
	"image/color"

	"github.com/conneroisu/steroscopic-hardware/sad"
)

// DisparityMap is an H×W grid of (disparity, cost) pairs produced by a matcher.
// Width and Height match the input images. Interior is the region where the
// producing matcher guarantees full window support; pixels outside it are
// either zero (MatchBruteForce) or border-degraded (MatchIntegral).
// A DisparityMap is never mutated after a matcher returns it.
type DisparityMap struct {
	Width, Height int
	Interior      image.Rectangle

	disp []int      // row-major best disparity
	cost []sad.Cost // row-major best cost
}

// newDisparityMap allocates a zeroed h×w map.
func newDisparityMap(h, w int, interior image.Rectangle) *DisparityMap {
	return &DisparityMap{
		Width:    w,
		Height:   h,
		Interior: interior,
		disp:     make([]int, h*w),
		cost:     make([]sad.Cost, h*w),
	}
}

// At returns the best disparity and its cost at column x, row y.
// Panics when (x,y) is out of bounds.
func (m *DisparityMap) At(x, y int) (disparity int, cost sad.Cost) {
	i := y*m.Width + x
	return m.disp[i], m.cost[i]
}

// Disparity returns the best disparity at (x,y).
func (m *DisparityMap) Disparity(x, y int) int { return m.disp[y*m.Width+x] }

// Cost returns the cost of the best disparity at (x,y).
func (m *DisparityMap) Cost(x, y int) sad.Cost { return m.cost[y*m.Width+x] }

// Bounds returns (0,0)-(Width,Height).
func (m *DisparityMap) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

// Equal reports whether m and o agree on every pixel, disparity and cost.
func (m *DisparityMap) Equal(o *DisparityMap) bool {
	if m.Width != o.Width || m.Height != o.Height {
		return false
	}
	_, ok := m.FirstMismatch(o, m.Bounds())

	return !ok
}

// EqualWithin reports whether m and o agree on every pixel of r.
// r is clipped to both maps.
func (m *DisparityMap) EqualWithin(o *DisparityMap, r image.Rectangle) bool {
	_, ok := m.FirstMismatch(o, r)
	return !ok
}

// FirstMismatch returns the first pixel of r (row-major) where m and o differ
// in disparity or cost. r is clipped to both maps.
// Complexity: O(|r|).
func (m *DisparityMap) FirstMismatch(o *DisparityMap, r image.Rectangle) (image.Point, bool) {
	r = r.Intersect(m.Bounds()).Intersect(o.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			md, mc := m.At(x, y)
			od, oc := o.At(x, y)
			if md != od || mc != oc {
				return image.Pt(x, y), true
			}
		}
	}

	return image.Point{}, false
}

// ToGray renders the disparities as an 8-bit image scaled by
// d·255/maxDisparity and clamped to 255. A non-positive maxDisparity yields
// an all-black image.
// Complexity: O(H×W).
func (m *DisparityMap) ToGray(maxDisparity int) *image.Gray {
	out := image.NewGray(m.Bounds())
	if maxDisparity <= 0 {
		return out
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := min(m.disp[y*m.Width+x]*255/maxDisparity, 255)
			out.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}

	return out
}

// set stores a (disparity, cost) pair.
func (m *DisparityMap) set(x, y, d int, c sad.Cost) {
	i := y*m.Width + x
	m.disp[i], m.cost[i] = d, c
}
