// Package sad implements the sum-of-absolute-differences window cost used by
// the stereo block matchers.
//
// The cost of two equal-shaped blocks is Σ|a[i] − b[i]|. Differences are
// taken in signed arithmetic and accumulated in a 32-bit Cost, so any window
// up to 4103×4103 at 8-bit depth fits without overflow.
//
// Complexity: O(n) for n compared pixels; no allocations.
package sad

import "github.com/conneroisu/steroscopic-hardware/grid"

// Cost is a non-negative SAD value.
type Cost uint32

// panicBlockLength is the stable panic message for mismatched block lengths.
const panicBlockLength = "sad: Blocks: blocks must have equal length"

// MaxCost returns the largest SAD a windowSize×windowSize window can reach:
// windowSize² × 255.
// Complexity: O(1).
func MaxCost(windowSize int) Cost {
	return Cost(windowSize) * Cost(windowSize) * 255
}

// AbsDiff returns |a − b| for two intensities.
func AbsDiff(a, b uint8) uint8 {
	if a >= b {
		return a - b
	}

	return b - a
}

// Blocks returns the SAD of two equal-length pixel blocks.
// Blocks of different lengths are a programmer error and panic.
// Complexity: O(len(a)).
func Blocks(a, b []uint8) Cost {
	if len(a) != len(b) {
		panic(panicBlockLength)
	}
	var sum Cost
	for i := range a {
		d := int32(a[i]) - int32(b[i])
		if d < 0 {
			d = -d
		}
		sum += Cost(d)
	}

	return sum
}

// Window returns the SAD between the size×size window of left centred at
// (lx,ly) and the window of right centred at (rx,ry).
//
// The caller guarantees that size is odd and both windows lie inside their
// images; see InBounds.
// Complexity: O(size²).
func Window(left, right *grid.Image, lx, ly, rx, ry, size int) Cost {
	half := size / 2
	var sum Cost
	for dy := -half; dy <= half; dy++ {
		lrow := left.Row(ly + dy)[lx-half : lx+half+1]
		rrow := right.Row(ry + dy)[rx-half : rx+half+1]
		sum += Blocks(lrow, rrow)
	}

	return sum
}

// InBounds reports whether a size×size window centred at (x,y) fits in img.
func InBounds(img *grid.Image, x, y, size int) bool {
	half := size / 2
	return x-half >= 0 && y-half >= 0 && x+half < img.Width() && y+half < img.Height()
}
