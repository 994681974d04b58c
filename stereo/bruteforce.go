package stereo

import (
	"math"

	"github.com/conneroisu/steroscopic-hardware/grid"
	"github.com/conneroisu/steroscopic-hardware/sad"
)

// MatchBruteForce computes a disparity map by evaluating every window SAD
// directly.
//
// Algorithm Outline:
//  1. Validate inputs (see Validate); no partial results on failure.
//  2. For each interior pixel (x,y), half ≤ y < H−half, half ≤ x < W−half:
//     for d = 0, 1, …, maxDisparity−1:
//     stop as soon as x−d−half < 0 (larger d only move further left);
//     cost = SAD(left window at (x,y), right window at (x−d,y));
//     keep cost and d when cost < best (strict: smallest d wins ties).
//  3. Pixels outside the interior stay (0, 0). So does an interior pixel
//     when no candidate is evaluated, which happens only for maxDisparity 0.
//
// Complexity:
//
//	Time   = O(H·W·maxDisparity·windowSize²)
//	Memory = O(H·W) for the output map
//
// Errors: any ErrInvalidInput sentinel from Validate.
func MatchBruteForce(left, right *grid.Image, windowSize, maxDisparity int) (*DisparityMap, error) {
	if err := Validate(left, right, windowSize, maxDisparity); err != nil {
		return nil, err
	}

	h, w := left.Height(), left.Width()
	half := HalfWindow(windowSize)
	dm := newDisparityMap(h, w, InteriorRegion(h, w, windowSize))

	var (
		x, y, d int
		best    sad.Cost
		bestD   int
		found   bool
	)
	for y = half; y < h-half; y++ {
		for x = half; x < w-half; x++ {
			best, bestD, found = math.MaxUint32, 0, false
			for d = 0; d < maxDisparity; d++ {
				xs := x - d
				if xs-half < 0 {
					break
				}
				c := sad.Window(left, right, x, y, xs, y, windowSize)
				if c < best {
					best, bestD, found = c, d, true
				}
			}
			if found {
				dm.set(x, y, bestD, best)
			}
		}
	}

	return dm, nil
}
