package golden

import (
	"fmt"
	"image"

	"github.com/conneroisu/steroscopic-hardware/grid"
	"github.com/conneroisu/steroscopic-hardware/stereo"
)

// Patch is a square crop of a frame pair with its disparity map.
type Patch struct {
	Origin      image.Point // top-left corner in the source frame
	Left, Right *grid.Image
	Disparity   *stereo.DisparityMap
}

// SamplePatches crops count random size×size regions at the same position
// from left and right and labels each with stereo.MatchIntegral using
// windowSize and maxDisparity. Origins are uniform over every position where
// the crop fits. Pass WithMatchOptions to change the matcher's fill policy.
//
// Errors: any stereo.ErrInvalidInput sentinel for the frame pair,
// ErrPatchSize when size is below windowSize or exceeds the frame,
// ErrNegativeCount for count < 0.
func SamplePatches(left, right *grid.Image, size, count, windowSize, maxDisparity int, opts ...Option) ([]Patch, error) {
	if err := stereo.Validate(left, right, windowSize, maxDisparity); err != nil {
		return nil, err
	}
	h, w := left.Height(), left.Width()
	if size < windowSize || size > min(h, w) {
		return nil, fmt.Errorf("size %d, window %d, frame %dx%d: %w", size, windowSize, h, w, ErrPatchSize)
	}
	if count < 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrNegativeCount)
	}
	c := gatherConfig(opts...)

	out := make([]Patch, 0, count)
	for i := 0; i < count; i++ {
		x0 := c.rng.Intn(w - size + 1)
		y0 := c.rng.Intn(h - size + 1)
		r := image.Rect(x0, y0, x0+size, y0+size)

		pl, err := left.Crop(r)
		if err != nil {
			return nil, fmt.Errorf("golden: crop left %v: %w", r, err)
		}
		pr, err := right.Crop(r)
		if err != nil {
			return nil, fmt.Errorf("golden: crop right %v: %w", r, err)
		}
		dm, err := stereo.MatchIntegral(pl, pr, windowSize, maxDisparity, c.match...)
		if err != nil {
			return nil, fmt.Errorf("golden: patch %d: %w", i, err)
		}
		out = append(out, Patch{Origin: r.Min, Left: pl, Right: pr, Disparity: dm})
	}

	return out, nil
}
