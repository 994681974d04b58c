package stereo

import (
	"github.com/conneroisu/steroscopic-hardware/grid"
	"github.com/conneroisu/steroscopic-hardware/sad"
)

// SearchExhaustive is the golden model for a single patch pair: it returns
// the exact minimum-cost disparity of the top-left windowSize×windowSize
// window.
//
// For disp in [0, min(maxDisparity, W−windowSize)]:
//
//	cost(disp) = Σ_{r,c < windowSize} |left[r][c] − right[r][c+disp]|
//
// The upper bound keeps the right window inside the patch. The scan runs in
// increasing disp with a strict comparison, so the smallest disparity wins
// ties. There is no sentinel result: patches with no zero-cost match still
// report their true minimum.
//
// Complexity: O((limit+1)·windowSize²) time, O(1) memory.
//
// Errors: any ErrInvalidInput sentinel from Validate.
func SearchExhaustive(leftPatch, rightPatch *grid.Image, windowSize, maxDisparity int) (disparity int, cost sad.Cost, err error) {
	if err = Validate(leftPatch, rightPatch, windowSize, maxDisparity); err != nil {
		return 0, 0, err
	}

	half := HalfWindow(windowSize)
	limit := ValidDisparityLimit(rightPatch.Width(), windowSize, maxDisparity)

	cost = sad.Window(leftPatch, rightPatch, half, half, half, half, windowSize)
	for disp := 1; disp <= limit; disp++ {
		c := sad.Window(leftPatch, rightPatch, half, half, half+disp, half, windowSize)
		if c < cost {
			cost, disparity = c, disp
		}
	}

	return disparity, cost, nil
}
