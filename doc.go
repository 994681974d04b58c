// Package steroscopic is the software reference for a stereo block-matching
// disparity pipeline: given rectified left and right grayscale views, it
// finds for every pixel the horizontal displacement whose window minimises
// the sum of absolute differences (SAD).
//
// The module is organized into small packages:
//
//	grid/     — 8-bit single-channel images, padding, shifting, differencing
//	            and conversion from the standard image types
//	sad/      — SAD cost type and window/block cost kernels
//	integral/ — summed-area tables with O(1) rectangle sums
//	stereo/   — the direct matcher, the integral-image matcher, the
//	            exhaustive single-patch search, and shared validation
//	golden/   — seeded reference-vector generation for hardware test benches
//
// The two full-frame matchers agree pixel for pixel wherever every candidate
// window lies inside the image (stereo.SupportedRegion); the accelerated one
// costs O(D·H·W) regardless of window size.
//
// Quick start:
//
//	l, _ := grid.FromImage(leftImg)
//	r, _ := grid.FromImage(rightImg)
//	dm, err := stereo.Match(l, r, stereo.DefaultParams())
//	if err != nil {
//		return err
//	}
//	png.Encode(w, dm.ToGray(stereo.DefaultMaxDisparity))
package steroscopic
