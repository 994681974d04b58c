// Package stereo estimates per-pixel horizontal disparity between a rectified
// grayscale stereo pair by minimizing a sum-of-absolute-differences (SAD)
// window cost.
//
// 🚀 What is block matching?
//
//	For a pixel (x,y) of the left view, every candidate disparity d compares
//	the window centred at (x,y) in the left view with the window centred at
//	(x−d,y) in the right view. The disparity with the smallest SAD wins; on
//	ties the smallest disparity wins.
//
// ✨ Three entry points, one cost model:
//   - MatchBruteForce: recomputes each window SAD directly:
//     O(H·W·D·win²). Interior pixels only; candidates d ∈ [0, maxDisparity),
//     stopping once the right window would leave the image.
//   - MatchIntegral: pads both views by win/2 with zeros, and for each
//     d ∈ [0, maxDisparity] builds an integral table of |L − shift(R, d)|
//     and reads every window SAD in O(1): O(H·W·D), independent of win.
//   - SearchExhaustive: the golden model for one patch: exact minimum over
//     d ∈ [0, min(maxDisparity, W − win)] of the top-left window cost.
//
// Agreement:
//
//	Over SupportedRegion(h, w, win, D), MatchIntegral(l, r, win, D) and
//	MatchBruteForce(l, r, win, D+1) produce identical disparities and costs.
//	Outside it the accelerated matcher reads zero padding and the retained
//	unshifted columns (see grid.FillRetain), exactly as the hardware
//	reference model does.
//
// ⚙️ Usage:
//
//	left, _ := grid.FromImage(decodedLeft)
//	right, _ := grid.FromImage(decodedRight)
//
//	dm, err := stereo.MatchIntegral(left, right, 15, 64)
//	if errors.Is(err, stereo.ErrInvalidInput) {
//	  // shapes differ, even window, window too large, or negative disparity
//	}
//	d, cost := dm.At(x, y)
//
// Every call is pure and allocates its own padded copies, tables and output
// grid; inputs are never written.
package stereo
