package stereo

import (
	"fmt"
	"math"

	"github.com/conneroisu/steroscopic-hardware/grid"
	"github.com/conneroisu/steroscopic-hardware/integral"
	"github.com/conneroisu/steroscopic-hardware/sad"
)

// MatchIntegral computes a disparity map with one summed-area table per
// candidate disparity, reading every window SAD in O(1).
//
// Algorithm Outline:
//  1. Validate inputs (see Validate); no partial results on failure.
//  2. Zero-pad both views by half = windowSize/2 on every side:
//     Lp, Rp are (H+2·half)×(W+2·half).
//  3. For d = 0, 1, …, maxDisparity (inclusive):
//     a. Rs = Rp when d = 0, otherwise Rs[:, d:] = Rp[:, :−d] with columns
//     [0, d) following the fill policy (default: keep Rp's own values);
//     b. D = |Lp − Rs|;
//     c. T = integral table of D;
//     d. for every output pixel (x,y): S = T.RegionSum(y, x, win, win), the
//     window centred at (x+half, y+half) in padded coordinates;
//     e. keep S and d when S < best (strict: smallest d wins ties).
//
// Every pixel receives a value because d = 0 is always evaluated. Border
// pixels see zero padding; pixels left of SupportedRegion may also see the
// retained unshifted columns. Both are part of the reference behaviour and
// are reproduced exactly.
//
// Complexity:
//
//	Time   = O((maxDisparity+1)·(H+2·half)·(W+2·half)), independent of the
//	         window area
//	Memory = O((H+2·half)·(W+2·half)) scratch + O(H·W) output; one table and
//	         one shift/diff buffer are reused across disparity levels
//
// Errors: any ErrInvalidInput sentinel from Validate.
func MatchIntegral(left, right *grid.Image, windowSize, maxDisparity int, opts ...Option) (*DisparityMap, error) {
	if err := Validate(left, right, windowSize, maxDisparity); err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts...)

	h, w := left.Height(), left.Width()
	half := HalfWindow(windowSize)

	// Stage 1: padded views and reusable scratch.
	lp, err := grid.Pad(left, half, 0)
	if err != nil {
		return nil, fmt.Errorf("MatchIntegral: pad left: %w", err)
	}
	rp, err := grid.Pad(right, half, 0)
	if err != nil {
		return nil, fmt.Errorf("MatchIntegral: pad right: %w", err)
	}
	shifted := grid.MustNew(lp.Height(), lp.Width())
	diff := grid.MustNew(lp.Height(), lp.Width())
	table, err := integral.Build(diff)
	if err != nil {
		return nil, fmt.Errorf("MatchIntegral: table: %w", err)
	}

	// Stage 2: running best per output pixel.
	dm := newDisparityMap(h, w, InteriorRegion(h, w, windowSize))
	for i := range dm.cost {
		dm.cost[i] = math.MaxUint32
	}

	// Stage 3: sweep disparity levels.
	for d := 0; d <= maxDisparity; d++ {
		src := rp
		if d > 0 {
			if err = grid.ShiftRightInto(shifted, rp, d, cfg.fill); err != nil {
				return nil, fmt.Errorf("MatchIntegral: shift %d: %w", d, err)
			}
			src = shifted
		}
		if err = grid.AbsDiffInto(diff, lp, src); err != nil {
			return nil, fmt.Errorf("MatchIntegral: diff %d: %w", d, err)
		}
		if err = table.Rebuild(diff); err != nil {
			return nil, fmt.Errorf("MatchIntegral: rebuild %d: %w", d, err)
		}
		for y := 0; y < h; y++ {
			row := y * w
			for x := 0; x < w; x++ {
				s := sad.Cost(table.RegionSum(y, x, windowSize, windowSize))
				if s < dm.cost[row+x] {
					dm.cost[row+x] = s
					dm.disp[row+x] = d
				}
			}
		}
	}

	return dm, nil
}
