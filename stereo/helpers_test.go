package stereo_test

import (
	"image"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/steroscopic-hardware/grid"
	"github.com/conneroisu/steroscopic-hardware/stereo"
)

// randomImage returns an h×w image of uniform random bytes.
func randomImage(t testing.TB, rng *rand.Rand, h, w int) *grid.Image {
	t.Helper()
	img, err := grid.New(h, w)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = img.Set(x, y, uint8(rng.Intn(256)))
		}
	}

	return img
}

// shiftedPair returns a random left patch and a right patch equal to left
// moved shift columns to the right, with noise in the first shift columns.
// SearchExhaustive therefore finds disparity shift.
func shiftedPair(t testing.TB, rng *rand.Rand, h, w, shift int) (left, right *grid.Image) {
	t.Helper()
	left = randomImage(t, rng, h, w)
	right = grid.MustNew(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(rng.Intn(256))
			if x >= shift {
				v = left.At(x-shift, y)
			}
			_ = right.Set(x, y, v)
		}
	}

	return left, right
}

// stereoPair returns a random left view and a right view in which the scene
// sits shift columns further left: right(x) = left(x+shift), with noise in the
// last shift columns. Matchers therefore find disparity shift.
func stereoPair(t testing.TB, rng *rand.Rand, h, w, shift int) (left, right *grid.Image) {
	t.Helper()
	left = randomImage(t, rng, h, w)
	right = grid.MustNew(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(rng.Intn(256))
			if x+shift < w {
				v = left.At(x+shift, y)
			}
			_ = right.Set(x, y, v)
		}
	}

	return left, right
}

// fromFunc builds an h×w image from f(x, y).
func fromFunc(t testing.TB, h, w int, f func(x, y int) uint8) *grid.Image {
	t.Helper()
	img := grid.MustNew(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(t, img.Set(x, y, f(x, y)))
		}
	}

	return img
}

// toInts copies an image into [][]int for the reference models.
func toInts(img *grid.Image) [][]int {
	out := make([][]int, img.Height())
	for y := range out {
		out[y] = make([]int, img.Width())
		for x := range out[y] {
			out[y][x] = int(img.At(x, y))
		}
	}

	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// referenceBruteForce is a literal block-extraction model of the direct
// matcher used to cross-check it. Returns disparity and cost grids.
func referenceBruteForce(left, right *grid.Image, win, maxD int) (disp, cost [][]int) {
	l, r := toInts(left), toInts(right)
	h, w := len(l), len(l[0])
	half := win / 2
	disp, cost = make([][]int, h), make([][]int, h)
	for y := range disp {
		disp[y], cost[y] = make([]int, w), make([]int, w)
	}
	for y := half; y < h-half; y++ {
		for x := half; x < w-half; x++ {
			best, bestD, found := math.MaxInt, 0, false
			for d := 0; d < maxD; d++ {
				xs := x - d
				if xs < half {
					break
				}
				s := 0
				for i := -half; i <= half; i++ {
					for j := -half; j <= half; j++ {
						s += absInt(l[y+i][x+j] - r[y+i][xs+j])
					}
				}
				if s < best {
					best, bestD, found = s, d, true
				}
			}
			if found {
				disp[y][x], cost[y][x] = bestD, best
			}
		}
	}

	return disp, cost
}

// referenceIntegral models the padded/shifted accelerated matcher with plain
// window sums instead of an integral table.
func referenceIntegral(left, right *grid.Image, win, maxD int, zeroFill bool) (disp, cost [][]int) {
	l, r := toInts(left), toInts(right)
	h, w := len(l), len(l[0])
	half := win / 2
	hp, wp := h+2*half, w+2*half

	pad := func(src [][]int) [][]int {
		out := make([][]int, hp)
		for y := range out {
			out[y] = make([]int, wp)
		}
		for y := 0; y < h; y++ {
			copy(out[y+half][half:], src[y])
		}
		return out
	}
	lp, rp := pad(l), pad(r)

	disp, cost = make([][]int, h), make([][]int, h)
	for y := range disp {
		disp[y], cost[y] = make([]int, w), make([]int, w)
		for x := range cost[y] {
			cost[y][x] = math.MaxInt
		}
	}
	for d := 0; d <= maxD; d++ {
		rs := make([][]int, hp)
		for y := range rs {
			rs[y] = make([]int, wp)
			if d == 0 || !zeroFill {
				copy(rs[y], rp[y])
			}
			for c := d; d > 0 && c < wp; c++ {
				rs[y][c] = rp[y][c-d]
			}
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				s := 0
				for i := 0; i < win; i++ {
					for j := 0; j < win; j++ {
						s += absInt(lp[y+i][x+j] - rs[y+i][x+j])
					}
				}
				if s < cost[y][x] {
					cost[y][x], disp[y][x] = s, d
				}
			}
		}
	}

	return disp, cost
}

// newRand returns a deterministic source for reproducible fixtures.
func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// assertMapMatches compares a DisparityMap to reference grids over r.
func assertMapMatches(t *testing.T, dm *stereo.DisparityMap, disp, cost [][]int, r image.Rectangle) {
	t.Helper()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d, c := dm.At(x, y)
			if d != disp[y][x] || int(c) != cost[y][x] {
				t.Fatalf("pixel (%d,%d): got (%d,%d), want (%d,%d)", x, y, d, c, disp[y][x], cost[y][x])
			}
		}
	}
}
