package stereo_test

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/steroscopic-hardware/grid"
	"github.com/conneroisu/steroscopic-hardware/stereo"
)

// matcherFunc adapts the three entry points to one signature for table tests.
type matcherFunc func(l, r *grid.Image, win, maxD int) error

var matchers = map[string]matcherFunc{
	"BruteForce": func(l, r *grid.Image, win, maxD int) error {
		_, err := stereo.MatchBruteForce(l, r, win, maxD)
		return err
	},
	"Integral": func(l, r *grid.Image, win, maxD int) error {
		_, err := stereo.MatchIntegral(l, r, win, maxD)
		return err
	},
	"Exhaustive": func(l, r *grid.Image, win, maxD int) error {
		_, _, err := stereo.SearchExhaustive(l, r, win, maxD)
		return err
	},
}

// TestValidate_Errors verifies every InvalidInput condition on every entry point.
func TestValidate_Errors(t *testing.T) {
	a := grid.MustNew(5, 7)
	b := grid.MustNew(5, 7)
	cases := []struct {
		name       string
		left, right *grid.Image
		win, maxD  int
		err        error
	}{
		{"NilLeft", nil, b, 3, 2, stereo.ErrNilImage},
		{"NilRight", a, nil, 3, 2, stereo.ErrNilImage},
		{"DimensionMismatch", a, grid.MustNew(5, 8), 3, 2, stereo.ErrDimensionMismatch},
		{"ZeroWindow", a, b, 0, 2, stereo.ErrWindowTooSmall},
		{"NegativeWindow", a, b, -3, 2, stereo.ErrWindowTooSmall},
		{"EvenWindow", a, b, 4, 2, stereo.ErrEvenWindow},
		{"WindowTooLarge", a, b, 7, 2, stereo.ErrWindowTooLarge},
		{"NegativeDisparity", a, b, 3, -1, stereo.ErrNegativeDisparity},
	}
	for name, m := range matchers {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				err := m(tc.left, tc.right, tc.win, tc.maxD)
				assert.ErrorIs(t, err, tc.err)
				assert.ErrorIs(t, err, stereo.ErrInvalidInput, "every failure is an InvalidInput")
			})
		}
	}
}

// TestValidate_Accepts checks boundary-valid parameters.
func TestValidate_Accepts(t *testing.T) {
	a := grid.MustNew(5, 7)
	b := grid.MustNew(5, 7)
	assert.NoError(t, stereo.Validate(a, b, 5, 0), "window equal to the smaller dimension")
	assert.NoError(t, stereo.Validate(a, b, 1, 100), "disparity larger than the image")
}

// TestSentinels_AreDistinct guards against accidental aliasing of sentinels.
func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		stereo.ErrNilImage, stereo.ErrDimensionMismatch, stereo.ErrWindowTooSmall,
		stereo.ErrEvenWindow, stereo.ErrWindowTooLarge, stereo.ErrNegativeDisparity,
		stereo.ErrUnknownMethod,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}

// TestRegions checks interior, supported region and the golden limit.
func TestRegions(t *testing.T) {
	assert.Equal(t, image.Rect(2, 2, 8, 4), stereo.InteriorRegion(6, 10, 5))
	assert.Equal(t, image.Rect(5, 2, 8, 4), stereo.SupportedRegion(6, 10, 5, 3))
	assert.True(t, stereo.SupportedRegion(6, 10, 5, 9).Empty(), "no column supports disparity 9")
	assert.Equal(t, image.Rect(0, 0, 10, 6), stereo.InteriorRegion(6, 10, 1))

	assert.Equal(t, 49, stereo.ValidDisparityLimit(64, 15, 64))
	assert.Equal(t, 20, stereo.ValidDisparityLimit(64, 15, 20))
	assert.Equal(t, 7, stereo.HalfWindow(15))
}

// TestParams covers defaults, validation and dispatch.
func TestParams(t *testing.T) {
	p := stereo.DefaultParams()
	assert.Equal(t, stereo.Params{BlockSize: 15, MaxDisparity: 64, Method: stereo.MethodIntegral}, p)
	require.NoError(t, p.Validate())

	bad := []struct {
		p   stereo.Params
		err error
	}{
		{stereo.Params{BlockSize: 0, MaxDisparity: 1}, stereo.ErrWindowTooSmall},
		{stereo.Params{BlockSize: 4, MaxDisparity: 1}, stereo.ErrEvenWindow},
		{stereo.Params{BlockSize: 3, MaxDisparity: -2}, stereo.ErrNegativeDisparity},
		{stereo.Params{BlockSize: 3, MaxDisparity: 1, Method: "sgbm"}, stereo.ErrUnknownMethod},
	}
	for _, b := range bad {
		assert.ErrorIs(t, b.p.Validate(), b.err, "%+v", b.p)
	}

	l, r := stereoPair(t, newRand(5), 12, 20, 3)
	viaBrute, err := stereo.Match(l, r, stereo.Params{BlockSize: 3, MaxDisparity: 6, Method: stereo.MethodBruteForce})
	require.NoError(t, err)
	direct, err := stereo.MatchBruteForce(l, r, 3, 6)
	require.NoError(t, err)
	assert.True(t, direct.Equal(viaBrute))

	viaDefault, err := stereo.Match(l, r, stereo.Params{BlockSize: 3, MaxDisparity: 6})
	require.NoError(t, err)
	accel, err := stereo.MatchIntegral(l, r, 3, 6)
	require.NoError(t, err)
	assert.True(t, accel.Equal(viaDefault), "empty method selects the integral matcher")
}

// TestWithShiftFill_PanicsOnUnknown verifies the option constructor guard.
func TestWithShiftFill_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { stereo.WithShiftFill(grid.ShiftFill(42)) })
	assert.NotPanics(t, func() { stereo.WithShiftFill(grid.FillZero) })
}
