package golden

import (
	"fmt"
	"math/rand"

	"github.com/conneroisu/steroscopic-hardware/grid"
	"github.com/conneroisu/steroscopic-hardware/sad"
	"github.com/conneroisu/steroscopic-hardware/stereo"
)

// Unrelated marks a Vector whose right patch is independent noise.
const Unrelated = -1

// Vector is one labelled patch pair.
type Vector struct {
	Left, Right *grid.Image
	Shift       int // planted displacement, or Unrelated

	// Oracle result from stereo.SearchExhaustive.
	Disparity int
	Cost      sad.Cost
}

// Recovered reports whether the oracle found the planted shift at zero cost.
func (v Vector) Recovered() bool {
	return v.Shift != Unrelated && v.Disparity == v.Shift && v.Cost == 0
}

// Generator draws labelled patch pairs. It is not safe for concurrent use.
type Generator struct {
	opts Options
	rng  *rand.Rand
}

// NewGenerator validates o and returns a Generator drawing from the
// configured source.
func NewGenerator(o Options, opts ...Option) (*Generator, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	c := gatherConfig(opts...)

	return &Generator{opts: o, rng: c.rng}, nil
}

// Options returns the patch configuration.
func (g *Generator) Options() Options { return g.opts }

// Shifted returns a pair whose right patch is the left patch moved shift
// columns to the right: right[r][c] = left[r][c−shift] for c ≥ shift, noise
// otherwise. Shifts beyond the oracle's search limit are accepted; the label
// then records whatever the oracle finds.
func (g *Generator) Shifted(shift int) (Vector, error) {
	if shift < 0 || shift >= g.opts.Width {
		return Vector{}, fmt.Errorf("shift %d, width %d: %w", shift, g.opts.Width, ErrShiftOutOfRange)
	}
	h, w := g.opts.WindowSize, g.opts.Width
	left := g.noise(h, w)
	right := grid.MustNew(h, w)
	for y := 0; y < h; y++ {
		lrow, rrow := left.Row(y), right.Row(y)
		for x := 0; x < shift; x++ {
			rrow[x] = uint8(g.rng.Intn(256))
		}
		copy(rrow[shift:], lrow[:w-shift])
	}

	return g.label(left, right, shift)
}

// Unrelated returns a pair of independent random patches. Such a pair has no
// guaranteed zero-cost match.
func (g *Generator) Unrelated() (Vector, error) {
	h, w := g.opts.WindowSize, g.opts.Width
	left := g.noise(h, w)
	right := g.noise(h, w)

	return g.label(left, right, Unrelated)
}

// Batch returns Options.Cases vectors. Exactly one, at a random index, is
// Unrelated; the others carry a random shift the oracle can reach.
func (g *Generator) Batch() ([]Vector, error) {
	limit := stereo.ValidDisparityLimit(g.opts.Width, g.opts.WindowSize, g.opts.MaxDisparity)
	upper := min(g.opts.MaxDisparity-1, limit)
	unrelated := g.rng.Intn(g.opts.Cases)

	out := make([]Vector, 0, g.opts.Cases)
	for i := 0; i < g.opts.Cases; i++ {
		var (
			v   Vector
			err error
		)
		if i == unrelated {
			v, err = g.Unrelated()
		} else {
			shift := 0
			if upper > 0 {
				shift = g.rng.Intn(upper + 1)
			}
			v, err = g.Shifted(shift)
		}
		if err != nil {
			return nil, fmt.Errorf("golden: case %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func (g *Generator) noise(h, w int) *grid.Image {
	img := grid.MustNew(h, w)
	pix := img.Pix()
	for i := range pix {
		pix[i] = uint8(g.rng.Intn(256))
	}

	return img
}

func (g *Generator) label(left, right *grid.Image, shift int) (Vector, error) {
	d, c, err := stereo.SearchExhaustive(left, right, g.opts.WindowSize, g.opts.MaxDisparity)
	if err != nil {
		return Vector{}, err
	}

	return Vector{Left: left, Right: right, Shift: shift, Disparity: d, Cost: c}, nil
}
