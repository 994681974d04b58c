// SPDX-License-Identifier: MIT
// Package stereo: functional options and caller-facing parameters.
//
// Contract:
//   - Option constructors validate and panic on meaningless values
//     (programmer error); matchers themselves never panic on user input.
//   - Defaults reproduce the hardware reference model bit for bit.

package stereo

import (
	"fmt"

	"github.com/conneroisu/steroscopic-hardware/grid"
)

// Defaults of the hardware reference pipeline.
const (
	// DefaultBlockSize is the side length of the SAD window.
	DefaultBlockSize = 15
	// DefaultMaxDisparity is the largest disparity searched.
	DefaultMaxDisparity = 64
	// DefaultShiftFill keeps unshifted columns in the vacated region.
	DefaultShiftFill = grid.FillRetain
)

const panicShiftFillInvalid = "stereo: WithShiftFill: unknown fill policy"

// Option customizes MatchIntegral.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	fill grid.ShiftFill // DefaultShiftFill
}

// WithShiftFill selects how columns [0, d) of the shifted right view are
// filled at disparity d. FillRetain (the default) keeps the unshifted padded
// values; FillZero writes zeros. Inside SupportedRegion the choice has no
// effect. Panics on an unknown policy.
func WithShiftFill(f grid.ShiftFill) Option {
	if f != grid.FillRetain && f != grid.FillZero {
		panic(panicShiftFillInvalid)
	}

	return func(o *options) { o.fill = f }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{fill: DefaultShiftFill}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Method names a matching strategy.
type Method string

const (
	// MethodIntegral selects MatchIntegral.
	MethodIntegral Method = "integral"
	// MethodBruteForce selects MatchBruteForce.
	MethodBruteForce Method = "bruteforce"
)

// Params holds the matcher parameters in the shape external collaborators
// exchange them (JSON configuration, web handlers).
type Params struct {
	BlockSize    int    `json:"blockSize"`
	MaxDisparity int    `json:"maxDisparity"`
	Method       Method `json:"method,omitempty"`
}

// DefaultParams returns BlockSize=15, MaxDisparity=64, Method=MethodIntegral.
func DefaultParams() Params {
	return Params{
		BlockSize:    DefaultBlockSize,
		MaxDisparity: DefaultMaxDisparity,
		Method:       MethodIntegral,
	}
}

// Validate checks the image-independent parameters. An empty Method is
// accepted and means MethodIntegral.
func (p Params) Validate() error {
	if p.BlockSize < 1 {
		return fmt.Errorf("window %d: %w", p.BlockSize, ErrWindowTooSmall)
	}
	if p.BlockSize%2 == 0 {
		return fmt.Errorf("window %d: %w", p.BlockSize, ErrEvenWindow)
	}
	if p.MaxDisparity < 0 {
		return fmt.Errorf("max disparity %d: %w", p.MaxDisparity, ErrNegativeDisparity)
	}
	switch p.Method {
	case "", MethodIntegral, MethodBruteForce:
		return nil
	default:
		return fmt.Errorf("method %q: %w", p.Method, ErrUnknownMethod)
	}
}

// Match runs the matcher selected by p.Method. opts apply to MatchIntegral
// only.
func Match(left, right *grid.Image, p Params, opts ...Option) (*DisparityMap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Method == MethodBruteForce {
		return MatchBruteForce(left, right, p.BlockSize, p.MaxDisparity)
	}

	return MatchIntegral(left, right, p.BlockSize, p.MaxDisparity, opts...)
}
