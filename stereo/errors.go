// SPDX-License-Identifier: MIT
// Package stereo: sentinel error set.
// Every specific sentinel wraps ErrInvalidInput, so callers may match either
// the precise condition or the whole class with errors.Is.

package stereo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella for every caller-programming error
	// detected before matching starts.
	ErrInvalidInput = errors.New("stereo: invalid input")

	// ErrNilImage indicates a nil left or right image.
	ErrNilImage = fmt.Errorf("%w: nil image", ErrInvalidInput)

	// ErrDimensionMismatch indicates left and right images of different shapes.
	ErrDimensionMismatch = fmt.Errorf("%w: left and right dimensions differ", ErrInvalidInput)

	// ErrWindowTooSmall indicates windowSize < 1.
	ErrWindowTooSmall = fmt.Errorf("%w: window size must be >= 1", ErrInvalidInput)

	// ErrEvenWindow indicates an even windowSize (no centre pixel).
	ErrEvenWindow = fmt.Errorf("%w: window size must be odd", ErrInvalidInput)

	// ErrWindowTooLarge indicates windowSize > min(height, width).
	ErrWindowTooLarge = fmt.Errorf("%w: window size exceeds image dimensions", ErrInvalidInput)

	// ErrNegativeDisparity indicates maxDisparity < 0.
	ErrNegativeDisparity = fmt.Errorf("%w: max disparity must be non-negative", ErrInvalidInput)

	// ErrUnknownMethod indicates a Params.Method that names no matcher.
	ErrUnknownMethod = fmt.Errorf("%w: unknown matching method", ErrInvalidInput)
)
