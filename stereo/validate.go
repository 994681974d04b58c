package stereo

import (
	"fmt"
	"image"

	"github.com/conneroisu/steroscopic-hardware/grid"
)

// Validate checks the shared preconditions of every matcher.
// Stage 1: both images present.
// Stage 2: identical shapes.
// Stage 3: window odd, ≥ 1 and ≤ min(height, width).
// Stage 4: maxDisparity ≥ 0.
// The first violation is returned, wrapped with the offending values.
// Complexity: O(1).
func Validate(left, right *grid.Image, windowSize, maxDisparity int) error {
	if left == nil || right == nil {
		return ErrNilImage
	}
	if !left.SameShape(right) {
		return fmt.Errorf("left %dx%d, right %dx%d: %w",
			left.Height(), left.Width(), right.Height(), right.Width(), ErrDimensionMismatch)
	}
	if windowSize < 1 {
		return fmt.Errorf("window %d: %w", windowSize, ErrWindowTooSmall)
	}
	if windowSize%2 == 0 {
		return fmt.Errorf("window %d: %w", windowSize, ErrEvenWindow)
	}
	if windowSize > min(left.Height(), left.Width()) {
		return fmt.Errorf("window %d for %dx%d: %w", windowSize, left.Height(), left.Width(), ErrWindowTooLarge)
	}
	if maxDisparity < 0 {
		return fmt.Errorf("max disparity %d: %w", maxDisparity, ErrNegativeDisparity)
	}

	return nil
}

// HalfWindow returns windowSize/2, the distance from a window's centre to its edge.
func HalfWindow(windowSize int) int { return windowSize / 2 }

// InteriorRegion returns the pixels with full window support:
// half ≤ y < h−half and half ≤ x < w−half.
func InteriorRegion(h, w, windowSize int) image.Rectangle {
	half := HalfWindow(windowSize)
	return clampedRect(half, half, w-half, h-half)
}

// SupportedRegion returns the interior pixels whose right-view window stays
// inside the image for every candidate up to maxDisparity:
// half+maxDisparity ≤ x < w−half. It is empty when no such column exists.
func SupportedRegion(h, w, windowSize, maxDisparity int) image.Rectangle {
	half := HalfWindow(windowSize)
	return clampedRect(half+maxDisparity, half, w-half, h-half)
}

// ValidDisparityLimit returns the largest disparity the golden search visits:
// min(maxDisparity, width−windowSize).
func ValidDisparityLimit(width, windowSize, maxDisparity int) int {
	return min(maxDisparity, width-windowSize)
}

// clampedRect builds a rectangle without image.Rect's corner swapping, so an
// inverted range collapses to an empty rectangle.
func clampedRect(x0, y0, x1, y1 int) image.Rectangle {
	if x0 > x1 {
		x0 = x1
	}
	if y0 > y1 {
		y0 = y1
	}

	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}
