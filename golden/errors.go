package golden

import "errors"

var (
	// ErrInvalidOptions indicates Options that cannot describe a patch pair.
	ErrInvalidOptions = errors.New("golden: invalid options")

	// ErrShiftOutOfRange indicates a planted shift outside [0, Width).
	ErrShiftOutOfRange = errors.New("golden: shift out of range")

	// ErrPatchSize indicates a crop size outside [windowSize, min(H, W)].
	ErrPatchSize = errors.New("golden: patch size out of range")

	// ErrNegativeCount indicates a negative number of requested patches.
	ErrNegativeCount = errors.New("golden: negative patch count")
)
