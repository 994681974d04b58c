// Package grid holds the 8-bit intensity grids consumed by the stereo matchers.
//
// What:
//
//   - Image is a row-major H×W grid of uint8 intensities (one byte per pixel).
//   - Constructors from raw rows, *image.Gray and any decoded image.Image.
//   - The few whole-grid operations the matchers need: constant padding,
//     horizontal shifting with a selectable fill policy, absolute difference
//     and rectangular cropping.
//
// Why:
//
//   - Matchers index pixels in tight loops; a flat []uint8 with an explicit
//     width keeps that indexing branch-free and cache friendly.
//   - Keeping decoding out of the matchers lets the same code run on full
//     frames and on the small fixed-size patches used by golden models.
//
// Complexity:
//
//   - At/Set/InBounds: O(1).
//   - Pad, ShiftRightInto, AbsDiffInto, Crop, Clone: O(H×W).
//
// Errors:
//
//   - ErrEmptyImage: requested or supplied grid has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfRange: coordinate or rectangle outside the grid.
//   - ErrShapeMismatch: operands of a binary operation differ in shape.
//   - ErrNilImage: a nil *Image was supplied.
package grid
