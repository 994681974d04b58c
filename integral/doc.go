// Package integral builds summed-area (integral) tables over 8-bit grids and
// answers rectangular region sums in constant time.
//
// 🚀 What is a summed-area table?
//
//	For an H×W source S, the table T has (H+1)×(W+1) entries with a zero
//	first row and column, and
//
//	  T[y+1][x+1] = T[y][x+1] + T[y+1][x] − T[y][x] + S[y][x]
//
//	so T[y][x] is the sum of every S entry above and to the left of (x,y).
//	Any rectangle [top, top+h) × [left, left+w) then sums to
//
//	  T[top+h][left+w] − T[top][left+w] − T[top+h][left] + T[top][left]
//
// ✨ Key features:
//   - Build allocates a fresh table; Rebuild refills an existing one so a
//     caller sweeping many sources of one shape reuses a single allocation.
//   - Entries are uint32 and every operation is modulo 2^32. A region sum is
//     exact whenever the true region total is below 2^32 (any window up to
//     4103×4103 of 8-bit data), even if the whole-table total wraps.
//
// Performance:
//
//   - Build / Rebuild: O(H×W) time, O((H+1)×(W+1)) memory.
//   - RegionSum / At:  O(1).
package integral
