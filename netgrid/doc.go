// Package netgrid holds the 2D net of a cube as an immutable grid of tiles and
// answers the block-level questions needed to fold it.
//
// What:
//
//   - Net wraps a rectangular [][]Tile grid (Void, Open, Wall).
//   - Parse reads the textual form (' ' Void, '.' Open, '#' Wall), padding
//     short rows with Void.
//   - FaceSize infers the edge length n of a face as gcd(width, height) and
//     checks that the net holds exactly six n×n faces worth of tiles.
//   - Blocks partitions the net into n×n blocks and records which of them are
//     occupied; BlockGrid.Components finds 4-connected groups of occupied
//     blocks so that disconnected layouts can be rejected.
//
// Why:
//
//   - Face discovery and straight-link inference only look at blocks, never at
//     individual tiles, so the block view is computed once and shared.
//
// Complexity:
//
//   - Parse, FaceSize, Blocks: O(W×H) time and memory.
//   - Components:              O(B) where B = number of blocks.
//
// Errors:
//
//   - ErrEmptyNet: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths passed to New.
//   - ErrParse: a rune other than ' ', '.' or '#'.
//   - ErrFaceSize: a face size that does not tile the net.
package netgrid
