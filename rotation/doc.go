// Package rotation models the finite group of planar quarter-turn rotations
// and the four edge directions of a square cube face.
//
// What:
//
//   - Rotation is one of Identity, Clockwise90, Flip180, CounterClockwise90.
//   - Compose(a, b) applies a then b; Inverse(r) undoes r.
//   - ApplyToDirection rotates a heading; ApplyToCoord rotates a local
//     (row, col) coordinate of an n×n face about the face centre.
//   - Direction is one of Right, Down, Left, Up and doubles as an edge name
//     and as a walker heading.
//
// Why:
//
//   - Every link of a folded cube carries a Rotation that re-expresses a
//     coordinate and a heading in the frame of the face being entered.
//     An error in this table silently corrupts every downstream link, so the
//     group is a closed 4-element enum with an explicit composition table.
//
// Coordinate formulas (n×n face, 0-indexed):
//
//	Clockwise90:        (row, col) → (col, n-1-row)
//	CounterClockwise90: (row, col) → (n-1-col, row)
//	Flip180:            (row, col) → (n-1-row, n-1-col)
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free.
package rotation
