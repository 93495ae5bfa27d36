// Package cubewrap folds the 2D net of a cube, infers how its faces join,
// and walks an agent across the cube surface to compute the puzzle password.
//
// 🧊 What is cubewrap?
//
//	A small, pure-Go library that brings together:
//		• Rotations: the 4-element planar rotation group and edge directions
//		• Nets: tile grids, face-size inference, block connectivity
//		• Folding: face extraction and corner propagation of the 24 edge links
//		• Walking: forward/turn instructions with wall blocking across folds
//		• Puzzles: text parsing, YAML fixtures and one-call solving
//
// ✨ Why cubewrap?
//
//   - No 3D model: the cube is inferred from net adjacency alone
//   - Fail fast: non-foldable nets are typed errors, broken invariants panic
//   - Observable: OnLink, OnPass, OnStep and OnBlocked hooks
//
// Under the hood, everything is organized under five subpackages:
//
//	rotation/ — Rotation group, Direction, Coord
//	netgrid/  — Tile grid of the net, FaceSize, BlockGrid
//	cube/     — ExtractFaces, InferLinks, Cube
//	walker/   — Walker, ParseMoves, Password
//	puzzle/   — Parse, Solve, YAML fixtures
//
// Quick ASCII example:
//
//	    1
//	2 3 4
//	    5 6
//
// folds with 4 on the front, 1 on top, 3 on the left, 6 on the right,
// 5 underneath and 2 at the back.
//
//	go get github.com/katalvlaran/cubewrap
package cubewrap
