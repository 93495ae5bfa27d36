// Package puzzle is the one-shot entry point of the cube-wrap computation:
// it reads the puzzle text, folds the net, walks the moves and returns the
// password.
//
// What:
//
//   - Parse splits the input into the net block and the move line.
//   - Solve runs net → faces → links → walk → password.
//   - Load and Decode read YAML fixture files describing puzzles with their
//     expected passwords.
//
// Input format:
//
//	        ...#        net: ' ' Void, '.' Open, '#' Wall
//	        .#..
//	...
//	                    blank line
//	10R5L5R10L4R5L5     moves: counts interleaved with L/R
//
// Errors:
//
//   - ErrParse: malformed input text, wrapping netgrid.ErrParse or
//     walker.ErrParseMoves when they are the cause.
//   - cube.ErrMalformedNet and its refinements from folding.
//   - ErrFixture: unreadable or invalid fixture file.
package puzzle
