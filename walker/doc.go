// Package walker simulates an agent walking over the surface of a folded cube
// and turns its final state into the puzzle password.
//
// What
//
//   - Walker holds the current face, the face-local position and the heading.
//   - Turn rotates the heading; StepForward moves one tile, crossing a cube
//     edge through the link table when the step leaves the face.
//   - Run executes a parsed instruction list: turns, and forward runs that stop
//     at the first Wall while keeping the progress already made.
//   - ParseMoves reads the move string ("10R5L5R10L4R5L5") with a participle
//     grammar.
//   - Password maps the final state back onto the net:
//     1000·row + 4·col + heading code, 1-indexed.
//
// Blocking
//
//	A step whose destination is a Wall, on the same face or across a fold,
//	leaves the whole state untouched. A heading change applied by an earlier
//	turn is kept.
//
// Options
//
//   - WithStart(s):      start from s instead of the first Open tile of face 1.
//   - WithOnStep(fn):    hook after every committed unit step.
//   - WithOnBlocked(fn): hook for every step stopped by a Wall.
//
// Errors
//
//   - ErrCubeNil         if the cube pointer is nil.
//   - ErrNoStart         if face 1 has no Open tile.
//   - ErrOptionViolation if WithStart names an invalid or blocked state.
//   - ErrParseMoves      if the move string holds anything but counts and L/R.
//
// A missing link is not an error: the cube guarantees a total table, so the
// lookup panics.
//
// Complexity: Run is O(total forward distance).
package walker
