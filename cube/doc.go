// Package cube folds a 2D net into a cube: it discovers the six faces and
// infers, from net adjacency alone, the 24-entry link table describing which
// face each edge leads to and how coordinates rotate across it.
//
// What:
//
//   - ExtractFaces scans the net row-major in n×n blocks and records every
//     occupied block as a Face with ids 1..6 in scan order.
//   - InferLinks builds the LinkTable in two stages:
//     1. straight links between faces adjacent in the net (Identity rotation);
//     2. corner propagation: two known links on perpendicular edges of one
//     face meet at a cube vertex, which yields the link between the two
//     neighbours. Passes repeat until a pass inserts nothing.
//   - New runs both steps and validates the result: 24 links, four distinct
//     neighbours per face, and every link mirrored by its reverse.
//
// Why:
//
//   - The walker never needs to know how the cube is folded in 3D; crossing
//     an edge is a table lookup followed by one Rotation.
//
// Propagation rule:
//
//	Given face F with F.e1 → {G, r1} and F.e2 → {H, r2}, e1 ⟂ e2:
//	  G.(r1·e2) → {H, Inverse(r1) · Corner(e1, e2) · r2}
//
// Complexity:
//
//   - ExtractFaces: O(W×H).
//   - InferLinks:   O(P×24) for P ≤ 24 passes.
//
// Options:
//
//   - WithFaceSize(n): use n instead of inferring it from the net.
//   - WithOnLink(fn):  hook called for every inserted link.
//   - WithOnPass(fn):  hook called after every propagation pass.
//
// Errors:
//
//   - ErrNetNil:          nil net.
//   - ErrOptionViolation: invalid option (non-positive face size).
//   - ErrMalformedNet:    the net does not fold into a cube. Refined by
//     ErrFaceCount, ErrLinkConflict and ErrIncompleteFold.
//
// Lookups of links or faces that a validated Cube guarantees to exist panic
// with an "invariant violation" message instead of returning errors.
package cube
