// Package cube defines faces, links, fold options and the Cube aggregate.
package cube

import (
	"fmt"

	"github.com/katalvlaran/cubewrap/netgrid"
	"github.com/katalvlaran/cubewrap/rotation"
)

// FaceCount is the number of faces of a cube.
const FaceCount = 6

// LinkCount is the number of (face, edge) pairs of a cube.
const LinkCount = FaceCount * 4

// NetPosition is the top-left corner of a face in the net, in face-size units:
// X is the block column and Y the block row.
type NetPosition struct {
	X, Y int
}

// Face is one n×n side of the cube as laid out in the net.
// It is immutable once extracted.
type Face struct {
	// ID is the 1-based scan-order identifier.
	ID int
	// Size is the edge length n.
	Size int
	// Tiles[row][col] holds the face-local tiles.
	Tiles [][]netgrid.Tile
	// Pos locates the face in the net.
	Pos NetPosition
}

// At returns the tile at local coordinate c.
// Coordinates outside the face are an invariant violation.
func (f *Face) At(c rotation.Coord) netgrid.Tile {
	if !rotation.InFace(c, f.Size) {
		invariant("coordinate %v outside face %d of size %d", c, f.ID, f.Size)
	}
	return f.Tiles[c.Row][c.Col]
}

// Origin returns the absolute net (row, col) of the face's top-left tile.
func (f *Face) Origin() rotation.Coord {
	return rotation.Coord{Row: f.Pos.Y * f.Size, Col: f.Pos.X * f.Size}
}

// Edge identifies one edge of one face.
type Edge struct {
	Face int
	Dir  rotation.Direction
}

// String formats the edge as "face.Dir".
func (e Edge) String() string {
	return fmt.Sprintf("%d.%s", e.Face, e.Dir)
}

// Link describes the face entered across an edge and the rotation that maps
// the wrapped exit coordinate and heading into the frame of that face.
type Link struct {
	To       int
	Rotation rotation.Rotation
}

// String formats the link as "→to/rotation".
func (l Link) String() string {
	return fmt.Sprintf("→%d/%s", l.To, l.Rotation)
}

// LinkTable maps every (face, edge) to its Link.
type LinkTable map[Edge]Link

// Edges returns the keys of the table sorted by face, then by direction.
func (lt LinkTable) Edges() []Edge {
	out := make([]Edge, 0, len(lt))
	for id := 1; id <= FaceCount; id++ {
		for _, d := range rotation.Directions {
			e := Edge{Face: id, Dir: d}
			if _, ok := lt[e]; ok {
				out = append(out, e)
			}
		}
	}
	return out
}

// Option configures folding via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*FoldOptions)

// FoldOptions holds parameters and callbacks to customize folding.
type FoldOptions struct {
	// FaceSize, if > 0, is used instead of inferring the size from the net.
	FaceSize int

	// OnLink is called for every inserted link. pass is 0 for straight links
	// and ≥ 1 for links found by corner propagation.
	OnLink func(e Edge, l Link, pass int)

	// OnPass is called after every propagation pass with the number of links
	// it inserted.
	OnPass func(pass, added int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns FoldOptions with an inferred face size and no-op hooks.
func DefaultOptions() FoldOptions {
	return FoldOptions{
		FaceSize: 0,
		OnLink:   func(Edge, Link, int) {},
		OnPass:   func(int, int) {},
	}
}

// WithFaceSize fixes the face edge length instead of inferring it.
//
//	n > 0: use n
//	n <= 0: invalid option → ErrOptionViolation
func WithFaceSize(n int) Option {
	return func(o *FoldOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: face size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.FaceSize = n
	}
}

// WithOnLink registers a callback to run for every inserted link.
func WithOnLink(fn func(e Edge, l Link, pass int)) Option {
	return func(o *FoldOptions) {
		if fn != nil {
			o.OnLink = fn
		}
	}
}

// WithOnPass registers a callback to run after every propagation pass.
func WithOnPass(fn func(pass, added int)) Option {
	return func(o *FoldOptions) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// Cube is the folded net: six faces and their complete link table.
// It is read-only after New returns and safe to share between goroutines.
type Cube struct {
	// Size is the face edge length n.
	Size int
	// Faces holds the faces in id order; Faces[i].ID == i+1.
	Faces []*Face
	// Links is the complete 24-entry table.
	Links LinkTable
}
