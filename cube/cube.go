package cube

import (
	"fmt"

	"github.com/katalvlaran/cubewrap/netgrid"
	"github.com/katalvlaran/cubewrap/rotation"
)

// New folds net into a Cube, applying any number of functional Options.
// The face size is inferred from the net unless WithFaceSize is given.
// Returns ErrNetNil for a nil net, ErrOptionViolation for bad options and
// ErrMalformedNet (possibly refined) when the net does not fold into a cube.
func New(net *netgrid.Net, opts ...Option) (*Cube, error) {
	if net == nil {
		return nil, ErrNetNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	size := o.FaceSize
	if size == 0 {
		var err error
		if size, err = net.FaceSize(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedNet, err)
		}
	}

	faces, _, err := ExtractFaces(net, size)
	if err != nil {
		return nil, err
	}
	links, err := InferLinks(faces, o)
	if err != nil {
		return nil, err
	}
	c := &Cube{Size: size, Faces: faces, Links: links}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Face returns the face with the given 1-based id.
// An unknown id is an invariant violation.
func (c *Cube) Face(id int) *Face {
	if id < 1 || id > len(c.Faces) {
		invariant("face %d does not exist", id)
	}
	return c.Faces[id-1]
}

// Link returns the link across edge d of face id.
// A missing entry is an invariant violation: the table is total by construction.
func (c *Cube) Link(id int, d rotation.Direction) Link {
	l, ok := c.Links[Edge{Face: id, Dir: d}]
	if !ok {
		invariant("no link for edge %s", Edge{Face: id, Dir: d})
	}
	return l
}

// TileAt returns the tile at local coordinate pos of face id.
func (c *Cube) TileAt(id int, pos rotation.Coord) netgrid.Tile {
	return c.Face(id).At(pos)
}

// Cross computes where a walker standing at pos on face id, heading d, lands
// after stepping over the edge d of that face. pos must lie on that edge.
// The exit coordinate is wrapped onto the opposite edge of an unrotated
// neighbour and then rotated, together with the heading, into the frame of
// the entered face.
func (c *Cube) Cross(id int, pos rotation.Coord, d rotation.Direction) (int, rotation.Coord, rotation.Direction) {
	next := d.Step(pos)
	if rotation.InFace(next, c.Size) {
		invariant("position %v on face %d is not on edge %s", pos, id, d)
	}
	l := c.Link(id, d)
	wrapped := rotation.Wrap(next, c.Size)

	return l.To, rotation.ApplyToCoord(l.Rotation, wrapped, c.Size), rotation.ApplyToDirection(l.Rotation, d)
}

// Validate checks the link table laws:
//   - totality: exactly 24 links, one per (face, edge);
//   - each face links to four distinct faces other than itself;
//   - symmetry: crossing F.e → {G, r} and heading back across
//     G.Opposite(r·e) returns to F with rotation Inverse(r).
//
// Violations are reported as ErrLinkConflict or ErrIncompleteFold.
func (c *Cube) Validate() error {
	if len(c.Links) != LinkCount {
		return fmt.Errorf("%w: %d of %d links known", ErrIncompleteFold, len(c.Links), LinkCount)
	}
	for _, f := range c.Faces {
		seen := make(map[int]bool, 4)
		for _, d := range rotation.Directions {
			l, ok := c.Links[Edge{Face: f.ID, Dir: d}]
			if !ok {
				return fmt.Errorf("%w: no link for edge %s", ErrIncompleteFold, Edge{Face: f.ID, Dir: d})
			}
			if l.To == f.ID || seen[l.To] {
				return fmt.Errorf("%w: face %d reaches face %d twice or itself", ErrLinkConflict, f.ID, l.To)
			}
			seen[l.To] = true
		}
	}
	return c.CheckSymmetry()
}

// CheckSymmetry verifies that every link is mirrored by its reverse link.
func (c *Cube) CheckSymmetry() error {
	for _, e := range c.Links.Edges() {
		l := c.Links[e]
		back := Edge{Face: l.To, Dir: rotation.ApplyToDirection(l.Rotation, e.Dir).Opposite()}
		want := Link{To: e.Face, Rotation: rotation.Inverse(l.Rotation)}
		if got, ok := c.Links[back]; !ok || got != want {
			return fmt.Errorf("%w: %s is %s but %s is %s, want %s", ErrLinkConflict, e, l, back, got, want)
		}
	}
	return nil
}
