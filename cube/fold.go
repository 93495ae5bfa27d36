package cube

import (
	"fmt"

	"github.com/katalvlaran/cubewrap/netgrid"
	"github.com/katalvlaran/cubewrap/rotation"
)

// folder encapsulates mutable link-inference state.
type folder struct {
	faces   []*Face
	byBlock map[netgrid.Block]int
	links   LinkTable
	opts    FoldOptions
}

// InferLinks derives the complete link table for faces laid out in a net.
//
// Behavior:
//  1. Straight links: a face whose neighbouring block in direction d is another
//     face links to it with rotation.Identity.
//  2. Corner propagation: repeat passes over every face and every ordered pair
//     of perpendicular known edges until a pass inserts nothing.
//  3. Fewer than 24 links at the fixed point is ErrIncompleteFold; a derived
//     link disagreeing with a recorded one is ErrLinkConflict.
//
// Complexity: O(P×24) time for P passes, O(24) memory.
func InferLinks(faces []*Face, opts FoldOptions) (LinkTable, error) {
	if opts.OnLink == nil || opts.OnPass == nil {
		d := DefaultOptions()
		if opts.OnLink == nil {
			opts.OnLink = d.OnLink
		}
		if opts.OnPass == nil {
			opts.OnPass = d.OnPass
		}
	}
	f := &folder{
		faces:   faces,
		byBlock: make(map[netgrid.Block]int, len(faces)),
		links:   make(LinkTable, LinkCount),
		opts:    opts,
	}
	for _, face := range faces {
		f.byBlock[netgrid.Block{X: face.Pos.X, Y: face.Pos.Y}] = face.ID
	}

	f.straight()
	for pass := 1; ; pass++ {
		added, err := f.propagate(pass)
		if err != nil {
			return nil, err
		}
		f.opts.OnPass(pass, added)
		if added == 0 {
			break
		}
	}

	if len(f.links) != LinkCount {
		return nil, fmt.Errorf("%w: %d of %d links known", ErrIncompleteFold, len(f.links), LinkCount)
	}
	return f.links, nil
}

// straight records Identity links between faces adjacent in the net.
func (f *folder) straight() {
	for _, face := range f.faces {
		for _, d := range rotation.Directions {
			delta := d.Delta()
			nb := netgrid.Block{X: face.Pos.X + delta.Col, Y: face.Pos.Y + delta.Row}
			if to, ok := f.byBlock[nb]; ok {
				f.insert(Edge{Face: face.ID, Dir: d}, Link{To: to, Rotation: rotation.Identity}, 0)
			}
		}
	}
}

// propagate runs one corner-propagation pass and returns the number of
// inserted links.
func (f *folder) propagate(pass int) (int, error) {
	added := 0
	for _, face := range f.faces {
		for _, e1 := range rotation.Directions {
			l1, ok := f.links[Edge{Face: face.ID, Dir: e1}]
			if !ok {
				continue
			}
			for _, e2 := range [2]rotation.Direction{e1.TurnRight(), e1.TurnLeft()} {
				l2, ok := f.links[Edge{Face: face.ID, Dir: e2}]
				if !ok {
					continue
				}
				// l1.To and l2.To share the corner of face between e1 and e2.
				edge := Edge{Face: l1.To, Dir: rotation.ApplyToDirection(l1.Rotation, e2)}
				cand := Link{
					To: l2.To,
					Rotation: rotation.Compose(
						rotation.Compose(rotation.Inverse(l1.Rotation), rotation.Corner(e1, e2)),
						l2.Rotation,
					),
				}
				if cand.To == edge.Face {
					return 0, fmt.Errorf("%w: corner of face %d links face %d to itself", ErrMalformedNet, face.ID, edge.Face)
				}
				if have, ok := f.links[edge]; ok {
					if have != cand {
						return 0, fmt.Errorf("%w: %s is %s, corner of face %d derives %s",
							ErrLinkConflict, edge, have, face.ID, cand)
					}
					continue
				}
				f.insert(edge, cand, pass)
				added++
			}
		}
	}
	return added, nil
}

// insert records a new link and notifies OnLink.
func (f *folder) insert(e Edge, l Link, pass int) {
	f.links[e] = l
	f.opts.OnLink(e, l, pass)
}
