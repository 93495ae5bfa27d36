// Package walker provides the cube-surface walker and the password calculator.
package walker

import (
	"fmt"

	"github.com/katalvlaran/cubewrap/cube"
	"github.com/katalvlaran/cubewrap/netgrid"
	"github.com/katalvlaran/cubewrap/rotation"
)

// Walker encapsulates the mutable walk state over an immutable Cube.
// A Walker is not safe for concurrent use; the Cube may be shared.
type Walker struct {
	cube  *cube.Cube
	state State
	opts  WalkOptions
}

// New places a walker on c, applying any number of functional Options.
// By default the walker starts on the first Open tile of face 1 in row-major
// order, heading Right.
// Returns ErrCubeNil, ErrNoStart, or ErrOptionViolation for an invalid start.
func New(c *cube.Cube, opts ...Option) (*Walker, error) {
	if c == nil {
		return nil, ErrCubeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &Walker{cube: c, opts: o}
	if o.Start != nil {
		s := *o.Start
		if s.Face < 1 || s.Face > len(c.Faces) || !rotation.InFace(s.Pos, c.Size) || s.Heading > rotation.Up {
			return nil, fmt.Errorf("%w: start %s is not on the cube", ErrOptionViolation, s)
		}
		if c.TileAt(s.Face, s.Pos) != netgrid.Open {
			return nil, fmt.Errorf("%w: start %s is not an open tile", ErrOptionViolation, s)
		}
		w.state = s
		return w, nil
	}

	start, ok := firstOpen(c.Face(1))
	if !ok {
		return nil, ErrNoStart
	}
	w.state = State{Face: 1, Pos: start, Heading: rotation.Right}

	return w, nil
}

// firstOpen returns the first Open tile of f in row-major order.
func firstOpen(f *cube.Face) (rotation.Coord, bool) {
	for row := 0; row < f.Size; row++ {
		for col := 0; col < f.Size; col++ {
			c := rotation.Coord{Row: row, Col: col}
			if f.At(c) == netgrid.Open {
				return c, true
			}
		}
	}
	return rotation.Coord{}, false
}

// State returns the current walker state.
func (w *Walker) State() State {
	return w.state
}

// Turn rotates the heading a quarter turn left or right. Position and face
// never change.
func (w *Walker) Turn(left bool) {
	if left {
		w.state.Heading = w.state.Heading.TurnLeft()
	} else {
		w.state.Heading = w.state.Heading.TurnRight()
	}
}

// StepForward moves one tile along the heading and reports whether it moved.
//
// Behavior:
//  1. Inside the face: a Wall blocks, an Open tile is entered.
//  2. Over an edge: the link of (face, heading) wraps and rotates the position
//     and heading into the entered face; a Wall there blocks the whole
//     transition, an Open tile commits face, position and heading together.
//
// A blocked step leaves the state unchanged and calls OnBlocked.
func (w *Walker) StepForward() bool {
	from := w.state
	next := from.Heading.Step(from.Pos)
	to := State{Face: from.Face, Pos: next, Heading: from.Heading}
	crossed := !rotation.InFace(next, w.cube.Size)
	if crossed {
		to.Face, to.Pos, to.Heading = w.cube.Cross(from.Face, from.Pos, from.Heading)
	}

	if w.cube.TileAt(to.Face, to.Pos) == netgrid.Wall {
		w.opts.OnBlocked(from)
		return false
	}
	w.state = to
	w.opts.OnStep(from, to, crossed)

	return true
}

// Run executes instructions in order and returns the final state. A Forward
// run performs its unit steps one by one and stops at the first Wall,
// keeping the steps already taken.
func (w *Walker) Run(instructions []Instruction) State {
	for _, in := range instructions {
		switch in.Kind {
		case TurnLeft:
			w.Turn(true)
		case TurnRight:
			w.Turn(false)
		default:
			for i := 0; i < in.Steps; i++ {
				if !w.StepForward() {
					break
				}
			}
		}
	}
	return w.state
}
