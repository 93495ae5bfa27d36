// Package walker defines instructions, walker state and walk options.
package walker

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/cubewrap/rotation"
)

// Sentinel errors for walking.
var (
	// ErrCubeNil is returned if a nil cube pointer is passed.
	ErrCubeNil = errors.New("walker: cube is nil")

	// ErrNoStart is returned when face 1 holds no Open tile.
	ErrNoStart = errors.New("walker: no open start tile on face 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walker: invalid option supplied")

	// ErrParseMoves is returned for a malformed move string.
	ErrParseMoves = errors.New("walker: invalid move string")
)

// Kind distinguishes forward runs from turns.
type Kind uint8

const (
	// Forward moves up to Steps tiles.
	Forward Kind = iota
	// TurnLeft turns a quarter counter-clockwise.
	TurnLeft
	// TurnRight turns a quarter clockwise.
	TurnRight
)

// Instruction is one element of the move list.
type Instruction struct {
	Kind  Kind
	Steps int // meaningful for Forward only
}

// String renders the instruction in move-string form.
func (in Instruction) String() string {
	switch in.Kind {
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	default:
		return strconv.Itoa(in.Steps)
	}
}

// State is the walker position: a face id, a face-local coordinate and a heading.
type State struct {
	Face    int
	Pos     rotation.Coord
	Heading rotation.Direction
}

// String formats the state as "face@(row,col)→Heading".
func (s State) String() string {
	return fmt.Sprintf("%d@%s→%s", s.Face, s.Pos, s.Heading)
}

// Option configures a Walker via functional arguments.
type Option func(*WalkOptions)

// WalkOptions holds the start override and callbacks observing a walk.
type WalkOptions struct {
	// Start, if non-nil, replaces the default start state.
	Start *State

	// OnStep is called after every committed unit step. crossed reports whether
	// the step went over a cube edge.
	OnStep func(from, to State, crossed bool)

	// OnBlocked is called when a Wall stops a step; at is the unchanged state.
	OnBlocked func(at State)
}

// DefaultOptions returns WalkOptions with the default start and no-op hooks.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Start:     nil,
		OnStep:    func(State, State, bool) {},
		OnBlocked: func(State) {},
	}
}

// WithStart starts the walk from s. The state is validated by New.
func WithStart(s State) Option {
	return func(o *WalkOptions) {
		o.Start = &s
	}
}

// WithOnStep registers a callback to run after every committed step.
func WithOnStep(fn func(from, to State, crossed bool)) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnBlocked registers a callback to run when a Wall stops a step.
func WithOnBlocked(fn func(at State)) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnBlocked = fn
		}
	}
}
