// Package puzzle defines the parsed puzzle, solve options and fixtures.
package puzzle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubewrap/cube"
	"github.com/katalvlaran/cubewrap/netgrid"
	"github.com/katalvlaran/cubewrap/walker"
)

// Sentinel errors for puzzle input.
var (
	// ErrParse indicates malformed puzzle text.
	ErrParse = errors.New("puzzle: invalid input")
	// ErrFixture indicates an unreadable or invalid fixture file.
	ErrFixture = errors.New("puzzle: invalid fixture")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("puzzle: invalid option supplied")
)

// Puzzle is a parsed cube-wrap input.
type Puzzle struct {
	// Net is the unfolded cube.
	Net *netgrid.Net
	// Moves is the instruction list.
	Moves []walker.Instruction
	// FaceSize, if > 0, overrides face-size inference.
	FaceSize int
}

// Result holds the outcome of Solve.
type Result struct {
	// Password is 1000·row + 4·col + heading code of the final state.
	Password int
	// Final is the walker state after the last instruction.
	Final walker.State
	// Cube is the folded net.
	Cube *cube.Cube
}

// Option configures Solve via functional arguments.
type Option func(*SolveOptions)

// SolveOptions collects the options forwarded to folding and walking.
type SolveOptions struct {
	// FaceSize, if > 0, overrides both inference and Puzzle.FaceSize.
	FaceSize int
	// Fold is passed to cube.New.
	Fold []cube.Option
	// Walk is passed to walker.New.
	Walk []walker.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SolveOptions that infer the face size and install no hooks.
func DefaultOptions() SolveOptions {
	return SolveOptions{}
}

// WithFaceSize fixes the face edge length (production inputs use 50).
//
//	n > 0: use n
//	n <= 0: invalid option → ErrOptionViolation
func WithFaceSize(n int) Option {
	return func(o *SolveOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: face size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.FaceSize = n
	}
}

// WithFoldOptions forwards options to cube.New.
func WithFoldOptions(opts ...cube.Option) Option {
	return func(o *SolveOptions) {
		o.Fold = append(o.Fold, opts...)
	}
}

// WithWalkOptions forwards options to walker.New.
func WithWalkOptions(opts ...walker.Option) Option {
	return func(o *SolveOptions) {
		o.Walk = append(o.Walk, opts...)
	}
}
