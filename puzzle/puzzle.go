package puzzle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cubewrap/cube"
	"github.com/katalvlaran/cubewrap/netgrid"
	"github.com/katalvlaran/cubewrap/walker"
)

// Parse reads puzzle text: the net rows, one blank line, then the move line.
// Trailing blank lines are ignored; anything else after the move line, a
// missing blank line or a missing move line is ErrParse.
func Parse(text string) (*Puzzle, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	sep := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			sep = i
			break
		}
	}
	if sep <= 0 {
		return nil, fmt.Errorf("%w: expected net rows followed by a blank line", ErrParse)
	}

	var moveLines []string
	for _, line := range lines[sep+1:] {
		if strings.TrimSpace(line) != "" {
			moveLines = append(moveLines, line)
		}
	}
	if len(moveLines) != 1 {
		return nil, fmt.Errorf("%w: expected one move line after the net, got %d", ErrParse, len(moveLines))
	}

	return FromLines(lines[:sep], moveLines[0])
}

// FromLines builds a Puzzle from net rows and a move string.
func FromLines(netLines []string, moves string) (*Puzzle, error) {
	net, err := netgrid.Parse(netLines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	instructions, err := walker.ParseMoves(moves)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &Puzzle{Net: net, Moves: instructions}, nil
}

// Solve folds the net, walks the moves from the default start and returns
// the password together with the final state and the folded cube.
func Solve(p *Puzzle, opts ...Option) (*Result, error) {
	if p == nil || p.Net == nil {
		return nil, fmt.Errorf("%w: nil puzzle", ErrParse)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	fold := o.Fold
	switch {
	case o.FaceSize > 0:
		fold = append([]cube.Option{cube.WithFaceSize(o.FaceSize)}, fold...)
	case p.FaceSize > 0:
		fold = append([]cube.Option{cube.WithFaceSize(p.FaceSize)}, fold...)
	}
	c, err := cube.New(p.Net, fold...)
	if err != nil {
		return nil, err
	}

	w, err := walker.New(c, o.Walk...)
	if err != nil {
		return nil, err
	}
	final := w.Run(p.Moves)

	return &Result{Password: walker.Password(c, final), Final: final, Cube: c}, nil
}

// SolveText parses and solves puzzle text in one call.
func SolveText(text string, opts ...Option) (int, error) {
	p, err := Parse(text)
	if err != nil {
		return 0, err
	}
	res, err := Solve(p, opts...)
	if err != nil {
		return 0, err
	}
	return res.Password, nil
}
