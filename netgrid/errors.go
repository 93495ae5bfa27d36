package netgrid

import "errors"

var (
	// ErrEmptyNet indicates the net has no rows or no columns.
	ErrEmptyNet = errors.New("netgrid: net must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("netgrid: all rows must have the same length")
	// ErrParse indicates an unknown tile rune in the textual net.
	ErrParse = errors.New("netgrid: invalid tile")
	// ErrFaceSize indicates a face size that does not tile the net into six faces.
	ErrFaceSize = errors.New("netgrid: invalid face size")
)
