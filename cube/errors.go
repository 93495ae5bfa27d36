package cube

import (
	"errors"
	"fmt"
)

var (
	// ErrNetNil is returned if a nil net pointer is passed.
	ErrNetNil = errors.New("cube: net is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cube: invalid option supplied")
	// ErrMalformedNet indicates the net does not fold into a closed cube.
	ErrMalformedNet = errors.New("cube: malformed net")
	// ErrFaceCount indicates the net does not hold exactly six connected faces.
	ErrFaceCount = fmt.Errorf("%w: face count", ErrMalformedNet)
	// ErrLinkConflict indicates a propagated link disagrees with a recorded one.
	ErrLinkConflict = fmt.Errorf("%w: conflicting links", ErrMalformedNet)
	// ErrIncompleteFold indicates propagation stopped before all 24 links were known.
	ErrIncompleteFold = fmt.Errorf("%w: incomplete fold", ErrMalformedNet)
)

// invariant panics with a message marking an algorithm defect rather than bad input.
func invariant(format string, args ...any) {
	panic(fmt.Sprintf("cube: invariant violation: "+format, args...))
}
