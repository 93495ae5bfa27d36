// Package rotation defines the Rotation group, edge directions and local
// coordinates shared by the cube folding and walking packages.
package rotation

import "fmt"

// Rotation is a planar rotation expressed as a count of clockwise quarter turns.
// The zero value is Identity.
type Rotation uint8

const (
	// Identity leaves coordinates and headings unchanged.
	Identity Rotation = iota
	// Clockwise90 turns a quarter turn clockwise.
	Clockwise90
	// Flip180 turns a half turn.
	Flip180
	// CounterClockwise90 turns a quarter turn counter-clockwise.
	CounterClockwise90
)

// rotationNames is indexed by Rotation.
var rotationNames = [...]string{"Identity", "Clockwise90", "Flip180", "CounterClockwise90"}

// String returns the rotation name.
func (r Rotation) String() string {
	if int(r) < len(rotationNames) {
		return rotationNames[r]
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// Direction names an edge of a face and the heading of a walker.
// Values are ordered clockwise starting at Right, so that the numeric value
// equals the heading code used by the password checksum.
type Direction uint8

const (
	// Right points towards increasing column.
	Right Direction = iota
	// Down points towards increasing row.
	Down
	// Left points towards decreasing column.
	Left
	// Up points towards decreasing row.
	Up
)

// Directions lists every Direction in clockwise order starting at Right.
var Directions = [4]Direction{Right, Down, Left, Up}

var directionNames = [...]string{"Right", "Down", "Left", "Up"}

// String returns the direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Coord is a local (row, col) position inside one face.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
