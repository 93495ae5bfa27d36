package rotation

// composeTable[a][b] is the rotation obtained by applying a, then b.
var composeTable = [4][4]Rotation{
	Identity:           {Identity, Clockwise90, Flip180, CounterClockwise90},
	Clockwise90:        {Clockwise90, Flip180, CounterClockwise90, Identity},
	Flip180:            {Flip180, CounterClockwise90, Identity, Clockwise90},
	CounterClockwise90: {CounterClockwise90, Identity, Clockwise90, Flip180},
}

// inverseTable[r] undoes r.
var inverseTable = [4]Rotation{
	Identity:           Identity,
	Clockwise90:        CounterClockwise90,
	Flip180:            Flip180,
	CounterClockwise90: Clockwise90,
}

// Rotations lists the four group elements.
var Rotations = [4]Rotation{Identity, Clockwise90, Flip180, CounterClockwise90}

// Compose returns the rotation equivalent to applying a and then b.
// Compose is associative and Identity is its neutral element.
func Compose(a, b Rotation) Rotation {
	return composeTable[a&3][b&3]
}

// Inverse returns the rotation r' such that Compose(r, r') == Identity.
func Inverse(r Rotation) Rotation {
	return inverseTable[r&3]
}

// ApplyToDirection rotates heading d by r.
// Clockwise90 turns right, CounterClockwise90 turns left, Flip180 reverses.
func ApplyToDirection(r Rotation, d Direction) Direction {
	// Directions are numbered clockwise, so a clockwise quarter turn is +1.
	return Direction((uint8(d) + uint8(r&3)) & 3)
}

// ApplyToCoord rotates the local coordinate c of an n×n face about the face centre.
//
//	Clockwise90:        (row, col) → (col, n-1-row)
//	CounterClockwise90: (row, col) → (n-1-col, row)
//	Flip180:            (row, col) → (n-1-row, n-1-col)
func ApplyToCoord(r Rotation, c Coord, n int) Coord {
	switch r & 3 {
	case Clockwise90:
		return Coord{Row: c.Col, Col: n - 1 - c.Row}
	case Flip180:
		return Coord{Row: n - 1 - c.Row, Col: n - 1 - c.Col}
	case CounterClockwise90:
		return Coord{Row: n - 1 - c.Col, Col: c.Row}
	default:
		return c
	}
}

// Between returns the rotation that turns heading from into heading to.
func Between(from, to Direction) Rotation {
	return Rotation((uint8(to) - uint8(from)) & 3)
}

// Corner returns the fixed quarter turn relating two perpendicular edges that
// meet at a face corner: Clockwise90 when e2 follows e1 clockwise, and
// CounterClockwise90 when it follows counter-clockwise.
//
// Corner panics when e1 and e2 are not perpendicular.
func Corner(e1, e2 Direction) Rotation {
	switch e2 {
	case e1.TurnRight():
		return Clockwise90
	case e1.TurnLeft():
		return CounterClockwise90
	default:
		panic("rotation: Corner requires perpendicular edges, got " + e1.String() + " and " + e2.String())
	}
}
