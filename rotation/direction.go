package rotation

// stepDelta[d] is the (row, col) offset of one step towards d.
var stepDelta = [4]Coord{
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Up:    {Row: -1, Col: 0},
}

// Opposite returns the reversed direction (Up/Down, Left/Right).
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// TurnRight returns d turned a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) & 3
}

// TurnLeft returns d turned a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 3) & 3
}

// Step returns c moved one tile towards d. The result may lie outside the face.
func (d Direction) Step(c Coord) Coord {
	delta := stepDelta[d&3]
	return Coord{Row: c.Row + delta.Row, Col: c.Col + delta.Col}
}

// Delta returns the (row, col) offset of one step towards d.
func (d Direction) Delta() Coord {
	return stepDelta[d&3]
}

// Code returns the password heading code: Right=0, Down=1, Left=2, Up=3.
func (d Direction) Code() int {
	return int(d & 3)
}

// Wrap folds c back into [0,n)×[0,n) modulo n.
// It is the coordinate a walker leaving a face reaches on an unrotated
// neighbour placed directly beside it.
func Wrap(c Coord, n int) Coord {
	return Coord{Row: mod(c.Row, n), Col: mod(c.Col, n)}
}

// InFace reports whether c lies inside an n×n face.
func InFace(c Coord, n int) bool {
	return c.Row >= 0 && c.Row < n && c.Col >= 0 && c.Col < n
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
