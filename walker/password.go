package walker

import (
	"github.com/katalvlaran/cubewrap/cube"
	"github.com/katalvlaran/cubewrap/rotation"
)

// Absolute returns the 0-indexed net (row, col) of state s on cube c.
func Absolute(c *cube.Cube, s State) rotation.Coord {
	o := c.Face(s.Face).Origin()
	return rotation.Coord{Row: o.Row + s.Pos.Row, Col: o.Col + s.Pos.Col}
}

// Password computes 1000·row + 4·col + heading code with 1-indexed net
// coordinates. Heading codes are Right=0, Down=1, Left=2, Up=3.
func Password(c *cube.Cube, s State) int {
	abs := Absolute(c, s)
	return 1000*(abs.Row+1) + 4*(abs.Col+1) + s.Heading.Code()
}
