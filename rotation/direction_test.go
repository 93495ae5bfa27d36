package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cubewrap/rotation"
)

func TestDirection_Turns(t *testing.T) {
	cases := []struct {
		d, left, right, opposite rotation.Direction
		code                     int
	}{
		{rotation.Right, rotation.Up, rotation.Down, rotation.Left, 0},
		{rotation.Down, rotation.Right, rotation.Left, rotation.Up, 1},
		{rotation.Left, rotation.Down, rotation.Up, rotation.Right, 2},
		{rotation.Up, rotation.Left, rotation.Right, rotation.Down, 3},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			assert.Equal(t, tc.left, tc.d.TurnLeft())
			assert.Equal(t, tc.right, tc.d.TurnRight())
			assert.Equal(t, tc.opposite, tc.d.Opposite())
			assert.Equal(t, tc.code, tc.d.Code())
			assert.Equal(t, tc.d, tc.d.TurnLeft().TurnRight())
		})
	}
}

func TestDirection_Step(t *testing.T) {
	c := rotation.Coord{Row: 1, Col: 1}
	assert.Equal(t, rotation.Coord{Row: 1, Col: 2}, rotation.Right.Step(c))
	assert.Equal(t, rotation.Coord{Row: 2, Col: 1}, rotation.Down.Step(c))
	assert.Equal(t, rotation.Coord{Row: 1, Col: 0}, rotation.Left.Step(c))
	assert.Equal(t, rotation.Coord{Row: 0, Col: 1}, rotation.Up.Step(c))
}

func TestWrapAndInFace(t *testing.T) {
	const n = 4
	assert.Equal(t, rotation.Coord{Row: 3, Col: 2}, rotation.Wrap(rotation.Coord{Row: -1, Col: 2}, n))
	assert.Equal(t, rotation.Coord{Row: 1, Col: 0}, rotation.Wrap(rotation.Coord{Row: 1, Col: 4}, n))
	assert.True(t, rotation.InFace(rotation.Coord{Row: 3, Col: 0}, n))
	assert.False(t, rotation.InFace(rotation.Coord{Row: 4, Col: 0}, n))
	assert.False(t, rotation.InFace(rotation.Coord{Row: 0, Col: -1}, n))
}
