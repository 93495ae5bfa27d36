package cube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewrap/cube"
	"github.com/katalvlaran/cubewrap/netgrid"
	"github.com/katalvlaran/cubewrap/rotation"
)

const (
	I   = rotation.Identity
	CW  = rotation.Clockwise90
	F   = rotation.Flip180
	CCW = rotation.CounterClockwise90

	R = rotation.Right
	D = rotation.Down
	L = rotation.Left
	U = rotation.Up
)

// TestNew_ExampleLinkTable pins the full table of the worked-example net.
// Faces 1..6 fold as top, back, left, front, bottom and right.
func TestNew_ExampleLinkTable(t *testing.T) {
	c, err := cube.New(mustParse(t, exampleNet))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Size)

	want := cube.LinkTable{
		{Face: 1, Dir: R}: {To: 6, Rotation: F},
		{Face: 1, Dir: D}: {To: 4, Rotation: I},
		{Face: 1, Dir: L}: {To: 3, Rotation: CCW},
		{Face: 1, Dir: U}: {To: 2, Rotation: F},

		{Face: 2, Dir: R}: {To: 3, Rotation: I},
		{Face: 2, Dir: D}: {To: 5, Rotation: F},
		{Face: 2, Dir: L}: {To: 6, Rotation: CW},
		{Face: 2, Dir: U}: {To: 1, Rotation: F},

		{Face: 3, Dir: R}: {To: 4, Rotation: I},
		{Face: 3, Dir: D}: {To: 5, Rotation: CCW},
		{Face: 3, Dir: L}: {To: 2, Rotation: I},
		{Face: 3, Dir: U}: {To: 1, Rotation: CW},

		{Face: 4, Dir: R}: {To: 6, Rotation: CW},
		{Face: 4, Dir: D}: {To: 5, Rotation: I},
		{Face: 4, Dir: L}: {To: 3, Rotation: I},
		{Face: 4, Dir: U}: {To: 1, Rotation: I},

		{Face: 5, Dir: R}: {To: 6, Rotation: I},
		{Face: 5, Dir: D}: {To: 2, Rotation: F},
		{Face: 5, Dir: L}: {To: 3, Rotation: CW},
		{Face: 5, Dir: U}: {To: 4, Rotation: I},

		{Face: 6, Dir: R}: {To: 1, Rotation: F},
		{Face: 6, Dir: D}: {To: 2, Rotation: CCW},
		{Face: 6, Dir: L}: {To: 5, Rotation: I},
		{Face: 6, Dir: U}: {To: 4, Rotation: CCW},
	}
	assert.Equal(t, want, c.Links)
}

// TestNew_AllNets folds every cube net at several face sizes and checks the
// totality and symmetry laws.
func TestNew_AllNets(t *testing.T) {
	for name, lines := range cubeNets {
		for _, n := range []int{1, 2, 5} {
			c, err := cube.New(mustParse(t, scale(lines, n)))
			require.NoError(t, err, "%s at size %d", name, n)
			assert.Equal(t, n, c.Size, name)
			assert.Len(t, c.Links, cube.LinkCount, name)
			assert.Len(t, c.Links.Edges(), cube.LinkCount, name)
			assert.NoError(t, c.CheckSymmetry(), name)

			// Rotated or transposed layouts fold too.
			tr, err := cube.New(mustParse(t, transpose(scale(lines, n))))
			require.NoError(t, err, "%s transposed at size %d", name, n)
			assert.NoError(t, tr.Validate(), name)
		}
	}
}

// TestNew_OppositeFacesNeverLinked checks that each face has exactly one face
// it does not touch, and that the relation is mutual.
func TestNew_OppositeFacesNeverLinked(t *testing.T) {
	for name, lines := range cubeNets {
		c, err := cube.New(mustParse(t, lines))
		require.NoError(t, err, name)

		opposite := make(map[int]int, cube.FaceCount)
		for _, f := range c.Faces {
			touched := map[int]bool{f.ID: true}
			for _, d := range rotation.Directions {
				touched[c.Link(f.ID, d).To] = true
			}
			for id := 1; id <= cube.FaceCount; id++ {
				if !touched[id] {
					opposite[f.ID] = id
				}
			}
		}
		require.Len(t, opposite, cube.FaceCount, name)
		for a, b := range opposite {
			assert.Equal(t, a, opposite[b], "%s: %d and %d", name, a, b)
		}
	}
}

// TestNew_Determinism folds the same net twice and expects identical tables.
func TestNew_Determinism(t *testing.T) {
	net := mustParse(t, exampleNet)
	a, err := cube.New(net)
	require.NoError(t, err)
	b, err := cube.New(net)
	require.NoError(t, err)
	assert.Equal(t, a.Links, b.Links)
	assert.Equal(t, a.Links.Edges(), b.Links.Edges())
}

// TestNew_Hooks observes straight links, propagated links and passes.
func TestNew_Hooks(t *testing.T) {
	var straight, propagated int
	var passes []int
	_, err := cube.New(mustParse(t, exampleNet),
		cube.WithOnLink(func(_ cube.Edge, _ cube.Link, pass int) {
			if pass == 0 {
				straight++
			} else {
				propagated++
			}
		}),
		cube.WithOnPass(func(_, added int) { passes = append(passes, added) }),
	)
	require.NoError(t, err)

	assert.Equal(t, 10, straight, "five glued pairs in the net, two directions each")
	assert.Equal(t, 14, propagated)
	require.NotEmpty(t, passes)
	assert.Equal(t, 0, passes[len(passes)-1], "the last pass reaches the fixed point")

	sum := 0
	for _, added := range passes {
		sum += added
	}
	assert.Equal(t, propagated, sum)
}

// TestNew_Options covers explicit face sizes.
func TestNew_Options(t *testing.T) {
	net := mustParse(t, exampleNet)

	c, err := cube.New(net, cube.WithFaceSize(4))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Size)

	_, err = cube.New(net, cube.WithFaceSize(0))
	assert.ErrorIs(t, err, cube.ErrOptionViolation)

	_, err = cube.New(net, cube.WithFaceSize(2))
	assert.ErrorIs(t, err, cube.ErrFaceCount)

	_, err = cube.New(nil)
	assert.ErrorIs(t, err, cube.ErrNetNil)
}

// TestNew_Malformed rejects layouts that do not fold into a cube.
func TestNew_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		// no perpendicular edge pairs, nothing to propagate
		{"Strip", []string{"......"}, cube.ErrIncompleteFold},
		// the 2×2 square at the left folds two faces onto one corner
		{"Rectangle", []string{"...", "..."}, cube.ErrLinkConflict},
		{"WrongArea", []string{"....", "...."}, netgrid.ErrFaceSize},
		{"LShape", []string{".    ", ".....  "}, cube.ErrMalformedNet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cube.New(mustParse(t, tc.lines))
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, cube.ErrMalformedNet)
		})
	}
}

// TestCross follows the published transition from face 4's right edge onto
// face 6: net row 6, column 12 heading Right lands on row 9, column 15
// heading Down (1-indexed).
func TestCross(t *testing.T) {
	c, err := cube.New(mustParse(t, exampleNet))
	require.NoError(t, err)

	face, pos, heading := c.Cross(4, rotation.Coord{Row: 1, Col: 3}, R)
	assert.Equal(t, 6, face)
	assert.Equal(t, rotation.Coord{Row: 0, Col: 2}, pos)
	assert.Equal(t, D, heading)

	abs := c.Face(face).Origin()
	assert.Equal(t, 9, abs.Row+pos.Row+1)
	assert.Equal(t, 15, abs.Col+pos.Col+1)

	// and straight back
	face, pos, heading = c.Cross(6, pos, U)
	assert.Equal(t, 4, face)
	assert.Equal(t, rotation.Coord{Row: 1, Col: 3}, pos)
	assert.Equal(t, L, heading)
}

// TestCross_NotOnEdge panics when the position is not on the exit edge.
func TestCross_NotOnEdge(t *testing.T) {
	c, err := cube.New(mustParse(t, exampleNet))
	require.NoError(t, err)
	assert.Panics(t, func() { c.Cross(1, rotation.Coord{Row: 1, Col: 1}, R) })
}

// TestInvariantViolations panics on lookups a valid cube guarantees.
func TestInvariantViolations(t *testing.T) {
	c, err := cube.New(mustParse(t, exampleNet))
	require.NoError(t, err)

	assert.Panics(t, func() { c.Face(0) })
	assert.Panics(t, func() { c.Face(7) })

	delete(c.Links, cube.Edge{Face: 2, Dir: U})
	assert.PanicsWithValue(t, "cube: invariant violation: no link for edge 2.Up", func() { c.Link(2, U) })
}

// TestValidate_Tampered reports broken symmetry and duplicate neighbours.
func TestValidate_Tampered(t *testing.T) {
	c, err := cube.New(mustParse(t, exampleNet))
	require.NoError(t, err)

	c.Links[cube.Edge{Face: 4, Dir: R}] = cube.Link{To: 6, Rotation: CCW}
	assert.ErrorIs(t, c.CheckSymmetry(), cube.ErrLinkConflict)

	c.Links[cube.Edge{Face: 4, Dir: R}] = cube.Link{To: 1, Rotation: CW}
	assert.ErrorIs(t, c.Validate(), cube.ErrLinkConflict)

	delete(c.Links, cube.Edge{Face: 4, Dir: R})
	assert.ErrorIs(t, c.Validate(), cube.ErrIncompleteFold)
}

// transpose mirrors a net across its main diagonal.
func transpose(lines []string) []string {
	w := 0
	for _, line := range lines {
		if len(line) > w {
			w = len(line)
		}
	}
	out := make([]string, w)
	for x := 0; x < w; x++ {
		row := make([]byte, len(lines))
		for y, line := range lines {
			row[y] = ' '
			if x < len(line) {
				row[y] = line[x]
			}
		}
		out[x] = string(row)
	}
	return out
}
