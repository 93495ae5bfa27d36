package cube_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewrap/netgrid"
)

// exampleNet is the canonical worked-example net with 4×4 faces.
//
//	    1
//	2 3 4
//	    5 6
var exampleNet = []string{
	"        ...#",
	"        .#..",
	"        #...",
	"        ....",
	"...#.......#",
	"........#...",
	"..#....#....",
	"..........#.",
	"        ...#....",
	"        .....#..",
	"        .#......",
	"        ......#.",
}

// cubeNets are the eleven cube nets drawn with 1×1 faces.
var cubeNets = map[string][]string{
	"1-4-1/a": {".   ", "....", ".   "},
	"1-4-1/b": {".   ", "....", " .  "},
	"1-4-1/c": {".   ", "....", "  . "},
	"1-4-1/d": {".   ", "....", "   ."},
	"1-4-1/e": {" .  ", "....", " .  "},
	"1-4-1/f": {" .  ", "....", "  . "},
	"2-3-1/a": {"..  ", " ...", " .  "},
	"2-3-1/b": {"..  ", " ...", "  . "},
	"2-3-1/c": {"..  ", " ...", "   ."},
	"2-2-2":   {"..  ", " .. ", "  .."},
	"3-3":     {"...  ", "  ..."},
}

// scale blows every tile of a 1×1-face net up to an n×n block of Open tiles.
func scale(lines []string, n int) []string {
	out := make([]string, 0, len(lines)*n)
	for _, line := range lines {
		var sb strings.Builder
		for _, r := range line {
			sb.WriteString(strings.Repeat(string(r), n))
		}
		for i := 0; i < n; i++ {
			out = append(out, sb.String())
		}
	}
	return out
}

// mustParse parses lines or fails the test.
func mustParse(t *testing.T, lines []string) *netgrid.Net {
	t.Helper()
	n, err := netgrid.Parse(lines)
	require.NoError(t, err)
	return n
}
