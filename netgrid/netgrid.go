// Package netgrid provides the tile grid of a cube net.
//
// Tiles outside the cube surface are Void; tiles on it are Open or Wall.
package netgrid

import (
	"fmt"
	"strings"
)

// New constructs a Net from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyNet if tiles has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(tiles [][]Tile) (*Net, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyNet
	}
	h, w := len(tiles), len(tiles[0])
	for _, row := range tiles {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]Tile, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]Tile, w)
		copy(cells[y], tiles[y])
	}

	return &Net{Width: w, Height: h, Tiles: cells}, nil
}

// Parse builds a Net from its textual rows. ' ' is Void, '.' is Open and
// '#' is Wall; rows shorter than the widest row are padded with Void and a
// trailing '\r' is ignored.
// Returns ErrEmptyNet when no row holds a tile, ErrParse for any other rune.
func Parse(lines []string) (*Net, error) {
	w := 0
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if n := len(line); n > w {
			w = n
		}
	}
	if len(lines) == 0 || w == 0 {
		return nil, ErrEmptyNet
	}

	tiles := make([][]Tile, len(lines))
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]Tile, w)
		for x, r := range []byte(line) {
			switch r {
			case ' ':
				row[x] = Void
			case '.':
				row[x] = Open
			case '#':
				row[x] = Wall
			default:
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrParse, r, y+1, x+1)
			}
		}
		tiles[y] = row
	}

	return &Net{Width: w, Height: len(lines), Tiles: tiles}, nil
}

// InBounds reports whether (x,y) lies within the net.
// Complexity: O(1).
func (n *Net) InBounds(x, y int) bool {
	return x >= 0 && x < n.Width && y >= 0 && y < n.Height
}

// At returns the tile at column x, row y, or Void outside the net.
func (n *Net) At(x, y int) Tile {
	if !n.InBounds(x, y) {
		return Void
	}
	return n.Tiles[y][x]
}

// Surface counts the non-Void tiles of the net.
func (n *Net) Surface() int {
	count := 0
	for _, row := range n.Tiles {
		for _, t := range row {
			if t != Void {
				count++
			}
		}
	}
	return count
}

// String renders the net back into its textual form, one line per row,
// with trailing Void trimmed.
func (n *Net) String() string {
	var sb strings.Builder
	for y, row := range n.Tiles {
		var line strings.Builder
		for _, t := range row {
			line.WriteString(t.String())
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < len(n.Tiles)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
