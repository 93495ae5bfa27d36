// Package netgrid defines tiles, the net grid and its block partition.
package netgrid

// Tile is the content of one grid cell of the net.
type Tile uint8

const (
	// Void is empty space outside the cube surface.
	Void Tile = iota
	// Open is a walkable tile.
	Open
	// Wall is a tile that blocks movement.
	Wall
)

// String returns the textual rune of the tile.
func (t Tile) String() string {
	switch t {
	case Open:
		return "."
	case Wall:
		return "#"
	default:
		return " "
	}
}

// Net is an immutable rectangular grid of tiles. Tiles[y][x] is the tile at
// row y, column x.
type Net struct {
	Width, Height int
	Tiles         [][]Tile
}

// Block is the position of an n×n block of the net in block units:
// X is the block column and Y the block row.
type Block struct {
	X, Y int
}

// BlockGrid is the partition of a Net into n×n blocks.
type BlockGrid struct {
	// Size is the block edge length n.
	Size int
	// Cols and Rows are the dimensions in blocks.
	Cols, Rows int
	occupied   [][]bool
}
