package cube

import (
	"fmt"

	"github.com/katalvlaran/cubewrap/netgrid"
)

// ExtractFaces partitions net into size×size blocks and returns one Face per
// occupied block, with ids assigned 1..6 in row-major block order.
//
// Behavior:
//  1. Partition the net; a size that does not tile it is ErrMalformedNet.
//  2. Require exactly six occupied blocks forming one 4-connected group
//     (ErrFaceCount otherwise).
//  3. Require every occupied block to be fully covered: a Void tile inside a
//     face is ErrMalformedNet.
//
// Complexity: O(W×H) time and memory.
func ExtractFaces(net *netgrid.Net, size int) ([]*Face, *netgrid.BlockGrid, error) {
	if net == nil {
		return nil, nil, ErrNetNil
	}
	bg, err := net.Blocks(size)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedNet, err)
	}

	blocks := bg.Positions()
	if len(blocks) != FaceCount {
		return nil, nil, fmt.Errorf("%w: found %d faces of size %d, want %d", ErrFaceCount, len(blocks), size, FaceCount)
	}
	if comps := bg.Components(); len(comps) != 1 {
		return nil, nil, fmt.Errorf("%w: faces form %d disconnected groups", ErrFaceCount, len(comps))
	}

	faces := make([]*Face, 0, FaceCount)
	for i, b := range blocks {
		f := &Face{
			ID:    i + 1,
			Size:  size,
			Tiles: make([][]netgrid.Tile, size),
			Pos:   NetPosition{X: b.X, Y: b.Y},
		}
		for row := 0; row < size; row++ {
			f.Tiles[row] = make([]netgrid.Tile, size)
			for col := 0; col < size; col++ {
				t := net.At(b.X*size+col, b.Y*size+row)
				if t == netgrid.Void {
					return nil, nil, fmt.Errorf("%w: face %d has a hole at local (%d,%d)", ErrMalformedNet, f.ID, row, col)
				}
				f.Tiles[row][col] = t
			}
		}
		faces = append(faces, f)
	}

	return faces, bg, nil
}
