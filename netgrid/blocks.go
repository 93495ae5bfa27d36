package netgrid

import "fmt"

// FaceSize infers the face edge length of a cube net as gcd(Width, Height).
// Every cube net spans 3×4, 4×3, 2×5 or 5×2 faces, whose dimensions are
// coprime, so the gcd is the face size. The guess is confirmed by area: the
// net must hold exactly 6·n² non-Void tiles, otherwise ErrFaceSize.
func (n *Net) FaceSize() (int, error) {
	size := gcd(n.Width, n.Height)
	if got, want := n.Surface(), 6*size*size; got != want {
		return 0, fmt.Errorf("%w: %d surface tiles for inferred size %d, want %d", ErrFaceSize, got, size, want)
	}
	return size, nil
}

// Blocks partitions the net into size×size blocks. A block is occupied when at
// least one of its tiles is non-Void.
// Returns ErrFaceSize when size is not positive or does not divide both
// dimensions of the net.
// Complexity: O(W×H).
func (n *Net) Blocks(size int) (*BlockGrid, error) {
	if size <= 0 || n.Width%size != 0 || n.Height%size != 0 {
		return nil, fmt.Errorf("%w: %d does not tile a %d×%d net", ErrFaceSize, size, n.Width, n.Height)
	}
	bg := &BlockGrid{
		Size: size,
		Cols: n.Width / size,
		Rows: n.Height / size,
	}
	bg.occupied = make([][]bool, bg.Rows)
	for by := range bg.occupied {
		bg.occupied[by] = make([]bool, bg.Cols)
	}
	for y, row := range n.Tiles {
		for x, t := range row {
			if t != Void {
				bg.occupied[y/size][x/size] = true
			}
		}
	}

	return bg, nil
}

// InBounds reports whether block (x,y) lies within the grid.
func (bg *BlockGrid) InBounds(x, y int) bool {
	return x >= 0 && x < bg.Cols && y >= 0 && y < bg.Rows
}

// Occupied reports whether block (x,y) holds part of the cube surface.
// Blocks outside the grid are unoccupied.
func (bg *BlockGrid) Occupied(x, y int) bool {
	return bg.InBounds(x, y) && bg.occupied[y][x]
}

// Positions returns the occupied blocks in row-major order.
func (bg *BlockGrid) Positions() []Block {
	var out []Block
	for y := 0; y < bg.Rows; y++ {
		for x := 0; x < bg.Cols; x++ {
			if bg.occupied[y][x] {
				out = append(out, Block{X: x, Y: y})
			}
		}
	}
	return out
}

// blockOffsets are the 4-neighbour offsets: N, E, S, W.
var blockOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Components finds 4-connected groups of occupied blocks.
// Components are returned in row-major order of their first block; blocks
// inside a component are in BFS order.
//
// Time:   O(B), Memory: O(B) for B = Cols×Rows.
func (bg *BlockGrid) Components() [][]Block {
	seen := make([][]bool, bg.Rows)
	for y := range seen {
		seen[y] = make([]bool, bg.Cols)
	}
	var comps [][]Block

	for y := 0; y < bg.Rows; y++ {
		for x := 0; x < bg.Cols; x++ {
			if !bg.occupied[y][x] || seen[y][x] {
				continue
			}
			// BFS to collect component
			queue := []Block{{X: x, Y: y}}
			seen[y][x] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range blockOffsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !bg.Occupied(vx, vy) || seen[vy][vx] {
						continue
					}
					seen[vy][vx] = true
					queue = append(queue, Block{X: vx, Y: vy})
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
