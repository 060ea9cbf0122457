package riskgrid

// Scale expands the grid into a factor×factor tiling of itself and
// returns the expanded copy; the receiver is left untouched.
//
// The tile at block offset (bx, by), both 0-indexed, transforms every
// original risk r to ((r-1+bx+by) mod 9)+1, so risks climb by the
// combined block offset and wrap from 9 back to 1 (never to 0).
// Scale(1) therefore returns a grid equal to the receiver.
//
// Expansion happens wholly before any search: MinRisk applies it once
// up front and never interleaves tiling with relaxation.
//
// Panics on factor < 1 (programmer error, same contract as WithScale).
//
// Complexity: O(W·H·factor²) time and memory.
func (g *Grid) Scale(factor int) *Grid {
	if factor < 1 {
		panic(ErrBadScale.Error())
	}

	w, h := g.Width*factor, g.Height*factor
	risks := make([]int, w*h)

	// Walk the expanded grid once; each cell pulls from its source cell
	// in the original and shifts by the block offsets.
	for y := 0; y < h; y++ {
		by := y / g.Height // block row
		sy := y % g.Height // source row within the original
		for x := 0; x < w; x++ {
			bx := x / g.Width // block column
			sx := x % g.Width // source column within the original
			r := g.risks[sy*g.Width+sx]
			risks[y*w+x] = (r-1+bx+by)%9 + 1
		}
	}

	return &Grid{Width: w, Height: h, risks: risks}
}
