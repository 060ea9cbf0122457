package riskgrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid is a rectangular field of single-digit risk levels. It is
// immutable once built; Scale returns a new Grid rather than mutating.
// Risks are stored row-major: risks[y*Width+x].
type Grid struct {
	Width, Height int
	risks         []int
}

// Parse reads a grid from r: one line per row, one ASCII digit per
// cell, no separators. Blank trailing lines are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadCell on malformed
// input, with the offending row in the error context.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)

	var risks []int
	w, h := 0, 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		// First row fixes the width; every later row must match it.
		if h == 0 {
			w = len(line)
		} else if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, h, len(line), w)
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: row %d column %d byte %q", ErrBadCell, h, i, c)
			}
			risks = append(risks, int(c-'0'))
		}
		h++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("riskgrid: read input: %w", err)
	}
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{Width: w, Height: h, risks: risks}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// At returns the risk level stored at (x, y). The coordinates must be
// in bounds; At panics otherwise, as out-of-range access is a caller bug.
// Complexity: O(1).
func (g *Grid) At(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("riskgrid: At(%d,%d) out of %dx%d grid", x, y, g.Width, g.Height))
	}

	return g.risks[g.index(x, y)]
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cells returns every cell of the grid in row-major order.
// Complexity: O(W×H).
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.risks))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, Cell{X: x, Y: y, Risk: g.risks[g.index(x, y)]})
		}
	}

	return cells
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// neighborOffsets is the fixed 4-connectivity used by the search.
// Entering a cell costs that cell's risk regardless of direction, so
// enumerating all four directions at relax time makes the implicit
// graph undirected by construction.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
