// File: riskgrid/expand_test.go
package riskgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trench/riskgrid"
)

// TestScale_Identity verifies Scale(1) yields a grid equal to the
// original, cell for cell.
func TestScale_Identity(t *testing.T) {
	g, err := riskgrid.ParseString("19\n28")
	require.NoError(t, err)

	s := g.Scale(1)
	assert.Equal(t, g.Width, s.Width)
	assert.Equal(t, g.Height, s.Height)
	assert.Equal(t, g.Cells(), s.Cells())
}

// TestScale_SingleCell expands a 1×1 grid of risk 8 by 5.
// Block (bx,by) holds ((8-1+bx+by) mod 9)+1, so the top row reads
// 8 9 1 2 3 and each later row shifts by one more.
func TestScale_SingleCell(t *testing.T) {
	g, err := riskgrid.ParseString("8")
	require.NoError(t, err)

	s := g.Scale(5)
	require.Equal(t, 5, s.Width)
	require.Equal(t, 5, s.Height)

	want := [][]int{
		{8, 9, 1, 2, 3},
		{9, 1, 2, 3, 4},
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{3, 4, 5, 6, 7},
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, want[y][x], s.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

// TestScale_WrapNeverZero checks the modular formula cycles 9 → 1,
// never producing 0: risks stay within 1..9 in every tile.
func TestScale_WrapNeverZero(t *testing.T) {
	g, err := riskgrid.ParseString("9")
	require.NoError(t, err)

	s := g.Scale(3)
	for _, c := range s.Cells() {
		assert.GreaterOrEqual(t, c.Risk, 1)
		assert.LessOrEqual(t, c.Risk, 9)
	}
	// ((9-1+bx+by) mod 9)+1: 9 wraps to 1 at block (1,0), then climbs.
	assert.Equal(t, 1, s.At(1, 0))
	assert.Equal(t, 2, s.At(1, 1))
	assert.Equal(t, 4, s.At(2, 2))
}

// TestScale_DoesNotMutateReceiver confirms Scale is non-destructive.
func TestScale_DoesNotMutateReceiver(t *testing.T) {
	g, err := riskgrid.ParseString("12\n34")
	require.NoError(t, err)
	before := g.Cells()

	_ = g.Scale(4)
	assert.Equal(t, before, g.Cells())
}

// TestScale_BadFactor_Panics mirrors the WithScale contract.
func TestScale_BadFactor_Panics(t *testing.T) {
	g, err := riskgrid.ParseString("1")
	require.NoError(t, err)
	assert.Panics(t, func() { g.Scale(0) })
	assert.Panics(t, func() { g.Scale(-2) })
}
