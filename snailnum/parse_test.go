// Package snailnum_test contains unit tests for parsing and rendering
// of snailfish notation, including the sentinel errors for bad input.
package snailnum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trench/snailnum"
)

func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"[1,2]",
		"[[1,2],3]",
		"[9,[8,7]]",
		"[[1,9],[8,5]]",
		"[[[[1,2],[3,4]],[[5,6],[7,8]]],9]",
		"[[[9,[3,8]],[[0,9],6]],[[[3,7],[4,9]],3]]",
		"[[[[1,3],[5,3]],[[1,3],[8,7]]],[[[4,9],[6,9]],[[8,2],[7,3]]]]",
	} {
		n, err := snailnum.Parse(s)
		require.NoError(t, err, "input %q", s)
		assert.Equal(t, s, n.String(), "round trip of %q", s)
	}
}

func TestParse_MultiDigitLeaf(t *testing.T) {
	n, err := snailnum.Parse("[13,2]")
	require.NoError(t, err)
	assert.Equal(t, "[13,2]", n.String())
	// 3*13 + 2*2
	assert.Equal(t, int64(43), n.Magnitude())
}

func TestParse_BareLeaf(t *testing.T) {
	// A lone integer is a valid (degenerate) number.
	n, err := snailnum.Parse("7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n.Magnitude())
}

func TestParse_SyntaxErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"[1,2",
		"[1 2]",
		"[1,2]]",
		"[1,]",
		"[,2]",
		"[[1,2],3]x",
		"[a,b]",
		"[-1,2]",
	} {
		_, err := snailnum.Parse(s)
		assert.ErrorIs(t, err, snailnum.ErrSyntax, "input %q", s)
	}
}
