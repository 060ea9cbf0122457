// Package telemetry_test contains unit tests for packet decoding:
// structural fixtures for each framing, error surfaces, and padding
// invariance.
package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trench/telemetry"
)

// ------------------------------------------------------------------------
// 1. Structural fixtures: one per encoding shape.
// ------------------------------------------------------------------------

func TestParseHex_Literal(t *testing.T) {
	p, err := telemetry.ParseHex("D2FE28")
	require.NoError(t, err)

	assert.Equal(t, 6, p.Version)
	assert.Equal(t, telemetry.OpLiteral, p.Op)
	assert.Equal(t, uint64(2021), p.Literal)
	assert.Nil(t, p.Sub)
}

func TestParseHex_OperatorTotalLength(t *testing.T) {
	// Length-type 0: a 15-bit region tiled by two literals, 10 and 20.
	p, err := telemetry.ParseHex("38006F45291200")
	require.NoError(t, err)

	assert.Equal(t, 1, p.Version)
	assert.Equal(t, telemetry.OpLessThan, p.Op)
	require.Len(t, p.Sub, 2)
	assert.Equal(t, uint64(10), p.Sub[0].Literal)
	assert.Equal(t, uint64(20), p.Sub[1].Literal)
}

func TestParseHex_OperatorSubCount(t *testing.T) {
	// Length-type 1: three counted literals, 1, 2 and 3.
	p, err := telemetry.ParseHex("EE00D40C823060")
	require.NoError(t, err)

	assert.Equal(t, 7, p.Version)
	assert.Equal(t, telemetry.OpMaximum, p.Op)
	require.Len(t, p.Sub, 3)
	for i, want := range []uint64{1, 2, 3} {
		assert.Equal(t, telemetry.OpLiteral, p.Sub[i].Op)
		assert.Equal(t, want, p.Sub[i].Literal)
	}
}

// ------------------------------------------------------------------------
// 2. Error surfaces.
// ------------------------------------------------------------------------

func TestParseHex_BadHex(t *testing.T) {
	_, err := telemetry.ParseHex("D2FE2G")
	require.ErrorIs(t, err, telemetry.ErrBadHex)
}

func TestParseHex_Empty(t *testing.T) {
	_, err := telemetry.ParseHex("")
	require.ErrorIs(t, err, telemetry.ErrTruncated)
}

func TestParseHex_TruncatedHeader(t *testing.T) {
	// One hex char = 4 bits: enough for the version, not the type id.
	_, err := telemetry.ParseHex("D")
	require.ErrorIs(t, err, telemetry.ErrTruncated)
}

func TestParseHex_TruncatedLiteral(t *testing.T) {
	// "D2" = 11010010: version 6, type 4, then a continuation group
	// needs 5 bits but only 2 remain.
	_, err := telemetry.ParseHex("D2")
	require.ErrorIs(t, err, telemetry.ErrTruncated)
}

func TestParseHex_TruncatedLengthField(t *testing.T) {
	// Header of 38006F45291200 cut after four chars: the 15-bit total
	// length field finds only 9 bits left.
	_, err := telemetry.ParseHex("3800")
	require.ErrorIs(t, err, telemetry.ErrTruncated)
}

func TestParseHex_TruncatedCountField(t *testing.T) {
	// EE00 reaches the 11-bit sub-packet count with 9 bits remaining.
	_, err := telemetry.ParseHex("EE00")
	require.ErrorIs(t, err, telemetry.ErrTruncated)
}

// ------------------------------------------------------------------------
// 3. Decoding is pure and padding-invariant.
// ------------------------------------------------------------------------

func TestParseHex_Deterministic(t *testing.T) {
	const hex = "9C0141080250320F1802104A08"
	a, err := telemetry.ParseHex(hex)
	require.NoError(t, err)
	b, err := telemetry.ParseHex(hex)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseHex_TrailingPaddingIgnored(t *testing.T) {
	plain, err := telemetry.ParseHex("D2FE28")
	require.NoError(t, err)
	padded, err := telemetry.ParseHex("D2FE280000")
	require.NoError(t, err)
	assert.Equal(t, plain, padded)
	assert.Equal(t, plain.VersionSum(), padded.VersionSum())
	assert.Equal(t, plain.Value(), padded.Value())
}

func TestParseHex_RegionPaddingDiscarded(t *testing.T) {
	// A Sum operator declaring a 22-bit region that holds one 21-bit
	// literal (2021) plus a single padding bit. The remainder is too
	// short for another packet and must be dropped, not rejected.
	p, err := telemetry.ParseHex("20005B4BF8A")
	require.NoError(t, err)

	assert.Equal(t, telemetry.OpSum, p.Op)
	require.Len(t, p.Sub, 1)
	assert.Equal(t, telemetry.OpLiteral, p.Sub[0].Op)
	assert.Equal(t, uint64(2021), p.Sub[0].Literal)
	assert.Equal(t, 7, p.VersionSum())
	assert.Equal(t, uint64(2021), p.Value())
}

func TestParseHex_SurroundingWhitespace(t *testing.T) {
	p, err := telemetry.ParseHex("D2FE28\n")
	require.NoError(t, err)
	assert.Equal(t, uint64(2021), p.Literal)
}
