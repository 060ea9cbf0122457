// Package telemetry_test: evaluation and version-sum queries over the
// worked transmissions.
package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trench/telemetry"
)

func TestVersionSum_Fixtures(t *testing.T) {
	cases := []struct {
		hex  string
		want int
	}{
		{hex: "D2FE28", want: 6},
		{hex: "8A004A801A8002F478", want: 16},
		{hex: "620080001611562C8802118E34", want: 12},
		{hex: "C0015000016115A2E0802F18234", want: 23},
		{hex: "A0016C880162017C3686B18A3D4780", want: 31},
	}
	for _, tc := range cases {
		p, err := telemetry.ParseHex(tc.hex)
		require.NoError(t, err, "hex %s", tc.hex)
		assert.Equal(t, tc.want, p.VersionSum(), "version sum of %s", tc.hex)
	}
}

func TestValue_Fixtures(t *testing.T) {
	cases := []struct {
		hex  string
		want uint64
	}{
		{hex: "D2FE28", want: 2021},
		{hex: "C200B40A82", want: 3},                 // 1 + 2
		{hex: "04005AC33890", want: 54},              // 6 * 9
		{hex: "880086C3E88112", want: 7},             // min(7, 8, 9)
		{hex: "CE00C43D881120", want: 9},             // max(7, 8, 9)
		{hex: "D8005AC2A8F0", want: 1},               // 5 < 15
		{hex: "F600BC2D8F", want: 0},                 // 5 > 15
		{hex: "9C005AC2F8F0", want: 0},               // 5 == 15
		{hex: "9C0141080250320F1802104A08", want: 1}, // (1+3) == (2*2)
	}
	for _, tc := range cases {
		p, err := telemetry.ParseHex(tc.hex)
		require.NoError(t, err, "hex %s", tc.hex)
		assert.Equal(t, tc.want, p.Value(), "value of %s", tc.hex)
	}
}

// TestValue_ComparisonArity: comparisons are strictly binary; anything
// else is a broken decoder invariant, not an input error.
func TestValue_ComparisonArity(t *testing.T) {
	p := &telemetry.Packet{
		Op: telemetry.OpEqualTo,
		Sub: []telemetry.Packet{
			{Op: telemetry.OpLiteral, Literal: 1},
		},
	}
	assert.Panics(t, func() { _ = p.Value() })
}

func TestValue_EmptyExtremum(t *testing.T) {
	p := &telemetry.Packet{Op: telemetry.OpMinimum}
	assert.Panics(t, func() { _ = p.Value() })
}

func TestOperatorKind_String(t *testing.T) {
	assert.Equal(t, "Sum", telemetry.OpSum.String())
	assert.Equal(t, "Literal", telemetry.OpLiteral.String())
	assert.Equal(t, "EqualTo", telemetry.OpEqualTo.String())
	assert.Equal(t, "OperatorKind(9)", telemetry.OperatorKind(9).String())
}
