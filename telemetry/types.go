// Package telemetry defines core types and sentinel errors
// for the telemetry subpackage of github.com/katalvlaran/trench.
package telemetry

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by hex expansion and decoding.
var (
	// ErrBadHex indicates a transmission byte outside 0-9, A-F, a-f.
	ErrBadHex = errors.New("telemetry: transmission must be hexadecimal")

	// ErrTruncated indicates the bitstream ended in the middle of a
	// field or a declared sub-packet region.
	ErrTruncated = errors.New("telemetry: bitstream truncated mid-field")

	// ErrLiteralOverflow indicates a literal wider than 64 value bits.
	ErrLiteralOverflow = errors.New("telemetry: literal value exceeds 64 bits")
)

// OperatorKind identifies what a packet computes. Values equal the
// wire type ids, so the decoder maps them by conversion; OpLiteral
// (type id 4) marks a value-carrying packet rather than an operator.
type OperatorKind int

const (
	OpSum         OperatorKind = iota // type id 0: sum of sub-values
	OpProduct                         // type id 1: product of sub-values
	OpMinimum                         // type id 2: minimum sub-value
	OpMaximum                         // type id 3: maximum sub-value
	OpLiteral                         // type id 4: literal value, no subs
	OpGreaterThan                     // type id 5: sub[0] > sub[1]
	OpLessThan                        // type id 6: sub[0] < sub[1]
	OpEqualTo                         // type id 7: sub[0] == sub[1]
)

// String returns the kind's name for diagnostics.
func (k OperatorKind) String() string {
	switch k {
	case OpSum:
		return "Sum"
	case OpProduct:
		return "Product"
	case OpMinimum:
		return "Minimum"
	case OpMaximum:
		return "Maximum"
	case OpLiteral:
		return "Literal"
	case OpGreaterThan:
		return "GreaterThan"
	case OpLessThan:
		return "LessThan"
	case OpEqualTo:
		return "EqualTo"
	default:
		return fmt.Sprintf("OperatorKind(%d)", int(k))
	}
}

// Packet is one decoded node. Op == OpLiteral means Literal holds the
// payload and Sub is nil; otherwise Sub holds the ordered sub-packets
// and Literal is zero. Packets are immutable after decoding.
type Packet struct {
	Version int          // 3-bit header version
	Op      OperatorKind // wire type id
	Literal uint64       // payload for OpLiteral packets
	Sub     []Packet     // ordered sub-packets for operator packets
}
