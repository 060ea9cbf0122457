package telemetry

import (
	"fmt"
)

// VersionSum sums the version of this packet and every descendant,
// the transmission's checksum-style diagnostic.
// Complexity: O(packets).
func (p *Packet) VersionSum() int {
	sum := p.Version
	for i := range p.Sub {
		sum += p.Sub[i].VersionSum()
	}

	return sum
}

// Value evaluates the expression the packet tree encodes.
//
// Literals yield their payload. Sum and Product fold all sub-values
// (a sub-packet always exists in valid transmissions). Minimum and
// Maximum take the extreme sub-value. Comparisons require exactly two
// sub-packets and yield 1 or 0.
//
// A comparison with other than two sub-packets, or an extremum with
// none, cannot be produced by a well-formed transmission; Value panics
// on them rather than guessing.
// Complexity: O(packets).
func (p *Packet) Value() uint64 {
	switch p.Op {
	case OpLiteral:
		return p.Literal

	case OpSum:
		var sum uint64
		for i := range p.Sub {
			sum += p.Sub[i].Value()
		}

		return sum

	case OpProduct:
		prod := uint64(1)
		for i := range p.Sub {
			prod *= p.Sub[i].Value()
		}

		return prod

	case OpMinimum, OpMaximum:
		if len(p.Sub) == 0 {
			panic(fmt.Sprintf("telemetry: %s packet with no sub-packets", p.Op))
		}
		best := p.Sub[0].Value()
		for i := 1; i < len(p.Sub); i++ {
			v := p.Sub[i].Value()
			if (p.Op == OpMinimum && v < best) || (p.Op == OpMaximum && v > best) {
				best = v
			}
		}

		return best

	case OpGreaterThan, OpLessThan, OpEqualTo:
		if len(p.Sub) != 2 {
			panic(fmt.Sprintf("telemetry: %s packet with %d sub-packets, want 2", p.Op, len(p.Sub)))
		}
		a, b := p.Sub[0].Value(), p.Sub[1].Value()
		truth := (p.Op == OpGreaterThan && a > b) ||
			(p.Op == OpLessThan && a < b) ||
			(p.Op == OpEqualTo && a == b)
		if truth {
			return 1
		}

		return 0

	default:
		panic(fmt.Sprintf("telemetry: unknown operator %d", int(p.Op)))
	}
}
