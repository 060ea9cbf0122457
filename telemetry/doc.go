// Package telemetry decodes Buoyancy Interchange Transmission System
// (BITS) packets: a hex-encoded bitstream carrying one outermost packet
// that nests arbitrarily many sub-packets.
//
// Wire format (all fields most-significant bit first):
//
//   - 3-bit version, 3-bit type id.
//   - Type id 4 is a literal: 5-bit groups, each a continuation bit
//     followed by 4 value bits, most-significant group first, ending at
//     the first group whose continuation bit is 0.
//   - Any other type id is an operator over sub-packets. One
//     length-type bit follows: 0 means a 15-bit total bit length
//     holding the sub-packets, with any short remainder after the last
//     whole sub-packet discarded as padding; 1 means an 11-bit
//     sub-packet count.
//
// Decoding is a single recursive descent over a bit cursor; the result
// is an immutable Packet tree consumed by two queries: VersionSum (sum
// of every version in the tree) and Value (the expression the operators
// spell out — sums, products, minima, maxima, and two-operand
// comparisons yielding 1 or 0).
//
// Trailing bits after the outermost packet are hex padding and ignored.
// Running out of bits mid-field is ErrTruncated; non-hex input is
// ErrBadHex. A comparison operator with other than two sub-packets is a
// decoder-level impossibility in valid transmissions and panics.
//
// Complexity: O(bits) decode time and memory; queries are O(packets).
package telemetry
