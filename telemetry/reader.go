package telemetry

import (
	"fmt"
)

// reader is a cursor over an expanded bit sequence. Each element of
// bits is 0 or 1; fields of odd widths (3, 5, 11, 15 bits) are read by
// accumulating bits most-significant first.
type reader struct {
	bits []byte
	pos  int
}

// expandHex converts a hex transmission to bits, four per character,
// most-significant bit first.
func expandHex(s string) ([]byte, error) {
	bits := make([]byte, 0, len(s)*4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		var v byte
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		default:
			return nil, fmt.Errorf("%w: byte %q at offset %d", ErrBadHex, c, i)
		}
		bits = append(bits, v>>3&1, v>>2&1, v>>1&1, v&1)
	}

	return bits, nil
}

// take reads the next n bits (n ≤ 64) as an unsigned integer, or fails
// with ErrTruncated naming the shortfall.
func (r *reader) take(n int) (uint64, error) {
	if r.pos+n > len(r.bits) {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, have %d", ErrTruncated, n, r.pos, len(r.bits)-r.pos)
	}
	var v uint64
	for i := 0; i < n; i++ {
		v = v<<1 | uint64(r.bits[r.pos])
		r.pos++
	}

	return v, nil
}

// remaining reports how many bits are left to read.
func (r *reader) remaining() int {
	return len(r.bits) - r.pos
}
