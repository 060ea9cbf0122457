package telemetry

import (
	"errors"
	"fmt"
	"strings"
)

// literalGroupLimit caps continuation groups per literal: 16 groups of
// 4 value bits fill a uint64 exactly; a 17th would overflow it.
const literalGroupLimit = 16

// ParseHex decodes the outermost packet of a hex transmission.
// Trailing bits after that packet are padding and ignored.
// Returns ErrBadHex, ErrTruncated, or ErrLiteralOverflow on bad input.
// Complexity: O(len(s)) time and memory.
func ParseHex(s string) (*Packet, error) {
	bits, err := expandHex(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}

	r := &reader{bits: bits}
	p, err := decode(r)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// decode reads one packet, sub-packets included, advancing r past it.
func decode(r *reader) (Packet, error) {
	// 1) Fixed header: 3-bit version, 3-bit type id.
	version, err := r.take(3)
	if err != nil {
		return Packet{}, err
	}
	typeID, err := r.take(3)
	if err != nil {
		return Packet{}, err
	}

	p := Packet{Version: int(version), Op: OperatorKind(typeID)}

	// 2) Literal: continuation-prefixed 5-bit groups.
	if p.Op == OpLiteral {
		p.Literal, err = decodeLiteral(r)

		return p, err
	}

	// 3) Operator: one length-type bit selects the sub-packet framing.
	lengthType, err := r.take(1)
	if err != nil {
		return Packet{}, err
	}
	if lengthType == 0 {
		p.Sub, err = decodeSubsByLength(r)
	} else {
		p.Sub, err = decodeSubsByCount(r)
	}

	return p, err
}

// decodeLiteral accumulates 4-bit chunks, most-significant first, until
// a group's continuation bit is 0.
func decodeLiteral(r *reader) (uint64, error) {
	var v uint64
	for groups := 0; ; groups++ {
		if groups == literalGroupLimit {
			return 0, fmt.Errorf("%w: more than %d groups", ErrLiteralOverflow, literalGroupLimit)
		}
		group, err := r.take(5)
		if err != nil {
			return 0, err
		}
		v = v<<4 | group&0xF
		if group>>4 == 0 {
			return v, nil
		}
	}
}

// decodeSubsByLength reads a 15-bit total bit length and decodes
// sub-packets from that region until it is spent. The length counts
// bits, not packets, so a short remainder after the last whole
// sub-packet is padding and discarded; a region longer than the stream
// itself is still ErrTruncated.
func decodeSubsByLength(r *reader) ([]Packet, error) {
	total, err := r.take(15)
	if err != nil {
		return nil, err
	}
	end := r.pos + int(total)
	if end > len(r.bits) {
		return nil, fmt.Errorf("%w: region of %d bits at offset %d, have %d", ErrTruncated, total, r.pos, r.remaining())
	}

	// Decode against a view clipped to the region so a sub-packet
	// cannot eat the enclosing stream. Exhaustion at the clipped
	// boundary marks the start of padding, not a malformed stream.
	region := &reader{bits: r.bits[:end], pos: r.pos}
	var subs []Packet
	for region.pos < end {
		sub, err := decode(region)
		if err != nil {
			if errors.Is(err, ErrTruncated) {
				break
			}

			return nil, err
		}
		subs = append(subs, sub)
	}
	r.pos = end

	return subs, nil
}

// decodeSubsByCount reads an 11-bit sub-packet count and decodes
// exactly that many sub-packets from the stream.
func decodeSubsByCount(r *reader) ([]Packet, error) {
	count, err := r.take(11)
	if err != nil {
		return nil, err
	}
	subs := make([]Packet, 0, count)
	for i := uint64(0); i < count; i++ {
		sub, err := decode(r)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, nil
}
