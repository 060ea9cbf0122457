package snailnum

import (
	"fmt"
	"strings"
)

// Parse builds a Number from bracketed pair notation, e.g.
// [[1,2],[3,4]]. Leaves are non-negative integers; multi-digit values
// are accepted (they arise from splits and round-trip via String).
// Returns ErrSyntax with the offending byte offset on malformed input.
// Complexity: O(len(s)) time and memory.
func Parse(s string) (*Number, error) {
	p := parser{src: s, num: &Number{root: none}}
	root, err := p.parseNode(none)
	if err != nil {
		return nil, err
	}
	if p.pos != len(s) {
		return nil, fmt.Errorf("%w: trailing input at offset %d", ErrSyntax, p.pos)
	}
	p.num.root = root

	return p.num, nil
}

// parser is a minimal recursive-descent cursor over the source string.
type parser struct {
	src string
	pos int
	num *Number
}

// parseNode parses one pair or leaf and returns its handle.
func (p *parser) parseNode(parent int) (int, error) {
	if p.pos >= len(p.src) {
		return none, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}

	// 1) A pair: '[' node ',' node ']'.
	if p.src[p.pos] == '[' {
		p.pos++ // consume '['
		h := p.num.alloc(0, none, none, parent)

		left, err := p.parseNode(h)
		if err != nil {
			return none, err
		}
		if err = p.expect(','); err != nil {
			return none, err
		}
		right, err := p.parseNode(h)
		if err != nil {
			return none, err
		}
		if err = p.expect(']'); err != nil {
			return none, err
		}

		p.num.nodes[h].left = left
		p.num.nodes[h].right = right

		return h, nil
	}

	// 2) A leaf: one or more decimal digits.
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return none, fmt.Errorf("%w: unexpected byte %q at offset %d", ErrSyntax, p.src[p.pos], p.pos)
	}
	v := 0
	for _, c := range p.src[start:p.pos] {
		v = v*10 + int(c-'0')
	}

	return p.num.alloc(v, none, none, parent), nil
}

// expect consumes one required byte or fails with its offset.
func (p *parser) expect(c byte) error {
	if p.pos >= len(p.src) {
		return fmt.Errorf("%w: unexpected end of input, want %q", ErrSyntax, c)
	}
	if p.src[p.pos] != c {
		return fmt.Errorf("%w: unexpected byte %q at offset %d, want %q", ErrSyntax, p.src[p.pos], p.pos, c)
	}
	p.pos++

	return nil
}

// String renders the canonical bracket form; Parse(n.String()) yields
// a structurally equal Number.
func (n *Number) String() string {
	var sb strings.Builder
	n.write(&sb, n.root)

	return sb.String()
}

func (n *Number) write(sb *strings.Builder, h int) {
	if n.isLeaf(h) {
		fmt.Fprintf(sb, "%d", n.nodes[h].value)
		return
	}
	sb.WriteByte('[')
	n.write(sb, n.nodes[h].left)
	sb.WriteByte(',')
	n.write(sb, n.nodes[h].right)
	sb.WriteByte(']')
}
