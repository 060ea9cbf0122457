// Package snailnum defines core types and sentinel errors
// for the snailnum subpackage of github.com/katalvlaran/trench.
package snailnum

import (
	"errors"
)

// Sentinel errors returned by parsing and list-level operations.
var (
	// ErrSyntax indicates malformed snailfish notation: anything other
	// than nested [left,right] pairs over non-negative integers.
	ErrSyntax = errors.New("snailnum: malformed snailfish number")

	// ErrNoNumbers indicates a list-level operation received fewer
	// numbers than it needs (Sum needs one, MaxPairMagnitude two).
	ErrNoNumbers = errors.New("snailnum: not enough numbers")
)

// none marks the absence of a node handle (no parent, no child).
const none = -1

// explodeDepth is the nesting level at which a pair becomes unstable.
const explodeDepth = 4

// splitThreshold is the leaf value at which a leaf becomes unstable.
const splitThreshold = 10

// node is one arena slot. A node is a leaf iff left == none; pairs
// never carry a value and leaves never carry children.
type node struct {
	value               int // leaf payload; meaningless for pairs
	left, right, parent int // handles into the arena, or none
}

// Number is one owned snailfish tree. Handles are indices into nodes
// and stay stable for the Number's lifetime; slots orphaned by explode
// are never reused (numbers are short-lived, see package doc).
type Number struct {
	nodes []node
	root  int
}

// alloc appends a node and returns its handle.
func (n *Number) alloc(value, left, right, parent int) int {
	n.nodes = append(n.nodes, node{value: value, left: left, right: right, parent: parent})

	return len(n.nodes) - 1
}

// isLeaf reports whether handle h addresses a leaf.
func (n *Number) isLeaf(h int) bool {
	return n.nodes[h].left == none
}

// copyFrom clones src's subtree rooted at h into n under parent,
// returning the clone's handle. Used by Add to leave operands intact.
func (n *Number) copyFrom(src *Number, h, parent int) int {
	sn := src.nodes[h]
	if sn.left == none {
		return n.alloc(sn.value, none, none, parent)
	}
	c := n.alloc(0, none, none, parent)
	n.nodes[c].left = n.copyFrom(src, sn.left, c)
	n.nodes[c].right = n.copyFrom(src, sn.right, c)

	return c
}
