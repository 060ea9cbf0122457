package snailnum

// Reduce rewrites the tree to its fixed point: while any pair sits at
// depth ≥ 4 the leftmost one explodes; otherwise, while any leaf is
// ≥ 10 the leftmost one splits. Exactly one rewrite happens per
// iteration and explode always wins over split, so a split that
// creates a too-deep pair is exploded before the next split fires.
//
// Reduce is idempotent: a reduced tree admits no rewrite and is
// returned unchanged.
func (n *Number) Reduce() {
	for {
		if h, ok := n.findDeepPair(n.root, 0); ok {
			n.explode(h)
			continue
		}
		if h, ok := n.findBigLeaf(n.root); ok {
			n.split(h)
			continue
		}

		return
	}
}

// findDeepPair returns the leftmost (pre-order) pair of two leaves at
// depth ≥ explodeDepth, if any. Depth counts the root as 0.
func (n *Number) findDeepPair(h, depth int) (int, bool) {
	if n.isLeaf(h) {
		return none, false
	}
	nd := n.nodes[h]
	if depth >= explodeDepth && n.isLeaf(nd.left) && n.isLeaf(nd.right) {
		return h, true
	}
	if found, ok := n.findDeepPair(nd.left, depth+1); ok {
		return found, ok
	}

	return n.findDeepPair(nd.right, depth+1)
}

// findBigLeaf returns the leftmost (in-order, which for leaves equals
// pre-order) leaf with value ≥ splitThreshold, if any.
func (n *Number) findBigLeaf(h int) (int, bool) {
	if n.isLeaf(h) {
		if n.nodes[h].value >= splitThreshold {
			return h, true
		}

		return none, false
	}
	if found, ok := n.findBigLeaf(n.nodes[h].left); ok {
		return found, ok
	}

	return n.findBigLeaf(n.nodes[h].right)
}

// explode redistributes pair h's two leaf values to its in-order
// neighbor leaves (when they exist) and collapses h into the leaf 0.
// The two child slots become orphans in the arena; nothing references
// them afterwards.
func (n *Number) explode(h int) {
	nd := n.nodes[h]
	lv := n.nodes[nd.left].value
	rv := n.nodes[nd.right].value

	if ln := n.leafLeftOf(h); ln != none {
		n.nodes[ln].value += lv
	}
	if rn := n.leafRightOf(h); rn != none {
		n.nodes[rn].value += rv
	}

	// Collapse the pair itself into Leaf(0).
	n.nodes[h].left = none
	n.nodes[h].right = none
	n.nodes[h].value = 0
}

// leafLeftOf finds the nearest leaf strictly left of subtree h in
// in-order: climb while h is a left child, then take the rightmost
// leaf of the first left sibling. Returns none at the left edge.
func (n *Number) leafLeftOf(h int) int {
	for {
		p := n.nodes[h].parent
		if p == none {
			return none
		}
		if n.nodes[p].left != h {
			// Came up a right edge; the sibling subtree is to our left.
			h = n.nodes[p].left
			break
		}
		h = p
	}
	for !n.isLeaf(h) {
		h = n.nodes[h].right
	}

	return h
}

// leafRightOf mirrors leafLeftOf: climb while h is a right child, then
// take the leftmost leaf of the first right sibling.
func (n *Number) leafRightOf(h int) int {
	for {
		p := n.nodes[h].parent
		if p == none {
			return none
		}
		if n.nodes[p].right != h {
			h = n.nodes[p].right
			break
		}
		h = p
	}
	for !n.isLeaf(h) {
		h = n.nodes[h].left
	}

	return h
}

// split turns leaf h of value v into the pair [v/2, v-v/2]
// (floor and ceiling halves).
func (n *Number) split(h int) {
	v := n.nodes[h].value
	left := n.alloc(v/2, none, none, h)
	right := n.alloc(v-v/2, none, none, h)

	n.nodes[h].value = 0
	n.nodes[h].left = left
	n.nodes[h].right = right
}
