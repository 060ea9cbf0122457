package snailnum

// Add combines a and b into the reduced pair [a,b]. Neither operand is
// mutated: both are cloned into a fresh arena first, so a parsed list
// can be re-paired freely (see MaxPairMagnitude).
// Complexity: O(size(a) + size(b)) per rewrite, bounded rewrites.
func Add(a, b *Number) *Number {
	sum := &Number{root: none}
	root := sum.alloc(0, none, none, none)
	sum.nodes[root].left = sum.copyFrom(a, a.root, root)
	sum.nodes[root].right = sum.copyFrom(b, b.root, root)
	sum.root = root

	sum.Reduce()

	return sum
}

// Sum left-folds Add over the list: (((n0+n1)+n2)+…).
// Returns ErrNoNumbers on an empty list.
func Sum(ns []*Number) (*Number, error) {
	if len(ns) == 0 {
		return nil, ErrNoNumbers
	}
	acc := ns[0]
	for _, next := range ns[1:] {
		acc = Add(acc, next)
	}

	return acc, nil
}

// Magnitude folds the tree: a leaf is its value, a pair is three times
// its left magnitude plus twice its right magnitude.
func (n *Number) Magnitude() int64 {
	return n.magnitude(n.root)
}

func (n *Number) magnitude(h int) int64 {
	if n.isLeaf(h) {
		return int64(n.nodes[h].value)
	}

	return 3*n.magnitude(n.nodes[h].left) + 2*n.magnitude(n.nodes[h].right)
}

// MaxPairMagnitude returns the largest magnitude obtainable by adding
// any two distinct numbers from the list, in either order (snailfish
// addition is not commutative). Returns ErrNoNumbers with fewer than
// two numbers.
// Complexity: O(k²) additions for k numbers.
func MaxPairMagnitude(ns []*Number) (int64, error) {
	if len(ns) < 2 {
		return 0, ErrNoNumbers
	}

	var best int64
	for i := range ns {
		for j := range ns {
			if i == j {
				continue
			}
			if m := Add(ns[i], ns[j]).Magnitude(); m > best {
				best = m
			}
		}
	}

	return best, nil
}
