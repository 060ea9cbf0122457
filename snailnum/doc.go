// Package snailnum implements snailfish arithmetic: binary trees whose
// leaves are non-negative integers, combined by addition and normalized
// by two local rewrite rules until neither applies.
//
// A number is stored as an arena of nodes in a flat slice, addressed by
// integer handles, with each node carrying its parent's handle. The
// explode rule needs the nearest leaf to a node's left and right in
// in-order; with parent handles that is a pure index walk — climb while
// the current node sits on the matching side, cross to the sibling, and
// descend to its extreme leaf. No pointer aliasing, no back-tracking
// state.
//
// Rewrite rules, applied to a fixed point with explode preferred:
//
//   - Explode: the leftmost pair of plain values nested at depth ≥ 4
//     adds its left value to the nearest leaf on its left and its right
//     value to the nearest leaf on its right, then becomes the leaf 0.
//   - Split: the leftmost leaf ≥ 10 becomes the pair [v/2, v-v/2].
//
// Magnitude folds the final tree as 3·left + 2·right, leaf = value.
//
// Complexity: a single rewrite is O(depth + leaves) = O(n); reduction
// terminates because explode strictly removes a too-deep pair and split
// strictly shrinks leaf values toward pairs that explode away. Arena
// slots orphaned by explode are simply left behind; a Number lives for
// one computation and is dropped whole.
package snailnum
