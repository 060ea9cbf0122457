// Package riskgrid finds the minimum-risk path through a rectangular
// grid of single-digit risk levels, entering at the top-left corner and
// leaving at the bottom-right.
//
// The grid is an implicit undirected graph: every cell is a vertex and
// every orthogonal neighbor pair is an edge whose traversal cost is the
// risk of the cell being entered. The entry cell's own risk is never
// counted. Search is A* with a Manhattan-distance heuristic,
// implemented over a lazy-decrease-key min-heap exactly like a
// Dijkstra run with a priority of g + h. Manhattan is admissible
// because each step costs at least 1; grids with 0-risk cells (the
// parser allows the digit 0) should swap in a zero heuristic via
// WithHeuristic, see that option's note.
//
// Grids may be expanded before searching: Scale(f) tiles the original
// f×f times, with the tile at block offset (bx, by) shifting every risk
// r to ((r-1+bx+by) mod 9)+1, so risks cycle through 1..9.
//
// Complexity:
//
//   - Time:  O(W·H · log(W·H)) — each cell extracted at most once,
//     each of the ≤ 4·W·H relaxations may push a heap entry.
//   - Space: O(W·H) for the distance and visited slices plus the heap.
//
// Construction validates shape eagerly: ErrEmptyGrid for no rows or no
// columns, ErrNonRectangular for ragged rows, ErrBadCell for anything
// that is not an ASCII digit.
package riskgrid
