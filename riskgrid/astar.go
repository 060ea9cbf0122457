package riskgrid

import (
	"container/heap"
	"fmt"
	"math"
)

// MinRisk computes the minimum total risk of a path from the top-left
// cell (0,0) to the bottom-right cell (Width-1, Height-1). Only risks
// of cells entered count; the start cell's own risk is excluded.
// It accepts functional options to expand the grid first (WithScale)
// or swap the heuristic (WithHeuristic).
//
// Returns:
//
//   - risk: minimum total risk of any corner-to-corner path.
//   - err:  error if inputs are invalid (ErrNilGrid).
//
// An unreachable goal is impossible on a rectangular grid; if the
// search ever drains its heap without finalizing the goal, MinRisk
// panics, because that is a broken internal guarantee rather than a
// recoverable input problem.
//
// Complexity:
//
//   - Time:  O(W·H · log(W·H))
//   - Space: O(W·H)
func MinRisk(g *Grid, opts ...Option) (int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate grid is non-nil. Shape validation already happened in
	//    Parse, so a non-nil Grid is rectangular and non-empty.
	if g == nil {
		return 0, ErrNilGrid
	}

	// 3) Expand the grid up front if requested. Scale(1) is the
	//    identity, so the unscaled case takes the same path.
	if cfg.Scale > 1 {
		g = g.Scale(cfg.Scale)
	}

	// 4) Prepare data structures. Let N = number of cells.
	N := g.Width * g.Height
	goalX, goalY := g.Width-1, g.Height-1
	goal := g.index(goalX, goalY)

	//    dist maps each cell index to its best-known risk from (0,0).
	dist := make([]int64, N)
	for i := range dist {
		dist[i] = math.MaxInt64
	}

	//    visited marks cells whose minimum risk is finalized.
	visited := make([]bool, N)

	//    Min-heap of (cell, g-cost, f-priority), lazy decrease-key:
	//    duplicates are pushed and stale entries skipped when popped.
	pq := make(cellPQ, 0, N)
	heap.Init(&pq)

	// 5) Seed the search: the start cell is entered for free.
	dist[0] = 0
	heap.Push(&pq, &cellItem{cell: 0, dist: 0, priority: cfg.Heuristic(0, 0, goalX, goalY)})

	// 6) Main loop: pop the lowest f = g + h, finalize, relax neighbors.
	var u, ux, uy int
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*cellItem)
		u = item.cell

		// Skip stale heap entries for already-finalized cells.
		if visited[u] {
			continue
		}
		visited[u] = true

		// The heuristic is admissible, so the first time the goal is
		// popped its distance is optimal.
		if u == goal {
			return item.dist, nil
		}

		ux, uy = g.coordinate(u)
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			if visited[v] {
				continue
			}

			// Entering v costs v's own risk, whatever the direction.
			newDist := item.dist + int64(g.risks[v])
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			heap.Push(&pq, &cellItem{
				cell:     v,
				dist:     newDist,
				priority: newDist + cfg.Heuristic(vx, vy, goalX, goalY),
			})
		}
	}

	// 7) Every rectangular grid connects its corners; reaching this
	//    point means the invariant is broken, not that input was bad.
	panic(fmt.Sprintf("riskgrid: goal (%d,%d) unreached on a %dx%d grid", goalX, goalY, g.Width, g.Height))
}

// cellItem represents a cell, its risk from the start, and its heap
// priority f = dist + heuristic.
type cellItem struct {
	cell     int   // row-major cell index
	dist     int64 // accumulated risk from (0,0)
	priority int64 // dist plus admissible remaining estimate
}

// cellPQ is a min-heap of *cellItem ordered by priority ascending.
// Shorter candidate paths are pushed as fresh entries; outdated entries
// remain and are ignored when popped (checked via visited).
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller priority → popped first.
func (pq cellPQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the lowest-priority element from the heap.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
