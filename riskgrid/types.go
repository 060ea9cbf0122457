// Package riskgrid defines core types, options, and sentinel errors
// for the riskgrid subpackage of github.com/katalvlaran/trench.
package riskgrid

import (
	"errors"
)

// Sentinel errors returned by grid construction and search.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("riskgrid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("riskgrid: all rows must have the same length")

	// ErrBadCell indicates a cell byte outside '0'..'9'.
	ErrBadCell = errors.New("riskgrid: cell must be a single ASCII digit")

	// ErrNilGrid indicates a nil *Grid was passed to MinRisk.
	ErrNilGrid = errors.New("riskgrid: grid is nil")

	// ErrBadScale indicates a scale factor below 1.
	ErrBadScale = errors.New("riskgrid: scale factor must be >= 1")
)

// Cell represents a single grid cell with its coordinates and risk level.
type Cell struct {
	X, Y int // Coordinates within the grid, (0,0) top-left
	Risk int // Risk level at (X, Y), always in 0..9 after parsing
}

// HeuristicFunc estimates the remaining cost from (x, y) to the goal
// (gx, gy). It must never overestimate the true remaining cost, or the
// search loses its optimality guarantee.
type HeuristicFunc func(x, y, gx, gy int) int64

// Manhattan is the default heuristic: remaining grid distance. It is
// admissible only while every step's risk is at least 1; parsing does
// accept the digit 0, and on a grid containing 0-risk cells Manhattan
// can overestimate — pass WithHeuristic with a zero estimate there to
// fall back to plain Dijkstra ordering.
func Manhattan(x, y, gx, gy int) int64 {
	return int64(gx-x) + int64(gy-y)
}

// Options configures a MinRisk search.
//
// Scale     – expansion factor applied to the grid before searching.
//
//	Must be ≥ 1. Default is 1 (search the grid as given).
//
// Heuristic – admissible remaining-cost estimate. Default is Manhattan.
type Options struct {
	Scale     int           // Expansion factor applied before the search
	Heuristic HeuristicFunc // Admissible estimate of remaining cost
}

// Option represents a functional option for configuring MinRisk.
type Option func(*Options)

// WithScale expands the grid by the given factor before searching.
// Must pass a factor ≥ 1; smaller values cause ErrBadScale.
func WithScale(factor int) Option {
	return func(o *Options) {
		if factor < 1 {
			// Panic to signal invalid configuration early,
			// as option constructors do throughout this module.
			panic(ErrBadScale.Error())
		}
		o.Scale = factor
	}
}

// WithHeuristic overrides the remaining-cost estimate. Passing nil
// restores the default. The function must remain admissible for the
// grid being searched; a constant zero estimate is always safe and
// turns the search into plain Dijkstra.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *Options) {
		if h == nil {
			h = Manhattan
		}
		o.Heuristic = h
	}
}

// DefaultOptions returns an Options struct initialized with the
// defaults used when no functional options are supplied.
//
// Defaults:
//   - Scale:     1 (no expansion).
//   - Heuristic: Manhattan.
func DefaultOptions() Options {
	return Options{
		Scale:     1,
		Heuristic: Manhattan,
	}
}
