// Package trench is a toolkit of three self-contained puzzle cores,
// each an exercise in a classic in-memory algorithm over a small,
// trusted input.
//
// 🚀 What is trench?
//
//	Three independent leaf packages plus a thin driver:
//		• riskgrid/  — minimum-risk corner-to-corner path over a digit
//		  grid: an implicit weighted graph searched with A* on a
//		  lazy-decrease-key min-heap, with a modular ×f grid expansion
//		• snailnum/  — snailfish arithmetic: an arena-backed binary tree
//		  rewritten by explode/split rules to a fixed point, folded into
//		  a magnitude
//		• telemetry/ — BITS transmissions: a recursive-descent bitstream
//		  decoder producing a packet tree, evaluated as an expression
//		• cmd/trench — the driver: one subcommand per puzzle, reading a
//		  file or stdin and printing "part1:"/"part2:" answers
//
// ✨ Design ground rules
//
//   - No package imports another; every core owns its input model
//   - Inputs are trusted and fixed per run — malformed input fails fast
//     with a sentinel error, broken internal invariants panic
//   - Single-threaded and allocation-owned: each call builds its
//     structure, answers, and drops it
//
// Quick taste:
//
//	g, _ := riskgrid.ParseString("116\n138\n213")
//	risk, _ := riskgrid.MinRisk(g)          // 7
//
//	n, _ := snailnum.Parse("[[9,1],[1,9]]")
//	n.Magnitude()                           // 129
//
//	p, _ := telemetry.ParseHex("D2FE28")
//	p.Value()                               // 2021
//
//	go get github.com/katalvlaran/trench
package trench
