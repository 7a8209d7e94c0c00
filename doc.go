// Package laniakea is a generator-and-solver engine for Galaxies
// (Tentai Show) puzzles on rectangular grids.
//
// 🌌 What is laniakea?
//
//	A pure-Go engine that brings together everything a Galaxies puzzle
//	needs, from blank grid to solved board:
//
//	  • Geometry primitives: grid positions, half-step centers, borders
//	  • Shape analysis: swirl, curl, skeletons, arms, winding trees
//	  • A stochastic generator that grows symmetric galaxies and scores
//	    them for beauty
//	  • A constraint-propagation solver that reconstructs the unique
//	    partition from the centers alone
//
// ✨ Why choose laniakea?
//
//   - Deterministic      — generation is a pure function of (W, H, seed)
//   - Self-checking      — every generator step leaves the universe valid
//   - Pure Go            — no cgo, no hidden dependencies
//
// Everything is organized one package per concern:
//
//	geometry/   — positions, vectors, borders, rectangles, center placement
//	galaxy/     — a single region: validity predicates & shape metrics
//	universe/   — the full partition of the grid into galaxies
//	generator/  — best-of-k stochastic search over universes
//	objective/  — the public puzzle statement (centers, optional sizes and walls)
//	solver/     — propagation rules + case-split fallback
//	board/      — wall matrices, box-glyph rendering and parsing
//	report/     — classifies how a candidate board falls short
//
// Quick ASCII example:
//
//	┌─┬───┬─┐
//	│ ├─┐ └─┤      a 4x4 universe of five galaxies,
//	│ │ ├───┤      each symmetric about its own center
//	│ │ │   │
//	└─┴─┴───┘
//
//	go get github.com/katalvlaran/laniakea
package laniakea
