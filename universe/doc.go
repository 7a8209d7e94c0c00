// Package universe implements Universe: a dense width x height grid of
// galaxy identifiers. Every cell belongs to exactly one galaxy, identified
// by an integer id; two cells are "neighbours" iff they share that id.
//
// Universe is the board's working representation during generation: the
// generator repeatedly merges adjacent cells into the same galaxy while
// keeping every galaxy either empty (conceptually — a freshly split-off
// singleton still counts as its own one-cell galaxy) or valid (connected,
// centered, symmetric). board.Board is derived from a finished Universe by
// recording which cell-to-cell adjacencies cross a galaxy boundary.
package universe
