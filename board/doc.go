// Package board implements the dense 10x10 occupancy grid, the sparse
// crop and placement maps layered on top of it, and the composed State
// used by every other package in this module.
//
// A board.State is the single mutable object the placement engine acts
// on: layout.Placer executes and undoes FeasiblePlacements against it,
// solver strategies clone it for move/undo search, and gridout.Build
// projects it into the host-facing grid format.
//
// Cells are addressed by (x,y) with 0<=x,y<Size. A cell carries three
// independent flags: unlocked (fixed at construction), occupied (part of
// a mutation footprint), and reserved (an isolation halo, see State).
package board
