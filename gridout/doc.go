// Package gridout projects a board.State into the external, host-facing
// grid representation named in spec.md S6: a 10x10 array of tagged-union
// Cells plus a placement list, and a compact base64 persistence triple
// format for round-tripping just the occupied cells.
package gridout
