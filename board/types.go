package board

import "fmt"

// Size is the fixed board edge length; the board is always Size x Size.
const Size = 10

// CellCount is the total number of addressable cells on the board.
const CellCount = Size * Size

// Point is an integer cell coordinate pair.
type Point struct {
	X, Y int
}

// InBounds reports whether p lies within [0,Size) on both axes.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// CellIndex is a row-major flattened coordinate: Y*Size+X. Using a flat
// index rather than a (x,y) pair keeps occupancy/back-map lookups to a
// single slice index, per the "indices over pointers" design note.
type CellIndex int

// Index flattens p into its CellIndex. p is assumed in-bounds; callers
// that accept host coordinates must check InBounds first.
func Index(p Point) CellIndex {
	return CellIndex(p.Y*Size + p.X)
}

// Point expands a CellIndex back into its (x,y) coordinate.
func (c CellIndex) Point() Point {
	return Point{X: int(c) % Size, Y: int(c) / Size}
}

// InstanceID uniquely identifies one placed copy of a mutation for the
// lifetime of that placement. The conventional form is "<mutationID>_<n>"
// where n disambiguates multiple instances of the same mutation, but the
// engine treats the value as opaque.
type InstanceID string

// MakeInstanceID formats the conventional "<mutationID>_<n>" instance id.
func MakeInstanceID(mutationID string, n int) InstanceID {
	return InstanceID(fmt.Sprintf("%s_%d", mutationID, n))
}

// FootprintCells returns the w*h cells covered by a mutation anchored at
// the top-left corner anchor, in row-major order. Callers must validate
// fit via Board.FitsRect before relying on the result being in-bounds.
func FootprintCells(anchor Point, w, h int) []Point {
	cells := make([]Point, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cells = append(cells, Point{X: anchor.X + dx, Y: anchor.Y + dy})
		}
	}
	return cells
}

// ringOffsets8 enumerates the 8-connected neighbor offsets in a fixed
// row-major order (NW, N, NE, W, E, SW, S, SE). FeasibilityChecker relies
// on this fixed order for deterministic free_cells ordering.
var ringOffsets8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// RingCells returns the adjacency ring of a footprint anchored at anchor
// with size (w,h): every in-bounds cell that is an 8-neighbor of some
// footprint cell and is not itself part of the footprint. The result is
// deduplicated and traversed in a fixed row-major order over the
// footprint's own cells, then over each cell's fixed neighbor-offset
// order, so that repeated calls with identical inputs yield an identical
// slice (FeasibilityChecker determinism requirement).
func RingCells(anchor Point, w, h int) []Point {
	inFootprint := make(map[Point]bool, w*h)
	for _, c := range FootprintCells(anchor, w, h) {
		inFootprint[c] = true
	}

	seen := make(map[Point]bool)
	ring := make([]Point, 0, 2*(w+h)+4)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			base := Point{X: anchor.X + dx, Y: anchor.Y + dy}
			for _, off := range ringOffsets8 {
				n := Point{X: base.X + off[0], Y: base.Y + off[1]}
				if !n.InBounds() || inFootprint[n] || seen[n] {
					continue
				}
				seen[n] = true
				ring = append(ring, n)
			}
		}
	}
	return ring
}
