package solver

import "github.com/f4bii/crop-mutation/board"

// WorkItem is one line of a placement request: place quantity instances
// of mutation MutationID.
type WorkItem struct {
	MutationID string
	Quantity   int
}

// expandedInstance is one unplaced instance awaiting a slot, carrying the
// priority key it was sorted by.
type expandedInstance struct {
	mutationID string
	priority   int
}

// anchorsFor enumerates every top-left anchor a w*h footprint can occupy
// on the fixed board, in row-major order.
func anchorsFor(w, h int) []board.Point {
	cap := (board.Size - w + 1) * (board.Size - h + 1)
	if cap < 0 {
		cap = 0
	}
	anchors := make([]board.Point, 0, cap)
	for y := 0; y <= board.Size-h; y++ {
		for x := 0; x <= board.Size-w; x++ {
			anchors = append(anchors, board.Point{X: x, Y: y})
		}
	}
	return anchors
}
