// Package layout implements the three pure/mutating primitives that sit
// directly on top of board.State: FeasibilityChecker (a pure function
// deciding whether a mutation can occupy a given anchor and what it would
// consume), Placer (atomically executing or undoing a FeasiblePlacement),
// and PlacementScorer (the heuristic used to rank candidate anchors
// during construction and during simulated-annealing neighbor search).
package layout
