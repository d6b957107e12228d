package objective

import (
	"math/rand"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/layout"
)

// MoveKind names one of the four move operators (spec.md S4.12).
type MoveKind int

const (
	AddMutation MoveKind = iota
	RemoveMutation
	MoveMutation
	SwapMutation
)

// shuffledCells returns every board cell in a random order.
func shuffledCells(rng *rand.Rand) []board.Point {
	cells := make([]board.Point, 0, board.CellCount)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			cells = append(cells, board.Point{X: x, Y: y})
		}
	}
	for i := len(cells) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// sampleTierWeighted picks one pool id with weight 1+0.5*tier.
func sampleTierWeighted(pool *Pool, rng *rand.Rand) string {
	ids := pool.IDs()
	weights := make([]float64, len(ids))
	var total float64
	for i, id := range ids {
		m, _ := pool.Get(id)
		weights[i] = 1 + 0.5*float64(m.Tier())
		total += weights[i]
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return ids[i]
		}
	}
	return ids[len(ids)-1]
}

// tryAdd samples a mutation by tier-weighted probability and attempts to
// place it at a shuffled sequence of anchors until one is feasible.
// Returns false (no-op) if none succeeds.
func tryAdd(s *board.State, cache *catalog.Cache, pool *Pool, rng *rand.Rand) bool {
	id := sampleTierWeighted(pool, rng)
	m, _ := pool.Get(id)
	for _, anchor := range shuffledCells(rng) {
		fp, err := layout.Check(s, m, anchor)
		if err != nil {
			continue
		}
		// CountOf alone can name a live instance after a REMOVE; skip ahead
		// to the first unused suffix.
		n := s.Placements.CountOf(m.ID)
		for s.Placements.Get(board.MakeInstanceID(m.ID, n)) != nil {
			n++
		}
		instID := board.MakeInstanceID(m.ID, n)
		if layout.Execute(s, fp, instID) == nil {
			return true
		}
	}
	return false
}

// tryRemove drops a uniformly random existing placement. Returns false if
// the state has none.
func tryRemove(s *board.State, rng *rand.Rand) bool {
	placements := s.Placements.All()
	if len(placements) == 0 {
		return false
	}
	p := placements[rng.Intn(len(placements))]
	return layout.Remove(s, p.ID) == nil
}

// tryMove removes a random placement and re-places the same mutation at a
// shuffled anchor; on failure it restores the original placement in place
// so the caller's state is never left short an instance.
func tryMove(s *board.State, cache *catalog.Cache, rng *rand.Rand) bool {
	placements := s.Placements.All()
	if len(placements) == 0 {
		return false
	}
	p := placements[rng.Intn(len(placements))]
	m, ok := cache.Get(p.MutationID)
	if !ok {
		return false
	}
	original := *p
	if layout.Remove(s, p.ID) != nil {
		return false
	}

	for _, anchor := range shuffledCells(rng) {
		if anchor == original.Anchor {
			continue
		}
		fp, err := layout.Check(s, m, anchor)
		if err != nil {
			continue
		}
		if layout.Execute(s, fp, p.ID) == nil {
			return true
		}
	}

	// Rollback: nothing else succeeded, restore the original placement.
	fp, err := layout.Check(s, m, original.Anchor)
	if err == nil {
		_ = layout.Execute(s, fp, p.ID)
	}
	return false
}

// trySwap replaces a random placement with a random other pool mutation of
// identical footprint size at the same anchor, rolling back to the
// original on failure.
func trySwap(s *board.State, cache *catalog.Cache, pool *Pool, rng *rand.Rand) bool {
	placements := s.Placements.All()
	if len(placements) == 0 {
		return false
	}
	p := placements[rng.Intn(len(placements))]
	original := *p

	candidates := sameSizeCandidates(pool, original.W, original.H, original.MutationID)
	if len(candidates) == 0 {
		return false
	}
	replacement, _ := pool.Get(candidates[rng.Intn(len(candidates))])

	if layout.Remove(s, p.ID) != nil {
		return false
	}
	fp, err := layout.Check(s, replacement, original.Anchor)
	if err == nil {
		n := s.Placements.CountOf(replacement.ID)
		for s.Placements.Get(board.MakeInstanceID(replacement.ID, n)) != nil {
			n++
		}
		newID := board.MakeInstanceID(replacement.ID, n)
		if layout.Execute(s, fp, newID) == nil {
			return true
		}
	}

	// Rollback: restore the original mutation at its original anchor.
	origM, ok := cache.Get(original.MutationID)
	if !ok {
		return false
	}
	fp2, err2 := layout.Check(s, origM, original.Anchor)
	if err2 == nil {
		_ = layout.Execute(s, fp2, p.ID)
	}
	return false
}

// sameSizeCandidates returns pool ids (other than excludeID) whose
// footprint is exactly (w,h).
func sameSizeCandidates(pool *Pool, w, h int, excludeID string) []string {
	var out []string
	for _, id := range pool.IDs() {
		if id == excludeID {
			continue
		}
		m, _ := pool.Get(id)
		if m.W == w && m.H == h {
			out = append(out, id)
		}
	}
	return out
}
