package objective

import (
	"math/rand"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/layout"
)

// Seed builds the initial State by packing crop-only mutations (no dep
// requirement) tier-descending, smaller-first within ties when
// countMaximizing, stopping each mutation once it has no more feasible
// anchor (spec.md S4.12's greedy seed).
func Seed(unlocked []board.Point, cache *catalog.Cache, pool *Pool, countMaximizing bool, profile layout.StrategyProfile, rng *rand.Rand) *board.State {
	s := board.NewState(unlocked)
	for _, id := range pool.cropOnlySeedOrder(countMaximizing) {
		m, _ := pool.Get(id)
		for {
			placed := placeOneFeasible(s, cache, m, profile, rng)
			if !placed {
				break
			}
		}
	}
	return s
}

// placeOneFeasible scores every feasible anchor for m and executes the
// best one, returning whether a placement was made.
func placeOneFeasible(s *board.State, cache *catalog.Cache, m *catalog.ParsedMutation, profile layout.StrategyProfile, rng *rand.Rand) bool {
	var best *layout.FeasiblePlacement
	var bestScore float64
	found := false
	for y := 0; y <= board.Size-m.H; y++ {
		for x := 0; x <= board.Size-m.W; x++ {
			anchor := board.Point{X: x, Y: y}
			fp, err := layout.Check(s, m, anchor)
			if err != nil {
				continue
			}
			score := layout.Score(s, m, fp, profile, cache)
			if !found || score > bestScore {
				best, bestScore, found = fp, score, true
			}
		}
	}
	if !found {
		return false
	}
	id := board.MakeInstanceID(m.ID, s.Placements.CountOf(m.ID))
	return layout.Execute(s, best, id) == nil
}
