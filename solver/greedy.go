package solver

import (
	"math/rand"
	"sort"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/layout"
)

// priorityOf ranks an instance for placement order: larger footprint
// first, then higher tier, then non-isolated before isolated (so
// isolation-requiring mutations consume only leftover space).
func priorityOf(m *catalog.ParsedMutation) int {
	isolatedBit := 1
	if m.Isolated {
		isolatedBit = 0
	}
	return m.Area()*100 + m.Tier()*10 + isolatedBit
}

// Greedy constructs a new State from scratch: it expands workload into an
// ordered instance list by priorityOf (descending, stable so equal-priority
// instances keep workload order), then places each instance at its
// highest-scoring feasible anchor, or uniformly among the top 3 when
// profile.Randomness fires for that instance. Instances with no feasible
// anchor are silently skipped (spec.md S4.6).
func Greedy(unlocked []board.Point, cache *catalog.Cache, workload []WorkItem, profile layout.StrategyProfile, rng *rand.Rand) (*board.State, error) {
	s := board.NewState(unlocked)
	if err := placeGreedyInto(s, cache, workload, profile, rng); err != nil {
		return nil, err
	}
	return s, nil
}

// placeGreedyInto runs the greedy construction directly against an
// existing state, used both by Greedy and by BulkPlacer's leftover-workload
// pass.
func placeGreedyInto(s *board.State, cache *catalog.Cache, workload []WorkItem, profile layout.StrategyProfile, rng *rand.Rand) error {
	instances := make([]expandedInstance, 0)
	for _, item := range workload {
		m, ok := cache.Get(item.MutationID)
		if !ok {
			return ErrUnknownMutationID
		}
		for i := 0; i < item.Quantity; i++ {
			instances = append(instances, expandedInstance{mutationID: item.MutationID, priority: priorityOf(m)})
		}
	}
	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].priority > instances[j].priority
	})

	for _, inst := range instances {
		m, _ := cache.Get(inst.mutationID)
		placeBestAnchor(s, cache, m, profile, rng)
	}
	return nil
}

// candidate pairs a feasible placement with its score.
type candidate struct {
	fp    *layout.FeasiblePlacement
	score float64
}

// placeBestAnchor enumerates every anchor for m, scores the feasible ones,
// and executes the winner (top score, or a uniform pick among the top 3
// when the profile's randomness fires). It silently does nothing if no
// anchor is feasible. Returns true if a placement was made.
func placeBestAnchor(s *board.State, cache *catalog.Cache, m *catalog.ParsedMutation, profile layout.StrategyProfile, rng *rand.Rand) bool {
	var candidates []candidate
	for _, anchor := range anchorsFor(m.W, m.H) {
		fp, err := layout.Check(s, m, anchor)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{fp: fp, score: layout.Score(s, m, fp, profile, cache)})
	}
	if len(candidates) == 0 {
		return false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	chosen := candidates[0]
	if rng != nil && profile.Randomness > 0 && rng.Float64() < profile.Randomness {
		top := candidates
		if len(top) > 3 {
			top = top[:3]
		}
		chosen = top[rng.Intn(len(top))]
	}

	n := s.Placements.CountOf(m.ID)
	id := board.MakeInstanceID(m.ID, n)
	if err := layout.Execute(s, chosen.fp, id); err != nil {
		return false
	}
	return true
}
