package solver

import (
	"math/rand"
	"sort"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/fitness"
	"github.com/f4bii/crop-mutation/layout"
)

const (
	geneticPopulation    = 8
	geneticGenerations   = 15
	geneticElite         = 2
	geneticCrossoverRate = 0.7
	geneticMutationRate  = 0.3
	geneticTournamentK   = 3
)

// geneticRandomnessLevels seeds the initial population with one GreedySolver
// run per randomness level, spec.md S4.10.
var geneticRandomnessLevels = []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}

// Genetic runs the population/elite/tournament-selection GA layer and
// returns its fittest chromosome. Callers typically refine the result with
// Anneal (spec.md S4.10: "the best chromosome is passed to SA").
func Genetic(unlocked []board.Point, cache *catalog.Cache, workload []WorkItem, profile layout.StrategyProfile, target int, rng *rand.Rand) (*board.State, error) {
	pop := make([]*board.State, geneticPopulation)
	scores := make([]float64, geneticPopulation)
	for i := 0; i < geneticPopulation; i++ {
		seedProfile := profile
		seedProfile.Randomness = geneticRandomnessLevels[i]
		childRNG := deriveRNG(rng, uint64(i))
		s, err := Greedy(unlocked, cache, workload, seedProfile, childRNG)
		if err != nil {
			return nil, err
		}
		pop[i] = s
		scores[i] = fitness.Score(s, target, cache)
	}

	for gen := 0; gen < geneticGenerations; gen++ {
		order := argsortDesc(scores)
		next := make([]*board.State, 0, geneticPopulation)
		for e := 0; e < geneticElite; e++ {
			next = append(next, pop[order[e]])
		}

		genRNG := deriveRNG(rng, uint64(10_000+gen))
		for len(next) < geneticPopulation {
			parent1 := tournamentSelect(pop, scores, genRNG)
			var child *board.State
			if genRNG.Float64() < geneticCrossoverRate {
				parent2 := tournamentSelect(pop, scores, genRNG)
				child = crossover(parent1, parent2, cache, profile, unlocked)
			} else {
				child = parent1.Clone()
			}
			if genRNG.Float64() < geneticMutationRate {
				child = mutateChromosome(child, cache, profile, genRNG)
			}
			next = append(next, child)
		}

		pop = next
		for i := range pop {
			scores[i] = fitness.Score(pop[i], target, cache)
		}
	}

	best := argsortDesc(scores)[0]
	return pop[best], nil
}

// argsortDesc returns indices into scores sorted by descending score.
func argsortDesc(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return scores[idx[i]] > scores[idx[j]] })
	return idx
}

// tournamentSelect samples geneticTournamentK individuals and returns the
// fittest.
func tournamentSelect(pop []*board.State, scores []float64, rng *rand.Rand) *board.State {
	best := rng.Intn(len(pop))
	for i := 1; i < geneticTournamentK; i++ {
		candidate := rng.Intn(len(pop))
		if scores[candidate] > scores[best] {
			best = candidate
		}
	}
	return pop[best]
}

// crossover builds a child by walking parent1's placement order: for each
// instance, try parent2's anchor at the same position first (if it holds
// the same mutation id), then parent1's own anchor, then fall back to the
// best-scoring feasible anchor anywhere on the board.
func crossover(parent1, parent2 *board.State, cache *catalog.Cache, profile layout.StrategyProfile, unlocked []board.Point) *board.State {
	child := board.NewState(unlocked)
	p1 := parent1.Placements.All()
	p2 := parent2.Placements.All()

	for i, inst := range p1 {
		m, ok := cache.Get(inst.MutationID)
		if !ok {
			continue
		}

		var tryAnchors []board.Point
		if i < len(p2) && p2[i].MutationID == inst.MutationID {
			tryAnchors = append(tryAnchors, p2[i].Anchor)
		}
		tryAnchors = append(tryAnchors, inst.Anchor)

		placed := false
		for _, anchor := range tryAnchors {
			fp, err := layout.Check(child, m, anchor)
			if err != nil {
				continue
			}
			id := board.MakeInstanceID(m.ID, child.Placements.CountOf(m.ID))
			if err := layout.Execute(child, fp, id); err == nil {
				placed = true
				break
			}
		}
		if !placed {
			placeBestAnchor(child, cache, m, profile, nil)
		}
	}
	return child
}

// mutateChromosome removes one random placement and re-places it at a
// uniformly chosen anchor among the top 5 feasible candidates, rolling
// back to the unmodified chromosome if nothing is feasible.
func mutateChromosome(s *board.State, cache *catalog.Cache, profile layout.StrategyProfile, rng *rand.Rand) *board.State {
	clone := s.Clone()
	placements := clone.Placements.All()
	if len(placements) == 0 {
		return clone
	}
	p := placements[rng.Intn(len(placements))]
	m, ok := cache.Get(p.MutationID)
	if !ok {
		return s
	}
	if err := layout.Remove(clone, p.ID); err != nil {
		return s
	}

	var candidates []scoredAnchor
	for _, anchor := range anchorsFor(m.W, m.H) {
		fp, err := layout.Check(clone, m, anchor)
		if err != nil {
			continue
		}
		candidates = append(candidates, scoredAnchor{anchor: anchor, fp: fp, score: layout.Score(clone, m, fp, profile, cache)})
	}
	if len(candidates) == 0 {
		return s
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	top := candidates
	if len(top) > 5 {
		top = top[:5]
	}
	pick := top[rng.Intn(len(top))]
	if err := layout.Execute(clone, pick.fp, p.ID); err != nil {
		return s
	}
	return clone
}
