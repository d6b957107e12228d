package solver

import (
	"sort"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/fitness"
	"github.com/f4bii/crop-mutation/layout"
)

// namedProfile pairs a strategy label with its scoring weights, spec.md
// S4.11. All five share synergyWeight=0.5; the tuples vary
// (sharing, compactness, corner).
type namedProfile struct {
	label   string
	profile layout.StrategyProfile
}

func strategyProfiles() []namedProfile {
	return []namedProfile{
		{"compact-balanced", layout.StrategyProfile{SharingWeight: 1, CompactnessWeight: 2, CornerWeight: 1, SynergyWeight: 0.5}},
		{"ultra-compact", layout.StrategyProfile{SharingWeight: 0.5, CompactnessWeight: 3, CornerWeight: 0.5, SynergyWeight: 0.5}},
		{"compact-sharing", layout.StrategyProfile{SharingWeight: 1.5, CompactnessWeight: 2, CornerWeight: 0.5, SynergyWeight: 0.5}},
		{"tight-cluster", layout.StrategyProfile{SharingWeight: 0.8, CompactnessWeight: 2.5, CornerWeight: 1, SynergyWeight: 0.5}},
		{"exploration", layout.StrategyProfile{SharingWeight: 1, CompactnessWeight: 1.5, CornerWeight: 1, SynergyWeight: 0.5, Randomness: 0.2}},
	}
}

// StrategyResult is one strategy's final scored state, as returned by
// MultiStrategy and MultiStrategyAll.
type StrategyResult struct {
	Label     string
	State     *board.State
	Breakdown fitness.Breakdown
}

// MultiStrategy dispatches every named profile through GreedySolver+Anneal,
// runs GeneticOptimizer+Anneal once, runs BulkPlacer+Anneal when the
// workload has a dominant mutation, and returns the single highest-fitness
// result together with its strategy label (spec.md S4.11).
func MultiStrategy(unlocked []board.Point, cache *catalog.Cache, workload []WorkItem, target int, seed int64) (StrategyResult, error) {
	results, err := MultiStrategyAll(unlocked, cache, workload, target, seed)
	if err != nil {
		return StrategyResult{}, err
	}
	return results[0], nil
}

// MultiStrategyAll runs the same dispatch as MultiStrategy but returns
// every candidate result sorted by descending fitness, for UI comparison.
func MultiStrategyAll(unlocked []board.Point, cache *catalog.Cache, workload []WorkItem, target int, seed int64) ([]StrategyResult, error) {
	base := rngFromSeed(seed)
	cfg := DefaultSAConfig()

	var results []StrategyResult
	for i, np := range strategyProfiles() {
		streamRNG := deriveRNG(base, uint64(i))
		greedySeed, err := Greedy(unlocked, cache, workload, np.profile, streamRNG)
		if err != nil {
			return nil, err
		}
		annealed := Anneal(greedySeed, cache, np.profile, target, cfg, streamRNG)
		results = append(results, scoreResult(np.label+"+sa", annealed, target, cache))
	}

	geneticProfile := strategyProfiles()[0].profile
	geneticRNG := deriveRNG(base, uint64(len(strategyProfiles())))
	geneticSeed, err := Genetic(unlocked, cache, workload, geneticProfile, target, geneticRNG)
	if err != nil {
		return nil, err
	}
	geneticAnnealed := Anneal(geneticSeed, cache, geneticProfile, target, cfg, geneticRNG)
	results = append(results, scoreResult("genetic+sa", geneticAnnealed, target, cache))

	bulkRNG := deriveRNG(base, uint64(len(strategyProfiles())+1))
	bulkSeed, bulkOK, err := Bulk(unlocked, cache, workload, geneticProfile, bulkRNG)
	if err != nil {
		return nil, err
	}
	if bulkOK {
		bulkAnnealed := Anneal(bulkSeed, cache, geneticProfile, target, cfg, bulkRNG)
		// The bulk branch is folded into the same comparison pool as every
		// other strategy, so it is always considered for "best" regardless
		// of dispatch order.
		results = append(results, scoreResult("bulk+sa", bulkAnnealed, target, cache))
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Breakdown.Score > results[j].Breakdown.Score })
	return results, nil
}

// scoreResult evaluates s and wraps it into a labeled StrategyResult.
func scoreResult(label string, s *board.State, target int, cache *catalog.Cache) StrategyResult {
	return StrategyResult{Label: label, State: s, Breakdown: fitness.Evaluate(s, target, cache)}
}
