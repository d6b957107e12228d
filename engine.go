package cropmutation

import (
	"context"
	"errors"
	"math/rand"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/gridout"
	"github.com/f4bii/crop-mutation/objective"
	"github.com/f4bii/crop-mutation/solver"
)

// WorkItem is the workload-driven entry points' wishlist line: place
// Quantity instances of MutationID. Re-exported from solver so callers
// never need to import solver directly.
type WorkItem = solver.WorkItem

// NewRNG returns a deterministic *rand.Rand for seed, re-exported from
// solver so OptimizeLayout callers have a ready reproducibility knob
// without importing solver directly.
func NewRNG(seed int64) *rand.Rand {
	return solver.NewRNG(seed)
}

// buildCache parses rawCatalog into a fresh, read-only-after-construction
// catalog.Cache, per spec.md S5's "each optimizer owns its parser cache".
func buildCache(rawCatalog map[string]catalog.RawMutation, cropVocabulary []string) (*catalog.Cache, error) {
	cache := catalog.NewCache(cropVocabulary)
	if err := cache.ParseAll(rawCatalog); err != nil {
		return nil, err
	}
	return cache, nil
}

// Optimize is the workload-driven entry point (spec.md S6's
// `optimize(catalog, workload, unlocked)`): it runs every
// MultiStrategyOptimizer candidate and projects the single best-scoring
// result into the external grid representation.
func Optimize(unlocked []board.Point, rawCatalog map[string]catalog.RawMutation, cropVocabulary []string, workload []WorkItem, target int, seed int64) (gridout.Grid, error) {
	g, _, _, err := OptimizeWithBreakdown(unlocked, rawCatalog, cropVocabulary, workload, target, seed)
	return g, err
}

// OptimizeWithBreakdown is Optimize's variant additionally returning the
// winning strategy's ScoreBreakdown and label.
func OptimizeWithBreakdown(unlocked []board.Point, rawCatalog map[string]catalog.RawMutation, cropVocabulary []string, workload []WorkItem, target int, seed int64) (gridout.Grid, gridout.ScoreBreakdown, string, error) {
	cache, err := buildCache(rawCatalog, cropVocabulary)
	if err != nil {
		return gridout.Grid{}, gridout.ScoreBreakdown{}, "", err
	}
	result, err := solver.MultiStrategy(unlocked, cache, workload, target, seed)
	if err != nil {
		return gridout.Grid{}, gridout.ScoreBreakdown{}, "", err
	}
	return gridout.Build(result.State, cache), gridout.BreakdownFrom(result.Breakdown), result.Label, nil
}

// StrategyOutput is one entry of OptimizeAll's sorted result list.
type StrategyOutput struct {
	Label     string
	Grid      gridout.Grid
	Breakdown gridout.ScoreBreakdown
}

// OptimizeAll runs every MultiStrategyOptimizer candidate and returns all
// of them, sorted descending by fitness, for UI comparison.
func OptimizeAll(unlocked []board.Point, rawCatalog map[string]catalog.RawMutation, cropVocabulary []string, workload []WorkItem, target int, seed int64) ([]StrategyOutput, error) {
	cache, err := buildCache(rawCatalog, cropVocabulary)
	if err != nil {
		return nil, err
	}
	results, err := solver.MultiStrategyAll(unlocked, cache, workload, target, seed)
	if err != nil {
		return nil, err
	}
	out := make([]StrategyOutput, len(results))
	for i, r := range results {
		out[i] = StrategyOutput{Label: r.Label, Grid: gridout.Build(r.State, cache), Breakdown: gridout.BreakdownFrom(r.Breakdown)}
	}
	return out, nil
}

// ObjectiveType selects what OptimizeLayout's annealing loop maximizes.
type ObjectiveType int

const (
	MaxCount ObjectiveType = iota
	MaxProfit
)

// ObjectiveConfig is OptimizeLayout's config argument (spec.md S6).
type ObjectiveConfig struct {
	MaxIterations    int
	StartTemperature float64
	CoolingRate      float64
	Objective        ObjectiveType
}

// HistoryEntry is one progress snapshot recorded during OptimizeLayout.
type HistoryEntry struct {
	Iter  int
	Score float64
	T     float64
}

// LayoutResult is OptimizeLayout's return value (spec.md S6).
type LayoutResult struct {
	State      gridout.Grid
	Iterations int
	FinalScore float64
	BestScore  float64
	History    []HistoryEntry
}

// OptimizeLayout is the objective-driven entry point (spec.md S6's
// `optimizeLayout(unlocked, allowedIds, config)`): it anneals a state
// freely over allowedIDs under cfg.Objective, recording a progress
// history at the same cadence the underlying objective engine reports.
func OptimizeLayout(ctx context.Context, unlocked []board.Point, rawCatalog map[string]catalog.RawMutation, cropVocabulary []string, allowedIDs []string, cfg ObjectiveConfig, rng *rand.Rand) (LayoutResult, error) {
	if len(allowedIDs) == 0 {
		return LayoutResult{}, ErrNoCandidateMutations
	}
	cache, err := buildCache(rawCatalog, cropVocabulary)
	if err != nil {
		return LayoutResult{}, err
	}

	mode := objective.CountMode
	if cfg.Objective == MaxProfit {
		mode = objective.ProfitMode
	}
	params := objective.RunParams{MaxIterations: cfg.MaxIterations, InitialT: cfg.StartTemperature, Cooling: cfg.CoolingRate}

	var history []HistoryEntry
	var lastIter int
	bestScore := 0.0
	progress := func(ev objective.ProgressEvent) {
		lastIter = ev.Iter
		history = append(history, HistoryEntry{Iter: ev.Iter, Score: ev.CurrentScore, T: ev.T})
		if ev.BestScore > bestScore {
			bestScore = ev.BestScore
		}
	}

	state, err := objective.Run(ctx, unlocked, cache, allowedIDs, mode, params, rng, progress)
	if errors.Is(err, objective.ErrAllSpecial) {
		// AllSpecial (spec.md S7): not an error for the host, just a
		// zero-iteration empty result rather than a looping search.
		return LayoutResult{State: gridout.Build(board.NewState(unlocked), cache)}, nil
	}
	if err != nil {
		return LayoutResult{}, err
	}

	finalScore := objective.Score(state, mode, cache)
	if finalScore > bestScore {
		bestScore = finalScore
	}

	return LayoutResult{
		State:      gridout.Build(state, cache),
		Iterations: lastIter,
		FinalScore: finalScore,
		BestScore:  bestScore,
		History:    history,
	}, nil
}
