package objective

import (
	"context"
	"math"
	"math/rand"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/layout"
)

// defaultSeedProfile is the scoring profile Seed and placeOneFeasible use
// to rank anchors during construction; the objective engine does not
// expose profile tuning, so a single balanced profile is used throughout.
var defaultSeedProfile = layout.StrategyProfile{SharingWeight: 1, CompactnessWeight: 1.5, SynergyWeight: 0.5, CornerWeight: 1}

// Run anneals a freshly-seeded State against mode using params, checking
// ctx for cancellation at the cadence described in spec.md S5 and
// invoking progress at the same cadence. On cancellation or exhaustion it
// returns the best state observed, always passed through a final
// validation pass.
func Run(ctx context.Context, unlocked []board.Point, cache *catalog.Cache, candidateIDs []string, mode Mode, params RunParams, rng *rand.Rand, progress ProgressFunc) (*board.State, error) {
	pool, err := BuildPool(cache, candidateIDs)
	if err != nil {
		return nil, err
	}
	seed := Seed(unlocked, cache, pool, mode == CountMode, defaultSeedProfile, rng)
	return runFromSeed(ctx, seed, cache, pool, mode, params, rng, progress), nil
}

// RunInfinite chains fixed-size batches of params.MaxIterations, seeding
// each batch from the previous batch's best state, until ctx is
// cancelled. It always returns the best state seen across every batch.
func RunInfinite(ctx context.Context, unlocked []board.Point, cache *catalog.Cache, candidateIDs []string, mode Mode, params RunParams, rng *rand.Rand, progress ProgressFunc) (*board.State, error) {
	pool, err := BuildPool(cache, candidateIDs)
	if err != nil {
		return nil, err
	}
	best := Seed(unlocked, cache, pool, mode == CountMode, defaultSeedProfile, rng)
	for ctx.Err() == nil {
		best = runFromSeed(ctx, best, cache, pool, mode, params, rng, progress)
	}
	return best, nil
}

// runFromSeed is the shared annealing body: Metropolis acceptance over
// ADD/REMOVE/MOVE/SWAP moves, sparse cancellation checks, and a final
// validation sweep.
func runFromSeed(ctx context.Context, seed *board.State, cache *catalog.Cache, pool *Pool, mode Mode, params RunParams, rng *rand.Rand, progress ProgressFunc) *board.State {
	current := seed.Clone()
	currentScore := Score(current, mode, cache)
	best := current.Clone()
	bestScore := currentScore

	T := params.InitialT
	progressEvery := params.MaxIterations / 50
	if progressEvery < 1 {
		progressEvery = 1
	}

	for iter := 1; iter <= params.MaxIterations; iter++ {
		if iter%progressEvery == 0 {
			if ctx.Err() != nil {
				break
			}
			if progress != nil {
				progress(ProgressEvent{
					Iter: iter, MaxIter: params.MaxIterations,
					CurrentScore: currentScore, BestScore: bestScore,
					T: T, PlacedCount: current.Placements.Len(),
				})
			}
		}

		candidate := current.Clone()
		if applyRandomMove(candidate, cache, pool, rng) {
			newScore := Score(candidate, mode, cache)
			delta := newScore - currentScore
			if delta > 0 || rng.Float64() < math.Exp(delta/T) {
				current = candidate
				currentScore = newScore
				if currentScore > bestScore {
					best = current.Clone()
					bestScore = currentScore
				}
			}
		}
		T *= params.Cooling
	}

	validate(best, cache)
	return best
}

// applyRandomMove picks uniformly among the moves legal in s's current
// state (REMOVE/MOVE/SWAP require at least one existing placement) and
// applies it, reporting whether it changed anything.
func applyRandomMove(s *board.State, cache *catalog.Cache, pool *Pool, rng *rand.Rand) bool {
	kinds := []MoveKind{AddMutation}
	if s.Placements.Len() > 0 {
		kinds = append(kinds, RemoveMutation, MoveMutation, SwapMutation)
	}
	switch kinds[rng.Intn(len(kinds))] {
	case AddMutation:
		return tryAdd(s, cache, pool, rng)
	case RemoveMutation:
		return tryRemove(s, rng)
	case MoveMutation:
		return tryMove(s, cache, rng)
	case SwapMutation:
		return trySwap(s, cache, pool, rng)
	}
	return false
}

// validate drops any placement whose invariants no longer hold (spec.md
// S4.12's final validation pass): its dep/crop requirements are re-checked
// against a hypothetical re-placement at its own anchor on a state with
// the placement itself removed.
func validate(s *board.State, cache *catalog.Cache) {
	for _, p := range s.Placements.All() {
		m, ok := cache.Get(p.MutationID)
		if !ok {
			_ = layout.Remove(s, p.ID)
			continue
		}
		probe := s.Clone()
		if err := layout.Remove(probe, p.ID); err != nil {
			continue
		}
		if _, err := layout.Check(probe, m, p.Anchor); err != nil {
			_ = layout.Remove(s, p.ID)
		}
	}
}
