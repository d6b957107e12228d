package fitness

import (
	"math"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
)

// Breakdown is the decomposition of Evaluate's scalar Score into its
// contributing terms, exposed for UI comparison and test assertions
// (spec.md S4.9).
type Breakdown struct {
	MutationCount   int
	TargetCount     int
	SharedCropCount int
	TotalCrops      int
	TotalDistance   float64
	DistancePairs   int
	AvgDistance     float64
	SynergyCount    int
	Score           float64
}

// manhattan is the L1 distance between two board points.
func manhattan(a, b board.Point) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// Evaluate computes the global objective over s against target, the
// caller's desired mutation count. cache resolves each placement's
// ParsedMutation to classify spread/only-positive predicates for the
// synergy term; entries missing from cache are silently skipped rather
// than treated as an error, since a stale cache must never abort scoring.
//
// Complexity: O(n^2) in the placement count, from the pairwise distance
// and synergy scans; n is bounded by the board's cell count (100) so this
// never dominates a solver's inner loop.
func Evaluate(s *board.State, target int, cache *catalog.Cache) Breakdown {
	placements := s.Placements.All()
	b := Breakdown{
		MutationCount: len(placements),
		TargetCount:   target,
		TotalCrops:    s.Crops.Len(),
	}
	b.SharedCropCount = s.Crops.SharedCount()

	for i := 0; i < len(placements); i++ {
		ci := placements[i].Center()
		for j := i + 1; j < len(placements); j++ {
			cj := placements[j].Center()
			b.TotalDistance += manhattan(ci, cj)
			b.DistancePairs++
		}
	}
	if b.DistancePairs > 0 {
		b.AvgDistance = b.TotalDistance / float64(b.DistancePairs)
	}

	if cache != nil {
		for i := 0; i < len(placements); i++ {
			a, ok := cache.Get(placements[i].MutationID)
			if !ok || !a.HasSpreadEffect() {
				continue
			}
			for j := 0; j < len(placements); j++ {
				if i == j {
					continue
				}
				other, ok := cache.Get(placements[j].MutationID)
				if !ok || !other.HasOnlyPositiveEffect() {
					continue
				}
				if manhattan(placements[i].Center(), placements[j].Center()) <= 3 {
					b.SynergyCount++
				}
			}
		}
	}

	placementRate := 0.0
	if target > 0 {
		placementRate = float64(b.MutationCount) / float64(target)
	}

	b.Score = placementRate*2000 +
		math.Max(0, 200-10*b.AvgDistance) +
		30*float64(b.SharedCropCount) +
		20*float64(b.SynergyCount) -
		3000*float64(target-b.MutationCount)

	return b
}

// Score is a convenience wrapper returning only Evaluate's scalar term.
func Score(s *board.State, target int, cache *catalog.Cache) float64 {
	return Evaluate(s, target, cache).Score
}
