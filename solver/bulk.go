package solver

import (
	"math"
	"math/rand"
	"sort"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/layout"
)

// bulkDominanceThreshold is the fraction of total workload quantity a
// single mutation id must reach to trigger the bulk fast path.
const bulkDominanceThreshold = 0.7

// bulkPattern generates a board-covering anchor order for a 1x1 footprint.
// Each pattern is a different regular tiling; BulkPlacer tries every one
// and keeps whichever packs the most instances of the dominant mutation.
type bulkPattern struct {
	name     string
	anchorFn func(totalCropsNeeded int) []board.Point
}

func bulkPatterns() []bulkPattern {
	return []bulkPattern{
		{"alternating-rows", func(int) []board.Point { return patternByPredicate(func(x, y int) bool { return y%2 == 0 }) }},
		{"sparse-pair-grid", func(int) []board.Point { return patternByPredicate(func(x, y int) bool { return x%4 < 2 && y%4 == 0 }) }},
		{"max-density-pair-grid", func(int) []board.Point { return patternByPredicate(func(x, y int) bool { return x%2 == 0 }) }},
		{"three-row-grid", func(int) []board.Point { return patternByPredicate(func(x, y int) bool { return y%3 == 0 }) }},
		{"dense-spacing-grid", func(totalCropsNeeded int) []board.Point {
			spacing := int(math.Ceil(math.Sqrt(float64(totalCropsNeeded + 1))))
			if spacing < 1 {
				spacing = 1
			}
			return patternByPredicate(func(x, y int) bool { return x%spacing == 0 && y%spacing == 0 })
		}},
		{"diagonal-stripe", func(int) []board.Point { return patternByPredicate(func(x, y int) bool { return (x+y)%3 == 0 }) }},
		{"horizontal-stripe", func(int) []board.Point { return patternByPredicate(func(x, y int) bool { return y%4 < 2 }) }},
		{"checkerboard", func(int) []board.Point { return patternByPredicate(func(x, y int) bool { return (x+y)%2 == 0 }) }},
	}
}

// patternByPredicate enumerates every in-bounds cell satisfying keep, in
// row-major order.
func patternByPredicate(keep func(x, y int) bool) []board.Point {
	var cells []board.Point
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			if keep(x, y) {
				cells = append(cells, board.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// dominantItem returns the workload line with the largest quantity and the
// total quantity across the whole workload.
func dominantItem(workload []WorkItem) (WorkItem, int) {
	var best WorkItem
	total := 0
	for _, item := range workload {
		total += item.Quantity
		if item.Quantity > best.Quantity {
			best = item
		}
	}
	return best, total
}

// eligibleForBulk reports whether dominant is a 1x1, non-isolated mutation
// occupying at least bulkDominanceThreshold of the total workload quantity.
func eligibleForBulk(dominant WorkItem, total int, m *catalog.ParsedMutation) bool {
	if total == 0 || dominant.Quantity == 0 {
		return false
	}
	if m.W != 1 || m.H != 1 || m.Isolated {
		return false
	}
	return float64(dominant.Quantity)/float64(total) >= bulkDominanceThreshold
}

// Bulk runs the dominant-mutation fast path described in spec.md S4.7. It
// returns ok=false when the workload does not qualify, in which case the
// caller should fall back to Greedy directly.
func Bulk(unlocked []board.Point, cache *catalog.Cache, workload []WorkItem, profile layout.StrategyProfile, rng *rand.Rand) (result *board.State, ok bool, err error) {
	dominant, total := dominantItem(workload)
	if total == 0 {
		// EmptyWorkload (spec.md S7): not eligible, not an error, fall
		// back to Greedy/Genetic which already degrade to an empty state.
		return nil, false, nil
	}
	m, found := cache.Get(dominant.MutationID)
	if !found {
		return nil, false, ErrUnknownMutationID
	}
	if !eligibleForBulk(dominant, total, m) {
		return nil, false, nil
	}

	totalCropsNeeded := 0
	for _, c := range m.Crops {
		totalCropsNeeded += c
	}
	totalCropsNeeded *= dominant.Quantity

	var bestState *board.State
	bestPlaced := -1
	for _, pattern := range bulkPatterns() {
		anchors := pattern.anchorFn(totalCropsNeeded)
		s := board.NewState(unlocked)
		placed := packDominant(s, cache, m, anchors, dominant.Quantity, profile, rng)
		if placed > bestPlaced {
			bestPlaced = placed
			bestState = s
		}
		if placed >= dominant.Quantity {
			break // early exit: full quantity already satisfied
		}
	}

	remaining := []WorkItem{{MutationID: dominant.MutationID, Quantity: dominant.Quantity - bestPlaced}}
	for _, item := range workload {
		if item.MutationID == dominant.MutationID {
			continue
		}
		remaining = append(remaining, item)
	}
	if err := placeGreedyInto(bestState, cache, remaining, profile, rng); err != nil {
		return nil, false, err
	}
	return bestState, true, nil
}

// packDominant plants m at up to quantity of the given anchors in two
// passes, per spec.md S4.7: a seed pass first lays down a feasible crop
// field by placing m at a leading fraction of the pattern's anchors in
// order (no crops exist yet, so ring-reuse cannot factor in), then a
// packing pass places the rest, ranking feasible anchors by how many
// already-planted crops their ring would reuse before falling back to
// the blended profile score as a tie-break. Returns how many were placed.
func packDominant(s *board.State, cache *catalog.Cache, m *catalog.ParsedMutation, anchors []board.Point, quantity int, profile layout.StrategyProfile, rng *rand.Rand) int {
	remaining := append([]board.Point(nil), anchors...)

	seedQuota := quantity / 4
	if seedQuota < 1 {
		seedQuota = 1
	}
	if seedQuota > len(remaining) {
		seedQuota = len(remaining)
	}
	placed := seedCropField(s, m, &remaining, seedQuota)

	for placed < quantity && len(remaining) > 0 {
		var feasible []scoredAnchor
		for _, p := range remaining {
			fp, err := layout.Check(s, m, p)
			if err != nil {
				continue
			}
			feasible = append(feasible, scoredAnchor{anchor: p, fp: fp, score: layout.Score(s, m, fp, profile, cache)})
		}
		if len(feasible) == 0 {
			break
		}
		sort.SliceStable(feasible, func(i, j int) bool {
			ri, rj := reusedCropCount(feasible[i].fp), reusedCropCount(feasible[j].fp)
			if ri != rj {
				return ri > rj
			}
			return feasible[i].score > feasible[j].score
		})
		winner := feasible[0]
		id := board.MakeInstanceID(m.ID, s.Placements.CountOf(m.ID))
		if err := layout.Execute(s, winner.fp, id); err != nil {
			break
		}
		placed++

		next := remaining[:0]
		for _, p := range remaining {
			if p != winner.anchor {
				next = append(next, p)
			}
		}
		remaining = next
	}
	return placed
}

// seedCropField plants m at the first up to n anchors of *remaining in
// pattern order, consuming them from *remaining as it goes. This is the
// crop field generation pass: no crop exists yet for these placements to
// reuse, so they are taken in plain pattern order rather than ranked.
func seedCropField(s *board.State, m *catalog.ParsedMutation, remaining *[]board.Point, n int) int {
	rest := *remaining
	placed := 0
	for placed < n && len(rest) > 0 {
		p := rest[0]
		rest = rest[1:]
		fp, err := layout.Check(s, m, p)
		if err != nil {
			continue
		}
		id := board.MakeInstanceID(m.ID, s.Placements.CountOf(m.ID))
		if err := layout.Execute(s, fp, id); err != nil {
			continue
		}
		placed++
	}
	*remaining = rest
	return placed
}

// reusedCropCount sums how many of fp's ring crop cells are reused from
// an already-planted crop rather than needing a fresh planting.
func reusedCropCount(fp *layout.FeasiblePlacement) int {
	n := 0
	for _, cells := range fp.SatisfiedCrops {
		n += len(cells)
	}
	return n
}
