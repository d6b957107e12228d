package layout

import (
	"math"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
)

// StrategyProfile is the weight tuple a strategy uses to rank candidate
// placements (spec.md S4.5 / S9 "strategy profiles are plain records").
type StrategyProfile struct {
	SharingWeight     float64
	CompactnessWeight float64
	SynergyWeight     float64
	CornerWeight      float64
	Randomness        float64
}

// boardCenter is the floor-midpoint of the board, used for the
// no-neighbors compactness bonus.
var boardCenter = board.Point{X: board.Size / 2, Y: board.Size / 2}

// manhattan returns the Manhattan distance between two points.
func manhattan(a, b board.Point) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rectManhattanDistance is the minimum Manhattan distance between any
// cell of footprint a and any cell of footprint b.
func rectManhattanDistance(a, b []board.Point) int {
	best := math.MaxInt32
	for _, p := range a {
		for _, q := range b {
			if d := manhattan(p, q); d < best {
				best = d
			}
		}
	}
	return best
}

// Score computes the PlacementScorer heuristic for fp given the current
// state, using profile's weights and m's catalog data. cache resolves
// the ParsedMutation of existing placements for the synergy term, which
// applies when m has a spread effect. A nil cache disables synergy
// scoring rather than panicking, matching the "never throws for placement
// failure" posture.
func Score(s *board.State, m *catalog.ParsedMutation, fp *FeasiblePlacement, profile StrategyProfile, cache *catalog.Cache) float64 {
	var score float64
	existing := s.Placements.All()
	newCenter := board.Point{X: fp.Anchor.X + fp.W/2, Y: fp.Anchor.Y + fp.H/2}
	newFootprint := board.FootprintCells(fp.Anchor, fp.W, fp.H)

	// Compactness.
	if len(existing) >= 1 {
		var cx, cy float64
		for _, p := range existing {
			c := p.Center()
			cx += float64(c.X)
			cy += float64(c.Y)
		}
		cx /= float64(len(existing))
		cy /= float64(len(existing))
		dist := math.Abs(float64(newCenter.X)-cx) + math.Abs(float64(newCenter.Y)-cy)
		score += math.Max(0, 100-8*dist) * profile.CompactnessWeight

		for _, p := range existing {
			if rectManhattanDistance(newFootprint, p.Footprint()) <= 1 {
				score += 30 * profile.CompactnessWeight
			}
		}
	} else {
		dist := float64(manhattan(newCenter, boardCenter))
		score += math.Max(0, 50-5*dist) * profile.CompactnessWeight
	}

	// Sharing.
	sharedCount := 0
	for _, cells := range fp.SatisfiedCrops {
		sharedCount += len(cells)
	}
	score += float64(sharedCount) * profile.SharingWeight * 30

	// Synergy.
	if cache != nil && m.HasSpreadEffect() {
		for _, p := range existing {
			other, ok := cache.Get(p.MutationID)
			if !ok || !other.HasOnlyPositiveEffect() {
				continue
			}
			dist := manhattan(newCenter, p.Center())
			if dist <= 3 {
				score += float64(4-dist) * profile.SynergyWeight * 5
			}
		}
	}

	// Corner (isolated mutations only).
	if m.Isolated {
		xOnEdge := fp.Anchor.X == 0 || fp.Anchor.X+fp.W == board.Size
		yOnEdge := fp.Anchor.Y == 0 || fp.Anchor.Y+fp.H == board.Size
		bonus := 0
		if xOnEdge {
			bonus++
		}
		if yOnEdge {
			bonus++
		}
		score += float64(bonus) * profile.CornerWeight * 20
	}

	// Tier.
	score += 3 * float64(m.Tier())

	return score
}
