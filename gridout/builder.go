package gridout

import (
	"fmt"
	"math"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/fitness"
)

// Build projects s into the external Grid representation, resolving each
// placement's raw catalog record through cache to echo its size string
// and conditions.
func Build(s *board.State, cache *catalog.Cache) Grid {
	g := Grid{Unlocked: unlockedCells(s)}

	for _, p := range s.Placements.All() {
		center := p.Center()
		for _, c := range p.Footprint() {
			g.Cells[c.Y][c.X] = Cell{
				Kind: CellMutationArea,
				MutationArea: &MutationAreaCell{
					ID:         p.ID,
					IsCenter:   c == center,
					IsIsolated: p.Isolated,
				},
			}
		}
		g.Placements = append(g.Placements, buildPlacedMutation(s, cache, p))
	}

	for _, crop := range s.Crops.All() {
		g.Cells[crop.Cell.Y][crop.Cell.X] = Cell{
			Kind: CellCrop,
			Crop: &CropCell{
				Crop:          crop.Name,
				PrimaryServer: crop.Serving[0],
				AllServers:    append([]board.InstanceID(nil), crop.Serving...),
			},
		}
	}

	for _, p := range s.ReservedCells() {
		if g.Cells[p.Y][p.X].Kind != CellEmpty {
			continue
		}
		source := sourceOfReservation(s, p)
		g.Cells[p.Y][p.X] = Cell{Kind: CellEmptyZone, EmptyZone: &EmptyZoneCell{SourceID: source}}
	}

	return g
}

// unlockedCells returns every cell the state's Board marks unlocked, in
// row-major order.
func unlockedCells(s *board.State) []board.Point {
	var out []board.Point
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			p := board.Point{X: x, Y: y}
			if s.Board.IsUnlocked(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// sourceOfReservation finds the isolated placement whose ring contains p,
// so the empty-zone cell can be tagged with the instance that reserved
// it. Returns "" if no live placement claims it (the reserving placement
// was since removed; reservations are never released, per spec.md S9).
func sourceOfReservation(s *board.State, p board.Point) board.InstanceID {
	for _, placement := range s.Placements.All() {
		if !placement.Isolated {
			continue
		}
		for _, ringCell := range placement.Ring() {
			if ringCell == p {
				return placement.ID
			}
		}
	}
	return ""
}

// buildPlacedMutation assembles one placement's host-facing summary,
// echoing its raw catalog conditions verbatim.
func buildPlacedMutation(s *board.State, cache *catalog.Cache, p *board.Placement) PlacedMutation {
	pm := PlacedMutation{
		ID:         p.ID,
		MutationID: p.MutationID,
		Anchor:     p.Anchor,
		SizeString: fmt.Sprintf("%dx%d", p.W, p.H),
		IsIsolated: p.Isolated,
	}
	if raw, ok := cache.Raw(p.MutationID); ok {
		pm.Name = raw.Name
		pm.Conditions = raw.Conditions
	}
	for _, crop := range p.Crops {
		if c := s.Crops.At(crop.Cell); c != nil && c.Shared() {
			pm.SharedCropKeys = append(pm.SharedCropKeys, fmt.Sprintf("%d,%d", crop.Cell.X, crop.Cell.Y))
		}
	}
	return pm
}

// BreakdownFrom renames fitness.Breakdown's terms to the host-facing
// ScoreBreakdown shape named in spec.md S6.
func BreakdownFrom(b fitness.Breakdown) ScoreBreakdown {
	var placementRate float64
	if b.TargetCount > 0 {
		placementRate = float64(b.MutationCount) / float64(b.TargetCount)
	}
	var cropEfficiency float64
	if b.TotalCrops > 0 {
		cropEfficiency = float64(b.SharedCropCount) / float64(b.TotalCrops)
	}
	return ScoreBreakdown{
		Placed:           b.MutationCount,
		Requested:        b.TargetCount,
		PlacementRate:    placementRate,
		TotalCrops:       b.TotalCrops,
		SharedCrops:      b.SharedCropCount,
		CropEfficiency:   cropEfficiency,
		CompactnessScore: math.Max(0, 200-10*b.AvgDistance),
		Synergies:        b.SynergyCount,
		TotalScore:       b.Score,
	}
}
