package layout

import (
	"sort"

	"github.com/f4bii/crop-mutation/board"
)

// Execute atomically applies fp against s under instance id, occupying
// the footprint, reserving an isolation halo or planting/reusing crops,
// and recording the resulting board.Placement. It is the only place a
// FeasiblePlacement is turned into board mutation (spec.md S4.4).
func Execute(s *board.State, fp *FeasiblePlacement, id board.InstanceID) error {
	// Reject a duplicate id before touching the board, so a failure leaves
	// s unchanged.
	if s.Placements.Get(id) != nil {
		return board.ErrDuplicateInstance
	}
	if err := s.Board.OccupyRect(fp.Anchor, fp.W, fp.H); err != nil {
		return err
	}

	placement := &board.Placement{
		ID:         id,
		MutationID: fp.MutationID,
		Anchor:     fp.Anchor,
		W:          fp.W,
		H:          fp.H,
		Isolated:   fp.Isolated,
	}

	if fp.Isolated {
		for _, cell := range board.RingCells(fp.Anchor, fp.W, fp.H) {
			s.Reserve(cell)
		}
		return s.Placements.Add(placement)
	}

	// Reuse already-satisfied crops first.
	cropNames := make([]string, 0, len(fp.SatisfiedCrops))
	for name := range fp.SatisfiedCrops {
		cropNames = append(cropNames, name)
	}
	sort.Strings(cropNames)
	for _, name := range cropNames {
		for _, cell := range fp.SatisfiedCrops[name] {
			s.Crops.AddServerAt(cell, id)
			placement.Crops = append(placement.Crops, board.CropAssignment{Cell: cell, Name: name})
		}
	}

	// Plant new crops to cover NeededCrops, consuming FreeCells in order.
	neededNames := make([]string, 0, len(fp.NeededCrops))
	for name := range fp.NeededCrops {
		neededNames = append(neededNames, name)
	}
	sort.Strings(neededNames)

	freeCells := fp.FreeCells
	for _, name := range neededNames {
		count := fp.NeededCrops[name]
		for i := 0; i < count; i++ {
			if len(freeCells) == 0 {
				break // unreachable if Check's step 7 passed, kept defensive
			}
			cell := freeCells[0]
			freeCells = freeCells[1:]
			if err := s.Board.OccupyCell(cell); err != nil {
				return err
			}
			s.Crops.Plant(cell, name, id)
			placement.Crops = append(placement.Crops, board.CropAssignment{Cell: cell, Name: name})
		}
	}

	return s.Placements.Add(placement)
}

// Remove undoes the placement previously executed under id: releases its
// footprint, drops it from every crop's serving set (deleting and
// releasing crop cells that fall to zero servers), and forgets the
// placement. Reserved-empty cells created by an isolated placement are
// never released — a deliberate, documented simplification (spec.md S9,
// DESIGN.md open question 1).
func Remove(s *board.State, id board.InstanceID) error {
	placement, err := s.Placements.Remove(id)
	if err != nil {
		return err
	}

	s.Board.ReleaseRect(placement.Anchor, placement.W, placement.H)

	for _, ca := range placement.Crops {
		if deleted := s.Crops.RemoveServerAt(ca.Cell, id); deleted {
			s.Board.ReleaseCell(ca.Cell)
		}
	}

	return nil
}
