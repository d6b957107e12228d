package layout

import (
	"sort"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
)

// FeasiblePlacement describes what placing m at anchor would consume and
// satisfy, as computed by Check. It carries no board mutation itself;
// Placer.Execute consumes a FeasiblePlacement to perform the mutation.
type FeasiblePlacement struct {
	MutationID     string
	Anchor         board.Point
	W, H           int
	Isolated       bool
	SatisfiedCrops map[string][]board.Point
	SatisfiedDeps  map[string][]board.InstanceID
	NeededCrops    map[string]int
	FreeCells      []board.Point
}

// TotalNeededCrops sums NeededCrops across all crop kinds.
func (f *FeasiblePlacement) TotalNeededCrops() int {
	n := 0
	for _, c := range f.NeededCrops {
		n += c
	}
	return n
}

// Check implements the seven-step FeasibilityChecker procedure from
// spec.md S4.3. It is a pure function: s is read but never mutated.
// Determinism: FreeCells and every SatisfiedX slice follow the fixed
// row-major ring traversal order of board.RingCells, so repeated calls
// with identical (s, m, anchor) always produce an identical result.
func Check(s *board.State, m *catalog.ParsedMutation, anchor board.Point) (*FeasiblePlacement, error) {
	// Step 1: does the footprint fit?
	if !s.Board.FitsRect(anchor, m.W, m.H) {
		return nil, ErrInfeasible
	}
	// Step 2: no footprint cell may be reserved-empty.
	for _, cell := range board.FootprintCells(anchor, m.W, m.H) {
		if s.IsReserved(cell) {
			return nil, ErrInfeasible
		}
	}

	ring := board.RingCells(anchor, m.W, m.H)

	fp := &FeasiblePlacement{
		MutationID: m.ID,
		Anchor:     anchor,
		W:          m.W,
		H:          m.H,
		Isolated:   m.Isolated,
	}

	// Step 3: isolation-requiring mutations consume no crops and forbid
	// any crop (or other footprint) in their ring.
	if m.Isolated {
		for _, cell := range ring {
			if s.Crops.At(cell) != nil {
				return nil, ErrInfeasible
			}
			if s.Placements.At(cell) != nil {
				return nil, ErrInfeasible
			}
		}
		return fp, nil
	}

	// Step 4: single scan of the ring.
	fp.SatisfiedCrops = make(map[string][]board.Point)
	fp.SatisfiedDeps = make(map[string][]board.InstanceID)
	depSeen := make(map[string]map[board.InstanceID]bool)

	for _, cell := range ring {
		if crop := s.Crops.At(cell); crop != nil {
			need := m.Crops[crop.Name]
			have := len(fp.SatisfiedCrops[crop.Name])
			if need > 0 && have < need {
				fp.SatisfiedCrops[crop.Name] = append(fp.SatisfiedCrops[crop.Name], cell)
			}
			continue
		}
		if pl := s.Placements.At(cell); pl != nil {
			if need := m.Deps[pl.MutationID]; need > 0 {
				if depSeen[pl.MutationID] == nil {
					depSeen[pl.MutationID] = make(map[board.InstanceID]bool)
				}
				if !depSeen[pl.MutationID][pl.ID] {
					depSeen[pl.MutationID][pl.ID] = true
					fp.SatisfiedDeps[pl.MutationID] = append(fp.SatisfiedDeps[pl.MutationID], pl.ID)
				}
			}
			continue
		}
		if s.EligibleForCrop(cell) {
			fp.FreeCells = append(fp.FreeCells, cell)
		}
	}

	// Step 5: compute remaining crop needs.
	fp.NeededCrops = make(map[string]int)
	cropNames := make([]string, 0, len(m.Crops))
	for name := range m.Crops {
		cropNames = append(cropNames, name)
	}
	sort.Strings(cropNames)
	for _, name := range cropNames {
		required := m.Crops[name]
		have := len(fp.SatisfiedCrops[name])
		if required-have > 0 {
			fp.NeededCrops[name] = required - have
		}
	}

	// Step 6: every required dep kind must meet its count.
	for depID, required := range m.Deps {
		if len(fp.SatisfiedDeps[depID]) < required {
			return nil, ErrInfeasible
		}
	}

	// Step 7: enough free ring cells to plant what's still missing.
	if fp.TotalNeededCrops() > len(fp.FreeCells) {
		return nil, ErrInfeasible
	}

	return fp, nil
}
