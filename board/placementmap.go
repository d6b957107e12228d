package board

// CropAssignment records one crop cell satisfying a placement's
// requirement, mirroring the Placement.crops list from spec.md's data
// model.
type CropAssignment struct {
	Cell Point
	Name string
}

// Placement is a single placed copy of a mutation.
type Placement struct {
	ID         InstanceID
	MutationID string
	Anchor     Point
	W, H       int
	Crops      []CropAssignment
	Isolated   bool
}

// Footprint returns the set of cells this placement occupies.
func (p *Placement) Footprint() []Point {
	return FootprintCells(p.Anchor, p.W, p.H)
}

// Ring returns this placement's adjacency ring.
func (p *Placement) Ring() []Point {
	return RingCells(p.Anchor, p.W, p.H)
}

// Center is the floor-midpoint of the footprint, used as the external
// "center cell" and as the compactness anchor point for scoring.
func (p *Placement) Center() Point {
	return Point{X: p.Anchor.X + p.W/2, Y: p.Anchor.Y + p.H/2}
}

// PlacementMap is the sparse instance-id -> Placement map, plus its
// reverse cell -> instance-id back-map. The back-map is a flat array
// (per the "indices over pointers" design note) since the board has a
// fixed, small cell count.
type PlacementMap struct {
	byID    map[InstanceID]*Placement
	byCell  [CellCount]InstanceID
	ordered []InstanceID // insertion order, for deterministic iteration
}

// NewPlacementMap returns an empty PlacementMap.
func NewPlacementMap() *PlacementMap {
	return &PlacementMap{byID: make(map[InstanceID]*Placement)}
}

// Clone returns a deep copy of m.
func (m *PlacementMap) Clone() *PlacementMap {
	clone := NewPlacementMap()
	clone.byCell = m.byCell
	clone.ordered = append([]InstanceID(nil), m.ordered...)
	for id, p := range m.byID {
		cp := *p
		cp.Crops = append([]CropAssignment(nil), p.Crops...)
		clone.byID[id] = &cp
	}
	return clone
}

// Get returns the placement for id, or nil if not present.
func (m *PlacementMap) Get(id InstanceID) *Placement {
	return m.byID[id]
}

// At returns the placement owning cell p, or nil if p is not part of any
// footprint.
func (m *PlacementMap) At(p Point) *Placement {
	if !p.InBounds() {
		return nil
	}
	id := m.byCell[Index(p)]
	if id == "" {
		return nil
	}
	return m.byID[id]
}

// Add records a new placement. Returns ErrDuplicateInstance if the id is
// already present.
func (m *PlacementMap) Add(p *Placement) error {
	if _, exists := m.byID[p.ID]; exists {
		return ErrDuplicateInstance
	}
	m.byID[p.ID] = p
	m.ordered = append(m.ordered, p.ID)
	for _, c := range p.Footprint() {
		m.byCell[Index(c)] = p.ID
	}
	return nil
}

// Remove deletes the placement with id and clears its footprint from the
// back-map. Returns ErrUnknownInstance if id is not present.
func (m *PlacementMap) Remove(id InstanceID) (*Placement, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, ErrUnknownInstance
	}
	for _, c := range p.Footprint() {
		if m.byCell[Index(c)] == id {
			m.byCell[Index(c)] = ""
		}
	}
	delete(m.byID, id)
	for i, oid := range m.ordered {
		if oid == id {
			m.ordered = append(m.ordered[:i], m.ordered[i+1:]...)
			break
		}
	}
	return p, nil
}

// Len returns the number of live placements.
func (m *PlacementMap) Len() int {
	return len(m.byID)
}

// All returns every live placement in insertion order.
func (m *PlacementMap) All() []*Placement {
	out := make([]*Placement, 0, len(m.ordered))
	for _, id := range m.ordered {
		out = append(out, m.byID[id])
	}
	return out
}

// CountOf returns how many live instances have the given mutation id.
func (m *PlacementMap) CountOf(mutationID string) int {
	n := 0
	for _, id := range m.ordered {
		if m.byID[id].MutationID == mutationID {
			n++
		}
	}
	return n
}
