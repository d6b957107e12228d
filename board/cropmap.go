package board

import "sort"

// Crop is a single planted crop cell and the set of instances it serves.
// A crop with len(Serving) >= 2 is "shared" — the primary efficiency
// lever spec.md calls out.
type Crop struct {
	Cell    Point
	Name    string
	Serving []InstanceID
}

// Shared reports whether this crop currently serves two or more
// instances.
func (c *Crop) Shared() bool {
	return len(c.Serving) >= 2
}

// servesInstance reports whether id is already present in Serving.
func (c *Crop) servesInstance(id InstanceID) bool {
	for _, s := range c.Serving {
		if s == id {
			return true
		}
	}
	return false
}

// addServer inserts id into Serving, keeping it sorted for deterministic
// iteration and cheap duplicate detection. A no-op if id is already
// present.
func (c *Crop) addServer(id InstanceID) {
	if c.servesInstance(id) {
		return
	}
	c.Serving = append(c.Serving, id)
	sort.Slice(c.Serving, func(i, j int) bool { return c.Serving[i] < c.Serving[j] })
}

// removeServer deletes id from Serving. Returns true if Serving is now
// empty (the caller must then delete the crop record and release the
// cell, per spec invariant 6: a crop's serving set is never empty).
func (c *Crop) removeServer(id InstanceID) bool {
	for i, s := range c.Serving {
		if s == id {
			c.Serving = append(c.Serving[:i], c.Serving[i+1:]...)
			break
		}
	}
	return len(c.Serving) == 0
}

// CropMap is the sparse map of crop cell -> Crop record. Only occupied
// crop cells have an entry; absence means "no crop here".
type CropMap struct {
	byCell map[CellIndex]*Crop
}

// NewCropMap returns an empty CropMap.
func NewCropMap() *CropMap {
	return &CropMap{byCell: make(map[CellIndex]*Crop)}
}

// Clone returns a deep copy of m.
func (m *CropMap) Clone() *CropMap {
	clone := NewCropMap()
	for idx, c := range m.byCell {
		serving := make([]InstanceID, len(c.Serving))
		copy(serving, c.Serving)
		clone.byCell[idx] = &Crop{Cell: c.Cell, Name: c.Name, Serving: serving}
	}
	return clone
}

// At returns the crop at p, or nil if no crop occupies that cell.
func (m *CropMap) At(p Point) *Crop {
	return m.byCell[Index(p)]
}

// Plant creates a new crop record of the given name at p, served
// initially only by server. The caller is responsible for having already
// confirmed p is a legal planting site (board.OccupyCell succeeded).
func (m *CropMap) Plant(p Point, name string, server InstanceID) *Crop {
	c := &Crop{Cell: p, Name: name, Serving: []InstanceID{server}}
	m.byCell[Index(p)] = c
	return c
}

// AddServerAt records server as an additional server of the existing crop
// at p. It is a no-op if no crop exists there (callers must ensure the
// crop was already planted/recorded).
func (m *CropMap) AddServerAt(p Point, server InstanceID) {
	if c, ok := m.byCell[Index(p)]; ok {
		c.addServer(server)
	}
}

// RemoveServerAt removes server from the crop at p. If the crop's
// serving set becomes empty, the crop record is deleted and true is
// returned so the caller can also release the underlying board cell.
func (m *CropMap) RemoveServerAt(p Point, server InstanceID) (deleted bool) {
	c, ok := m.byCell[Index(p)]
	if !ok {
		return false
	}
	if c.removeServer(server) {
		delete(m.byCell, Index(p))
		return true
	}
	return false
}

// SharedCount returns the number of crop cells currently served by two or
// more instances.
func (m *CropMap) SharedCount() int {
	n := 0
	for _, c := range m.byCell {
		if c.Shared() {
			n++
		}
	}
	return n
}

// Len returns the total number of planted crop cells.
func (m *CropMap) Len() int {
	return len(m.byCell)
}

// All returns every crop record. The returned slice is a fresh copy of
// the map values; callers must not assume any particular order.
func (m *CropMap) All() []*Crop {
	out := make([]*Crop, 0, len(m.byCell))
	for _, c := range m.byCell {
		out = append(out, c)
	}
	return out
}
