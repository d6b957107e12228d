package gridout

import "github.com/f4bii/crop-mutation/board"

// CellKind discriminates Cell's tagged-union variants (spec.md S6).
type CellKind int

const (
	// CellEmpty is the "null" variant: an unlocked cell with no
	// footprint, crop, or reservation.
	CellEmpty CellKind = iota
	CellMutationArea
	CellCrop
	CellEmptyZone
)

// MutationAreaCell is the CellMutationArea variant's payload.
type MutationAreaCell struct {
	ID         board.InstanceID
	IsCenter   bool
	IsIsolated bool
}

// CropCell is the CellCrop variant's payload. AllServers includes
// PrimaryServer; PrimaryServer is AllServers[0] under the crop map's
// deterministic sorted-server order.
type CropCell struct {
	Crop          string
	PrimaryServer board.InstanceID
	AllServers    []board.InstanceID
}

// EmptyZoneCell is the CellEmptyZone variant's payload: a reserved-empty
// isolation halo cell, tagged with the instance that reserved it.
type EmptyZoneCell struct {
	SourceID board.InstanceID
}

// Cell is a tagged union over exactly one of the four variants named in
// spec.md S6, selected by Kind; the unused variant fields are nil. This
// mirrors the teacher's tagged-union-over-struct convention rather than
// an interface, since the variant set is closed and never needs dynamic
// dispatch.
type Cell struct {
	Kind         CellKind
	MutationArea *MutationAreaCell
	Crop         *CropCell
	EmptyZone    *EmptyZoneCell
}

// PlacedMutation records one placement's host-facing summary.
type PlacedMutation struct {
	ID             board.InstanceID
	MutationID     string
	Name           string
	Anchor         board.Point
	SizeString     string
	Conditions     map[string]any
	IsIsolated     bool
	SharedCropKeys []string
}

// Grid is the full output projection: every board cell, the placement
// list, and the unlocked set the State was built over.
type Grid struct {
	Cells      [board.Size][board.Size]Cell
	Placements []PlacedMutation
	Unlocked   []board.Point
}

// ScoreBreakdown is the host-facing rename of fitness.Breakdown's terms
// (spec.md S6).
type ScoreBreakdown struct {
	Placed           int
	Requested        int
	PlacementRate    float64
	TotalCrops       int
	SharedCrops      int
	CropEfficiency   float64
	CompactnessScore float64
	Synergies        int
	TotalScore       float64
}
