package gridout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/gridout"
	"github.com/f4bii/crop-mutation/layout"
)

func fullUnlocked() []board.Point {
	cells := make([]board.Point, 0, board.CellCount)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			cells = append(cells, board.Point{X: x, Y: y})
		}
	}
	return cells
}

func TestBuild_MutationAreaMarksCenterAndIsolation(t *testing.T) {
	s := board.NewState(fullUnlocked())
	c := catalog.NewCache(nil)
	m, err := c.Parse("iso", catalog.RawMutation{Size: "2x2", Conditions: map[string]any{"adjacent_crops": 0}})
	require.NoError(t, err)

	fp, err := layout.Check(s, m, board.Point{X: 4, Y: 4})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp, "iso_0"))

	g := gridout.Build(s, c)
	require.Equal(t, gridout.CellMutationArea, g.Cells[4][4].Kind)
	require.True(t, g.Cells[4][4].MutationArea.IsIsolated)

	center := board.Point{X: 4 + 2/2, Y: 4 + 2/2}
	require.True(t, g.Cells[center.Y][center.X].MutationArea.IsCenter)

	require.Len(t, g.Placements, 1)
	require.Equal(t, "2x2", g.Placements[0].SizeString)
}

func TestBuild_SharedCropReportsAllServersAndKey(t *testing.T) {
	s := board.NewState(fullUnlocked())
	c := catalog.NewCache([]string{"wheat"})
	m, err := c.Parse("m_share", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"wheat": 1}})
	require.NoError(t, err)

	fp1, err := layout.Check(s, m, board.Point{X: 5, Y: 5})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp1, "m_share_0"))

	fp2, err := layout.Check(s, m, board.Point{X: 4, Y: 5})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp2, "m_share_1"))

	g := gridout.Build(s, c)

	var sharedFound bool
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			cell := g.Cells[y][x]
			if cell.Kind == gridout.CellCrop && len(cell.Crop.AllServers) >= 2 {
				sharedFound = true
			}
		}
	}
	require.True(t, sharedFound, "expected at least one shared crop cell")

	var gotSharedKey bool
	for _, pm := range g.Placements {
		if len(pm.SharedCropKeys) > 0 {
			gotSharedKey = true
		}
	}
	require.True(t, gotSharedKey)
}

func TestBuild_EmptyZoneTaggedWithSource(t *testing.T) {
	s := board.NewState(fullUnlocked())
	c := catalog.NewCache(nil)
	iso, err := c.Parse("iso", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"adjacent_crops": 0}})
	require.NoError(t, err)

	fp, err := layout.Check(s, iso, board.Point{X: 5, Y: 5})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp, "iso_0"))

	g := gridout.Build(s, c)
	var zoneFound bool
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			cell := g.Cells[y][x]
			if cell.Kind == gridout.CellEmptyZone {
				zoneFound = true
				require.Equal(t, board.InstanceID("iso_0"), cell.EmptyZone.SourceID)
			}
		}
	}
	require.True(t, zoneFound)
}

// TestBuild_EmptyZoneSourcelessAfterRemoval pins spec.md S9's "reserved
// cells are never released on removal": once the isolated instance that
// reserved a ring cell is removed, the cell is still reported as an
// empty zone but with no live source.
func TestBuild_EmptyZoneSourcelessAfterRemoval(t *testing.T) {
	s := board.NewState(fullUnlocked())
	c := catalog.NewCache(nil)
	iso, err := c.Parse("iso", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"adjacent_crops": 0}})
	require.NoError(t, err)

	fp, err := layout.Check(s, iso, board.Point{X: 5, Y: 5})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp, "iso_0"))
	require.NoError(t, layout.Remove(s, "iso_0"))

	g := gridout.Build(s, c)
	var zoneFound bool
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			cell := g.Cells[y][x]
			if cell.Kind == gridout.CellEmptyZone {
				zoneFound = true
				require.Equal(t, board.InstanceID(""), cell.EmptyZone.SourceID)
			}
		}
	}
	require.True(t, zoneFound)
}

func TestBuild_UnlockedCellsMatchState(t *testing.T) {
	partial := []board.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	s := board.NewState(partial)
	c := catalog.NewCache(nil)

	g := gridout.Build(s, c)
	require.Equal(t, partial, g.Unlocked)
}
