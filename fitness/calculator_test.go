package fitness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/fitness"
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

func TestEvaluate_EmptyStateBelowTarget(t *testing.T) {
	s := board.NewState(fullUnlocked())
	b := fitness.Evaluate(s, 5, catalog.NewCache(nil))
	require.Equal(t, 0, b.MutationCount)
	require.Less(t, b.Score, 0.0, "zero placements against a positive target must score negative")
}

func TestEvaluate_SharedCropsAndSynergyRaiseScore(t *testing.T) {
	s := board.NewState(fullUnlocked())
	c := catalog.NewCache([]string{"wheat"})
	shareable, err := c.Parse("m_share", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"wheat": 1}})
	require.NoError(t, err)

	fp1, err := layout.Check(s, shareable, board.Point{X: 5, Y: 5})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp1, "m_share_0"))

	baseline := fitness.Evaluate(s, 1, c)

	// The ring-scan order plants the first placement's wheat at (4,4),
	// which lies in the ring of the anchor directly to its left, (4,5).
	fp2, err := layout.Check(s, shareable, board.Point{X: 4, Y: 5})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp2, "m_share_1"))

	withSharing := fitness.Evaluate(s, 2, c)
	require.GreaterOrEqual(t, withSharing.SharedCropCount, 1)
	require.Greater(t, withSharing.Score, baseline.Score)
}

func TestEvaluate_SynergyCountsOrderedPairs(t *testing.T) {
	s := board.NewState(fullUnlocked())
	c := catalog.NewCache(nil)
	positive, err := c.Parse("m_pos", catalog.RawMutation{Size: "1x1", Effects: []string{"harvest_boost"}})
	require.NoError(t, err)
	spread, err := c.Parse("m_spread", catalog.RawMutation{Size: "1x1", Effects: []string{"effect_spread"}})
	require.NoError(t, err)

	fp1, err := layout.Check(s, positive, board.Point{X: 4, Y: 4})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp1, "m_pos_0"))

	fp2, err := layout.Check(s, spread, board.Point{X: 5, Y: 4})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp2, "m_spread_0"))

	b := fitness.Evaluate(s, 2, c)
	require.Equal(t, 1, b.SynergyCount, "only the spread->positive ordered pair counts, not the reverse")
}

func TestEvaluate_AvgDistanceZeroPairsDoesNotDivideByZero(t *testing.T) {
	s := board.NewState(fullUnlocked())
	c := catalog.NewCache(nil)
	m, err := c.Parse("m", catalog.RawMutation{Size: "1x1"})
	require.NoError(t, err)
	fp, err := layout.Check(s, m, board.Point{X: 0, Y: 0})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp, "m_0"))

	b := fitness.Evaluate(s, 1, c)
	require.Equal(t, 0, b.DistancePairs)
	require.Equal(t, 0.0, b.AvgDistance)
}
