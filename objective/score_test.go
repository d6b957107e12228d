package objective_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/layout"
	"github.com/f4bii/crop-mutation/objective"
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

func TestScore_CountModeRewardsTierAndArea(t *testing.T) {
	s := board.NewState(fullUnlocked())
	c := catalog.NewCache(nil)
	small, err := c.Parse("small", catalog.RawMutation{Size: "1x1"})
	require.NoError(t, err)
	big, err := c.Parse("big", catalog.RawMutation{Size: "2x2", Effects: []string{"harvest_boost"}})
	require.NoError(t, err)

	fp, err := layout.Check(s, small, board.Point{X: 0, Y: 0})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp, "small_0"))
	baseline := objective.Score(s, objective.CountMode, c)

	fp2, err := layout.Check(s, big, board.Point{X: 5, Y: 5})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fp2, "big_0"))
	withBig := objective.Score(s, objective.CountMode, c)

	require.Greater(t, withBig, baseline)
}

func TestScore_ProfitModeWeighsDropsEffectsAndTier(t *testing.T) {
	s := board.NewState(fullUnlocked())
	c := catalog.NewCache(nil)
	plain, err := c.Parse("plain", catalog.RawMutation{Size: "1x1"})
	require.NoError(t, err)
	rich, err := c.Parse("rich", catalog.RawMutation{
		Size:    "1x1",
		Drops:   map[string]int{"gold": 500},
		Effects: []string{"harvest_boost", "immunity"},
	})
	require.NoError(t, err)

	fpPlain, err := layout.Check(s, plain, board.Point{X: 0, Y: 0})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s, fpPlain, "plain_0"))
	plainScore := objective.Score(s, objective.ProfitMode, c)

	s2 := board.NewState(fullUnlocked())
	fpRich, err := layout.Check(s2, rich, board.Point{X: 0, Y: 0})
	require.NoError(t, err)
	require.NoError(t, layout.Execute(s2, fpRich, "rich_0"))
	richScore := objective.Score(s2, objective.ProfitMode, c)

	require.Greater(t, richScore, plainScore)
}
