package objective_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/layout"
	"github.com/f4bii/crop-mutation/objective"
)

func TestSeed_PacksOnlyCropOnlyMutations(t *testing.T) {
	c := catalog.NewCache(nil)
	_, err := c.Parse("crop_only", catalog.RawMutation{Size: "1x1"})
	require.NoError(t, err)
	_, err = c.Parse("needs_dep", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"crop_only": 1}})
	require.NoError(t, err)

	pool, err := objective.BuildPool(c, []string{"crop_only", "needs_dep"})
	require.NoError(t, err)

	profile := layout.StrategyProfile{SharingWeight: 1, CompactnessWeight: 1.5, SynergyWeight: 0.5, CornerWeight: 1}
	s := objective.Seed(fullUnlocked(), c, pool, true, profile, rand.New(rand.NewSource(11)))

	require.Greater(t, s.Placements.Len(), 0)
	for _, p := range s.Placements.All() {
		require.Equal(t, "crop_only", p.MutationID)
	}
}

func TestSeed_FillsBoardToCapacityForSmallFootprint(t *testing.T) {
	c := catalog.NewCache(nil)
	_, err := c.Parse("unit", catalog.RawMutation{Size: "1x1"})
	require.NoError(t, err)
	pool, err := objective.BuildPool(c, []string{"unit"})
	require.NoError(t, err)

	profile := layout.StrategyProfile{SharingWeight: 1, CompactnessWeight: 1.5, SynergyWeight: 0.5, CornerWeight: 1}
	s := objective.Seed(fullUnlocked(), c, pool, true, profile, rand.New(rand.NewSource(3)))

	require.Equal(t, board.CellCount, s.Placements.Len())
}
