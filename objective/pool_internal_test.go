package objective

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f4bii/crop-mutation/catalog"
)

func TestCropOnlySeedOrder_TierDescendingThenAreaThenID(t *testing.T) {
	c := catalog.NewCache(nil)
	_, err := c.Parse("small_high_tier", catalog.RawMutation{Size: "1x1", Effects: []string{"harvest_boost", "xp_boost"}})
	require.NoError(t, err)
	_, err = c.Parse("big_high_tier", catalog.RawMutation{Size: "2x2", Effects: []string{"harvest_boost", "xp_boost"}})
	require.NoError(t, err)
	_, err = c.Parse("low_tier", catalog.RawMutation{Size: "1x1"})
	require.NoError(t, err)
	_, err = c.Parse("needs_dep", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"small_high_tier": 1}})
	require.NoError(t, err)

	pool, err := BuildPool(c, []string{"small_high_tier", "big_high_tier", "low_tier", "needs_dep"})
	require.NoError(t, err)

	order := pool.cropOnlySeedOrder(true)
	require.Equal(t, []string{"small_high_tier", "big_high_tier", "low_tier"}, order)
}
