package objective_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/objective"
)

func TestBuildPool_DropsSpecialAndUnsatisfiableDeps(t *testing.T) {
	c := catalog.NewCache(nil)
	_, err := c.Parse("crop_only", catalog.RawMutation{Size: "1x1"})
	require.NoError(t, err)
	_, err = c.Parse("special_one", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"special": "godseed"}})
	require.NoError(t, err)
	_, err = c.Parse("needs_special", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"special_one": 1}})
	require.NoError(t, err)
	_, err = c.Parse("needs_crop_only", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"crop_only": 1}})
	require.NoError(t, err)

	pool, err := objective.BuildPool(c, []string{"crop_only", "special_one", "needs_special", "needs_crop_only"})
	require.NoError(t, err)

	ids := pool.IDs()
	require.Contains(t, ids, "crop_only")
	require.Contains(t, ids, "needs_crop_only")
	require.NotContains(t, ids, "special_one")
	require.NotContains(t, ids, "needs_special")
}

func TestBuildPool_AllSpecialReturnsError(t *testing.T) {
	c := catalog.NewCache(nil)
	_, err := c.Parse("special_one", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"special": "godseed"}})
	require.NoError(t, err)

	_, err = objective.BuildPool(c, []string{"special_one"})
	require.ErrorIs(t, err, objective.ErrAllSpecial)
}
