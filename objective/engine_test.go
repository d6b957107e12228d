package objective_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/objective"
)

func smallCache(t *testing.T) *catalog.Cache {
	t.Helper()
	c := catalog.NewCache(nil)
	_, err := c.Parse("single", catalog.RawMutation{Size: "1x1", Effects: []string{"harvest_boost"}})
	require.NoError(t, err)
	_, err = c.Parse("double", catalog.RawMutation{Size: "2x1", Drops: map[string]int{"gold": 10}})
	require.NoError(t, err)
	return c
}

func TestRun_ReturnsNonNilStateWithNonNegativeScore(t *testing.T) {
	c := smallCache(t)
	params := objective.QuickParams()
	rng := rand.New(rand.NewSource(42))

	s, err := objective.Run(context.Background(), fullUnlocked(), c, []string{"single", "double"}, objective.CountMode, params, rng, nil)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.GreaterOrEqual(t, objective.Score(s, objective.CountMode, c), 0.0)
}

func TestRun_HonorsContextCancellation(t *testing.T) {
	c := smallCache(t)
	params := objective.RunParams{MaxIterations: 1_000_000, InitialT: 100, Cooling: 0.999}
	rng := rand.New(rand.NewSource(7))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	s, err := objective.Run(ctx, fullUnlocked(), c, []string{"single", "double"}, objective.CountMode, params, rng, nil)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestRun_InvokesProgressAtExpectedCadence(t *testing.T) {
	c := smallCache(t)
	params := objective.RunParams{MaxIterations: 100, InitialT: 50, Cooling: 0.99}
	rng := rand.New(rand.NewSource(5))

	var calls int
	_, err := objective.Run(context.Background(), fullUnlocked(), c, []string{"single", "double"}, objective.CountMode, params, rng, func(objective.ProgressEvent) {
		calls++
	})
	require.NoError(t, err)
	// One call every max(1, 100/50) = 2 iterations.
	require.Equal(t, 100/(100/50), calls)
}

func TestRun_UnsatisfiablePoolReturnsErrAllSpecial(t *testing.T) {
	c := catalog.NewCache(nil)
	_, err := c.Parse("special_one", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"special": "godseed"}})
	require.NoError(t, err)

	_, err = objective.Run(context.Background(), fullUnlocked(), c, []string{"special_one"}, objective.CountMode, objective.QuickParams(), rand.New(rand.NewSource(1)), nil)
	require.ErrorIs(t, err, objective.ErrAllSpecial)
}

func TestRunInfinite_StopsOnCancellationAndReturnsBest(t *testing.T) {
	c := smallCache(t)
	params := objective.RunParams{MaxIterations: 200, InitialT: 50, Cooling: 0.98}
	rng := rand.New(rand.NewSource(9))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s, err := objective.RunInfinite(ctx, fullUnlocked(), c, []string{"single", "double"}, objective.ProfitMode, params, rng, nil)
	require.NoError(t, err)
	require.NotNil(t, s)
}
