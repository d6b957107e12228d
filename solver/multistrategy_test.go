package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f4bii/crop-mutation/solver"
)

func TestMultiStrategyAll_SortedDescendingByScore(t *testing.T) {
	c := basicCache(t)
	results, err := solver.MultiStrategyAll(fullUnlocked(), c, []solver.WorkItem{{MutationID: "small", Quantity: 4}}, 4, 99)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(results), 6, "five profiles + genetic, at minimum")
	for i := 1; i < len(results); i++ {
		require.GreaterOrEqual(t, results[i-1].Breakdown.Score, results[i].Breakdown.Score)
	}
}

func TestMultiStrategy_ReturnsTopOfAll(t *testing.T) {
	c := basicCache(t)
	workload := []solver.WorkItem{{MutationID: "small", Quantity: 4}}
	best, err := solver.MultiStrategy(fullUnlocked(), c, workload, 4, 99)
	require.NoError(t, err)

	all, err := solver.MultiStrategyAll(fullUnlocked(), c, workload, 4, 99)
	require.NoError(t, err)
	require.Equal(t, all[0].Label, best.Label)
	require.Equal(t, all[0].Breakdown.Score, best.Breakdown.Score)
}

func TestMultiStrategyAll_IncludesBulkWhenDominant(t *testing.T) {
	c := basicCache(t)
	workload := []solver.WorkItem{{MutationID: "small", Quantity: 18}}
	results, err := solver.MultiStrategyAll(fullUnlocked(), c, workload, 18, 5)
	require.NoError(t, err)

	found := false
	for _, r := range results {
		if r.Label == "bulk+sa" {
			found = true
		}
	}
	require.True(t, found, "a dominant single-mutation workload should trigger the bulk branch")
}
