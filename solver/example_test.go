package solver_test

import (
	"fmt"

	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/solver"
)

// ExampleMultiStrategy demonstrates the full dispatch-and-compare pipeline
// for a small workload.
func ExampleMultiStrategy() {
	cache := catalog.NewCache([]string{"wheat"})
	if _, err := cache.Parse("small", catalog.RawMutation{Size: "1x1", Conditions: map[string]any{"wheat": 1}}); err != nil {
		panic(err)
	}

	workload := []solver.WorkItem{{MutationID: "small", Quantity: 3}}
	best, err := solver.MultiStrategy(fullUnlocked(), cache, workload, 3, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(best.State.Placements.Len() <= 3)

	// Output:
	// true
}
