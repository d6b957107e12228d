package objective_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/objective"
)

func ExampleRun() {
	cells := make([]board.Point, 0, board.CellCount)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			cells = append(cells, board.Point{X: x, Y: y})
		}
	}

	c := catalog.NewCache(nil)
	_, _ = c.Parse("booster", catalog.RawMutation{Size: "1x1", Effects: []string{"harvest_boost"}})

	rng := rand.New(rand.NewSource(1))
	result, err := objective.Run(context.Background(), cells, c, []string{"booster"}, objective.CountMode, objective.QuickParams(), rng, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.Placements.Len() > 0)
	// Output:
	// true
}
