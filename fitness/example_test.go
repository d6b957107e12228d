package fitness_test

import (
	"fmt"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/fitness"
	"github.com/f4bii/crop-mutation/layout"
)

// ExampleEvaluate shows how a strategy scores the State it has built so
// far against a target mutation count.
func ExampleEvaluate() {
	cells := make([]board.Point, 0, board.CellCount)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			cells = append(cells, board.Point{X: x, Y: y})
		}
	}
	s := board.NewState(cells)
	c := catalog.NewCache(nil)
	m, err := c.Parse("m", catalog.RawMutation{Size: "1x1"})
	if err != nil {
		panic(err)
	}
	fp, err := layout.Check(s, m, board.Point{X: 0, Y: 0})
	if err != nil {
		panic(err)
	}
	if err := layout.Execute(s, fp, "m_0"); err != nil {
		panic(err)
	}

	b := fitness.Evaluate(s, 1, c)
	fmt.Println(b.MutationCount)

	// Output:
	// 1
}
