package catalog_test

import (
	"fmt"

	"github.com/f4bii/crop-mutation/catalog"
)

// ExampleCache_Parse demonstrates splitting a raw condition map into crop
// requirements and mutation dependencies using the crop vocabulary.
func ExampleCache_Parse() {
	c := catalog.NewCache([]string{"wheat", "potato"})
	m, _ := c.Parse("m_shareable", catalog.RawMutation{
		Size: "1x1",
		Conditions: map[string]any{
			"wheat":  1,
			"potato": 1,
		},
	})
	fmt.Println(m.Crops["wheat"], m.Crops["potato"], len(m.Deps))
	// Output: 1 1 0
}
