package layout_test

import (
	"fmt"

	"github.com/matzehuels/cardwall/pkg/layout"
)

func ExamplePlanColumns() {
	plan := layout.PlanColumns(1000, 300, 10, 16)
	fmt.Printf("columns=%d cardWidth=%.0f\n", plan.Columns, plan.CardWidth)
	// Output: columns=3 cardWidth=316
}

func ExamplePackMasonry() {
	heights := map[string]float64{"a": 100, "b": 200, "c": 150}
	lookup := func(id string) (float64, bool) {
		h, ok := heights[id]
		return h, ok
	}

	positions, content := layout.PackMasonry(
		[]string{"a", "b", "c"},
		layout.ColumnPlan{Columns: 2, CardWidth: 300},
		0, lookup, layout.DefaultPlaceholderHeight,
	)

	for _, p := range positions {
		fmt.Printf("%s → column %d at y=%.0f\n", p.CardID, p.Column, p.Y)
	}
	fmt.Printf("content height: %.0f\n", content)
	// Output:
	// a → column 0 at y=0
	// b → column 1 at y=0
	// c → column 0 at y=100
	// content height: 250
}

func ExampleCompute() {
	res, err := layout.Compute(
		[]string{"intro", "tasks", "notes"},
		layout.Viewport{Width: 1000, Height: 700},
		layout.DefaultOptions(),
		nil,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%d columns, %d cards placed\n", res.Columns, res.CardCount())
	// Output: 3 columns, 3 cards placed
}
