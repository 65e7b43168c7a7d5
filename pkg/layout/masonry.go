package layout

// HeightLookup reports the measured height of a card. The second return is
// false for cards that have not been measured yet; the packer substitutes the
// placeholder height for those until a remeasurement triggers another pass.
type HeightLookup func(cardID string) (float64, bool)

// PackMasonry places cards into the shortest column, in insertion order.
//
// The greedy shortest-column strategy approximates balanced packing without
// backtracking. Card order must stay stable across passes (reordering would
// be visually jarring), which rules out true optimal bin-packing. Ties
// between equally tall columns go to the lowest column index, making the
// assignment deterministic.
//
// The returned content height is the tallest accumulated column, including
// the gap trailing each placed card.
func PackMasonry(cardIDs []string, plan ColumnPlan, gap float64, heights HeightLookup, placeholder float64) ([]CardPosition, float64) {
	columnHeights := make([]float64, plan.Columns)
	positions := make([]CardPosition, 0, len(cardIDs))

	for i, id := range cardIDs {
		col := shortestColumn(columnHeights)

		h, ok := heights(id)
		if !ok || h <= 0 {
			h = placeholder
		}

		positions = append(positions, CardPosition{
			CardID: id,
			X:      float64(col) * (plan.CardWidth + gap),
			Y:      columnHeights[col],
			Width:  plan.CardWidth,
			Height: h,
			Row:    i / plan.Columns,
			Column: col,
		})
		columnHeights[col] += h + gap
	}

	var content float64
	for _, h := range columnHeights {
		if h > content {
			content = h
		}
	}
	return positions, content
}

// shortestColumn returns the index of the column with minimum accumulated
// height, preferring the lowest index on ties.
func shortestColumn(columnHeights []float64) int {
	col := 0
	for i := 1; i < len(columnHeights); i++ {
		if columnHeights[i] < columnHeights[col] {
			col = i
		}
	}
	return col
}
