package layout

import "math"

// ColumnPlan is the output of column planning: how many columns fit the
// container and how wide each card becomes.
type ColumnPlan struct {
	Columns   int
	CardWidth float64
}

// PlanColumns fits as many threshold-wide columns as possible into the
// container and stretches cards to consume the leftover width.
//
// The available width is the container width minus padding on both sides.
// When nothing fits (zero or negative available width), the plan degrades to
// a single column at the threshold width rather than producing invalid
// geometry.
func PlanColumns(containerWidth, cardThresholdWidth, gap, padding float64) ColumnPlan {
	available := containerWidth - 2*padding
	if available <= 0 {
		return ColumnPlan{Columns: 1, CardWidth: cardThresholdWidth}
	}

	columns := int(math.Floor(available / (cardThresholdWidth + gap)))
	if columns < 1 {
		columns = 1
	}

	cardWidth := (available - gap*float64(columns-1)) / float64(columns)
	return ColumnPlan{Columns: columns, CardWidth: cardWidth}
}
