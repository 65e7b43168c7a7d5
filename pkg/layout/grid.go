package layout

import "math"

// PackGrid places cards into a uniform grid by index arithmetic: column is
// index mod columns, row is index div columns. Unlike masonry, every cell has
// the same resolved card height.
//
// The returned content height covers all rows without a trailing gap.
func PackGrid(cardIDs []string, plan ColumnPlan, gap, cardHeight float64) ([]CardPosition, float64) {
	positions := make([]CardPosition, 0, len(cardIDs))

	for i, id := range cardIDs {
		col := i % plan.Columns
		row := i / plan.Columns
		positions = append(positions, CardPosition{
			CardID: id,
			X:      float64(col) * (plan.CardWidth + gap),
			Y:      float64(row) * (cardHeight + gap),
			Width:  plan.CardWidth,
			Height: cardHeight,
			Row:    row,
			Column: col,
		})
	}

	rows := GridRows(len(cardIDs), plan.Columns)
	var content float64
	if rows > 0 {
		content = float64(rows)*cardHeight + float64(rows-1)*gap
	}
	return positions, content
}

// GridRows returns the number of rows needed for n cards across the given
// number of columns.
func GridRows(n, columns int) int {
	if n <= 0 || columns <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) / float64(columns)))
}

// ResolveGridCardHeight resolves the uniform card height required by grid
// mode. A fixed height wins when configured. Otherwise, when CardsPerView is
// set, the height is derived so that exactly that many cards fill the
// available viewport height. With neither configured, the placeholder height
// applies.
func ResolveGridCardHeight(opts Options, availableHeight float64, columns int) float64 {
	if opts.AlignCardHeight && opts.FixedCardHeight > 0 {
		return opts.FixedCardHeight
	}
	if opts.CardsPerView > 0 && availableHeight > 0 && columns > 0 {
		rows := GridRows(opts.CardsPerView, columns)
		h := (availableHeight - opts.Gap*float64(rows-1)) / float64(rows)
		if h > 0 {
			return h
		}
	}
	if opts.FixedCardHeight > 0 {
		return opts.FixedCardHeight
	}
	return opts.PlaceholderHeight
}
