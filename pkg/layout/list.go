package layout

// PackList places cards sequentially along the primary axis: card i starts at
// i*(size+gap), with the secondary axis fixed at zero. The positions are
// produced in vertical orientation (a single full-width column); the caller
// transposes them for horizontal layouts.
//
// The returned content height covers all cards without a trailing gap.
func PackList(cardIDs []string, cardWidth, cardHeight, gap float64) ([]CardPosition, float64) {
	positions := make([]CardPosition, 0, len(cardIDs))

	for i, id := range cardIDs {
		positions = append(positions, CardPosition{
			CardID: id,
			X:      0,
			Y:      float64(i) * (cardHeight + gap),
			Width:  cardWidth,
			Height: cardHeight,
			Row:    i,
			Column: 0,
		})
	}

	n := float64(len(cardIDs))
	var content float64
	if n > 0 {
		content = n*cardHeight + (n-1)*gap
	}
	return positions, content
}
