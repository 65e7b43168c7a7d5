package engine

// Handle is the capability the engine holds for each live card. The engine
// never inspects a card's content; it only reads the measured height and
// writes coordinates.
type Handle interface {
	// ID returns the card's stable unique identifier.
	ID() string

	// MeasuredHeight returns the card's intrinsic content height. The second
	// return is false while the card has not been measured; the engine then
	// substitutes the configured placeholder height until a remeasurement
	// triggers another pass.
	MeasuredHeight() (float64, bool)

	// SetPosition applies computed coordinates and dimensions to the card.
	SetPosition(x, y, width, height float64)
}
