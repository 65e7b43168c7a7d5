package layout

// ResolveDirection resolves the primary layout axis from the container
// geometry. With auto-direction enabled and a measurable height, the
// container's aspect ratio decides: a ratio below the threshold resolves to
// vertical, anything at or above it to horizontal. The tie at exactly the
// ratio resolves to horizontal. When the height is zero (unmeasurable) or
// auto-direction is off, the manual direction is returned unchanged.
func ResolveDirection(containerWidth, containerHeight float64, auto bool, ratio float64, manual Direction) Direction {
	if !auto || containerHeight <= 0 {
		return manual
	}
	aspect := containerWidth / containerHeight
	if aspect < ratio {
		return DirectionVertical
	}
	return DirectionHorizontal
}
