// Package layout computes card positions for the cardwall engine.
//
// This package contains the pure computation half of cardwall: given an
// ordered list of card IDs, a viewport, and a set of options, it produces a
// [Result] holding one [CardPosition] per card. It performs no I/O, owns no
// timers, and keeps no state between calls, which makes every algorithm
// independently testable. The reactive half (resize observation, debouncing,
// single-flight recomputation) lives in pkg/engine.
//
// # Packing Modes
//
// Three packing strategies are supported, selected by [Options.Mode]:
//
//   - masonry: greedy shortest-column placement for variable-height cards
//   - grid: fixed rows and columns derived from index arithmetic
//   - list: one-dimensional sequential placement along the primary axis
//
// Each packer is a pure function (cards, plan, gap, heights) → positions, so
// they can be unit tested without constructing an engine.
//
// # Coordinate Space
//
// Positions are relative to the padded content origin of the container: the
// first card in a vertical masonry layout sits at (0, 0) regardless of
// ContainerPadding. Result.ContentWidth and ContentHeight include the padding
// on both sides so they can be used directly for scroll-area sizing.
//
// # Usage
//
//	cards := []string{"a", "b", "c"}
//	heights := func(id string) (float64, bool) { return 120, true }
//	res, err := layout.Compute(cards, layout.Viewport{Width: 900, Height: 600},
//	    layout.DefaultOptions(), heights)
//	if err != nil {
//	    return err
//	}
//	for _, p := range res.Positions {
//	    fmt.Printf("%s → (%.0f, %.0f)\n", p.CardID, p.X, p.Y)
//	}
package layout
