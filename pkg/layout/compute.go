package layout

import (
	"github.com/matzehuels/cardwall/pkg/errors"
)

// Compute runs one full layout pass: resolve the direction, plan columns,
// pack every card, and assemble the Result. Every pass recomputes from
// scratch; there is no incremental repositioning.
//
// Card IDs must be unique and in insertion order: the order is the packing
// order and the masonry tie-break source. Heights may be nil when no card has
// a measured height; the placeholder height then applies everywhere.
//
// A zero-size viewport returns an error with code [errors.ErrCodeZeroViewport]
// so the caller can defer computation and keep its previous result.
func Compute(cardIDs []string, vp Viewport, opts Options, heights HeightLookup) (Result, error) {
	opts = opts.Clamped()

	if vp.IsZero() {
		return Result{}, errors.New(errors.ErrCodeZeroViewport,
			"container is unmeasurable (%gx%g)", vp.Width, vp.Height)
	}
	if heights == nil {
		heights = func(string) (float64, bool) { return 0, false }
	}

	dir := ResolveDirection(vp.Width, vp.Height, opts.AutoDirection, opts.AutoDirectionRatio, opts.ManualDirection())

	// Horizontal layouts are computed in a transposed frame: lanes are
	// planned against the container height and the packed positions are
	// flipped back afterwards.
	frame := vp
	if dir == DirectionHorizontal {
		frame = Viewport{Width: vp.Height, Height: vp.Width}
	}

	var (
		plan       ColumnPlan
		positions  []CardPosition
		content    float64
		cardHeight float64
	)

	switch opts.Mode {
	case ModeList:
		plan = ColumnPlan{Columns: 1, CardWidth: frame.Width - 2*opts.ContainerPadding}
		if plan.CardWidth <= 0 {
			plan.CardWidth = opts.CardThresholdWidth
		}
		cardHeight = resolveListCardHeight(opts)
		positions, content = PackList(cardIDs, plan.CardWidth, cardHeight, opts.Gap)

	case ModeGrid:
		plan = PlanColumns(frame.Width, opts.CardThresholdWidth, opts.Gap, opts.ContainerPadding)
		cardHeight = ResolveGridCardHeight(opts, frame.Height-2*opts.ContainerPadding, plan.Columns)
		positions, content = PackGrid(cardIDs, plan, opts.Gap, cardHeight)

	default: // masonry
		plan = PlanColumns(frame.Width, opts.CardThresholdWidth, opts.Gap, opts.ContainerPadding)
		placeholder := opts.PlaceholderHeight
		if opts.AlignCardHeight && opts.FixedCardHeight > 0 {
			fixed := opts.FixedCardHeight
			heights = func(string) (float64, bool) { return fixed, true }
			cardHeight = fixed
		}
		positions, content = PackMasonry(cardIDs, plan, opts.Gap, heights, placeholder)
	}

	res := Result{
		Columns:         plan.Columns,
		Rows:            GridRows(len(cardIDs), plan.Columns),
		CardWidth:       plan.CardWidth,
		CardHeight:      cardHeight,
		ContainerWidth:  vp.Width,
		ContainerHeight: vp.Height,
		Direction:       dir,
		ContentWidth:    2*opts.ContainerPadding + float64(plan.Columns)*plan.CardWidth + float64(plan.Columns-1)*opts.Gap,
		ContentHeight:   content + 2*opts.ContainerPadding,
		Positions:       positions,
	}

	if dir == DirectionHorizontal {
		transpose(&res)
	}
	return res, nil
}

// resolveListCardHeight resolves the uniform primary-axis card size for list
// mode. List placement is one-dimensional with a uniform size per card.
func resolveListCardHeight(opts Options) float64 {
	if opts.AlignCardHeight && opts.FixedCardHeight > 0 {
		return opts.FixedCardHeight
	}
	if opts.FixedCardHeight > 0 {
		return opts.FixedCardHeight
	}
	return opts.PlaceholderHeight
}

// transpose flips a result computed in the transposed frame back into
// container coordinates: x↔y, width↔height, row↔column. CardWidth keeps its
// meaning as the uniform cross-axis card size (the lane thickness) in both
// directions and is not swapped.
func transpose(res *Result) {
	for i := range res.Positions {
		p := &res.Positions[i]
		p.X, p.Y = p.Y, p.X
		p.Width, p.Height = p.Height, p.Width
		p.Row, p.Column = p.Column, p.Row
	}
	res.Columns, res.Rows = res.Rows, res.Columns
	res.ContentWidth, res.ContentHeight = res.ContentHeight, res.ContentWidth
}
