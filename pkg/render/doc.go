// Package render provides output format renderers for computed card layouts.
//
// # Overview
//
// A renderer transforms a computed [layout.Result] into a final output
// format. This package provides:
//
//   - SVG: a visual wireframe of the packed cards, for previews and docs
//   - JSON: layout data export for external tools and caching
//
// # SVG Output
//
// [RenderSVG] produces a wireframe with one rectangle per card, hover
// highlighting, and optional labels from an attached deck:
//
//	svg := render.RenderSVG(result,
//	    render.WithDeck(deck),
//	    render.WithPadding(opts.ContainerPadding),
//	)
//
// The frame is sized to the result's content dimensions. Card positions are
// relative to the padded content origin, so the padding used during
// computation must be passed with [WithPadding] for correct placement.
//
// # JSON Output
//
// [RenderJSON] exports the full result, enabling:
//
//   - Integration with external visualization tools
//   - Caching of layout computations
//   - Round-trip rendering (re-import and render identically)
//
// [layout.Result]: github.com/matzehuels/cardwall/pkg/layout.Result
package render
