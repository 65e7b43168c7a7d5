package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/cardwall/pkg/cards"
	"github.com/matzehuels/cardwall/pkg/layout"
)

const cardInteractionCSS = `
    .card { transition: stroke-width 0.2s ease; }
    .card:hover { stroke-width: 3; }
    .card-text { pointer-events: none; }`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	deck    *cards.Deck
	padding float64
	scale   float64
	fill    string
	stroke  string
	frame   string
}

// WithDeck attaches the deck so cards are labeled with their titles.
// Without it, cards are labeled with their ids.
func WithDeck(d *cards.Deck) SVGOption { return func(r *svgRenderer) { r.deck = d } }

// WithPadding offsets cards by the container padding used during layout
// computation. Positions in a result are relative to the padded origin.
func WithPadding(p float64) SVGOption { return func(r *svgRenderer) { r.padding = p } }

// WithScale multiplies the output pixel dimensions while keeping the same
// viewBox, producing a larger raster when converted downstream.
func WithScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithColors overrides the default frame, card fill, and card stroke colors.
func WithColors(frame, fill, stroke string) SVGOption {
	return func(r *svgRenderer) { r.frame, r.fill, r.stroke = frame, fill, stroke }
}

// RenderSVG produces an SVG wireframe of the result: the content frame, one
// rectangle per card, and a centered label per card. It does not modify the
// result and is safe to call concurrently.
func RenderSVG(res layout.Result, opts ...SVGOption) []byte {
	r := svgRenderer{
		scale:  1,
		frame:  "#f6f6f4",
		fill:   "#ffffff",
		stroke: "#444444",
	}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := res.ContentWidth, res.ContentHeight
	if w <= 0 {
		w = res.ContainerWidth
	}
	if h <= 0 {
		h = res.ContainerHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w*r.scale, h*r.scale)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", cardInteractionCSS)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, r.frame)

	for _, p := range res.Positions {
		renderCard(&buf, &r, p)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderCard(buf *bytes.Buffer, r *svgRenderer, p layout.CardPosition) {
	x := p.X + r.padding
	y := p.Y + r.padding

	fmt.Fprintf(buf, `  <rect id="card-%s" class="card" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s"/>`+"\n",
		html.EscapeString(p.CardID), x, y, p.Width, p.Height, r.fill, r.stroke)

	fmt.Fprintf(buf, `  <text class="card-text" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="12">%s</text>`+"\n",
		x+p.Width/2, y+p.Height/2, html.EscapeString(r.label(p.CardID)))
}

func (r *svgRenderer) label(id string) string {
	if r.deck != nil {
		if c, ok := r.deck.Card(id); ok && c.Title != "" {
			return c.Title
		}
	}
	return id
}
