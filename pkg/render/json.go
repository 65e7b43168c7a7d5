package render

import (
	"encoding/json"

	"github.com/matzehuels/cardwall/pkg/cards"
	"github.com/matzehuels/cardwall/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	deck    *cards.Deck
	compact bool
}

// WithJSONDeck attaches the deck so exported cards carry their titles.
// Without this, cards export with positions only.
func WithJSONDeck(d *cards.Deck) JSONOption { return func(r *jsonRenderer) { r.deck = d } }

// WithJSONCompact disables pretty-printing, for wire transfer.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	ContainerWidth  float64    `json:"container_width"`
	ContainerHeight float64    `json:"container_height"`
	ContentWidth    float64    `json:"content_width"`
	ContentHeight   float64    `json:"content_height"`
	Columns         int        `json:"columns"`
	Rows            int        `json:"rows"`
	CardWidth       float64    `json:"card_width"`
	Direction       string     `json:"direction"`
	Cards           []jsonCard `json:"cards"`
}

type jsonCard struct {
	ID     string  `json:"id"`
	Title  string  `json:"title,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Row    int     `json:"row"`
	Column int     `json:"column"`
}

// RenderJSON exports the result as a JSON document: content and container
// dimensions, the grid shape, and one entry per card with its position. The
// output is pretty-printed unless [WithJSONCompact] is given.
func RenderJSON(res layout.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ContainerWidth:  res.ContainerWidth,
		ContainerHeight: res.ContainerHeight,
		ContentWidth:    res.ContentWidth,
		ContentHeight:   res.ContentHeight,
		Columns:         res.Columns,
		Rows:            res.Rows,
		CardWidth:       res.CardWidth,
		Direction:       string(res.Direction),
		Cards:           make([]jsonCard, 0, len(res.Positions)),
	}

	for _, p := range res.Positions {
		c := jsonCard{
			ID: p.CardID,
			X:  p.X, Y: p.Y,
			Width: p.Width, Height: p.Height,
			Row: p.Row, Column: p.Column,
		}
		if r.deck != nil {
			if card, ok := r.deck.Card(p.CardID); ok {
				c.Title = card.Title
			}
		}
		out.Cards = append(out.Cards, c)
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}
