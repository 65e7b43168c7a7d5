package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// CardPosition - Placed Card Geometry
// =============================================================================

// CardPosition is the computed placement of a single card.
// All coordinates are in pixels, relative to the padded content origin.
type CardPosition struct {
	CardID string  `json:"card_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Row    int     `json:"row"`
	Column int     `json:"column"`
}

// =============================================================================
// Result - Completed Layout
// =============================================================================

// Result is the complete output of one compute pass. A fresh Result is built
// on every pass and atomically replaces the previous one; positions are never
// mutated in place across passes.
type Result struct {
	Columns         int       `json:"columns"`
	Rows            int       `json:"rows"`
	CardWidth       float64   `json:"card_width"`
	CardHeight      float64   `json:"card_height,omitempty"`
	ContainerWidth  float64   `json:"container_width"`
	ContainerHeight float64   `json:"container_height"`
	Direction       Direction `json:"direction"`

	// ContentWidth and ContentHeight span all placed cards plus container
	// padding, sized for the scroll area.
	ContentWidth  float64 `json:"content_width"`
	ContentHeight float64 `json:"content_height"`

	Positions []CardPosition `json:"positions"`
}

// Position returns the placement for the given card ID.
// The second return is false when the card is not part of this result.
func (r *Result) Position(cardID string) (CardPosition, bool) {
	for _, p := range r.Positions {
		if p.CardID == cardID {
			return p, true
		}
	}
	return CardPosition{}, false
}

// CardCount returns the number of placed cards.
func (r *Result) CardCount() int { return len(r.Positions) }

// =============================================================================
// Serialization API
// =============================================================================

// MarshalResult serializes a Result to pretty-printed JSON bytes.
func MarshalResult(r Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalResult deserializes JSON bytes into a Result.
// Validates that the result carries positions and a known direction.
func UnmarshalResult(data []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, fmt.Errorf("unmarshal layout result: %w", err)
	}

	if r.Direction == "" {
		r.Direction = DirectionVertical
	}
	if r.Direction != DirectionVertical && r.Direction != DirectionHorizontal {
		return Result{}, fmt.Errorf("unknown direction %q", r.Direction)
	}
	if len(r.Positions) == 0 {
		return Result{}, fmt.Errorf("layout result must contain positions")
	}

	seen := make(map[string]bool, len(r.Positions))
	for _, p := range r.Positions {
		if seen[p.CardID] {
			return Result{}, fmt.Errorf("duplicate card id %q", p.CardID)
		}
		seen[p.CardID] = true
	}

	return r, nil
}

// WriteResultFile writes a Result to a JSON file.
func WriteResultFile(r Result, path string) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadResultFile reads a Result from a JSON file.
func ReadResultFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalResult(data)
}
