package cache

import (
	"github.com/matzehuels/cardwall/pkg/layout"
)

// LayoutKeyOpts captures everything that changes a computed layout.
type LayoutKeyOpts struct {
	Options  layout.Options  `json:"options"`
	Viewport layout.Viewport `json:"viewport"`
}

// RenderKeyOpts captures everything that changes a rendered artifact.
type RenderKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// Keyer generates cache keys. Implementations must be deterministic: the
// same inputs always produce the same key.
type Keyer interface {
	// LayoutKey generates a key for a computed layout, from the deck's
	// content hash and the layout inputs.
	LayoutKey(deckHash string, opts LayoutKeyOpts) string

	// RenderKey generates a key for a rendered artifact, from the layout's
	// hash and the render settings.
	RenderKey(layoutHash string, opts RenderKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key of the form layout:hash.
func (k *DefaultKeyer) LayoutKey(deckHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", deckHash, opts)
}

// RenderKey generates a key of the form render:hash.
func (k *DefaultKeyer) RenderKey(layoutHash string, opts RenderKeyOpts) string {
	return hashKey("render", layoutHash, opts)
}
