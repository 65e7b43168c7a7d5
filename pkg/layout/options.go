package layout

// =============================================================================
// Defaults - Single Source of Truth for CLI, Engine, and Server
// =============================================================================

const (
	// DefaultCardThresholdWidth is the target minimum card width in pixels.
	DefaultCardThresholdWidth = 300.0

	// DefaultGap is the default spacing between cards in pixels.
	DefaultGap = 10.0

	// DefaultContainerPadding is the default inner padding of the container.
	DefaultContainerPadding = 16.0

	// DefaultAutoDirectionRatio is the aspect ratio threshold used when
	// automatic direction resolution is enabled. A container wider than
	// ratio × height lays out horizontally.
	DefaultAutoDirectionRatio = 1.0

	// DefaultPlaceholderHeight is the height assumed for cards that have not
	// been measured yet. The result is only eventually accurate: a later
	// remeasurement must trigger another compute pass.
	DefaultPlaceholderHeight = 200.0
)

// Mode constants for the packing strategy.
const (
	ModeMasonry = "masonry"
	ModeGrid    = "grid"
	ModeList    = "list"
)

// ValidModes is the set of supported packing modes.
var ValidModes = map[string]bool{
	ModeMasonry: true,
	ModeGrid:    true,
	ModeList:    true,
}

// Direction of the primary layout axis.
type Direction string

// Supported directions.
const (
	DirectionVertical   Direction = "vertical"
	DirectionHorizontal Direction = "horizontal"
)

// =============================================================================
// Options - Layout Configuration
// =============================================================================

// Options contains all configuration for a layout computation.
// This struct supports JSON serialization for the preview server and CLI.
type Options struct {
	// Mode selects the packing strategy: masonry (default), grid, or list.
	Mode string `json:"mode,omitempty"`

	// CardThresholdWidth is the target minimum card width. Column count is
	// derived by fitting as many threshold-wide cards as possible.
	CardThresholdWidth float64 `json:"card_threshold_width,omitempty"`

	// Gap is the spacing between adjacent cards, both axes.
	Gap float64 `json:"gap,omitempty"`

	// ContainerPadding is the inner padding applied on all container edges.
	ContainerPadding float64 `json:"container_padding,omitempty"`

	// AlignCardHeight forces every card to FixedCardHeight instead of its
	// content-driven height.
	AlignCardHeight bool `json:"align_card_height,omitempty"`

	// FixedCardHeight is the uniform card height used when AlignCardHeight
	// is set, or by grid mode when CardsPerView is zero.
	FixedCardHeight float64 `json:"fixed_card_height,omitempty"`

	// CardsPerView derives the grid card height so that this many cards fit
	// the viewport at once. Zero disables the derivation.
	CardsPerView int `json:"cards_per_view,omitempty"`

	// IsVertical is the manual direction used when AutoDirection is off or
	// the container height cannot be measured.
	IsVertical bool `json:"is_vertical,omitempty"`

	// AutoDirection resolves the direction from the container aspect ratio.
	AutoDirection bool `json:"auto_direction,omitempty"`

	// AutoDirectionRatio is the aspect ratio threshold for AutoDirection.
	AutoDirectionRatio float64 `json:"auto_direction_ratio,omitempty"`

	// PlaceholderHeight substitutes for cards with no measured height.
	PlaceholderHeight float64 `json:"placeholder_height,omitempty"`
}

// DefaultOptions returns options with all defaults applied: vertical masonry
// with threshold, gap, and padding at their package defaults.
func DefaultOptions() Options {
	return Options{
		Mode:               ModeMasonry,
		CardThresholdWidth: DefaultCardThresholdWidth,
		Gap:                DefaultGap,
		ContainerPadding:   DefaultContainerPadding,
		IsVertical:         true,
		AutoDirectionRatio: DefaultAutoDirectionRatio,
		PlaceholderHeight:  DefaultPlaceholderHeight,
	}
}

// Clamped returns a copy with invalid geometry replaced by safe minimums.
// Violations are corrected rather than propagated: a negative gap becomes
// zero, a non-positive threshold width falls back to the default, and so on.
func (o Options) Clamped() Options {
	if !ValidModes[o.Mode] {
		o.Mode = ModeMasonry
	}
	if o.CardThresholdWidth <= 0 {
		o.CardThresholdWidth = DefaultCardThresholdWidth
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.ContainerPadding < 0 {
		o.ContainerPadding = 0
	}
	if o.AutoDirectionRatio <= 0 {
		o.AutoDirectionRatio = DefaultAutoDirectionRatio
	}
	if o.FixedCardHeight < 0 {
		o.FixedCardHeight = 0
	}
	if o.CardsPerView < 0 {
		o.CardsPerView = 0
	}
	if o.PlaceholderHeight <= 0 {
		o.PlaceholderHeight = DefaultPlaceholderHeight
	}
	return o
}

// ManualDirection returns the direction configured by IsVertical, ignoring
// automatic resolution.
func (o Options) ManualDirection() Direction {
	if o.IsVertical {
		return DirectionVertical
	}
	return DirectionHorizontal
}

// Viewport is the measured size of the container, supplied externally on
// each compute trigger.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether the viewport has no measurable area.
func (v Viewport) IsZero() bool {
	return v.Width <= 0 || v.Height <= 0
}
