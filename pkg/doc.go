// Package pkg provides the core libraries for Cardwall layout computation.
//
// # Overview
//
// Cardwall computes pixel positions for variable-size cards inside a
// resizable container. Three packing modes are supported: masonry (cards
// flow into the shortest column), grid (uniform rows and columns), and
// list (single column). The pkg directory is organized into six areas:
//
//  1. [layout] - Pure layout computation (options, column planning, packing)
//  2. [cards] - Card decks and TOML manifest parsing
//  3. [engine] - Stateful engine (resize watching, recompute coalescing)
//  4. [render] - SVG and JSON artifact rendering
//  5. [cache] - Layout and artifact caching (file, Redis, null backends)
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through Cardwall:
//
//	Deck Manifest (TOML)
//	         ↓
//	    [cards] package (parse, validate, hash)
//	         ↓
//	    [layout] package (plan columns, pack cards)
//	         ↓
//	    [render] package (SVG / JSON artifacts)
//
// Long-lived hosts use [engine] instead of calling [layout] directly: the
// engine owns the card set, watches the container size, debounces resize
// bursts, and coalesces overlapping recompute requests.
//
// # Quick Start
//
// Compute a layout and render it:
//
//	import (
//	    "github.com/matzehuels/cardwall/pkg/cards"
//	    "github.com/matzehuels/cardwall/pkg/layout"
//	    "github.com/matzehuels/cardwall/pkg/render"
//	)
//
//	// 1. Load the deck
//	deck, _ := cards.LoadManifest("deck.toml")
//
//	// 2. Compute the layout
//	res, _ := layout.Compute(deck.IDs(),
//	    layout.Viewport{Width: 1200, Height: 800},
//	    layout.DefaultOptions(),
//	    deck.HeightLookup())
//
//	// 3. Render to SVG
//	svg := render.RenderSVG(res, render.WithDeck(deck))
//
// # Main Packages
//
// [layout] - Pure functions from card ids, viewport, and options to card
// positions. No state, no goroutines. Start here to understand the packing
// algorithms.
//
// [cards] - Deck container with insertion-order iteration, TOML manifest
// loading, per-card height tracking, and content hashing for cache keys.
//
// [engine] - The live half of the system: debounced resize watching,
// single-flight recompute with coalescing, result listeners, and position
// application to host-owned card handles.
//
// [render] - Artifact rendering. SVG with hover styling and optional deck
// labels, plus a JSON format for host-side consumption.
//
// [cache] - Content-addressed caching of layout results and rendered
// artifacts. FileCache for the CLI, RedisCache for shared deployments,
// NullCache for --no-cache.
//
// [errors] - Structured errors with stable codes and user-facing messages.
//
// [observability] - Pluggable hook registries for layout and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/cardwall/pkg/layout
// [cards]: https://pkg.go.dev/github.com/matzehuels/cardwall/pkg/cards
// [engine]: https://pkg.go.dev/github.com/matzehuels/cardwall/pkg/engine
// [render]: https://pkg.go.dev/github.com/matzehuels/cardwall/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/cardwall/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/cardwall/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/cardwall/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cardwall/pkg/buildinfo
package pkg
