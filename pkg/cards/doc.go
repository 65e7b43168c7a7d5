// Package cards provides the deck model used by the CLI and preview server:
// an ordered collection of cards with measured-height bookkeeping, a TOML
// manifest loader, and a content hash for cache keys.
//
// A deck is host-side state. The layout engine itself only sees card ids and
// a height lookup; the deck is one convenient producer of both.
//
// # Manifest Format
//
// Deck manifests are TOML files with a [deck] table and repeated [[cards]]
// entries:
//
//	[deck]
//	name = "release notes"
//
//	[[cards]]
//	id = "intro"
//	title = "Welcome"
//	height = 140
//
//	[[cards]]
//	title = "Changelog"
//	height = 420
//
// A card without an id gets a generated UUID. A card without a height is
// treated as unmeasured and laid out at the placeholder height.
package cards
