package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple decks or users can
// share one backend without key collisions. The preview server scopes keys
// per deck name; a shared Redis instance scopes per user.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "deck:release-notes:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(deckHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(deckHash, opts)
}

// RenderKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) RenderKey(layoutHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(layoutHash, opts)
}
