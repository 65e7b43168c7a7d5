package engine

import (
	"github.com/matzehuels/cardwall/pkg/layout"
	"github.com/matzehuels/cardwall/pkg/observability"
)

// Apply writes the computed positions of a completed result onto the given
// card handles. A handle whose card is absent from the result (removed
// between computation and application) is skipped for this pass; the next
// pass corrects it.
//
// Apply is idempotent: applying the same result twice yields an identical
// visible state. It is also all-or-nothing per pass in the sense that it only
// ever receives completed results; a failed or deferred pass never reaches
// the applier.
//
// Returns the number of handles positioned and the number skipped.
func Apply(res *layout.Result, handles []Handle) (applied, skipped int) {
	byID := make(map[string]layout.CardPosition, len(res.Positions))
	for _, p := range res.Positions {
		byID[p.CardID] = p
	}

	for _, h := range handles {
		p, ok := byID[h.ID()]
		if !ok {
			skipped++
			continue
		}
		h.SetPosition(p.X, p.Y, p.Width, p.Height)
		applied++
	}

	observability.Layout().OnApplyComplete(applied, skipped)
	return applied, skipped
}
