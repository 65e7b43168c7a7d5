package cards

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/matzehuels/cardwall/pkg/errors"
	"github.com/matzehuels/cardwall/pkg/layout"
)

// =============================================================================
// Card - Single Content Unit
// =============================================================================

// Card is one unit of content placed by the layout engine. The engine never
// reads Title or Body; they exist for rendering and previews.
type Card struct {
	ID    string `json:"id" toml:"id"`
	Title string `json:"title,omitempty" toml:"title"`
	Body  string `json:"body,omitempty" toml:"body"`

	// Height is the measured content height in pixels. Zero means the card
	// has not been measured yet.
	Height float64 `json:"height,omitempty" toml:"height"`
}

// MeasuredHeight returns the card's height and whether it has been measured.
func (c Card) MeasuredHeight() (float64, bool) {
	if c.Height <= 0 {
		return 0, false
	}
	return c.Height, true
}

// =============================================================================
// Deck - Ordered Card Collection
// =============================================================================

// Deck is an ordered card collection. Insertion order is the packing order
// seen by the layout engine. Deck is not safe for concurrent use; callers
// that share one across goroutines must synchronize externally.
type Deck struct {
	Name  string
	cards []Card
	byID  map[string]int
}

// NewDeck returns an empty deck with the given name.
func NewDeck(name string) *Deck {
	return &Deck{Name: name, byID: make(map[string]int)}
}

// Add appends a card to the end of the deck. An empty id gets a generated
// UUID; the resolved id is returned. Duplicate ids are rejected.
func (d *Deck) Add(c Card) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := errors.ValidateCardID(c.ID); err != nil {
		return "", err
	}
	if _, exists := d.byID[c.ID]; exists {
		return "", errors.New(errors.ErrCodeInvalidCard, "duplicate card id %q", c.ID)
	}

	d.byID[c.ID] = len(d.cards)
	d.cards = append(d.cards, c)
	return c.ID, nil
}

// Remove deletes a card by id, preserving the order of the remaining cards.
func (d *Deck) Remove(id string) error {
	idx, ok := d.byID[id]
	if !ok {
		return errors.New(errors.ErrCodeCardNotFound, "no card with id %q", id)
	}

	d.cards = append(d.cards[:idx], d.cards[idx+1:]...)
	delete(d.byID, id)
	for i := idx; i < len(d.cards); i++ {
		d.byID[d.cards[i].ID] = i
	}
	return nil
}

// Clear removes all cards.
func (d *Deck) Clear() {
	d.cards = nil
	d.byID = make(map[string]int)
}

// Card returns the card with the given id.
func (d *Deck) Card(id string) (Card, bool) {
	idx, ok := d.byID[id]
	if !ok {
		return Card{}, false
	}
	return d.cards[idx], true
}

// Cards returns the cards in packing order. The slice is a copy.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// IDs returns the card ids in packing order.
func (d *Deck) IDs() []string {
	ids := make([]string, len(d.cards))
	for i, c := range d.cards {
		ids[i] = c.ID
	}
	return ids
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// SetHeight records a measured height for a card.
func (d *Deck) SetHeight(id string, height float64) error {
	idx, ok := d.byID[id]
	if !ok {
		return errors.New(errors.ErrCodeCardNotFound, "no card with id %q", id)
	}
	if height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "height must be positive, got %v", height)
	}
	d.cards[idx].Height = height
	return nil
}

// HeightLookup returns a lookup over the deck's measured heights, suitable
// for [layout.Compute].
func (d *Deck) HeightLookup() layout.HeightLookup {
	heights := make(map[string]float64, len(d.cards))
	for _, c := range d.cards {
		if h, ok := c.MeasuredHeight(); ok {
			heights[c.ID] = h
		}
	}
	return func(id string) (float64, bool) {
		h, ok := heights[id]
		return h, ok
	}
}

// ContentHash returns a stable SHA-256 hex digest of the deck's layout-
// relevant content: name, card order, ids, and measured heights. Title and
// body changes do not affect the hash because they do not affect geometry.
func (d *Deck) ContentHash() string {
	h := sha256.New()
	fmt.Fprintf(h, "deck:%s\n", d.Name)
	for i, c := range d.cards {
		fmt.Fprintf(h, "%d:%s:%g\n", i, c.ID, c.Height)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// SortedIDs returns the card ids in lexical order, independent of packing
// order. Useful for deterministic diagnostics output.
func (d *Deck) SortedIDs() []string {
	ids := d.IDs()
	sort.Strings(ids)
	return ids
}
