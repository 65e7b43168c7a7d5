package engine

import (
	"sync"
	"testing"

	"github.com/matzehuels/cardwall/pkg/layout"
)

// fakeCard is a test double for Handle recording every applied position.
type fakeCard struct {
	id       string
	height   float64
	measured bool

	mu   sync.Mutex
	x, y float64
	w, h float64
	sets int
}

func (c *fakeCard) ID() string { return c.id }

func (c *fakeCard) MeasuredHeight() (float64, bool) { return c.height, c.measured }

func (c *fakeCard) SetPosition(x, y, width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.x, c.y, c.w, c.h = x, y, width, height
	c.sets++
}

func (c *fakeCard) position() (x, y, w, h float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.x, c.y, c.w, c.h
}

func measuredCard(id string, height float64) *fakeCard {
	return &fakeCard{id: id, height: height, measured: true}
}

func TestApplyWritesPositions(t *testing.T) {
	a := measuredCard("a", 100)
	b := measuredCard("b", 200)
	res := &layout.Result{
		Direction: layout.DirectionVertical,
		Positions: []layout.CardPosition{
			{CardID: "a", X: 0, Y: 0, Width: 300, Height: 100},
			{CardID: "b", X: 310, Y: 0, Width: 300, Height: 200},
		},
	}

	applied, skipped := Apply(res, []Handle{a, b})
	if applied != 2 || skipped != 0 {
		t.Fatalf("Apply = (%d, %d), want (2, 0)", applied, skipped)
	}

	if x, y, w, h := b.position(); x != 310 || y != 0 || w != 300 || h != 200 {
		t.Errorf("card b position = (%v, %v, %v, %v), want (310, 0, 300, 200)", x, y, w, h)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	a := measuredCard("a", 100)
	res := &layout.Result{
		Direction: layout.DirectionVertical,
		Positions: []layout.CardPosition{{CardID: "a", X: 16, Y: 16, Width: 300, Height: 100}},
	}

	Apply(res, []Handle{a})
	x1, y1, w1, h1 := a.position()
	Apply(res, []Handle{a})
	x2, y2, w2, h2 := a.position()

	if x1 != x2 || y1 != y2 || w1 != w2 || h1 != h2 {
		t.Errorf("second apply changed position: (%v,%v,%v,%v) != (%v,%v,%v,%v)",
			x1, y1, w1, h1, x2, y2, w2, h2)
	}
	if a.sets != 2 {
		t.Errorf("SetPosition calls = %d, want 2", a.sets)
	}
}

func TestApplySkipsHandlesAbsentFromResult(t *testing.T) {
	a := measuredCard("a", 100)
	b := measuredCard("b", 100)
	res := &layout.Result{
		Direction: layout.DirectionVertical,
		Positions: []layout.CardPosition{{CardID: "a", X: 0, Y: 0, Width: 300, Height: 100}},
	}

	applied, skipped := Apply(res, []Handle{a, b})
	if applied != 1 || skipped != 1 {
		t.Errorf("Apply = (%d, %d), want (1, 1)", applied, skipped)
	}
	if b.sets != 0 {
		t.Errorf("skipped handle received %d SetPosition calls, want 0", b.sets)
	}
}
