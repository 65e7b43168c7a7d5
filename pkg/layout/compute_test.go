package layout

import (
	"testing"

	"github.com/matzehuels/cardwall/pkg/errors"
)

func TestComputeMasonry(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	heights := heightsFromMap(map[string]float64{
		"a": 100, "b": 200, "c": 150, "d": 50, "e": 300,
	})
	opts := Options{
		Mode:               ModeMasonry,
		CardThresholdWidth: 300,
		Gap:                10,
		ContainerPadding:   16,
		IsVertical:         true,
	}

	res, err := Compute(ids, Viewport{Width: 1000, Height: 700}, opts, heights)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if res.Columns != 3 {
		t.Errorf("Columns = %d, want 3", res.Columns)
	}
	if res.CardWidth != 316 {
		t.Errorf("CardWidth = %v, want 316", res.CardWidth)
	}
	if res.Direction != DirectionVertical {
		t.Errorf("Direction = %v, want vertical", res.Direction)
	}
	if res.ContainerWidth != 1000 || res.ContainerHeight != 700 {
		t.Errorf("container = %vx%v, want 1000x700", res.ContainerWidth, res.ContainerHeight)
	}
	if res.ContentWidth != 1000 {
		t.Errorf("ContentWidth = %v, want 1000", res.ContentWidth)
	}
	// Tallest column accumulates c (150) then e (300) plus gaps, plus padding.
	if want := 470.0 + 32.0; res.ContentHeight != want {
		t.Errorf("ContentHeight = %v, want %v", res.ContentHeight, want)
	}
	if len(res.Positions) != len(ids) {
		t.Fatalf("got %d positions, want %d", len(res.Positions), len(ids))
	}

	seen := map[string]bool{}
	for _, p := range res.Positions {
		if seen[p.CardID] {
			t.Errorf("duplicate position for card %s", p.CardID)
		}
		seen[p.CardID] = true
		if p.X < 0 || p.Y < 0 {
			t.Errorf("card %s at negative position (%v, %v)", p.CardID, p.X, p.Y)
		}
		if p.Width <= 0 || p.Height <= 0 {
			t.Errorf("card %s has non-positive size %vx%v", p.CardID, p.Width, p.Height)
		}
	}
}

func TestComputeGrid(t *testing.T) {
	ids := make([]string, 7)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	opts := Options{
		Mode:               ModeGrid,
		CardThresholdWidth: 300,
		Gap:                10,
		ContainerPadding:   16,
		IsVertical:         true,
		AlignCardHeight:    true,
		FixedCardHeight:    150,
	}

	res, err := Compute(ids, Viewport{Width: 1000, Height: 700}, opts, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if res.Columns != 3 || res.Rows != 3 {
		t.Errorf("grid = %dx%d, want 3 columns, 3 rows", res.Columns, res.Rows)
	}
	if res.CardHeight != 150 {
		t.Errorf("CardHeight = %v, want 150", res.CardHeight)
	}
	p, ok := res.Position("g") // index 6
	if !ok {
		t.Fatal("card g missing from result")
	}
	if p.Row != 2 || p.Column != 0 {
		t.Errorf("card g at (row=%d, col=%d), want (2, 0)", p.Row, p.Column)
	}
}

func TestComputeList(t *testing.T) {
	ids := []string{"a", "b", "c"}
	opts := Options{
		Mode:             ModeList,
		Gap:              10,
		ContainerPadding: 16,
		IsVertical:       true,
		FixedCardHeight:  120,
	}

	res, err := Compute(ids, Viewport{Width: 500, Height: 700}, opts, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if res.Columns != 1 {
		t.Errorf("Columns = %d, want 1", res.Columns)
	}
	if want := 500.0 - 32.0; res.CardWidth != want {
		t.Errorf("CardWidth = %v, want %v (full available width)", res.CardWidth, want)
	}
	for i, p := range res.Positions {
		if p.X != 0 {
			t.Errorf("card %d x = %v, want 0", i, p.X)
		}
		if want := float64(i) * (120 + 10); p.Y != want {
			t.Errorf("card %d y = %v, want %v", i, p.Y, want)
		}
	}
}

func TestComputeHorizontalTransposes(t *testing.T) {
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	opts := Options{
		Mode:               ModeMasonry,
		CardThresholdWidth: 300,
		Gap:                10,
		ContainerPadding:   16,
		IsVertical:         false,
		PlaceholderHeight:  200,
	}

	res, err := Compute(ids, Viewport{Width: 1000, Height: 700}, opts, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if res.Direction != DirectionHorizontal {
		t.Fatalf("Direction = %v, want horizontal", res.Direction)
	}

	// Lanes planned against the 700px height: available 668, two lanes.
	if res.Rows != 2 {
		t.Errorf("Rows = %d, want 2 lanes", res.Rows)
	}
	// Cards advance along x; lane assignment shows up as y.
	if res.Positions[0].Y != res.Positions[2].Y {
		t.Errorf("cards 0 and 2 in different lanes: y=%v vs y=%v", res.Positions[0].Y, res.Positions[2].Y)
	}
	if res.Positions[2].X <= res.Positions[0].X {
		t.Errorf("card 2 x = %v, want greater than card 0 x = %v", res.Positions[2].X, res.Positions[0].X)
	}
	if res.ContentWidth <= res.ContentHeight {
		t.Errorf("content %vx%v, want width dominant for horizontal flow", res.ContentWidth, res.ContentHeight)
	}
}

func TestComputeAutoDirection(t *testing.T) {
	ids := []string{"a"}
	opts := DefaultOptions()
	opts.AutoDirection = true
	opts.AutoDirectionRatio = 1.2

	res, err := Compute(ids, Viewport{Width: 600, Height: 500}, opts, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// Aspect ratio exactly at the threshold resolves horizontal.
	if res.Direction != DirectionHorizontal {
		t.Errorf("Direction = %v, want horizontal at exact ratio", res.Direction)
	}
}

func TestComputeZeroViewport(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
	}{
		{name: "zero width", vp: Viewport{Width: 0, Height: 500}},
		{name: "zero height", vp: Viewport{Width: 500, Height: 0}},
		{name: "negative", vp: Viewport{Width: -1, Height: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute([]string{"a"}, tt.vp, DefaultOptions(), nil)
			if err == nil {
				t.Fatal("Compute() error = nil, want zero-viewport error")
			}
			if !errors.Is(err, errors.ErrCodeZeroViewport) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeZeroViewport)
			}
		})
	}
}

func TestComputeClampsInvalidOptions(t *testing.T) {
	opts := Options{
		Mode:               "diagonal",
		CardThresholdWidth: -10,
		Gap:                -5,
		ContainerPadding:   -1,
		IsVertical:         true,
	}

	res, err := Compute([]string{"a", "b"}, Viewport{Width: 1000, Height: 700}, opts, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Clamped to defaults: masonry mode, positive card width.
	if res.CardWidth <= 0 {
		t.Errorf("CardWidth = %v, want > 0 after clamping", res.CardWidth)
	}
	if res.Columns < 1 {
		t.Errorf("Columns = %d, want >= 1 after clamping", res.Columns)
	}
}

func TestComputeEmptyCardList(t *testing.T) {
	res, err := Compute(nil, Viewport{Width: 1000, Height: 700}, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(res.Positions) != 0 {
		t.Errorf("got %d positions, want 0", len(res.Positions))
	}
	if res.Columns < 1 {
		t.Errorf("Columns = %d, want >= 1", res.Columns)
	}
}
