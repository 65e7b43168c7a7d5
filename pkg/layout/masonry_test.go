package layout

import (
	"fmt"
	"math/rand"
	"testing"
)

// heightsFromMap builds a HeightLookup from a fixed map. Cards absent from
// the map report as unmeasured.
func heightsFromMap(m map[string]float64) HeightLookup {
	return func(id string) (float64, bool) {
		h, ok := m[id]
		return h, ok
	}
}

func TestPackMasonryTrace(t *testing.T) {
	// Known greedy trace: two columns, gap zero. Card 4 ties at 250 and must
	// go to the lower column index.
	ids := []string{"c0", "c1", "c2", "c3", "c4"}
	heights := heightsFromMap(map[string]float64{
		"c0": 100, "c1": 200, "c2": 150, "c3": 50, "c4": 300,
	})
	plan := ColumnPlan{Columns: 2, CardWidth: 100}

	positions, content := PackMasonry(ids, plan, 0, heights, DefaultPlaceholderHeight)

	wantColumns := []int{0, 1, 0, 1, 0}
	wantY := []float64{0, 0, 100, 200, 250}
	for i, p := range positions {
		if p.Column != wantColumns[i] {
			t.Errorf("card %d column = %d, want %d", i, p.Column, wantColumns[i])
		}
		if p.Y != wantY[i] {
			t.Errorf("card %d y = %v, want %v", i, p.Y, wantY[i])
		}
		if wantX := float64(wantColumns[i]) * plan.CardWidth; p.X != wantX {
			t.Errorf("card %d x = %v, want %v", i, p.X, wantX)
		}
	}

	if content != 550 {
		t.Errorf("content height = %v, want 550", content)
	}
}

func TestPackMasonryPreservesOrder(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	positions, _ := PackMasonry(ids, ColumnPlan{Columns: 3, CardWidth: 100}, 8, unmeasuredLookup(), 100)

	if len(positions) != len(ids) {
		t.Fatalf("got %d positions, want %d", len(positions), len(ids))
	}
	for i, p := range positions {
		if p.CardID != ids[i] {
			t.Errorf("position %d card = %s, want %s", i, p.CardID, ids[i])
		}
	}
}

// unmeasuredLookup returns a lookup that reports every card as unmeasured.
func unmeasuredLookup() HeightLookup {
	return func(string) (float64, bool) { return 0, false }
}

func TestPackMasonryUnmeasuredUsesPlaceholder(t *testing.T) {
	ids := []string{"measured", "unmeasured"}
	heights := heightsFromMap(map[string]float64{"measured": 120})

	positions, _ := PackMasonry(ids, ColumnPlan{Columns: 2, CardWidth: 100}, 0, heights, 200)

	if positions[0].Height != 120 {
		t.Errorf("measured card height = %v, want 120", positions[0].Height)
	}
	if positions[1].Height != 200 {
		t.Errorf("unmeasured card height = %v, want placeholder 200", positions[1].Height)
	}
}

func TestPackMasonryBalanceInvariant(t *testing.T) {
	// For any card sequence, the greedy shortest-column strategy keeps the
	// spread between the tallest and shortest column within the largest
	// single card height plus one gap.
	rng := rand.New(rand.NewSource(7))

	for _, tc := range []struct {
		cards   int
		columns int
		gap     float64
	}{
		{cards: 1, columns: 1, gap: 0},
		{cards: 10, columns: 2, gap: 0},
		{cards: 25, columns: 3, gap: 10},
		{cards: 100, columns: 5, gap: 16},
		{cards: 200, columns: 7, gap: 4},
	} {
		t.Run(fmt.Sprintf("%dcards_%dcols", tc.cards, tc.columns), func(t *testing.T) {
			ids := make([]string, tc.cards)
			hm := make(map[string]float64, tc.cards)
			var largest float64
			for i := range ids {
				ids[i] = fmt.Sprintf("card-%d", i)
				h := 40 + rng.Float64()*400
				hm[ids[i]] = h
				if h > largest {
					largest = h
				}
			}

			plan := ColumnPlan{Columns: tc.columns, CardWidth: 100}
			positions, content := PackMasonry(ids, plan, tc.gap, heightsFromMap(hm), 200)

			// Every card lands in exactly one valid column.
			perColumn := make([]float64, tc.columns)
			counts := make([]int, tc.columns)
			for _, p := range positions {
				if p.Column < 0 || p.Column >= tc.columns {
					t.Fatalf("card %s assigned to column %d outside [0,%d)", p.CardID, p.Column, tc.columns)
				}
				counts[p.Column]++
				if end := p.Y + p.Height + tc.gap; end > perColumn[p.Column] {
					perColumn[p.Column] = end
				}
			}
			placed := 0
			for _, c := range counts {
				placed += c
			}
			if placed != tc.cards {
				t.Fatalf("placed %d cards, want %d", placed, tc.cards)
			}

			// Spread bound only holds once every column received a card.
			if tc.cards >= tc.columns {
				minH, maxH := perColumn[0], perColumn[0]
				for _, h := range perColumn[1:] {
					if h < minH {
						minH = h
					}
					if h > maxH {
						maxH = h
					}
				}
				if spread := maxH - minH; spread > largest+tc.gap {
					t.Errorf("column spread %v exceeds largest card %v + gap %v", spread, largest, tc.gap)
				}
				if content != maxH {
					t.Errorf("content = %v, want max column height %v", content, maxH)
				}
			}
		})
	}
}

func TestShortestColumnTieBreak(t *testing.T) {
	tests := []struct {
		name    string
		heights []float64
		want    int
	}{
		{name: "all zero picks first", heights: []float64{0, 0, 0}, want: 0},
		{name: "strict minimum", heights: []float64{300, 100, 200}, want: 1},
		{name: "tie picks lowest index", heights: []float64{250, 100, 100}, want: 1},
		{name: "single column", heights: []float64{42}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortestColumn(tt.heights); got != tt.want {
				t.Errorf("shortestColumn(%v) = %d, want %d", tt.heights, got, tt.want)
			}
		})
	}
}
