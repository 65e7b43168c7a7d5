package layout

import "testing"

func TestPackList(t *testing.T) {
	ids := []string{"a", "b", "c"}

	positions, content := PackList(ids, 400, 120, 10)

	for i, p := range positions {
		if p.X != 0 {
			t.Errorf("card %d x = %v, want 0 (secondary axis fixed)", i, p.X)
		}
		if want := float64(i) * (120 + 10); p.Y != want {
			t.Errorf("card %d y = %v, want %v", i, p.Y, want)
		}
		if p.Width != 400 || p.Height != 120 {
			t.Errorf("card %d size = %vx%v, want 400x120", i, p.Width, p.Height)
		}
		if p.Row != i || p.Column != 0 {
			t.Errorf("card %d at (row=%d, col=%d), want (%d, 0)", i, p.Row, p.Column, i)
		}
	}

	if want := 3*120.0 + 2*10.0; content != want {
		t.Errorf("content = %v, want %v", content, want)
	}
}

func TestPackListEmpty(t *testing.T) {
	positions, content := PackList(nil, 400, 120, 10)
	if len(positions) != 0 {
		t.Errorf("got %d positions, want 0", len(positions))
	}
	if content != 0 {
		t.Errorf("content = %v, want 0", content)
	}
}
