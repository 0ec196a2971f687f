package game

import "testing"

func TestRectOverlaps(t *testing.T) {
	a := rect{x: 0, y: 0, w: 10, h: 10}
	cases := []struct {
		name string
		b    rect
		want bool
	}{
		{"inside", rect{x: 2, y: 2, w: 2, h: 2}, true},
		{"partial", rect{x: 5, y: 5, w: 10, h: 10}, true},
		{"touching right edge", rect{x: 10, y: 0, w: 5, h: 5}, false},
		{"touching bottom edge", rect{x: 0, y: 10, w: 5, h: 5}, false},
		{"apart", rect{x: 20, y: 20, w: 5, h: 5}, false},
		{"covers", rect{x: -5, y: -5, w: 30, h: 30}, true},
	}
	for _, c := range cases {
		if got := a.overlaps(c.b); got != c.want {
			t.Errorf("%s: overlaps = %v, want %v", c.name, got, c.want)
		}
		if got := c.b.overlaps(a); got != c.want {
			t.Errorf("%s (swapped): overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	x, y := rect{x: 60, y: 374, w: 28, h: 28}.center()
	if x != 74 || y != 388 {
		t.Fatalf("center = (%v,%v), want (74,388)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if clamp(-1, 0, 5) != 0 || clamp(6, 0, 5) != 5 || clamp(2.5, 0, 5) != 2.5 {
		t.Fatal("clamp out of range")
	}
	if clampInt(-3, 0, 5) != 0 || clampInt(9, 0, 5) != 5 || clampInt(4, 0, 5) != 4 {
		t.Fatal("clampInt out of range")
	}
}

func TestOverlapsAnyWall(t *testing.T) {
	walls := []Wall{wallAt(2, 2), wallAt(5, 5)}
	if !overlapsAnyWall(rect{x: 90, y: 90, w: 5, h: 5}, walls) {
		t.Error("box inside cell (2,2) should overlap")
	}
	if overlapsAnyWall(rect{x: 130, y: 130, w: 5, h: 5}, walls) {
		t.Error("box in empty cell should not overlap")
	}
	if overlapsAnyWall(rect{x: 0, y: 0, w: 5, h: 5}, nil) {
		t.Error("no walls should never overlap")
	}
}
