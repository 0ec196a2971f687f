package game

// rect is an axis-aligned box in arena pixels.
type rect struct {
	x float64
	y float64
	w float64
	h float64
}

// overlaps reports whether two boxes intersect. Touching edges do not count.
func (r rect) overlaps(o rect) bool {
	return r.x < o.x+o.w && r.x+r.w > o.x && r.y < o.y+o.h && r.y+r.h > o.y
}

// center returns the midpoint of the box.
func (r rect) center() (float64, float64) {
	return r.x + r.w/2, r.y + r.h/2
}

// overlapsAnyWall reports whether r intersects at least one wall.
func overlapsAnyWall(r rect, walls []Wall) bool {
	for i := range walls {
		if r.overlaps(walls[i].box()) {
			return true
		}
	}
	return false
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
