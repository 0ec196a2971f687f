package game

import (
	"fmt"
	"strings"
)

// CheckInvariants lists every violated state rule. An empty result means the
// state is consistent. Used by tests and the headless soak tool.
func (s *Sim) CheckInvariants() []string {
	var out []string
	add := func(format string, args ...any) {
		out = append(out, fmt.Sprintf(format, args...))
	}

	var owned [2]int
	for _, b := range s.bullets {
		if !b.Alive {
			add("dead bullet of %s still listed at (%.1f,%.1f)", b.Owner, b.X, b.Y)
		}
		if i := b.Owner.index(); i >= 0 && i < 2 {
			owned[i]++
		}
	}

	for i, t := range s.tanks {
		if t == nil {
			add("tank slot %d empty", i)
			continue
		}
		if t.HP < 0 || t.HP > t.HPMax {
			add("%s hp=%d outside [0,%d]", t.ID, t.HP, t.HPMax)
		}
		if t.X < 0 || t.X > ArenaWidth-t.W || t.Y < 0 || t.Y > ArenaHeight-t.H {
			add("%s out of arena at (%.1f,%.1f)", t.ID, t.X, t.Y)
		}
		if overlapsAnyWall(t.box(), s.walls) {
			add("%s overlaps a wall at (%.1f,%.1f)", t.ID, t.X, t.Y)
		}
		if t.bulletsActive < 0 || t.bulletsActive > t.bulletLimit {
			add("%s bulletsActive=%d outside [0,%d]", t.ID, t.bulletsActive, t.bulletLimit)
		}
		if t.bulletsActive != owned[i] {
			add("%s bulletsActive=%d but %d bullets in flight", t.ID, t.bulletsActive, owned[i])
		}
		if t.cooldown < 0 {
			add("%s cooldown=%.1f negative", t.ID, t.cooldown)
		}
	}

	for _, w := range s.walls {
		if w.Col < 1 || w.Col > gridCols-2 || w.Row < 1 || w.Row > gridRows-2 {
			add("wall at cell (%d,%d) outside the interior", w.Col, w.Row)
		}
		if inSafeZone(w.X(), w.Y()) {
			add("wall at cell (%d,%d) inside a spawn safe zone", w.Col, w.Row)
		}
	}

	for _, pu := range s.powerUps {
		if overlapsAnyWall(pu.box(), s.walls) {
			add("%s power-up at (%.0f,%.0f) overlaps a wall", pu.Kind, pu.X, pu.Y)
		}
	}

	if s.RoundActive() && s.match.Over() {
		add("round active with match already decided (%d-%d)", s.match.Wins[0], s.match.Wins[1])
	}
	return out
}

// repairInvariants quietly restores the per-tank bounds the rules guarantee.
// Nothing in normal play should trip it; when it does, the repair is logged.
func (s *Sim) repairInvariants() {
	var owned [2]int
	for _, b := range s.bullets {
		if i := b.Owner.index(); i >= 0 && i < 2 {
			owned[i]++
		}
	}

	var fixes []string
	for i, t := range s.tanks {
		if t == nil {
			continue
		}
		if hp := clampInt(t.HP, 0, t.HPMax); hp != t.HP {
			fixes = append(fixes, fmt.Sprintf("%s hp %d->%d", t.ID, t.HP, hp))
			t.HP = hp
		}
		x := clamp(t.X, 0, ArenaWidth-t.W)
		y := clamp(t.Y, 0, ArenaHeight-t.H)
		if x != t.X || y != t.Y {
			fixes = append(fixes, fmt.Sprintf("%s pos (%.1f,%.1f)->(%.1f,%.1f)", t.ID, t.X, t.Y, x, y))
			t.X, t.Y = x, y
		}
		if t.bulletsActive != owned[i] {
			fixes = append(fixes, fmt.Sprintf("%s bullets %d->%d", t.ID, t.bulletsActive, owned[i]))
			t.bulletsActive = owned[i]
		}
		if t.cooldown < 0 {
			t.cooldown = 0
		}
	}
	if len(fixes) == 0 {
		return
	}
	s.events.Add(s.frame, s.round, "--", "invariant", "repair", strings.Join(fixes, "; "), float64(len(fixes)))
}
