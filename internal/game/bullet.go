package game

import "fmt"

// --- Bullet constants ---

const (
	bulletSize   = 8
	bulletSpeed  = 6.0 // px per frame along one axis
	bulletMargin = 10  // px past the arena edge before a bullet is dropped
)

// Bullet is a projectile. It travels in a straight line along one axis.
type Bullet struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	VX    float64
	VY    float64
	Owner PlayerID
	Alive bool
}

func (b *Bullet) box() rect {
	return rect{x: b.X, y: b.Y, w: b.W, h: b.H}
}

// outOfBounds reports whether the bullet has left the arena plus margin.
func (b *Bullet) outOfBounds() bool {
	return b.X < -bulletMargin || b.X > ArenaWidth+bulletMargin ||
		b.Y < -bulletMargin || b.Y > ArenaHeight+bulletMargin
}

// stepBullets advances every live bullet, resolves wall/bounds/tank contact
// and prunes dead bullets. Wall contact is checked before tank contact, so a
// bullet touching both is absorbed by the wall.
func (s *Sim) stepBullets() {
	for _, b := range s.bullets {
		if !b.Alive {
			continue
		}
		b.X += b.VX
		b.Y += b.VY

		if b.outOfBounds() {
			b.Alive = false
			s.events.Add(s.frame, s.round, b.Owner.String(), "combat", "out_of_bounds",
				fmt.Sprintf("(%.0f,%.0f)", b.X, b.Y), 0)
			continue
		}
		if overlapsAnyWall(b.box(), s.walls) {
			b.Alive = false
			s.events.Add(s.frame, s.round, b.Owner.String(), "combat", "wall_hit",
				fmt.Sprintf("(%.0f,%.0f)", b.X, b.Y), 0)
			continue
		}
		// A finished round freezes health; stray bullets still fly and die.
		if !s.RoundActive() {
			continue
		}
		for _, t := range s.tanks {
			if t.ID == b.Owner {
				continue
			}
			if b.box().overlaps(t.box()) {
				b.Alive = false
				s.resolveHit(t, b)
				break
			}
		}
	}

	kept := s.bullets[:0]
	for _, b := range s.bullets {
		if b.Alive {
			kept = append(kept, b)
			continue
		}
		if owner := s.tank(b.Owner); owner != nil {
			owner.releaseBullet()
		}
	}
	// Clear the tail so dropped bullets can be collected.
	for i := len(kept); i < len(s.bullets); i++ {
		s.bullets[i] = nil
	}
	s.bullets = kept
}

// resolveHit applies one bullet hit to target: explosion, -1 HP and, at zero
// health, a knockout for the other side.
func (s *Sim) resolveHit(target *Tank, b *Bullet) {
	cx, cy := target.Center()
	s.explosions = append(s.explosions, newExplosion(cx, cy))
	hp := target.Damage(1)
	s.events.Add(s.frame, s.round, b.Owner.String(), "combat", "hit",
		fmt.Sprintf("%s hp=%d", target.ID, hp), float64(hp))
	if hp > 0 {
		return
	}
	s.knockout(target.ID)
}
