package game

import "fmt"

// --- Power-up constants ---

const (
	powerUpSize           = Tile
	powerSpawnIntervalMs  = 6000.0
	powerSpawnMaxAttempts = 40
)

// PowerUpKind is the effect a pickup grants.
type PowerUpKind uint8

const (
	PowerHeart PowerUpKind = iota
	PowerSpeed
	PowerRapid
	powerUpKindCount // sentinel
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerHeart:
		return "heart"
	case PowerSpeed:
		return "speed"
	case PowerRapid:
		return "rapid"
	default:
		return "unknown"
	}
}

// PowerUp is a grid-aligned pickup waiting on the arena floor.
type PowerUp struct {
	X    float64
	Y    float64
	Kind PowerUpKind
}

func (p *PowerUp) box() rect {
	return rect{x: p.X, y: p.Y, w: powerUpSize, h: powerUpSize}
}

// maybeSpawnPowerUp runs one spawn attempt per interval. The attempt picks a
// kind, then tries up to powerSpawnMaxAttempts random cells that touch no wall
// and neither tank. Running out of attempts simply skips this interval.
func (s *Sim) maybeSpawnPowerUp() {
	if s.now-s.lastPowerSpawn < s.powerSpawnInterval {
		return
	}
	s.lastPowerSpawn = s.now

	kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))
	for attempt := 0; attempt < powerSpawnMaxAttempts; attempt++ {
		col := 1 + s.rng.Intn(gridCols-1)
		row := 1 + s.rng.Intn(gridRows-1)
		pu := &PowerUp{X: float64(col * Tile), Y: float64(row * Tile), Kind: kind}
		if !s.powerUpCellFree(pu.box()) {
			continue
		}
		s.powerUps = append(s.powerUps, pu)
		s.events.Add(s.frame, s.round, "--", "powerup", "spawn",
			fmt.Sprintf("%s at (%d,%d)", kind, col, row), float64(attempt+1))
		return
	}
	s.events.Add(s.frame, s.round, "--", "powerup", "spawn_failed", kind.String(),
		powerSpawnMaxAttempts)
}

func (s *Sim) powerUpCellFree(r rect) bool {
	if overlapsAnyWall(r, s.walls) {
		return false
	}
	for _, t := range s.tanks {
		if r.overlaps(t.box()) {
			return false
		}
	}
	return true
}

// collectPowerUps hands each overlapped pickup to exactly one tank. Tank 1 is
// tested first, so a pickup both tanks touch goes to player 1.
func (s *Sim) collectPowerUps() {
	kept := s.powerUps[:0]
	for _, pu := range s.powerUps {
		var taker *Tank
		for _, t := range s.tanks {
			if pu.box().overlaps(t.box()) {
				taker = t
				break
			}
		}
		if taker == nil {
			kept = append(kept, pu)
			continue
		}
		taker.ApplyPowerUp(pu.Kind, s.now)
		s.events.Add(s.frame, s.round, taker.ID.String(), "powerup", "pickup",
			pu.Kind.String(), float64(taker.HP))
	}
	for i := len(kept); i < len(s.powerUps); i++ {
		s.powerUps[i] = nil
	}
	s.powerUps = kept
}
