package game

const (
	explosionFrameMs  = 60.0
	explosionFrames   = 4
	explosionLifetime = 260.0 // ms
	explosionInset    = 8     // sprite drawn at (x-8, y-8)
)

// Explosion is a cosmetic impact marker. It has no gameplay effect.
type Explosion struct {
	X float64
	Y float64
	T float64 // ms since spawn
}

func newExplosion(x, y float64) *Explosion {
	return &Explosion{X: x, Y: y}
}

// Frame returns the sprite frame index for the current age.
func (e *Explosion) Frame() int {
	f := int(e.T / explosionFrameMs)
	if f > explosionFrames-1 {
		return explosionFrames - 1
	}
	return f
}

// Done reports whether the explosion has outlived its display time.
func (e *Explosion) Done() bool {
	return e.T > explosionLifetime
}

// ageExplosions advances every explosion by dt and drops finished ones.
// Runs even while a round is frozen so the last blast plays out.
func (s *Sim) ageExplosions(dt float64) {
	kept := s.explosions[:0]
	for _, e := range s.explosions {
		e.T += dt
		if !e.Done() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.explosions); i++ {
		s.explosions[i] = nil
	}
	s.explosions = kept
}
