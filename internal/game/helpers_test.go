package game

import (
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
)

// quietLog returns an entry that discards everything.
func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// newTestSim builds a seeded Sim wired to a scripted input.
func newTestSim(t *testing.T, opts ...SimOption) (*Sim, *ScriptedInput) {
	t.Helper()
	in := NewScriptedInput()
	base := []SimOption{WithSeed(1), WithInput(in), WithLogger(quietLog())}
	return NewSim(append(base, opts...)...), in
}

// clearArena removes walls and every transient entity so tests can place
// exactly what they need.
func clearArena(s *Sim) {
	s.walls = nil
	s.bullets = nil
	s.powerUps = nil
	s.explosions = nil
	for _, t := range s.tanks {
		t.bulletsActive = 0
	}
}

// addBullet places a live bullet and charges it to its owner.
func addBullet(s *Sim, owner PlayerID, x, y, vx, vy float64) *Bullet {
	b := &Bullet{X: x, Y: y, W: bulletSize, H: bulletSize, VX: vx, VY: vy, Owner: owner, Alive: true}
	s.bullets = append(s.bullets, b)
	s.tank(owner).bulletsActive++
	return b
}

// wallAt returns a wall occupying grid cell (col,row).
func wallAt(col, row int) Wall {
	return Wall{Col: col, Row: row, Variant: WallStone1}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
