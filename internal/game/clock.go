package game

import "time"

// maxFrameDt caps a single step so a stalled window cannot fast-forward
// cooldowns, buffs and the power-up clock in one jump.
const maxFrameDt = 250.0

// Clock is a monotonic millisecond source.
type Clock interface {
	Millis() float64
}

type systemClock struct {
	start time.Time
}

func newSystemClock() *systemClock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Millis() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock is advanced explicitly. Used by tests and headless runs.
type ManualClock struct {
	ms float64
}

// Advance moves the clock forward by d milliseconds. Negative d is ignored.
func (c *ManualClock) Advance(d float64) {
	if d > 0 {
		c.ms += d
	}
}

func (c *ManualClock) Millis() float64 { return c.ms }

// frameTimer turns successive clock readings into per-frame deltas.
type frameTimer struct {
	clock Clock
	last  float64
	init  bool
}

func newFrameTimer(c Clock) *frameTimer {
	return &frameTimer{clock: c}
}

// next returns the milliseconds since the previous call, clamped to
// [0, maxFrameDt]. The first call returns 0.
func (ft *frameTimer) next() float64 {
	now := ft.clock.Millis()
	if !ft.init {
		ft.init = true
		ft.last = now
		return 0
	}
	dt := now - ft.last
	ft.last = now
	return clampDt(dt)
}

func clampDt(dt float64) float64 {
	return clamp(dt, 0, maxFrameDt)
}
