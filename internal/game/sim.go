package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sim owns every piece of round and match state. One Sim is confined to one
// goroutine; ebiten's Update/Draw pair satisfies that.
type Sim struct {
	rng   *rand.Rand
	now   float64 // sim ms, advanced only by Step
	frame int
	round int

	matchID uuid.UUID
	match   Match

	terrain    *TerrainGrid
	shade      shadeConfig
	walls      []Wall
	tanks      [2]*Tank
	bullets    []*Bullet
	powerUps   []*PowerUp
	explosions []*Explosion

	lastPowerSpawn     float64
	powerSpawnInterval float64

	input   Input
	hud     HUD
	sprites SpriteProvider

	events  *EventLog
	verbose bool
	baseLog *logrus.Entry
	log     *logrus.Entry
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptCore   simOptionKind = iota // seed, logging: applied before the event log exists
	simOptWiring                      // collaborators and tuning: applied after
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithSeed sets the RNG seed for deterministic layouts and spawns.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptCore, func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	}}
}

// WithLogger sets the logrus entry events are mirrored to.
func WithLogger(log *logrus.Entry) SimOption {
	return SimOption{simOptCore, func(s *Sim) {
		if log != nil {
			s.baseLog = log
		}
	}}
}

// WithVerboseEvents records per-frame movement events as well.
func WithVerboseEvents(v bool) SimOption {
	return SimOption{simOptCore, func(s *Sim) {
		s.verbose = v
	}}
}

// WithInput sets the key source read by Step.
func WithInput(in Input) SimOption {
	return SimOption{simOptWiring, func(s *Sim) {
		if in != nil {
			s.input = in
		}
	}}
}

// WithHUD sets the score/result display.
func WithHUD(h HUD) SimOption {
	return SimOption{simOptWiring, func(s *Sim) {
		if h != nil {
			s.hud = h
		}
	}}
}

// WithSprites sets the image source used by Render.
func WithSprites(sp SpriteProvider) SimOption {
	return SimOption{simOptWiring, func(s *Sim) {
		if sp != nil {
			s.sprites = sp
		}
	}}
}

// WithPowerSpawnInterval overrides the 6s power-up cadence.
func WithPowerSpawnInterval(ms float64) SimOption {
	return SimOption{simOptWiring, func(s *Sim) {
		if ms > 0 {
			s.powerSpawnInterval = ms
		}
	}}
}

// NewSim builds a Sim and starts the first round of a fresh match.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		rng:                rand.New(rand.NewSource(1)), // #nosec G404 -- default seed
		shade:              defaultShadeConfig,
		powerSpawnInterval: powerSpawnIntervalMs,
		input:              noInput{},
		hud:                noopHUD{},
		sprites:            nilSprites{},
		baseLog:            logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, o := range opts {
		if o.kind == simOptCore {
			o.fn(s)
		}
	}
	s.log = s.baseLog
	s.events = NewEventLog(s.verbose, s.log)
	for _, o := range opts {
		if o.kind == simOptWiring {
			o.fn(s)
		}
	}
	s.ResetMatch()
	return s
}

// ResetRound discards every per-round entity and builds a new round: fresh
// terrain and walls, both tanks at their spawn points, no bullets, power-ups
// or explosions. Win counters are untouched.
func (s *Sim) ResetRound() {
	s.round++
	s.terrain = generateTerrain(s.rng, s.shade)
	s.walls = generateWalls(s.rng, s.terrain.Kind)
	for _, id := range []PlayerID{Player1, Player2} {
		x, y, dir := spawnPoint(id)
		s.tanks[id.index()] = NewTank(id, x, y, dir)
	}
	s.bullets = nil
	s.powerUps = nil
	s.explosions = nil
	s.lastPowerSpawn = s.now
	s.match.startRound()

	s.log = s.baseLog.WithFields(logrus.Fields{
		"match_id": s.matchID.String(),
		"round":    s.round,
	})
	s.events.setLogger(s.log)
	s.hud.HideResult()
	s.events.Add(s.frame, s.round, "--", "round", "start",
		fmt.Sprintf("terrain=%s walls=%d", s.terrain.Kind, len(s.walls)), float64(len(s.walls)))
}

// ResetMatch zeroes both win counters, issues a new match id and starts a
// new round.
func (s *Sim) ResetMatch() {
	s.match = NewMatch()
	s.matchID = uuid.New()
	s.round = 0
	s.hud.SetWins(0, 0)
	s.events.Add(s.frame, s.round, "--", "match", "start", s.matchID.String(), 0)
	s.ResetRound()
}

// Restart continues after a result: a new match if someone has reached the
// threshold, otherwise the next round.
func (s *Sim) Restart() {
	if s.match.Over() {
		s.ResetMatch()
		return
	}
	s.ResetRound()
}

// Step advances the simulation by dt milliseconds. Order: control keys,
// explosion aging, then (only while the round is active) reload timers,
// fire, movement, bullets and hits, power-up spawn and pickup.
func (s *Sim) Step(dt float64) {
	dt = clampDt(dt)
	s.frame++
	s.now += dt

	if s.handleControlKeys() {
		return
	}

	s.ageExplosions(dt)
	if !s.RoundActive() {
		return
	}

	for _, t := range s.tanks {
		t.tick(dt)
	}
	for i, t := range s.tanks {
		if s.input.Pressed(playerControls[i].fire) {
			s.fire(t)
		}
	}
	for i, t := range s.tanks {
		s.driveTank(t, playerControls[i])
	}

	s.stepBullets()
	if s.RoundActive() {
		s.maybeSpawnPowerUp()
		s.collectPowerUps()
	}
	s.repairInvariants()
}

// handleControlKeys runs the round/match actions. It returns true when the
// world was rebuilt, in which case the rest of the step is skipped.
func (s *Sim) handleControlKeys() bool {
	switch {
	case s.input.Pressed(KeyResetMatch):
		s.ResetMatch()
	case s.input.Pressed(KeyResetRound):
		s.ResetRound()
	case s.input.Pressed(KeyRestart) && !s.RoundActive():
		s.Restart()
	default:
		return false
	}
	return true
}

func (s *Sim) fire(t *Tank) {
	b := t.Shoot(s.now)
	if b == nil {
		s.events.AddVerbose(s.frame, s.round, t.ID.String(), "combat", "fire_blocked",
			fmt.Sprintf("cooldown=%.0f active=%d", t.Cooldown(), t.BulletsActive()), t.Cooldown())
		return
	}
	s.bullets = append(s.bullets, b)
	s.events.Add(s.frame, s.round, t.ID.String(), "combat", "fire", t.Dir.String(), float64(t.BulletsActive()))
}

// driveTank applies every held direction key in up, down, left, right order.
// Each one turns the tank and attempts a full move, so the facing ends on
// the last held direction.
func (s *Sim) driveTank(t *Tank, c controls) {
	for _, step := range []struct {
		key Key
		dir Direction
	}{
		{c.up, DirUp},
		{c.down, DirDown},
		{c.left, DirLeft},
		{c.right, DirRight},
	} {
		if !s.input.Held(step.key) {
			continue
		}
		t.Dir = step.dir
		dx, dy := step.dir.unit()
		if t.Move(dx, dy, s.now, s.walls) {
			s.events.AddVerbose(s.frame, s.round, t.ID.String(), "move", step.dir.String(),
				fmt.Sprintf("(%.1f,%.1f)", t.X, t.Y), t.Speed(s.now))
		}
	}
}

// knockout ends the round in favor of loser's opponent.
func (s *Sim) knockout(loser PlayerID) {
	if !s.RoundActive() {
		return
	}
	res := s.match.Knockout(loser)
	s.hud.SetWins(s.match.Wins[0], s.match.Wins[1])
	s.hud.ShowResult(res.Title, res.Sub)
	s.events.Add(s.frame, s.round, res.Winner.String(), "round", "won", res.Title,
		float64(s.match.Wins[res.Winner.index()]))
	if res.Kind == ResultMatchWin {
		s.events.Add(s.frame, s.round, res.Winner.String(), "match", "won", res.Sub,
			float64(s.match.Wins[res.Winner.index()]))
	}
}

// StepFrame advances one frame and renders it.
func (s *Sim) StepFrame(dt float64, r Renderer) {
	s.Step(dt)
	s.Render(r)
}

// tank returns the tank for id, or nil.
func (s *Sim) tank(id PlayerID) *Tank {
	i := id.index()
	if i < 0 || i >= len(s.tanks) {
		return nil
	}
	return s.tanks[i]
}

// --- Read accessors ---

// Wins returns the match score.
func (s *Sim) Wins() (p1, p2 int) { return s.match.Wins[0], s.match.Wins[1] }

// RoundActive reports whether the simulation is running.
func (s *Sim) RoundActive() bool { return s.match.State == RoundActive }

// Result returns the outcome of the last finished round, zero while active.
func (s *Sim) Result() Result { return s.match.Result }

// MatchOver reports whether either side has reached the win threshold.
func (s *Sim) MatchOver() bool { return s.match.Over() }

// Tank returns one side's tank.
func (s *Sim) Tank(id PlayerID) *Tank { return s.tank(id) }

// Tanks returns both tanks, player 1 first.
func (s *Sim) Tanks() [2]*Tank { return s.tanks }

func (s *Sim) Bullets() []*Bullet       { return s.bullets }
func (s *Sim) Walls() []Wall            { return s.walls }
func (s *Sim) PowerUps() []*PowerUp     { return s.powerUps }
func (s *Sim) Explosions() []*Explosion { return s.explosions }
func (s *Sim) Terrain() *TerrainGrid    { return s.terrain }
func (s *Sim) Events() *EventLog        { return s.events }
func (s *Sim) MatchID() uuid.UUID       { return s.matchID }
func (s *Sim) Round() int               { return s.round }
func (s *Sim) Frame() int               { return s.frame }

// Now returns the simulation clock in milliseconds.
func (s *Sim) Now() float64 { return s.now }
