package game

import (
	"image/color"
	"io/fs"
	"os"

	"github.com/Garsondee/Tank-Duel/internal/sfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// statusMs is how long a transient HUD status message stays up.
const statusMs = 2000.0

var (
	backdropColor = color.RGBA{R: 12, G: 14, B: 12, A: 255}
	helpBackColor = color.RGBA{R: 6, G: 10, B: 6, A: 215}
	helpEdgeColor = color.RGBA{R: 60, G: 100, B: 60, A: 180}
)

var helpLines = []string{
	"P1: WASD move   F fire",
	"P2: arrows move   Enter fire",
	"R  reset round      N  new match",
	"Space  continue after a result",
	"C  copy match summary   M  mute",
	"H  hide this help",
}

// Config is the runtime configuration of the interactive game.
type Config struct {
	Seed      int64
	AssetsDir string // directory holding the sprite PNGs; empty = placeholders
	Mute      bool
	Scale     float64 // window scale factor
	Log       *logrus.Entry
}

// Game adapts a Sim to ebiten.Game.
type Game struct {
	cfg      Config
	sim      *Sim
	input    Input
	hud      *overlayHUD
	feed     *Feed
	sounds   *sfx.Bank
	timer    *frameTimer
	cursor   int // event log index already shown in the feed
	showHelp bool

	statusUntil float64
	log         *logrus.Entry
}

// New builds the game shell. Sound is optional: if the bank cannot be
// built the game runs silently.
func New(cfg Config) *Game {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Log == nil {
		cfg.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	var assets fs.FS
	if cfg.AssetsDir != "" {
		assets = os.DirFS(cfg.AssetsDir)
	}

	g := &Game{
		cfg:      cfg,
		input:    ebitenInput{},
		hud:      newOverlayHUD(),
		feed:     NewFeed(),
		timer:    newFrameTimer(newSystemClock()),
		showHelp: true,
		log:      cfg.Log.WithField("component", "shell"),
	}

	bank, err := sfx.NewBank(audio.NewContext(int(sfx.SampleRate)), cfg.Log)
	if err != nil {
		g.log.WithError(err).Warn("sound disabled")
	} else {
		bank.SetMuted(cfg.Mute)
		g.sounds = bank
	}

	g.sim = NewSim(
		WithSeed(cfg.Seed),
		WithLogger(cfg.Log.WithField("component", "sim")),
		WithInput(g.input),
		WithHUD(g.hud),
		WithSprites(NewSpriteSheet(assets, cfg.Log)),
	)
	g.log.WithFields(logrus.Fields{
		"seed":     cfg.Seed,
		"assets":   cfg.AssetsDir,
		"match_id": g.sim.MatchID().String(),
	}).Info("game ready")
	return g
}

// Sim exposes the simulation for callers that want to inspect it.
func (g *Game) Sim() *Sim { return g.sim }

// WindowSize returns the scaled window dimensions.
func (g *Game) WindowSize() (int, int) {
	w, h := g.Layout(0, 0)
	return int(float64(w) * g.cfg.Scale), int(float64(h) * g.cfg.Scale)
}

func (g *Game) Update() error {
	g.handleShellKeys()
	g.sim.Step(g.timer.next())
	g.drainEvents()
	if g.statusUntil > 0 && g.sim.Now() >= g.statusUntil {
		g.hud.setStatus("")
		g.statusUntil = 0
	}
	return nil
}

// handleShellKeys processes the toggles that live outside the simulation.
func (g *Game) handleShellKeys() {
	if g.input.Pressed(KeyToggleHelp) {
		g.showHelp = !g.showHelp
	}
	if g.input.Pressed(KeyToggleMute) && g.sounds != nil {
		g.sounds.SetMuted(!g.sounds.Muted())
		if g.sounds.Muted() {
			g.flash("sound off")
		} else {
			g.flash("sound on")
		}
	}
	if g.input.Pressed(KeyCopySummary) {
		if err := copyText(g.sim.Report().Format()); err != nil {
			g.log.WithError(err).Warn("copy summary failed")
			g.flash("copy failed")
		} else {
			g.flash("summary copied")
		}
	}
}

func (g *Game) flash(msg string) {
	g.hud.setStatus(msg)
	g.statusUntil = g.sim.Now() + statusMs
}

// drainEvents forwards new sim events to the feed and the sound bank.
func (g *Game) drainEvents() {
	events := g.sim.Events().Since(g.cursor)
	g.cursor += len(events)
	for _, e := range events {
		if e.Category == "round" && e.Key == "start" && e.Round == 1 {
			g.feed.Clear()
		}
		if p, msg, ok := feedLine(e); ok {
			g.feed.Add(e.Frame, p, msg)
		}
		if fx, ok := soundFor(e); ok {
			g.sounds.Play(fx)
		}
	}
}

// soundFor maps an event to the effect it triggers.
func soundFor(e EventEntry) (sfx.Effect, bool) {
	switch e.Category + "/" + e.Key {
	case "combat/fire":
		return sfx.Shot, true
	case "combat/hit":
		if e.NumVal <= 0 {
			return sfx.Explosion, true
		}
		return sfx.Hit, true
	case "powerup/pickup":
		return sfx.Pickup, true
	case "round/won":
		return sfx.RoundEnd, true
	}
	return 0, false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdropColor)

	g.sim.Render(newScreenRenderer(screen, 0, hudBarHeight, 1))
	g.feed.Draw(screen, 8, hudBarHeight+ArenaHeight-8)
	if g.showHelp {
		g.drawHelp(screen)
	}
	g.hud.Draw(screen, ArenaWidth, hudBarHeight, ArenaHeight)
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	const (
		lineH = 16
		pad   = 8
		boxW  = 260
	)
	boxH := float32(len(helpLines)*lineH + pad*2)
	bx := float32(ArenaWidth - boxW - 8)
	by := float32(hudBarHeight+ArenaHeight-8) - boxH
	vector.FillRect(screen, bx, by, boxW, boxH, helpBackColor, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1, helpEdgeColor, false)
	for i, line := range helpLines {
		drawHUDText(screen, line, float64(bx)+pad, float64(by)+pad+float64(i*lineH), color.White)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ArenaWidth, ArenaHeight + hudBarHeight
}
