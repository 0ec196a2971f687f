package main

import (
	"flag"
	"time"

	"github.com/Garsondee/Tank-Duel/internal/game"
	"github.com/Garsondee/Tank-Duel/internal/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "RNG seed for arena layouts (0 = time-based)")
	assets := flag.String("assets", "assets", "directory containing the sprite PNGs")
	mute := flag.Bool("mute", false, "start with sound effects muted")
	scale := flag.Float64("scale", 1, "window scale factor")
	flag.Parse()

	logger.Init()
	log := logger.Component("main")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *scale <= 0 {
		log.WithField("scale", *scale).Fatal("scale must be positive")
	}

	g := game.New(game.Config{
		Seed:      *seed,
		AssetsDir: *assets,
		Mute:      *mute,
		Scale:     *scale,
		Log:       logger.Log.WithField("seed", *seed),
	})

	w, h := g.WindowSize()
	ebiten.SetWindowTitle("Tank Duel")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game exited with error")
	}
}
