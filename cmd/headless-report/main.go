package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Garsondee/Tank-Duel/internal/game"
	"github.com/Garsondee/Tank-Duel/internal/logger"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// frameMs is the fixed step used for headless runs (60 fps).
const frameMs = 1000.0 / 60.0

// restartDelay is how many frames a result stays up before the driver
// presses continue.
const restartDelay = 30

type runStats struct {
	runIndex int
	seed     int64
	frames   int

	roundsStarted  int
	roundsFinished int
	matchesWon     int
	wins           [2]int // round wins across all matches
	matchWins      [2]int

	shots      [2]int
	hits       [2]int
	wallHits   int
	outOfBound int
	pickups    [2]int
	spawns     int
	spawnFails int
	repairs    int

	firstHitFrame   int
	firstRoundFrame int

	violations     int
	firstViolation string
}

type runConfig struct {
	frames   int
	fireRate float64
	verbose  bool
	log      *logrus.Entry
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var parallel int
	var fireRate float64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&frames, "frames", 36000, "frames per run (60 per simulated second)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&parallel, "parallel", 4, "runs executed concurrently")
	flag.Float64Var(&fireRate, "fire-rate", 0.08, "per-frame chance each driver presses fire")
	flag.BoolVar(&verbose, "verbose", false, "record movement events and log at debug level")
	flag.Parse()

	if err := validate(runs, frames, parallel, fireRate); err != nil {
		fmt.Println("error:", err)
		os.Exit(2)
	}

	logger.Init()
	if verbose {
		logger.Log.SetLevel(logrus.DebugLevel)
	} else if os.Getenv("LOG_LEVEL") == "" {
		logger.Log.SetLevel(logrus.WarnLevel)
	}

	fmt.Printf("=== Headless Tank Duel Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d parallel=%d fire_rate=%.2f\n\n",
		runs, frames, seedBase, seedStep, parallel, fireRate)

	cfg := runConfig{
		frames:   frames,
		fireRate: fireRate,
		verbose:  verbose,
		log:      logger.Component("headless"),
	}
	all, err := runAll(context.Background(), runs, parallel, seedBase, seedStep, cfg)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	for _, rs := range all {
		printRun(rs)
	}
	printAggregate(all)

	for _, rs := range all {
		if rs.violations > 0 {
			os.Exit(1)
		}
	}
}

func validate(runs, frames, parallel int, fireRate float64) error {
	switch {
	case runs <= 0:
		return fmt.Errorf("-runs must be > 0")
	case frames <= 0:
		return fmt.Errorf("-frames must be > 0")
	case parallel <= 0:
		return fmt.Errorf("-parallel must be > 0")
	case fireRate < 0 || fireRate > 1:
		return fmt.Errorf("-fire-rate must be within [0,1]")
	}
	return nil
}

// runAll executes every run, at most parallel at a time. Each Sim stays on
// the goroutine that created it.
func runAll(ctx context.Context, runs, parallel int, seedBase, seedStep int64, cfg runConfig) ([]runStats, error) {
	all := make([]runStats, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		g.Go(func() error {
			rs, err := runMatchSoak(ctx, i+1, seed, cfg)
			if err != nil {
				return fmt.Errorf("run %d (seed=%d): %w", i+1, seed, err)
			}
			all[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

// runMatchSoak drives one Sim with random input for cfg.frames frames,
// continuing after every result, and checks invariants each frame.
func runMatchSoak(ctx context.Context, runIndex int, seed int64, cfg runConfig) (runStats, error) {
	in := game.NewRandomInput(seed*7919+1, cfg.fireRate)
	sim := game.NewSim(
		game.WithSeed(seed),
		game.WithInput(in),
		game.WithVerboseEvents(cfg.verbose),
		game.WithLogger(cfg.log.WithFields(logrus.Fields{"run": runIndex, "seed": seed})),
	)

	rs := runStats{runIndex: runIndex, seed: seed}
	ended := 0
	for f := 0; f < cfg.frames; f++ {
		if f%600 == 0 {
			if err := ctx.Err(); err != nil {
				return rs, err
			}
		}
		in.Roll()
		if !sim.RoundActive() {
			ended++
			if ended >= restartDelay {
				in.Press(game.KeyRestart)
				ended = 0
			}
		}
		sim.Step(frameMs)
		if v := sim.CheckInvariants(); len(v) > 0 {
			if rs.violations == 0 {
				rs.firstViolation = fmt.Sprintf("frame %d: %s", sim.Frame(), v[0])
			}
			rs.violations += len(v)
		}
	}
	rs.frames = sim.Frame()
	tally(&rs, sim.Events().Entries())
	return rs, nil
}

// tally fills the event-derived counters of rs.
func tally(rs *runStats, entries []game.EventEntry) {
	for _, e := range entries {
		i := -1
		switch e.Player {
		case "P1":
			i = 0
		case "P2":
			i = 1
		}
		switch e.Category + "/" + e.Key {
		case "round/start":
			rs.roundsStarted++
		case "round/won":
			rs.roundsFinished++
			if i >= 0 {
				rs.wins[i]++
			}
			if rs.firstRoundFrame == 0 {
				rs.firstRoundFrame = e.Frame
			}
		case "match/won":
			rs.matchesWon++
			if i >= 0 {
				rs.matchWins[i]++
			}
		case "combat/fire":
			if i >= 0 {
				rs.shots[i]++
			}
		case "combat/hit":
			if i >= 0 {
				rs.hits[i]++
			}
			if rs.firstHitFrame == 0 {
				rs.firstHitFrame = e.Frame
			}
		case "combat/wall_hit":
			rs.wallHits++
		case "combat/out_of_bounds":
			rs.outOfBound++
		case "powerup/pickup":
			if i >= 0 {
				rs.pickups[i]++
			}
		case "powerup/spawn":
			rs.spawns++
		case "powerup/spawn_failed":
			rs.spawnFails++
		case "invariant/repair":
			rs.repairs++
		}
	}
}

// anomalies lists conditions that deserve a look even without violations.
func anomalies(rs runStats) []string {
	var out []string
	if rs.violations > 0 {
		out = append(out, fmt.Sprintf("invariant_violations=%d", rs.violations))
	}
	if rs.repairs > 0 {
		out = append(out, fmt.Sprintf("invariant_repairs=%d", rs.repairs))
	}
	if rs.shots[0]+rs.shots[1] > 0 && rs.hits[0]+rs.hits[1] == 0 {
		out = append(out, "no_hits")
	}
	if rs.frames > 0 && rs.roundsFinished == 0 {
		out = append(out, "no_round_finished")
	}
	if rs.spawns+rs.spawnFails > 0 && rs.spawns == 0 {
		out = append(out, "no_powerup_spawned")
	}
	return out
}

func accuracy(hits, shots int) float64 {
	if shots == 0 {
		return 0
	}
	return float64(hits) / float64(shots) * 100
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("frames=%d rounds_started=%d rounds_finished=%d matches_won=%d\n",
		rs.frames, rs.roundsStarted, rs.roundsFinished, rs.matchesWon)
	fmt.Printf("round_wins: p1=%d p2=%d  match_wins: p1=%d p2=%d\n",
		rs.wins[0], rs.wins[1], rs.matchWins[0], rs.matchWins[1])
	fmt.Printf("combat: p1 shots=%d hits=%d (%.0f%%)  p2 shots=%d hits=%d (%.0f%%)  wall=%d out=%d\n",
		rs.shots[0], rs.hits[0], accuracy(rs.hits[0], rs.shots[0]),
		rs.shots[1], rs.hits[1], accuracy(rs.hits[1], rs.shots[1]),
		rs.wallHits, rs.outOfBound)
	fmt.Printf("powerups: spawned=%d failed=%d pickups p1=%d p2=%d\n",
		rs.spawns, rs.spawnFails, rs.pickups[0], rs.pickups[1])
	fmt.Printf("phase_markers: first_hit=%d first_round_end=%d\n", rs.firstHitFrame, rs.firstRoundFrame)
	if a := anomalies(rs); len(a) > 0 {
		fmt.Printf("anomalies: %s\n", strings.Join(a, ", "))
	}
	if rs.firstViolation != "" {
		fmt.Printf("first_violation: %s\n", rs.firstViolation)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	var rounds, matches, shots, hits, violations int
	var wins [2]int
	for _, rs := range all {
		rounds += rs.roundsFinished
		matches += rs.matchesWon
		shots += rs.shots[0] + rs.shots[1]
		hits += rs.hits[0] + rs.hits[1]
		violations += rs.violations
		wins[0] += rs.wins[0]
		wins[1] += rs.wins[1]
	}
	n := float64(len(all))
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: rounds=%.1f matches=%.1f shots=%.1f hits=%.1f\n",
		float64(rounds)/n, float64(matches)/n, float64(shots)/n, float64(hits)/n)
	fmt.Printf("round_wins_total: p1=%d p2=%d  accuracy=%.1f%%\n", wins[0], wins[1], accuracy(hits, shots))
	fmt.Printf("invariant_violations_total=%d\n", violations)
}
