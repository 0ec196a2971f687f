package game

import (
	"fmt"
	"strings"
)

// PlayerStats tallies one side's activity over the whole event log.
type PlayerStats struct {
	Player      PlayerID
	Shots       int
	Hits        int // bullets that damaged the opponent
	WallHits    int
	Misses      int // bullets that left the arena
	Pickups     map[PowerUpKind]int
	RoundsWon   int
	HP          int // current tank health
	BulletsLive int
}

// Accuracy returns hits per shot in [0,1], 0 when nothing was fired.
func (ps PlayerStats) Accuracy() float64 {
	if ps.Shots == 0 {
		return 0
	}
	return float64(ps.Hits) / float64(ps.Shots)
}

// MatchReport is a snapshot of a match built from the event log.
type MatchReport struct {
	MatchID      string
	Frame        int
	Round        int
	SimMs        float64
	Wins         [2]int
	State        RoundState
	Result       Result
	Players      [2]PlayerStats
	PowerSpawns  int
	SpawnMisses  int
	Repairs      int
	RoundsPlayed int
	Violations   []string
}

// Report collects a MatchReport for the current match. Events from earlier
// matches in the same log are skipped.
func (s *Sim) Report() *MatchReport {
	r := &MatchReport{
		MatchID:    s.matchID.String(),
		Frame:      s.frame,
		Round:      s.round,
		SimMs:      s.now,
		Wins:       s.match.Wins,
		State:      s.match.State,
		Result:     s.match.Result,
		Violations: s.CheckInvariants(),
	}
	for i, id := range []PlayerID{Player1, Player2} {
		r.Players[i] = PlayerStats{Player: id, Pickups: make(map[PowerUpKind]int)}
		if t := s.tank(id); t != nil {
			r.Players[i].HP = t.HP
			r.Players[i].BulletsLive = t.bulletsActive
		}
	}

	for _, e := range s.events.Since(s.matchStartIndex()) {
		ps := r.player(e.Player)
		switch e.Category + "/" + e.Key {
		case "combat/fire":
			if ps != nil {
				ps.Shots++
			}
		case "combat/hit":
			if ps != nil {
				ps.Hits++
			}
		case "combat/wall_hit":
			if ps != nil {
				ps.WallHits++
			}
		case "combat/out_of_bounds":
			if ps != nil {
				ps.Misses++
			}
		case "powerup/pickup":
			if ps != nil {
				ps.Pickups[parsePowerUpKind(e.Value)]++
			}
		case "powerup/spawn":
			r.PowerSpawns++
		case "powerup/spawn_failed":
			r.SpawnMisses++
		case "round/won":
			if ps != nil {
				ps.RoundsWon++
			}
		case "round/start":
			r.RoundsPlayed++
		case "invariant/repair":
			r.Repairs++
		}
	}
	return r
}

// matchStartIndex returns the index of the latest match start entry.
func (s *Sim) matchStartIndex() int {
	entries := s.events.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Category == "match" && entries[i].Key == "start" {
			return i
		}
	}
	return 0
}

func (r *MatchReport) player(label string) *PlayerStats {
	switch label {
	case Player1.String():
		return &r.Players[0]
	case Player2.String():
		return &r.Players[1]
	default:
		return nil
	}
}

func parsePowerUpKind(s string) PowerUpKind {
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		if k.String() == s {
			return k
		}
	}
	return PowerHeart
}

// Format returns a human-readable multi-line summary.
func (r *MatchReport) Format() string {
	if r == nil {
		return "No match data.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Tank Duel Match %s ===\n", r.MatchID)
	fmt.Fprintf(&sb, "  frame=%d  round=%d  sim=%.1fs  state=%s\n",
		r.Frame, r.Round, r.SimMs/1000, r.State)
	fmt.Fprintf(&sb, "  score: P1 %d - %d P2 (first to %d)\n", r.Wins[0], r.Wins[1], winsToMatch)
	if r.Result.Kind != ResultNone {
		fmt.Fprintf(&sb, "  last result: %s\n", r.Result.Title)
	}

	sb.WriteString("\n--- Players ---\n")
	for _, ps := range r.Players {
		fmt.Fprintf(&sb, "  %s: hp=%d  shots=%d  hits=%d (%.0f%%)  wall=%d  missed=%d  rounds=%d\n",
			ps.Player, ps.HP, ps.Shots, ps.Hits, ps.Accuracy()*100, ps.WallHits, ps.Misses, ps.RoundsWon)
		fmt.Fprintf(&sb, "      pickups: heart=%d speed=%d rapid=%d\n",
			ps.Pickups[PowerHeart], ps.Pickups[PowerSpeed], ps.Pickups[PowerRapid])
	}

	sb.WriteString("\n--- Arena ---\n")
	fmt.Fprintf(&sb, "  rounds played=%d  power-ups spawned=%d  spawn misses=%d\n",
		r.RoundsPlayed, r.PowerSpawns, r.SpawnMisses)

	if r.Repairs > 0 || len(r.Violations) > 0 {
		sb.WriteString("\n--- Invariants ---\n")
		fmt.Fprintf(&sb, "  repairs=%d\n", r.Repairs)
		for _, v := range r.Violations {
			fmt.Fprintf(&sb, "  VIOLATION: %s\n", v)
		}
	}
	return sb.String()
}
