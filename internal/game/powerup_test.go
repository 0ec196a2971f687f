package game

import "testing"

func TestCollectPowerUps_ExclusivePickup(t *testing.T) {
	s, _ := newTestSim(t)
	clearArena(s)
	p1, p2 := s.tank(Player1), s.tank(Player2)
	p1.X, p1.Y = 420, 420
	p2.X, p2.Y = 430, 430
	p1.HP, p2.HP = 3, 3
	s.powerUps = []*PowerUp{{X: 420, Y: 420, Kind: PowerHeart}}

	s.collectPowerUps()

	if len(s.powerUps) != 0 {
		t.Fatalf("power-up still on the floor")
	}
	if p1.HP != 4 || p2.HP != 3 {
		t.Fatalf("hp p1=%d p2=%d, want 4 and 3 (player 1 wins ties)", p1.HP, p2.HP)
	}
	if n := s.events.Count("powerup", "pickup"); n != 1 {
		t.Fatalf("pickup events = %d, want 1", n)
	}
}

func TestCollectPowerUps_BuffsApply(t *testing.T) {
	s, _ := newTestSim(t)
	clearArena(s)
	s.now = 1000
	p2 := s.tank(Player2)
	s.powerUps = []*PowerUp{
		{X: 1176, Y: 378, Kind: PowerSpeed}, // under p2 at its spawn
		{X: 420, Y: 84, Kind: PowerRapid},   // nobody there
	}

	s.collectPowerUps()

	if !p2.SpeedActive(1000) || p2.SpeedActive(6000) {
		t.Fatal("speed buff should last 5000ms from pickup")
	}
	if len(s.powerUps) != 1 || s.powerUps[0].Kind != PowerRapid {
		t.Fatalf("remaining power-ups = %v", s.powerUps)
	}
}

func TestMaybeSpawnPowerUp_Cadence(t *testing.T) {
	s, _ := newTestSim(t)
	clearArena(s)
	s.lastPowerSpawn = 0

	s.now = 5999
	s.maybeSpawnPowerUp()
	if len(s.powerUps) != 0 {
		t.Fatal("spawned before the interval elapsed")
	}

	s.now = 6000
	s.maybeSpawnPowerUp()
	if len(s.powerUps) != 1 {
		t.Fatalf("power-ups = %d, want 1", len(s.powerUps))
	}
	pu := s.powerUps[0]
	col, row := int(pu.X)/Tile, int(pu.Y)/Tile
	if float64(col*Tile) != pu.X || float64(row*Tile) != pu.Y {
		t.Fatalf("power-up at (%v,%v) not grid aligned", pu.X, pu.Y)
	}
	if col < 1 || col > gridCols-1 || row < 1 || row > gridRows-1 {
		t.Fatalf("power-up cell (%d,%d) outside spawn range", col, row)
	}
	if s.lastPowerSpawn != 6000 {
		t.Fatalf("lastPowerSpawn = %v, want 6000", s.lastPowerSpawn)
	}

	s.now = 11999
	s.maybeSpawnPowerUp()
	if len(s.powerUps) != 1 {
		t.Fatal("second spawn came early")
	}
}

func TestMaybeSpawnPowerUp_GivesUpAfterRetries(t *testing.T) {
	s, _ := newTestSim(t)
	clearArena(s)
	for row := 1; row < gridRows; row++ {
		for col := 1; col < gridCols; col++ {
			s.walls = append(s.walls, wallAt(col, row))
		}
	}
	s.now = s.lastPowerSpawn + powerSpawnIntervalMs

	s.maybeSpawnPowerUp()

	if len(s.powerUps) != 0 {
		t.Fatal("spawned on a fully walled arena")
	}
	e, ok := s.events.LastOf("powerup", "spawn_failed")
	if !ok {
		t.Fatal("no spawn_failed event")
	}
	if e.NumVal != powerSpawnMaxAttempts {
		t.Fatalf("attempts = %v, want %d", e.NumVal, powerSpawnMaxAttempts)
	}
	if s.lastPowerSpawn != s.now {
		t.Fatal("a failed attempt still consumes the interval")
	}
}

func TestPowerUpsNeverSpawnOnWalls(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s, _ := newTestSim(t, WithSeed(seed), WithPowerSpawnInterval(50))
		for i := 0; i < 200; i++ {
			s.Step(16)
		}
		for _, pu := range s.powerUps {
			if overlapsAnyWall(pu.box(), s.walls) {
				t.Fatalf("seed %d: power-up on a wall at (%v,%v)", seed, pu.X, pu.Y)
			}
		}
		if s.events.Count("powerup", "spawn") == 0 {
			t.Fatalf("seed %d: nothing spawned", seed)
		}
	}
}

func TestNoSpawnWhileRoundEnded(t *testing.T) {
	s, _ := newTestSim(t, WithPowerSpawnInterval(10))
	clearArena(s)
	s.knockout(Player2)
	before := s.events.Count("powerup", "")
	for i := 0; i < 20; i++ {
		s.Step(16)
	}
	if got := s.events.Count("powerup", ""); got != before {
		t.Fatalf("power-up activity while frozen: %d events", got-before)
	}
}
