package game

import "testing"

func TestNewTank_Defaults(t *testing.T) {
	tk := NewTank(Player1, 60, 374, DirRight)
	if tk.HP != 5 || tk.HPMax != 5 {
		t.Fatalf("hp = %d/%d, want 5/5", tk.HP, tk.HPMax)
	}
	if tk.W != 28 || tk.H != 28 {
		t.Fatalf("size = %vx%v, want 28x28", tk.W, tk.H)
	}
	if !tk.CanShoot() || tk.BulletsActive() != 0 {
		t.Fatal("fresh tank should be able to shoot with no bullets in flight")
	}
	if tk.Speed(0) != tankBaseSpeed {
		t.Fatalf("speed = %v, want %v", tk.Speed(0), tankBaseSpeed)
	}
}

func TestSpawnPoints(t *testing.T) {
	x, y, dir := spawnPoint(Player1)
	if x != 60 || y != 374 || dir != DirRight {
		t.Errorf("P1 spawn = (%v,%v,%s)", x, y, dir)
	}
	x, y, dir = spawnPoint(Player2)
	if x != 1205 || y != 374 || dir != DirLeft {
		t.Errorf("P2 spawn = (%v,%v,%s)", x, y, dir)
	}
}

func TestTankMove_ClampsToArena(t *testing.T) {
	cases := []struct {
		name         string
		x, y, dx, dy float64
		wantX, wantY float64
	}{
		{"top-left", 1, 1, -1, -1, 0, 0},
		{"right edge", ArenaWidth - 29, 100, 1, 0, ArenaWidth - 28, 100},
		{"bottom edge", 100, ArenaHeight - 29, 0, 1, 100, ArenaHeight - 28},
		{"free", 100, 100, 1, 0, 102.8, 100},
	}
	for _, c := range cases {
		tk := NewTank(Player1, c.x, c.y, DirUp)
		tk.Move(c.dx, c.dy, 0, nil)
		if !approx(tk.X, c.wantX) || !approx(tk.Y, c.wantY) {
			t.Errorf("%s: pos = (%v,%v), want (%v,%v)", c.name, tk.X, tk.Y, c.wantX, c.wantY)
		}
	}
}

func TestTankMove_RollsBackWholeMove(t *testing.T) {
	walls := []Wall{wallAt(3, 3)} // x,y in [126,168)
	tk := NewTank(Player1, 97, 130, DirRight)

	if moved := tk.Move(1, 0, 0, walls); moved {
		t.Fatal("move into wall reported as moved")
	}
	if tk.X != 97 || tk.Y != 130 {
		t.Fatalf("pos = (%v,%v), want unchanged (97,130)", tk.X, tk.Y)
	}

	// Diagonal into the wall stops both axes, no sliding along y.
	if tk.Move(1, 1, 0, walls) {
		t.Fatal("diagonal move into wall reported as moved")
	}
	if tk.X != 97 || tk.Y != 130 {
		t.Fatalf("diagonal: pos = (%v,%v), want (97,130)", tk.X, tk.Y)
	}

	// Moving away is fine.
	if !tk.Move(-1, 0, 0, walls) || !approx(tk.X, 97-tankBaseSpeed) {
		t.Fatalf("move away: x = %v", tk.X)
	}
}

func TestTankShoot_CooldownScenario(t *testing.T) {
	tk := NewTank(Player1, 100, 100, DirRight)

	if tk.Shoot(0) == nil {
		t.Fatal("first shot blocked")
	}
	if tk.Cooldown() != 350 {
		t.Fatalf("cooldown = %v, want 350", tk.Cooldown())
	}
	tk.tick(349)
	if tk.Shoot(349) != nil {
		t.Fatal("shot allowed before 350ms")
	}
	tk.tick(1)
	if tk.Shoot(350) == nil {
		t.Fatal("shot blocked at 350ms")
	}

	rapid := NewTank(Player2, 100, 100, DirLeft)
	rapid.ApplyPowerUp(PowerRapid, 0)
	if rapid.Shoot(0) == nil {
		t.Fatal("rapid: first shot blocked")
	}
	if rapid.Cooldown() != 120 {
		t.Fatalf("rapid cooldown = %v, want 120", rapid.Cooldown())
	}
	rapid.tick(120)
	if rapid.Shoot(120) == nil {
		t.Fatal("rapid: shot blocked at 120ms")
	}

	// Reload length is decided when the shot is fired.
	rapid.tick(120)
	if rapid.Shoot(6000) == nil {
		t.Fatal("shot blocked after rapid reload")
	}
	if rapid.Cooldown() != 350 {
		t.Fatalf("cooldown after buff expiry = %v, want 350", rapid.Cooldown())
	}
}

func TestTankShoot_BulletCap(t *testing.T) {
	tk := NewTank(Player1, 100, 100, DirUp)
	for i := 0; i < 3; i++ {
		if tk.Shoot(0) == nil {
			t.Fatalf("shot %d blocked", i+1)
		}
		tk.tick(1000)
	}
	if tk.Shoot(0) != nil {
		t.Fatal("fourth bullet allowed while three are in flight")
	}
	if tk.BulletsActive() != 3 {
		t.Fatalf("bulletsActive = %d, want 3", tk.BulletsActive())
	}
	tk.releaseBullet()
	if tk.Shoot(0) == nil {
		t.Fatal("shot blocked after a bullet was released")
	}
}

func TestTankShoot_BulletGeometry(t *testing.T) {
	cases := []struct {
		dir    Direction
		vx, vy float64
	}{
		{DirUp, 0, -6},
		{DirDown, 0, 6},
		{DirLeft, -6, 0},
		{DirRight, 6, 0},
	}
	for _, c := range cases {
		tk := NewTank(Player2, 200, 300, c.dir)
		b := tk.Shoot(0)
		if b == nil {
			t.Fatalf("%s: shot blocked", c.dir)
		}
		if b.X != 210 || b.Y != 310 || b.W != 8 || b.H != 8 {
			t.Errorf("%s: bullet box = (%v,%v,%v,%v), want centered 8x8 at (210,310)", c.dir, b.X, b.Y, b.W, b.H)
		}
		if b.VX != c.vx || b.VY != c.vy {
			t.Errorf("%s: velocity = (%v,%v), want (%v,%v)", c.dir, b.VX, b.VY, c.vx, c.vy)
		}
		if b.Owner != Player2 || !b.Alive {
			t.Errorf("%s: owner=%s alive=%v", c.dir, b.Owner, b.Alive)
		}
	}
}

func TestTankReleaseBullet_NeverNegative(t *testing.T) {
	tk := NewTank(Player1, 0, 0, DirUp)
	tk.releaseBullet()
	if tk.BulletsActive() != 0 {
		t.Fatalf("bulletsActive = %d", tk.BulletsActive())
	}
}

func TestTankHealth_Clamped(t *testing.T) {
	tk := NewTank(Player1, 0, 0, DirUp)
	tk.ApplyPowerUp(PowerHeart, 0)
	if tk.HP != 5 {
		t.Fatalf("heart at full health: hp = %d, want 5", tk.HP)
	}
	tk.Damage(2)
	tk.ApplyPowerUp(PowerHeart, 0)
	if tk.HP != 4 {
		t.Fatalf("heart at 3: hp = %d, want 4", tk.HP)
	}
	if hp := tk.Damage(10); hp != 0 {
		t.Fatalf("overkill: hp = %d, want 0", hp)
	}
}

func TestTankSpeedBuff_Expires(t *testing.T) {
	tk := NewTank(Player1, 100, 100, DirRight)
	tk.ApplyPowerUp(PowerSpeed, 1000)
	if tk.Speed(1000) != tankBuffSpeed || !tk.SpeedActive(5999) {
		t.Fatal("speed buff not active after pickup")
	}
	if tk.Speed(6000) != tankBaseSpeed {
		t.Fatalf("speed at expiry = %v, want %v", tk.Speed(6000), tankBaseSpeed)
	}

	tk.Move(1, 0, 2000, nil)
	if !approx(tk.X, 100+tankBuffSpeed) {
		t.Fatalf("buffed move: x = %v, want %v", tk.X, 100+tankBuffSpeed)
	}

	// A second pickup overwrites the expiry.
	tk.ApplyPowerUp(PowerSpeed, 4000)
	if !tk.SpeedActive(8999) || tk.SpeedActive(9000) {
		t.Fatal("speed buff expiry not refreshed")
	}
}

func TestVisualBoxIsLargerThanHitbox(t *testing.T) {
	tk := NewTank(Player1, 60, 374, DirRight)
	vb := tk.visualBox()
	if vb.x != 58 || vb.y != 372 || vb.w != Tile || vb.h != Tile {
		t.Fatalf("visual box = %+v", vb)
	}
	if tk.box().w != 28 {
		t.Fatal("hitbox changed")
	}
}
