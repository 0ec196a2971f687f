package game

// --- Tank constants ---

const (
	tankSize        = 28
	tankHPMax       = 5
	tankBaseSpeed   = 2.8 // px per frame
	tankBuffSpeed   = 4.2 // px per frame while a speed buff is active
	tankReloadMs    = 350.0
	tankRapidMs     = 120.0
	tankBulletLimit = 3

	// The sprite is drawn larger than the hitbox: TILE×TILE, shifted up-left
	// by tankVisualInset. Collision only ever uses the 28×28 box.
	tankVisualInset = 2
	tankVisualSize  = Tile

	speedBuffMs = 5000.0
	rapidBuffMs = 6000.0
)

// Direction is a tank's facing. Bullets always travel along it.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// unit returns the direction as a unit vector.
func (d Direction) unit() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Tank is one player's vehicle for the duration of a round.
type Tank struct {
	ID  PlayerID
	X   float64
	Y   float64
	W   float64
	H   float64
	Dir Direction

	HP    int
	HPMax int

	cooldown      float64 // ms until the next shot is allowed
	bulletsActive int
	bulletLimit   int

	speedUntil float64 // sim ms; speed buff active while now < speedUntil
	rapidUntil float64 // sim ms; rapid-fire buff active while now < rapidUntil
}

// NewTank places a fresh, full-health tank.
func NewTank(id PlayerID, x, y float64, dir Direction) *Tank {
	return &Tank{
		ID:          id,
		X:           x,
		Y:           y,
		W:           tankSize,
		H:           tankSize,
		Dir:         dir,
		HP:          tankHPMax,
		HPMax:       tankHPMax,
		bulletLimit: tankBulletLimit,
	}
}

// box is the collision box.
func (t *Tank) box() rect {
	return rect{x: t.X, y: t.Y, w: t.W, h: t.H}
}

// visualBox is where the sprite is drawn.
func (t *Tank) visualBox() rect {
	return rect{
		x: t.X - tankVisualInset,
		y: t.Y - tankVisualInset,
		w: tankVisualSize,
		h: tankVisualSize,
	}
}

// Center returns the midpoint of the collision box.
func (t *Tank) Center() (float64, float64) {
	return t.box().center()
}

// Speed returns the movement speed in effect at sim time now.
func (t *Tank) Speed(now float64) float64 {
	if now < t.speedUntil {
		return tankBuffSpeed
	}
	return tankBaseSpeed
}

// RapidActive reports whether the rapid-fire buff is in effect at now.
func (t *Tank) RapidActive(now float64) bool {
	return now < t.rapidUntil
}

// SpeedActive reports whether the speed buff is in effect at now.
func (t *Tank) SpeedActive(now float64) bool {
	return now < t.speedUntil
}

// Cooldown returns the milliseconds left before the tank may fire again.
func (t *Tank) Cooldown() float64 { return t.cooldown }

// BulletsActive returns the number of this tank's bullets still in flight.
func (t *Tank) BulletsActive() int { return t.bulletsActive }

// CanShoot reports whether Shoot would produce a bullet right now.
func (t *Tank) CanShoot() bool {
	return t.cooldown <= 0 && t.bulletsActive < t.bulletLimit
}

// Move steps the tank by (dx,dy)*speed, clamped to the arena. If the new box
// touches any wall the whole move is undone; there is no per-axis sliding.
// Returns true if the position changed.
func (t *Tank) Move(dx, dy, now float64, walls []Wall) bool {
	prevX, prevY := t.X, t.Y
	speed := t.Speed(now)
	t.X = clamp(t.X+dx*speed, 0, ArenaWidth-t.W)
	t.Y = clamp(t.Y+dy*speed, 0, ArenaHeight-t.H)
	if overlapsAnyWall(t.box(), walls) {
		t.X, t.Y = prevX, prevY
	}
	return t.X != prevX || t.Y != prevY
}

// Shoot fires one bullet along the current facing. It returns nil when the
// tank is reloading or already has bulletLimit bullets in flight. The reload
// length is decided here: 120ms if rapid fire is active at now, else 350ms.
func (t *Tank) Shoot(now float64) *Bullet {
	if !t.CanShoot() {
		return nil
	}
	cx, cy := t.Center()
	dx, dy := t.Dir.unit()
	b := &Bullet{
		X:     cx - bulletSize/2,
		Y:     cy - bulletSize/2,
		W:     bulletSize,
		H:     bulletSize,
		VX:    dx * bulletSpeed,
		VY:    dy * bulletSpeed,
		Owner: t.ID,
		Alive: true,
	}
	t.bulletsActive++
	if t.RapidActive(now) {
		t.cooldown = tankRapidMs
	} else {
		t.cooldown = tankReloadMs
	}
	return b
}

// tick counts the reload timer down by dt milliseconds.
func (t *Tank) tick(dt float64) {
	t.cooldown -= dt
	if t.cooldown < 0 {
		t.cooldown = 0
	}
}

// releaseBullet is called when one of this tank's bullets is removed.
func (t *Tank) releaseBullet() {
	if t.bulletsActive > 0 {
		t.bulletsActive--
	}
}

// Damage removes n HP and returns the remaining health, never below zero.
func (t *Tank) Damage(n int) int {
	t.HP = clampInt(t.HP-n, 0, t.HPMax)
	return t.HP
}

// Heal restores n HP, capped at HPMax.
func (t *Tank) Heal(n int) int {
	t.HP = clampInt(t.HP+n, 0, t.HPMax)
	return t.HP
}

// ApplyPowerUp applies a pickup's effect. Buffs overwrite the previous expiry.
func (t *Tank) ApplyPowerUp(kind PowerUpKind, now float64) {
	switch kind {
	case PowerHeart:
		t.Heal(1)
	case PowerSpeed:
		t.speedUntil = now + speedBuffMs
	case PowerRapid:
		t.rapidUntil = now + rapidBuffMs
	}
}
