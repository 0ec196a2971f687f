package game

// --- Arena constants ---

const (
	ArenaWidth  = 1305
	ArenaHeight = 780
	Tile        = 42

	// gridCols/gridRows are the whole cells that fit inside the arena.
	gridCols = ArenaWidth / Tile  // 31
	gridRows = ArenaHeight / Tile // 18

	// coverCols/coverRows are the background tiles needed to paint the whole
	// arena, including the partial strip on the right and bottom edges.
	coverCols = (ArenaWidth + Tile - 1) / Tile  // 32
	coverRows = (ArenaHeight + Tile - 1) / Tile // 19

	// Spawn safe zones: no walls where x < safeZoneInset or x > W-safeZoneInset
	// while safeZoneEdge < y < H-safeZoneEdge.
	safeZoneInset = 200
	safeZoneEdge  = 150

	wallChance = 0.12
)

// PlayerID identifies a side. Player1 drives the red tank, Player2 the blue one.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Other returns the opposing side.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// index maps a PlayerID to its slot in per-player arrays.
func (p PlayerID) index() int {
	return int(p) - 1
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "--"
	}
}

// spawnPoint returns the fixed round-start position and facing for a side.
func spawnPoint(p PlayerID) (x, y float64, dir Direction) {
	y = ArenaHeight/2 - 16
	if p == Player1 {
		return 60, y, DirRight
	}
	return ArenaWidth - 100, y, DirLeft
}

// inSafeZone reports whether a cell whose top-left corner is (x,y) falls in a
// spawn safe zone.
func inSafeZone(x, y float64) bool {
	if y <= safeZoneEdge || y >= ArenaHeight-safeZoneEdge {
		return false
	}
	return x < safeZoneInset || x > ArenaWidth-safeZoneInset
}

// arenaBox is the playfield rectangle.
func arenaBox() rect {
	return rect{x: 0, y: 0, w: ArenaWidth, h: ArenaHeight}
}
