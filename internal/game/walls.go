package game

import "math/rand"

// WallVariant selects the sprite used for a wall cell.
type WallVariant uint8

const (
	WallTree WallVariant = iota
	WallGrass
	WallStone1
	WallStone2
	wallVariantCount // sentinel
)

func (v WallVariant) String() string {
	switch v {
	case WallTree:
		return "tree"
	case WallGrass:
		return "grass"
	case WallStone1:
		return "stone-1"
	case WallStone2:
		return "stone-2"
	default:
		return "unknown"
	}
}

// wallPalettes lists the wall variants allowed on each terrain. This table is
// the only place the terrain/wall pairing is defined.
var wallPalettes = [terrainKindCount][]WallVariant{
	TerrainGrass: {WallTree, WallGrass},
	TerrainSand:  {WallGrass, WallStone1, WallStone2},
	TerrainRoad:  {WallStone1, WallStone2},
}

// wallPalette returns the allowed variants for a terrain kind.
func wallPalette(k TerrainKind) []WallVariant {
	if k >= terrainKindCount {
		return wallPalettes[TerrainGrass]
	}
	return wallPalettes[k]
}

// Wall is a static TILE×TILE obstacle. Walls never change during a round.
type Wall struct {
	Col     int
	Row     int
	Variant WallVariant
}

// X returns the wall's left edge in arena pixels.
func (w Wall) X() float64 { return float64(w.Col * Tile) }

// Y returns the wall's top edge in arena pixels.
func (w Wall) Y() float64 { return float64(w.Row * Tile) }

func (w Wall) box() rect {
	return rect{x: w.X(), y: w.Y(), w: Tile, h: Tile}
}

// generateWalls scatters walls over the interior cells (the outer ring is
// never used), skipping both spawn safe zones. No connectivity is guaranteed.
func generateWalls(rng *rand.Rand, terrain TerrainKind) []Wall {
	palette := wallPalette(terrain)
	var walls []Wall
	for row := 1; row < gridRows-1; row++ {
		for col := 1; col < gridCols-1; col++ {
			if rng.Float64() >= wallChance {
				continue
			}
			x := float64(col * Tile)
			y := float64(row * Tile)
			if inSafeZone(x, y) {
				continue
			}
			walls = append(walls, Wall{
				Col:     col,
				Row:     row,
				Variant: palette[rng.Intn(len(palette))],
			})
		}
	}
	return walls
}
