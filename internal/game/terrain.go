package game

import (
	"math"
	"math/rand"
)

// TerrainKind identifies the ground surface for a whole round.
type TerrainKind uint8

const (
	TerrainGrass TerrainKind = iota
	TerrainSand
	TerrainRoad
	terrainKindCount // sentinel
)

func (k TerrainKind) String() string {
	switch k {
	case TerrainGrass:
		return "grass"
	case TerrainSand:
		return "sand"
	case TerrainRoad:
		return "road"
	default:
		return "unknown"
	}
}

// shadeConfig holds the cosmetic noise parameters for ground variation.
type shadeConfig struct {
	Scale    float64 // smaller = broader patches
	MaxAlpha uint8   // darkest overlay applied at shade 1.0
}

var defaultShadeConfig = shadeConfig{
	Scale:    0.18,
	MaxAlpha: 46,
}

// TerrainGrid is the background layer for one round. Every cell carries the
// same kind; Shade only varies how dark the tile is drawn.
type TerrainGrid struct {
	Cols  int
	Rows  int
	Kind  TerrainKind
	Shade []float64 // row-major: index = row*Cols + col, values in [0,1]
}

// NewTerrainGrid creates a grid of the given kind with no shading.
func NewTerrainGrid(cols, rows int, kind TerrainKind) *TerrainGrid {
	return &TerrainGrid{
		Cols:  cols,
		Rows:  rows,
		Kind:  kind,
		Shade: make([]float64, cols*rows),
	}
}

func (tg *TerrainGrid) inBounds(col, row int) bool {
	return col >= 0 && col < tg.Cols && row >= 0 && row < tg.Rows
}

// ShadeAt returns the cosmetic shade of a cell, 0 outside the grid.
func (tg *TerrainGrid) ShadeAt(col, row int) float64 {
	if !tg.inBounds(col, row) {
		return 0
	}
	return tg.Shade[row*tg.Cols+col]
}

// generateTerrain picks one terrain kind uniformly at random and fills the
// background with it, then applies value-noise shading. The grid covers the
// full arena, so it is one tile wider and taller than the placement grid.
func generateTerrain(rng *rand.Rand, cfg shadeConfig) *TerrainGrid {
	kind := TerrainKind(rng.Intn(int(terrainKindCount)))
	tg := NewTerrainGrid(coverCols, coverRows, kind)
	seed := rng.Int63()
	for row := 0; row < tg.Rows; row++ {
		for col := 0; col < tg.Cols; col++ {
			n := valueNoise2D(float64(col)*cfg.Scale, float64(row)*cfg.Scale, seed)
			tg.Shade[row*tg.Cols+col] = n
		}
	}
	return tg
}

// --- Value noise ---

// valueNoise2D returns a smooth noise value in [0,1] for the given coordinates.
// Lattice value noise with hermite interpolation.
func valueNoise2D(x, y float64, seed int64) float64 {
	xi := int(math.Floor(x))
	yi := int(math.Floor(y))
	xf := x - float64(xi)
	yf := y - float64(yi)

	u := xf * xf * (3 - 2*xf)
	v := yf * yf * (3 - 2*yf)

	n00 := latticeValue(xi, yi, seed)
	n10 := latticeValue(xi+1, yi, seed)
	n01 := latticeValue(xi, yi+1, seed)
	n11 := latticeValue(xi+1, yi+1, seed)

	nx0 := n00*(1-u) + n10*u
	nx1 := n01*(1-u) + n11*u
	return nx0*(1-v) + nx1*v
}

// latticeValue hashes integer coordinates and a seed into [0,1].
func latticeValue(x, y int, seed int64) float64 {
	h := uint64(seed)
	h ^= uint64(x) * 0x517cc1b727220a95
	h ^= uint64(y) * 0x6c62272e07bb0142
	h = h*0x2545f4914f6cdd1d + 0x14057b7ef767814f
	h ^= h >> 16
	h *= 0xd6e8feb86659fd93
	h ^= h >> 16
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}
