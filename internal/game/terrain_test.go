package game

import (
	"math/rand"
	"testing"
)

func TestValueNoise2D_Range(t *testing.T) {
	// Verify noise output is in [0,1].
	seed := int64(12345)
	for y := -10.0; y < 10.0; y += 0.37 {
		for x := -10.0; x < 10.0; x += 0.37 {
			v := valueNoise2D(x, y, seed)
			if v < 0 || v > 1 {
				t.Fatalf("noise at (%.2f,%.2f) = %f, out of [0,1]", x, y, v)
			}
		}
	}
}

func TestValueNoise2D_Deterministic(t *testing.T) {
	seed := int64(99999)
	a := valueNoise2D(3.7, 8.2, seed)
	b := valueNoise2D(3.7, 8.2, seed)
	if a != b {
		t.Fatalf("noise not deterministic: %f != %f", a, b)
	}
}

func TestGenerateTerrain_SingleKindPerRound(t *testing.T) {
	tg := generateTerrain(rand.New(rand.NewSource(42)), defaultShadeConfig)
	if tg.Cols != coverCols || tg.Rows != coverRows {
		t.Fatalf("grid %dx%d, want %dx%d", tg.Cols, tg.Rows, coverCols, coverRows)
	}
	for row := 0; row < tg.Rows; row++ {
		for col := 0; col < tg.Cols; col++ {
			if s := tg.ShadeAt(col, row); s < 0 || s > 1 {
				t.Fatalf("shade at (%d,%d) = %f", col, row, s)
			}
		}
	}
	if tg.ShadeAt(-1, 0) != 0 || tg.ShadeAt(0, tg.Rows) != 0 {
		t.Error("out-of-range shade should be 0")
	}
}

func TestGenerateTerrain_AllKindsReachable(t *testing.T) {
	seen := map[TerrainKind]int{}
	for seed := int64(0); seed < 60; seed++ {
		seen[generateTerrain(rand.New(rand.NewSource(seed)), defaultShadeConfig).Kind]++
	}
	t.Logf("kinds: %v", seen)
	for k := TerrainKind(0); k < terrainKindCount; k++ {
		if seen[k] == 0 {
			t.Errorf("terrain %s never generated in 60 seeds", k)
		}
	}
}

func TestGenerateTerrain_ShadeVaries(t *testing.T) {
	tg := generateTerrain(rand.New(rand.NewSource(7)), defaultShadeConfig)
	lo, hi := 1.0, 0.0
	for _, v := range tg.Shade {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi-lo < 0.05 {
		t.Fatalf("shade range %.3f..%.3f is flat", lo, hi)
	}
}

func TestGenerateTerrain_CoversWholeArena(t *testing.T) {
	tg := generateTerrain(rand.New(rand.NewSource(3)), defaultShadeConfig)
	if tg.Cols*Tile < ArenaWidth || tg.Rows*Tile < ArenaHeight {
		t.Fatalf("background %dx%d px leaves the %dx%d arena partly bare",
			tg.Cols*Tile, tg.Rows*Tile, ArenaWidth, ArenaHeight)
	}
	// One tile less would not reach the edges.
	if (tg.Cols-1)*Tile >= ArenaWidth || (tg.Rows-1)*Tile >= ArenaHeight {
		t.Fatalf("background %dx%d tiles is larger than needed", tg.Cols, tg.Rows)
	}
}
