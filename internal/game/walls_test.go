package game

import (
	"math/rand"
	"slices"
	"testing"
)

func TestGenerateWalls_GridAlignedInterior(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		walls := generateWalls(rand.New(rand.NewSource(seed)), TerrainGrass)
		for _, w := range walls {
			if w.Col < 1 || w.Col > gridCols-2 || w.Row < 1 || w.Row > gridRows-2 {
				t.Fatalf("seed %d: wall at (%d,%d) outside interior", seed, w.Col, w.Row)
			}
			if int(w.X())%Tile != 0 || int(w.Y())%Tile != 0 {
				t.Fatalf("seed %d: wall at (%.0f,%.0f) not tile aligned", seed, w.X(), w.Y())
			}
			b := w.box()
			if b.w != Tile || b.h != Tile {
				t.Fatalf("wall box %vx%v, want %dx%d", b.w, b.h, Tile, Tile)
			}
		}
	}
}

func TestGenerateWalls_RespectsSafeZones(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		for _, w := range generateWalls(rand.New(rand.NewSource(seed)), TerrainSand) {
			if inSafeZone(w.X(), w.Y()) {
				t.Fatalf("seed %d: wall at (%.0f,%.0f) inside a safe zone", seed, w.X(), w.Y())
			}
		}
	}
}

func TestGenerateWalls_SpawnsStayClear(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		walls := generateWalls(rand.New(rand.NewSource(seed)), TerrainRoad)
		for _, id := range []PlayerID{Player1, Player2} {
			x, y, dir := spawnPoint(id)
			if overlapsAnyWall(NewTank(id, x, y, dir).box(), walls) {
				t.Fatalf("seed %d: %s spawn overlaps a wall", seed, id)
			}
		}
	}
}

func TestGenerateWalls_DensityNearChance(t *testing.T) {
	total := 0
	const seeds = 40
	for seed := int64(0); seed < seeds; seed++ {
		total += len(generateWalls(rand.New(rand.NewSource(seed)), TerrainGrass))
	}
	avg := float64(total) / seeds
	interior := float64((gridCols - 2) * (gridRows - 2))
	t.Logf("avg walls per round: %.1f of %.0f interior cells", avg, interior)
	if avg < interior*0.06 || avg > interior*0.14 {
		t.Fatalf("average wall count %.1f far from %.0f%% density", avg, wallChance*100)
	}
}

func TestGenerateWalls_PaletteMatchesTerrain(t *testing.T) {
	for k := TerrainKind(0); k < terrainKindCount; k++ {
		palette := wallPalette(k)
		if len(palette) == 0 {
			t.Fatalf("terrain %s has an empty palette", k)
		}
		used := map[WallVariant]bool{}
		for seed := int64(0); seed < 10; seed++ {
			for _, w := range generateWalls(rand.New(rand.NewSource(seed)), k) {
				if !slices.Contains(palette, w.Variant) {
					t.Fatalf("terrain %s produced variant %s outside its palette %v", k, w.Variant, palette)
				}
				used[w.Variant] = true
			}
		}
		if len(used) != len(palette) {
			t.Errorf("terrain %s used %d of %d palette variants", k, len(used), len(palette))
		}
	}
}

func TestWallPalette_Fixed(t *testing.T) {
	want := map[TerrainKind][]WallVariant{
		TerrainGrass: {WallTree, WallGrass},
		TerrainSand:  {WallGrass, WallStone1, WallStone2},
		TerrainRoad:  {WallStone1, WallStone2},
	}
	for k, w := range want {
		if got := wallPalette(k); !slices.Equal(got, w) {
			t.Errorf("wallPalette(%s) = %v, want %v", k, got, w)
		}
	}
}

func TestGenerateWalls_Deterministic(t *testing.T) {
	a := generateWalls(rand.New(rand.NewSource(3)), TerrainSand)
	b := generateWalls(rand.New(rand.NewSource(3)), TerrainSand)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different layouts")
	}
}
