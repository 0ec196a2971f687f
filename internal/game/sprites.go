package game

import (
	"image/color"
	_ "image/png" // register the PNG decoder for sprite files
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// SpriteKey names every image the renderer can ask for.
type SpriteKey int

const (
	SpriteTerrainGrass SpriteKey = iota
	SpriteTerrainSand
	SpriteTerrainRoad
	SpriteWallTree
	SpriteWallGrass
	SpriteWallStone1
	SpriteWallStone2
	SpriteTankRedUp
	SpriteTankRedDown
	SpriteTankRedLeft
	SpriteTankRedRight
	SpriteTankBlueUp
	SpriteTankBlueDown
	SpriteTankBlueLeft
	SpriteTankBlueRight
	SpriteBullet
	SpritePowerHeart
	SpritePowerSpeed
	SpritePowerRapid
	SpriteExplosion1
	SpriteExplosion2
	SpriteExplosion3
	SpriteExplosion4
	spriteKeyCount // sentinel
)

var spriteFiles = [spriteKeyCount]string{
	SpriteTerrainGrass:  "grass.png",
	SpriteTerrainSand:   "sand.png",
	SpriteTerrainRoad:   "road.png",
	SpriteWallTree:      "wall_tree.png",
	SpriteWallGrass:     "wall_grass.png",
	SpriteWallStone1:    "wall_stone1.png",
	SpriteWallStone2:    "wall_stone2.png",
	SpriteTankRedUp:     "tank_red_up.png",
	SpriteTankRedDown:   "tank_red_down.png",
	SpriteTankRedLeft:   "tank_red_left.png",
	SpriteTankRedRight:  "tank_red_right.png",
	SpriteTankBlueUp:    "tank_blue_up.png",
	SpriteTankBlueDown:  "tank_blue_down.png",
	SpriteTankBlueLeft:  "tank_blue_left.png",
	SpriteTankBlueRight: "tank_blue_right.png",
	SpriteBullet:        "bullet.png",
	SpritePowerHeart:    "power_heart.png",
	SpritePowerSpeed:    "power_speed.png",
	SpritePowerRapid:    "power_rapid.png",
	SpriteExplosion1:    "explosion_1.png",
	SpriteExplosion2:    "explosion_2.png",
	SpriteExplosion3:    "explosion_3.png",
	SpriteExplosion4:    "explosion_4.png",
}

// FileName returns the asset file for the key, "" for an unknown key.
func (k SpriteKey) FileName() string {
	if k < 0 || k >= spriteKeyCount {
		return ""
	}
	return spriteFiles[k]
}

func terrainSprite(k TerrainKind) SpriteKey {
	switch k {
	case TerrainSand:
		return SpriteTerrainSand
	case TerrainRoad:
		return SpriteTerrainRoad
	default:
		return SpriteTerrainGrass
	}
}

func wallSprite(v WallVariant) SpriteKey {
	switch v {
	case WallGrass:
		return SpriteWallGrass
	case WallStone1:
		return SpriteWallStone1
	case WallStone2:
		return SpriteWallStone2
	default:
		return SpriteWallTree
	}
}

// tankSprite picks the red skin for player 1 and blue for player 2.
func tankSprite(p PlayerID, d Direction) SpriteKey {
	base := SpriteTankRedUp
	if p == Player2 {
		base = SpriteTankBlueUp
	}
	switch d {
	case DirDown:
		return base + 1
	case DirLeft:
		return base + 2
	case DirRight:
		return base + 3
	default:
		return base
	}
}

func powerUpSprite(k PowerUpKind) SpriteKey {
	switch k {
	case PowerSpeed:
		return SpritePowerSpeed
	case PowerRapid:
		return SpritePowerRapid
	default:
		return SpritePowerHeart
	}
}

func explosionSprite(frame int) SpriteKey {
	return SpriteExplosion1 + SpriteKey(clampInt(frame, 0, explosionFrames-1))
}

// SpriteProvider returns a drawable for a key. A nil image means the asset
// is not available (yet); renderers treat it as "draw nothing".
type SpriteProvider interface {
	Sprite(key SpriteKey) *ebiten.Image
}

// nilSprites answers every lookup with "not loaded".
type nilSprites struct{}

func (nilSprites) Sprite(SpriteKey) *ebiten.Image { return nil }

// SpriteSheet loads sprites lazily from a file system. A file that cannot be
// read or decoded is logged once and replaced by a flat placeholder tile.
type SpriteSheet struct {
	fsys   fs.FS
	images [spriteKeyCount]*ebiten.Image
	tried  [spriteKeyCount]bool
	log    *logrus.Entry
}

// NewSpriteSheet creates a sheet reading from fsys. fsys may be nil, in
// which case every sprite is a placeholder.
func NewSpriteSheet(fsys fs.FS, log *logrus.Entry) *SpriteSheet {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SpriteSheet{fsys: fsys, log: log.WithField("component", "sprites")}
}

// Sprite implements SpriteProvider.
func (ss *SpriteSheet) Sprite(key SpriteKey) *ebiten.Image {
	if key < 0 || key >= spriteKeyCount {
		return nil
	}
	if !ss.tried[key] {
		ss.tried[key] = true
		ss.images[key] = ss.load(key)
	}
	return ss.images[key]
}

func (ss *SpriteSheet) load(key SpriteKey) *ebiten.Image {
	if ss.fsys != nil {
		img, _, err := ebitenutil.NewImageFromFileSystem(ss.fsys, key.FileName())
		if err == nil {
			return img
		}
		ss.log.WithError(err).WithField("file", key.FileName()).Warn("sprite unavailable, using placeholder")
	}
	return placeholderSprite(key)
}

// placeholderSprite draws a simple stand-in so the game stays playable
// without an assets directory.
func placeholderSprite(key SpriteKey) *ebiten.Image {
	const n = Tile
	img := ebiten.NewImage(n, n)
	fill, ok := placeholderColors[key]
	if !ok {
		fill = color.RGBA{R: 200, G: 0, B: 200, A: 255}
	}
	switch {
	case key >= SpriteTankRedUp && key <= SpriteTankBlueRight:
		vector.FillRect(img, 4, 4, n-8, n-8, fill, false)
		// Barrel stub pointing along the facing.
		dir := Direction((key - SpriteTankRedUp) % 4)
		dx, dy := dir.unit()
		cx, cy := float32(n/2), float32(n/2)
		vector.StrokeLine(img, cx, cy, cx+float32(dx)*n/2, cy+float32(dy)*n/2, 5,
			color.RGBA{R: 30, G: 30, B: 30, A: 255}, false)
	case key == SpriteBullet:
		vector.FillCircle(img, n/2, n/2, n/2, fill, false)
	case key >= SpriteExplosion1 && key <= SpriteExplosion4:
		r := float32(6 + 4*int(key-SpriteExplosion1))
		vector.FillCircle(img, n/2, n/2, r, fill, false)
		vector.FillCircle(img, n/2, n/2, r/2, color.RGBA{R: 255, G: 250, B: 200, A: 230}, false)
	case key >= SpritePowerHeart && key <= SpritePowerRapid:
		vector.FillRect(img, 8, 8, n-16, n-16, fill, false)
		vector.StrokeRect(img, 8, 8, n-16, n-16, 2, color.White, false)
	default:
		img.Fill(fill)
	}
	return img
}

var placeholderColors = map[SpriteKey]color.RGBA{
	SpriteTerrainGrass:  {R: 58, G: 112, B: 52, A: 255},
	SpriteTerrainSand:   {R: 196, G: 172, B: 112, A: 255},
	SpriteTerrainRoad:   {R: 70, G: 68, B: 64, A: 255},
	SpriteWallTree:      {R: 30, G: 80, B: 34, A: 255},
	SpriteWallGrass:     {R: 92, G: 140, B: 60, A: 255},
	SpriteWallStone1:    {R: 120, G: 118, B: 110, A: 255},
	SpriteWallStone2:    {R: 96, G: 92, B: 88, A: 255},
	SpriteTankRedUp:     {R: 200, G: 50, B: 40, A: 255},
	SpriteTankRedDown:   {R: 200, G: 50, B: 40, A: 255},
	SpriteTankRedLeft:   {R: 200, G: 50, B: 40, A: 255},
	SpriteTankRedRight:  {R: 200, G: 50, B: 40, A: 255},
	SpriteTankBlueUp:    {R: 40, G: 90, B: 210, A: 255},
	SpriteTankBlueDown:  {R: 40, G: 90, B: 210, A: 255},
	SpriteTankBlueLeft:  {R: 40, G: 90, B: 210, A: 255},
	SpriteTankBlueRight: {R: 40, G: 90, B: 210, A: 255},
	SpriteBullet:        {R: 255, G: 230, B: 120, A: 255},
	SpritePowerHeart:    {R: 220, G: 60, B: 90, A: 255},
	SpritePowerSpeed:    {R: 60, G: 200, B: 230, A: 255},
	SpritePowerRapid:    {R: 240, G: 180, B: 40, A: 255},
	SpriteExplosion1:    {R: 255, G: 200, B: 60, A: 230},
	SpriteExplosion2:    {R: 255, G: 150, B: 40, A: 220},
	SpriteExplosion3:    {R: 230, G: 90, B: 30, A: 200},
	SpriteExplosion4:    {R: 120, G: 60, B: 40, A: 160},
}
