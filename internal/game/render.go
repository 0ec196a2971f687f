package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the drawing surface the Sim paints into, in arena pixels.
type Renderer interface {
	// DrawImage scales img into the box (x,y,w,h). A nil img draws nothing.
	DrawImage(img *ebiten.Image, x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
}

var (
	shadowColor    = color.NRGBA{A: 89} // black at 0.35
	healthBarBack  = color.NRGBA{A: 0x88}
	healthHigh     = color.NRGBA{R: 0x44, G: 0xe0, B: 0x6a, A: 0xff}
	healthMid      = color.NRGBA{R: 0xe6, G: 0xc4, B: 0x51, A: 0xff}
	healthLow      = color.NRGBA{R: 0xe0, G: 0x64, B: 0x64, A: 0xff}
	healthBarH     = 5.0
	healthBarLift  = 8.0
	shadowHeight   = 4.0
	shadowSideTrim = 2.0
)

// healthColor picks the bar color for a health fraction.
func healthColor(pct float64) color.Color {
	switch {
	case pct > 0.6:
		return healthHigh
	case pct > 0.3:
		return healthMid
	default:
		return healthLow
	}
}

// Render paints one frame: terrain, walls, power-ups, tanks, bullets, then
// explosions. It reads state only.
func (s *Sim) Render(r Renderer) {
	if r == nil {
		return
	}
	s.renderTerrain(r)

	for _, w := range s.walls {
		r.DrawImage(s.sprites.Sprite(wallSprite(w.Variant)), w.X(), w.Y(), Tile, Tile)
	}
	for _, pu := range s.powerUps {
		r.DrawImage(s.sprites.Sprite(powerUpSprite(pu.Kind)), pu.X, pu.Y, powerUpSize, powerUpSize)
	}
	for _, t := range s.tanks {
		s.renderTank(r, t)
	}
	bullet := s.sprites.Sprite(SpriteBullet)
	for _, b := range s.bullets {
		r.DrawImage(bullet, b.X, b.Y, b.W, b.H)
	}
	for _, e := range s.explosions {
		r.DrawImage(s.sprites.Sprite(explosionSprite(e.Frame())),
			e.X-explosionInset, e.Y-explosionInset, Tile, Tile)
	}
}

func (s *Sim) renderTerrain(r Renderer) {
	tg := s.terrain
	if tg == nil {
		return
	}
	img := s.sprites.Sprite(terrainSprite(tg.Kind))
	for row := 0; row < tg.Rows; row++ {
		for col := 0; col < tg.Cols; col++ {
			x, y := float64(col*Tile), float64(row*Tile)
			r.DrawImage(img, x, y, Tile, Tile)
			if a := uint8(tg.ShadeAt(col, row) * float64(s.shade.MaxAlpha)); a > 0 {
				r.FillRect(x, y, Tile, Tile, color.NRGBA{A: a})
			}
		}
	}
}

func (s *Sim) renderTank(r Renderer, t *Tank) {
	r.FillRect(t.X+shadowSideTrim, t.Y+t.H-shadowHeight, t.W-2*shadowSideTrim, shadowHeight, shadowColor)

	vb := t.visualBox()
	r.DrawImage(s.sprites.Sprite(tankSprite(t.ID, t.Dir)), vb.x, vb.y, vb.w, vb.h)

	pct := float64(t.HP) / float64(t.HPMax)
	r.FillRect(t.X, t.Y-healthBarLift, t.W, healthBarH, healthBarBack)
	if pct > 0 {
		r.FillRect(t.X, t.Y-healthBarLift, t.W*pct, healthBarH, healthColor(pct))
	}
}

// screenRenderer draws into an ebiten image, shifted down by the HUD bar and
// scaled by the window scale.
type screenRenderer struct {
	dst   *ebiten.Image
	offX  float64
	offY  float64
	scale float64
}

func newScreenRenderer(dst *ebiten.Image, offX, offY, scale float64) *screenRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &screenRenderer{dst: dst, offX: offX, offY: offY, scale: scale}
}

func (sr *screenRenderer) DrawImage(img *ebiten.Image, x, y, w, h float64) {
	if img == nil || sr.dst == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx())*sr.scale, h/float64(b.Dy())*sr.scale)
	op.GeoM.Translate(sr.offX+x*sr.scale, sr.offY+y*sr.scale)
	op.Filter = ebiten.FilterLinear
	sr.dst.DrawImage(img, op)
}

func (sr *screenRenderer) FillRect(x, y, w, h float64, c color.Color) {
	if sr.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(sr.dst,
		float32(sr.offX+x*sr.scale), float32(sr.offY+y*sr.scale),
		float32(w*sr.scale), float32(h*sr.scale), c, false)
}
