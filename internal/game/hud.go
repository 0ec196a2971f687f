package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD mirrors match state to whatever shows it: the score counters and the
// result overlay.
type HUD interface {
	SetWins(p1, p2 int)
	ShowResult(title, sub string)
	HideResult()
}

type noopHUD struct{}

func (noopHUD) SetWins(int, int)          {}
func (noopHUD) ShowResult(string, string) {}
func (noopHUD) HideResult()               {}

// --- On-screen HUD ---

const (
	hudBarHeight   = 28
	hudPanelW      = 460
	hudPanelH      = 120
	hudLineSpacing = 16
	hudPad         = 10
)

var (
	hudFace       = text.NewGoXFace(basicfont.Face7x13)
	hudBarColor   = color.NRGBA{R: 16, G: 18, B: 22, A: 255}
	hudPanelColor = color.NRGBA{R: 10, G: 10, B: 14, A: 215}
	hudEdgeColor  = color.NRGBA{R: 200, G: 200, B: 210, A: 255}
	hudP1Color    = color.NRGBA{R: 230, G: 90, B: 80, A: 255}
	hudP2Color    = color.NRGBA{R: 90, G: 140, B: 240, A: 255}
	hudDimColor   = color.NRGBA{R: 170, G: 170, B: 180, A: 255}
)

// overlayHUD draws a score bar above the arena and a centered result panel.
// The Sim pushes state into it; Draw only reads.
type overlayHUD struct {
	wins    [2]int
	showing bool
	title   string
	sub     string
	hint    string
	status  string // transient right-side message ("copied", "muted")
}

func newOverlayHUD() *overlayHUD {
	return &overlayHUD{hint: "Space: continue  N: new match"}
}

func (h *overlayHUD) SetWins(p1, p2 int) {
	h.wins = [2]int{p1, p2}
}

func (h *overlayHUD) ShowResult(title, sub string) {
	h.showing = true
	h.title = hudASCII(title)
	h.sub = hudASCII(sub)
}

func (h *overlayHUD) HideResult() {
	h.showing = false
	h.title = ""
	h.sub = ""
}

func (h *overlayHUD) setStatus(msg string) {
	h.status = msg
}

// Draw paints the bar at the top of dst and, if a result is pending, the
// panel centered over the arena area.
func (h *overlayHUD) Draw(dst *ebiten.Image, width, arenaTop, arenaH float64) {
	vector.FillRect(dst, 0, 0, float32(width), hudBarHeight, hudBarColor, false)

	drawHUDText(dst, fmt.Sprintf("P1  %d", h.wins[0]), hudPad, 8, hudP1Color)
	p2 := fmt.Sprintf("%d  P2", h.wins[1])
	w, _ := text.Measure(p2, hudFace, hudLineSpacing)
	drawHUDText(dst, p2, width-hudPad-w, 8, hudP2Color)

	center := fmt.Sprintf("First to %d", winsToMatch)
	if h.status != "" {
		center = h.status
	}
	cw, _ := text.Measure(center, hudFace, hudLineSpacing)
	drawHUDText(dst, center, (width-cw)/2, 8, hudDimColor)

	if !h.showing {
		return
	}
	px := (width - hudPanelW) / 2
	py := arenaTop + (arenaH-hudPanelH)/2
	vector.FillRect(dst, float32(px), float32(py), hudPanelW, hudPanelH, hudPanelColor, false)
	vector.StrokeRect(dst, float32(px), float32(py), hudPanelW, hudPanelH, 2, hudEdgeColor, false)

	y := py + 24
	for _, line := range []struct {
		s string
		c color.Color
	}{
		{h.title, color.White},
		{h.sub, hudDimColor},
		{h.hint, hudDimColor},
	} {
		lw, _ := text.Measure(line.s, hudFace, hudLineSpacing)
		drawHUDText(dst, line.s, px+(hudPanelW-lw)/2, y, line.c)
		y += 28
	}
}

// hudGlyphs maps the punctuation used in result text onto characters that
// basicfont.Face7x13 can draw; it only covers ASCII.
var hudGlyphs = strings.NewReplacer("—", "-", "–", "-", "…", "...")

func hudASCII(s string) string {
	return hudGlyphs.Replace(s)
}

func drawHUDText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = hudLineSpacing
	text.Draw(dst, s, hudFace, op)
}
