package game

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Input,Renderer,HUD,SpriteProvider

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a logical control, independent of the physical binding.
type Key int

const (
	KeyP1Up Key = iota
	KeyP1Down
	KeyP1Left
	KeyP1Right
	KeyP1Fire
	KeyP2Up
	KeyP2Down
	KeyP2Left
	KeyP2Right
	KeyP2Fire
	KeyResetRound
	KeyRestart
	KeyResetMatch
	KeyCopySummary
	KeyToggleMute
	KeyToggleHelp
	keyCount // sentinel
)

// Input answers "is this control held" and "was it pressed this frame".
type Input interface {
	Held(k Key) bool
	Pressed(k Key) bool
}

// controls groups one player's movement and fire keys.
type controls struct {
	up, down, left, right, fire Key
}

var playerControls = [2]controls{
	{up: KeyP1Up, down: KeyP1Down, left: KeyP1Left, right: KeyP1Right, fire: KeyP1Fire},
	{up: KeyP2Up, down: KeyP2Down, left: KeyP2Left, right: KeyP2Right, fire: KeyP2Fire},
}

// noInput is used when a Sim is built without an Input.
type noInput struct{}

func (noInput) Held(Key) bool    { return false }
func (noInput) Pressed(Key) bool { return false }

// keyBindings maps each logical key to the physical keys that trigger it.
var keyBindings = [keyCount][]ebiten.Key{
	KeyP1Up:        {ebiten.KeyW},
	KeyP1Down:      {ebiten.KeyS},
	KeyP1Left:      {ebiten.KeyA},
	KeyP1Right:     {ebiten.KeyD},
	KeyP1Fire:      {ebiten.KeyF},
	KeyP2Up:        {ebiten.KeyArrowUp},
	KeyP2Down:      {ebiten.KeyArrowDown},
	KeyP2Left:      {ebiten.KeyArrowLeft},
	KeyP2Right:     {ebiten.KeyArrowRight},
	KeyP2Fire:      {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	KeyResetRound:  {ebiten.KeyR},
	KeyRestart:     {ebiten.KeySpace},
	KeyResetMatch:  {ebiten.KeyN},
	KeyCopySummary: {ebiten.KeyC},
	KeyToggleMute:  {ebiten.KeyM},
	KeyToggleHelp:  {ebiten.KeyH},
}

// ebitenInput reads the keyboard through ebiten. Pressed is edge-triggered
// and only meaningful inside ebiten's Update.
type ebitenInput struct{}

func (ebitenInput) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	for _, ek := range keyBindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func (ebitenInput) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	for _, ek := range keyBindings[k] {
		if inpututil.IsKeyJustPressed(ek) {
			return true
		}
	}
	return false
}
