package game

import "math/rand"

// ScriptedInput is an Input driven by code. Held keys stay down until
// released; presses last for exactly one Step and are cleared by Advance.
type ScriptedInput struct {
	held    [keyCount]bool
	pressed [keyCount]bool
}

// NewScriptedInput returns an input with nothing held.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{}
}

func (in *ScriptedInput) Held(k Key) bool {
	return k >= 0 && k < keyCount && in.held[k]
}

func (in *ScriptedInput) Pressed(k Key) bool {
	return k >= 0 && k < keyCount && in.pressed[k]
}

// Hold marks keys as held down.
func (in *ScriptedInput) Hold(keys ...Key) {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			in.held[k] = true
		}
	}
}

// Release lifts keys.
func (in *ScriptedInput) Release(keys ...Key) {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			in.held[k] = false
		}
	}
}

// ReleaseAll lifts every key and drops pending presses.
func (in *ScriptedInput) ReleaseAll() {
	in.held = [keyCount]bool{}
	in.pressed = [keyCount]bool{}
}

// Press queues a one-frame press.
func (in *ScriptedInput) Press(keys ...Key) {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			in.pressed[k] = true
		}
	}
}

// Advance clears one-frame presses. Call it after each Step.
func (in *ScriptedInput) Advance() {
	in.pressed = [keyCount]bool{}
}

// StepScripted runs n frames of dt ms each, clearing presses between them.
func (s *Sim) StepScripted(in *ScriptedInput, n int, dt float64) {
	for i := 0; i < n; i++ {
		s.Step(dt)
		in.Advance()
	}
}

// RandomInput mashes player keys at random. It never touches the round and
// match controls; soak drivers decide when to continue. Each player holds a
// direction for a while before picking another.
type RandomInput struct {
	ScriptedInput
	rng      *rand.Rand
	fireRate float64 // chance per frame to press fire
	holdFor  [2]int
}

// NewRandomInput creates a seeded random driver.
func NewRandomInput(seed int64, fireRate float64) *RandomInput {
	return &RandomInput{
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- soak input
		fireRate: fireRate,
	}
}

// Roll picks this frame's keys. Call once before each Step.
func (ri *RandomInput) Roll() {
	ri.pressed = [keyCount]bool{}
	for i, c := range playerControls {
		if ri.holdFor[i] <= 0 {
			ri.Release(c.up, c.down, c.left, c.right)
			switch ri.rng.Intn(5) {
			case 0:
				ri.Hold(c.up)
			case 1:
				ri.Hold(c.down)
			case 2:
				ri.Hold(c.left)
			case 3:
				ri.Hold(c.right)
			}
			ri.holdFor[i] = 10 + ri.rng.Intn(50)
		}
		ri.holdFor[i]--
		if ri.rng.Float64() < ri.fireRate {
			ri.Press(c.fire)
		}
	}
}
