package game

import "testing"

func TestScriptedInput(t *testing.T) {
	in := NewScriptedInput()
	in.Hold(KeyP1Up, Key(-1), keyCount)
	in.Press(KeyP2Fire)
	if !in.Held(KeyP1Up) || !in.Pressed(KeyP2Fire) || in.Held(keyCount) {
		t.Fatal("hold/press not recorded")
	}
	in.Advance()
	if in.Pressed(KeyP2Fire) || !in.Held(KeyP1Up) {
		t.Fatal("Advance should clear presses only")
	}
	in.Release(KeyP1Up)
	in.Hold(KeyP2Left)
	in.Press(KeyRestart)
	in.ReleaseAll()
	if in.Held(KeyP2Left) || in.Pressed(KeyRestart) || in.Held(KeyP1Up) {
		t.Fatal("ReleaseAll left keys down")
	}
}

func TestRandomInput_Deterministic(t *testing.T) {
	a := NewRandomInput(5, 0.3)
	b := NewRandomInput(5, 0.3)
	for f := 0; f < 500; f++ {
		a.Roll()
		b.Roll()
		for k := Key(0); k < keyCount; k++ {
			if a.Held(k) != b.Held(k) || a.Pressed(k) != b.Pressed(k) {
				t.Fatalf("frame %d key %d diverged", f, k)
			}
		}
		for _, k := range []Key{KeyResetRound, KeyRestart, KeyResetMatch, KeyCopySummary, KeyToggleMute, KeyToggleHelp} {
			if a.Held(k) || a.Pressed(k) {
				t.Fatalf("frame %d: random driver touched control key %d", f, k)
			}
		}
	}
}

func TestRandomInput_SoakKeepsInvariants(t *testing.T) {
	in := NewRandomInput(11, 0.2)
	s := NewSim(WithSeed(11), WithInput(in), WithLogger(quietLog()))
	ended := 0
	for f := 0; f < 3000; f++ {
		in.Roll()
		if !s.RoundActive() {
			if ended++; ended > 20 {
				in.Press(KeyRestart)
				ended = 0
			}
		}
		s.Step(1000.0 / 60.0)
		if v := s.CheckInvariants(); len(v) > 0 {
			t.Fatalf("frame %d: %v\n%s", s.Frame(), v, s.events.Format())
		}
	}
	if s.events.Count("combat", "fire") == 0 {
		t.Fatal("soak fired nothing")
	}
	if s.events.Count("invariant", "repair") != 0 {
		t.Fatalf("repairs during soak:\n%s", s.events.Format())
	}
}
