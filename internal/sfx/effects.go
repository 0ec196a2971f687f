// Package sfx synthesizes the game's sound effects and plays them through
// ebiten's audio context.
package sfx

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by synthesis and the ebiten audio context.
const SampleRate = beep.SampleRate(48000)

// Effect names a one-shot sound.
type Effect int

const (
	Shot Effect = iota
	Hit
	Explosion
	Pickup
	RoundEnd
	effectCount // sentinel
)

func (e Effect) String() string {
	switch e {
	case Shot:
		return "shot"
	case Hit:
		return "hit"
	case Explosion:
		return "explosion"
	case Pickup:
		return "pickup"
	case RoundEnd:
		return "round_end"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave, optionally sweeping its
// frequency linearly from freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch glides from freq to endFreq.
// Noise is seeded so a given effect always renders the same bytes.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))), // #nosec G404 -- audio noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		f := o.freq + (o.endFreq-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release shaping and cuts it at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 mutes it.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Synthesize builds the streamer for one effect. The result is finite.
func Synthesize(e Effect) (beep.Streamer, error) {
	rate := SampleRate
	switch e {
	case Shot:
		d := 90 * time.Millisecond
		body := NewEnvelope(NewSweep(720, 260, d, WaveSquare, rate), d, 2*time.Millisecond, 70*time.Millisecond, rate)
		return newVolume(body, 0.35), nil
	case Hit:
		d := 140 * time.Millisecond
		thud := NewEnvelope(NewSweep(180, 70, d, WaveSaw, rate), d, 3*time.Millisecond, 110*time.Millisecond, rate)
		crack := NewEnvelope(NewOscillator(0, 40*time.Millisecond, WaveNoise, rate), 40*time.Millisecond, time.Millisecond, 35*time.Millisecond, rate)
		return newVolume(beep.Mix(newVolume(thud, 0.7), newVolume(crack, 0.4)), 0.6), nil
	case Explosion:
		d := 420 * time.Millisecond
		rumble := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 380*time.Millisecond, rate)
		low := NewEnvelope(NewSweep(90, 35, d, WaveSine, rate), d, 5*time.Millisecond, 360*time.Millisecond, rate)
		return newVolume(beep.Mix(newVolume(rumble, 0.5), newVolume(low, 0.8)), 0.7), nil
	case Pickup:
		n1, err := generators.SineTone(rate, 987.77)
		if err != nil {
			return nil, err
		}
		n2, err := generators.SineTone(rate, 1318.51)
		if err != nil {
			return nil, err
		}
		d1, d2 := 70*time.Millisecond, 120*time.Millisecond
		seq := beep.Seq(
			NewEnvelope(beep.Take(rate.N(d1), n1), d1, 2*time.Millisecond, 30*time.Millisecond, rate),
			NewEnvelope(beep.Take(rate.N(d2), n2), d2, 2*time.Millisecond, 90*time.Millisecond, rate),
		)
		return newVolume(seq, 0.4), nil
	case RoundEnd:
		var notes []beep.Streamer
		for _, f := range []float64{523.25, 659.25, 783.99} {
			d := 140 * time.Millisecond
			notes = append(notes, NewEnvelope(NewOscillator(f, d, WaveSquare, rate), d, 4*time.Millisecond, 60*time.Millisecond, rate))
		}
		return newVolume(beep.Seq(notes...), 0.3), nil
	}
	return nil, fmt.Errorf("sfx: unknown effect %d", int(e))
}
