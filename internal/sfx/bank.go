package sfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
)

// Bank holds one pre-rendered clip per effect and plays them on demand.
// It is used from ebiten's Update goroutine only.
type Bank struct {
	ctx    *audio.Context
	clips  [effectCount][]byte
	muted  bool
	volume float64
	log    *logrus.Entry
}

// NewBank renders every effect up front. ctx may be nil, in which case the
// bank renders clips but never plays them (headless runs, tests).
func NewBank(ctx *audio.Context, log *logrus.Entry) (*Bank, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	b := &Bank{ctx: ctx, volume: 0.8, log: log.WithField("component", "sfx")}
	for e := Effect(0); e < effectCount; e++ {
		s, err := Synthesize(e)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", e, err)
		}
		pcm, err := RenderPCM(s)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", e, err)
		}
		b.clips[e] = pcm
	}
	return b, nil
}

// Clip returns the raw PCM for an effect.
func (b *Bank) Clip(e Effect) []byte {
	if e < 0 || e >= effectCount {
		return nil
	}
	return b.clips[e]
}

// Play starts a fresh player for the effect. Muted banks and banks without
// an audio context do nothing.
func (b *Bank) Play(e Effect) {
	if b == nil || b.muted || b.ctx == nil {
		return
	}
	clip := b.Clip(e)
	if len(clip) == 0 {
		return
	}
	p := b.ctx.NewPlayerFromBytes(clip)
	p.SetVolume(b.volume)
	p.Play()
	b.log.WithField("effect", e.String()).Trace("play")
}

// SetMuted silences or restores future effects.
func (b *Bank) SetMuted(m bool) {
	if b == nil {
		return
	}
	b.muted = m
}

// Muted reports whether effects are silenced.
func (b *Bank) Muted() bool {
	return b != nil && b.muted
}
