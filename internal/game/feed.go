package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedMaxEntries = 6
	feedLineHeight = 16
	feedWidth      = 300
	feedHighlight  = 2 // newest entries drawn on a brighter row
)

// FeedEntry is one line in the on-screen combat feed.
type FeedEntry struct {
	Frame   int
	Player  PlayerID // 0 for arena messages
	Message string
}

// Feed is a ring buffer of recent notable events rendered in the arena's
// bottom-left corner.
type Feed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewFeed creates a feed with a fixed capacity.
func NewFeed() *Feed {
	return &Feed{entries: make([]FeedEntry, feedMaxEntries)}
}

// Add appends an entry, overwriting the oldest when full.
func (f *Feed) Add(frame int, p PlayerID, msg string) {
	f.entries[f.head] = FeedEntry{Frame: frame, Player: p, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries oldest first.
func (f *Feed) Recent() []FeedEntry {
	out := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		out[i] = f.entries[(f.head-f.count+i+feedMaxEntries)%feedMaxEntries]
	}
	return out
}

// Clear drops every entry.
func (f *Feed) Clear() {
	f.head, f.count = 0, 0
}

// feedLine turns an event into a feed message. Only events a player would
// care about produce a line.
func feedLine(e EventEntry) (PlayerID, string, bool) {
	p := playerFromLabel(e.Player)
	switch e.Category + "/" + e.Key {
	case "combat/hit":
		return p, fmt.Sprintf("%s hits %s (%d hp left)", e.Player, p.Other(), int(e.NumVal)), true
	case "powerup/pickup":
		return p, fmt.Sprintf("%s picks up %s", e.Player, e.Value), true
	case "powerup/spawn":
		return 0, "power-up: " + e.Value, true
	case "round/won", "match/won":
		return p, e.Value, true
	case "round/start":
		return 0, fmt.Sprintf("round %d: %s", e.Round, e.Value), true
	}
	return 0, "", false
}

func playerFromLabel(label string) PlayerID {
	switch label {
	case "P1":
		return Player1
	case "P2":
		return Player2
	default:
		return 0
	}
}

// Draw renders the feed panel with its bottom edge at bottom.
func (f *Feed) Draw(dst *ebiten.Image, x, bottom float64) {
	entries := f.Recent()
	if len(entries) == 0 {
		return
	}
	h := float64(len(entries)*feedLineHeight + 8)
	top := bottom - h
	vector.FillRect(dst, float32(x), float32(top), feedWidth, float32(h), color.RGBA{R: 10, G: 12, B: 10, A: 170}, false)

	y := top + 4
	for i, e := range entries {
		if i >= len(entries)-feedHighlight {
			vector.FillRect(dst, float32(x+2), float32(y), feedWidth-4, feedLineHeight, color.RGBA{R: 40, G: 46, B: 40, A: 160}, false)
		}
		var dot color.Color = hudDimColor
		switch e.Player {
		case Player1:
			dot = hudP1Color
		case Player2:
			dot = hudP2Color
		}
		vector.FillRect(dst, float32(x+5), float32(y+5), 3, 6, dot, false)
		drawHUDText(dst, e.Message, x+12, y+1, color.White)
		y += feedLineHeight
	}
}
