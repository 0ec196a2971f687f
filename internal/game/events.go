package game

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// EventEntry is one recorded simulation event.
type EventEntry struct {
	Frame    int
	Round    int
	Player   string  // "P1", "P2", or "--" for arena events
	Category string  // combat, powerup, round, match, invariant, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric payload (remaining hp, attempts, ...)
}

// String formats the entry as a fixed-width log line.
//
//	[F=00042 R=1] P1   combat    hit              P2 hp=4
func (e EventEntry) String() string {
	return fmt.Sprintf("[F=%05d R=%d] %-4s %-9s %-16s %s",
		e.Frame, e.Round, e.Player, e.Category, e.Key, e.Value)
}

// EventLog collects structured events for one Sim. It is unbounded and
// machine-readable; the on-screen Feed is fed from it. Every entry is also
// mirrored to logrus at debug level (info for round and match results).
type EventLog struct {
	entries []EventEntry
	verbose bool
	log     *logrus.Entry
}

// NewEventLog creates an EventLog. If verbose is true, per-frame movement
// entries are recorded as well.
func NewEventLog(verbose bool, log *logrus.Entry) *EventLog {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &EventLog{verbose: verbose, log: log}
}

// Add records a new entry.
func (el *EventLog) Add(frame, round int, player, category, key, value string, numVal float64) {
	e := EventEntry{
		Frame:    frame,
		Round:    round,
		Player:   player,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	}
	el.entries = append(el.entries, e)
	el.mirror(e)
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(frame, round int, player, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(frame, round, player, category, key, value, numVal)
}

func (el *EventLog) mirror(e EventEntry) {
	entry := el.log.WithFields(logrus.Fields{
		"frame":    e.Frame,
		"round":    e.Round,
		"player":   e.Player,
		"category": e.Category,
		"event":    e.Key,
	})
	switch e.Category {
	case "round", "match":
		entry.Info(e.Value)
	case "invariant":
		entry.Warn(e.Value)
	default:
		entry.Debug(e.Value)
	}
}

// setLogger swaps the logrus entry, e.g. after a new match id is issued.
func (el *EventLog) setLogger(log *logrus.Entry) {
	if log != nil {
		el.log = log
	}
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventEntry {
	return el.entries
}

// Len returns the number of recorded entries.
func (el *EventLog) Len() int {
	return len(el.entries)
}

// Since returns the entries recorded at or after index i. Callers keep the
// returned length as their cursor.
func (el *EventLog) Since(i int) []EventEntry {
	if i < 0 {
		i = 0
	}
	if i >= len(el.entries) {
		return nil
	}
	return el.entries[i:]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []EventEntry {
	var out []EventEntry
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (el *EventLog) LastOf(category, key string) (EventEntry, bool) {
	entries := el.Filter(category, key)
	if len(entries) == 0 {
		return EventEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
