package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded gameplay event.
type SimLogEntry struct {
	Tick     int
	Category string  // phase, player, territory, life, coverage, roaming, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] territory claimed          6 pts area=1250
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-9s %-16s %s",
		e.Tick, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a session. It is unbounded and
// machine-readable; the headless report and tests query it.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick positions are
// also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
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

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// FirstOf returns the earliest entry matching category+key, or false if none.
func (sl *SimLog) FirstOf(category, key string) (SimLogEntry, bool) {
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format returns all entries as newline-separated log lines.
func (sl *SimLog) Format() string {
	return FormatEntries(sl.entries)
}

// FormatEntries renders entries one log line each.
func FormatEntries(entries []SimLogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Len returns the number of recorded entries.
func (sl *SimLog) Len() int {
	return len(sl.entries)
}
