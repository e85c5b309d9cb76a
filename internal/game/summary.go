package game

import (
	"fmt"
	"strings"
)

// Stats are per-session counters, zeroed by Reset.
type Stats struct {
	Ticks           int // Playing ticks simulated
	Claims          int
	Discarded       int
	LivesLost       int
	RoamingContacts int
	LevelPassTick   int // session tick the pass latched on, 0 if never
}

// Summary is a compact end-of-session report.
type Summary struct {
	Stats
	Phase       Phase
	Lives       int
	Coverage    float64
	Covered     float64
	TotalArea   float64
	LevelPassed bool
}

// Summary builds the report for the current session.
func (s *Session) Summary() Summary {
	return Summary{
		Stats:       s.stats,
		Phase:       s.phase,
		Lives:       s.player.Lives,
		Coverage:    s.coverage.Percent(),
		Covered:     s.coverage.Covered(),
		TotalArea:   s.coverage.Total(),
		LevelPassed: s.coverage.Passed(),
	}
}

// FormatSummary renders sm as key=value lines for the clipboard and the
// headless report.
func FormatSummary(sm Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== MQIX Session ===\n")
	fmt.Fprintf(&sb, "phase=%s lives=%d level_passed=%t\n", sm.Phase, sm.Lives, sm.LevelPassed)
	fmt.Fprintf(&sb, "territory=%.2f%% covered=%.0f total=%.0f\n", sm.Coverage, sm.Covered, sm.TotalArea)
	fmt.Fprintf(&sb, "claims=%d discarded=%d lives_lost=%d roaming_contacts=%d\n",
		sm.Claims, sm.Discarded, sm.LivesLost, sm.RoamingContacts)
	pass := "n/a"
	if sm.LevelPassTick > 0 {
		pass = fmt.Sprintf("%d", sm.LevelPassTick)
	}
	fmt.Fprintf(&sb, "play_ticks=%d level_pass_tick=%s\n", sm.Ticks, pass)
	return sb.String()
}
