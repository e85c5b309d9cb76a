package game

import "time"

// PlayerView is the read-only player state a frontend draws from.
type PlayerView struct {
	Pos                   Point
	Width, Height         float64
	Center                Point
	Mode                  Mode
	Lives                 int
	Invulnerable          bool
	InvulnerableRemaining time.Duration
	// Blink is true on the dim half of the invulnerability blink cycle.
	Blink bool
}

// Frame is the snapshot returned by every Tick. Slices are copies or
// immutable territory, so frontends may keep them across ticks.
type Frame struct {
	Tick           int
	Phase          Phase
	MenuSelection  MenuItem
	PauseSelection PauseItem

	Player  PlayerView
	Path    []Point
	Areas   [][]Point
	Patrols []Point

	Roaming        Point
	RoamingRadius  float64
	RoamingContact bool

	PatrolRadius float64

	Coverage        float64
	LevelPassed     bool
	ShowLevelPassed bool

	// Events of this tick.
	Collision CollisionResult
	Claimed   bool
}

func (s *Session) snapshot(now time.Time) Frame {
	p := s.player
	f := Frame{
		Tick:           s.tick,
		Phase:          s.phase,
		MenuSelection:  s.menuSel,
		PauseSelection: s.pauseSel,
		Player: PlayerView{
			Pos:                   p.Pos,
			Width:                 p.Width,
			Height:                p.Height,
			Center:                p.Center(),
			Mode:                  p.Mode,
			Lives:                 p.Lives,
			Invulnerable:          p.Invulnerable(),
			InvulnerableRemaining: p.invulnerable.Remaining(now),
		},
		Roaming:         s.roaming.Pos,
		RoamingRadius:   s.roaming.Radius,
		RoamingContact:  s.contact,
		PatrolRadius:    s.cfg.PatrolHazardRadius,
		Coverage:        s.coverage.Percent(),
		LevelPassed:     s.coverage.Passed(),
		ShowLevelPassed: s.coverage.Passed() && s.coverage.PassedFor(now) < s.cfg.LevelPassDuration,
		Collision:       s.collision,
		Claimed:         s.claimed,
	}
	if f.Player.Invulnerable {
		f.Player.Blink = blinkOff(now, s.cfg.BlinkRate)
	}
	if len(p.Path) > 0 {
		f.Path = make([]Point, len(p.Path))
		copy(f.Path, p.Path)
	}
	if len(s.areas) > 0 {
		f.Areas = make([][]Point, len(s.areas))
		copy(f.Areas, s.areas)
	}
	f.Patrols = make([]Point, len(s.patrols))
	for i, pe := range s.patrols {
		f.Patrols[i] = pe.Pos
	}
	return f
}

// blinkOff is true on every other 1/rate second slice of wall-clock time.
func blinkOff(now time.Time, rate float64) bool {
	if rate <= 0 {
		return false
	}
	slot := int64(float64(now.UnixNano()) / float64(time.Second) * rate)
	return slot%2 == 0
}
