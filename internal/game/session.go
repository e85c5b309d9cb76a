package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrExit is returned by Tick when the player chose to leave the game.
var ErrExit = errors.New("game: exit requested")

// Session owns every simulated entity and the phase state machine. It is
// driven from a single goroutine and is not safe for concurrent use.
type Session struct {
	cfg          Config
	rng          *rand.Rand
	log          *SimLog
	freezeTimers bool

	phase    Phase
	menuSel  MenuItem
	pauseSel PauseItem
	pausedAt time.Time

	player   *Player
	patrols  []*PatrolEnemy
	roaming  *RoamingEnemy
	areas    [][]Point
	coverage *Coverage

	tick  int
	stats Stats

	// per-tick events, cleared at the top of Tick
	collision CollisionResult
	claimed   bool
	contact   bool

	// touching persists across ticks so contacts count once per encounter
	touching bool
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithSeed makes the roaming enemy's starting direction deterministic.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	}
}

// WithSimLog records gameplay events into log.
func WithSimLog(log *SimLog) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

// WithFreezeTimersOnPause stops the invulnerability and level-pass timers
// while the session is paused. By default they keep running on wall-clock
// time.
func WithFreezeTimersOnPause(freeze bool) SessionOption {
	return func(s *Session) {
		s.freezeTimers = freeze
	}
}

// NewSession validates cfg and returns a session sitting on the main menu.
func NewSession(cfg Config, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:   cfg,
		phase: MainMenu,
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- gameplay only
	}
	if s.log == nil {
		s.log = NewSimLog(false)
	}
	s.Reset()
	return s, nil
}

// Reset rebuilds the player, enemies, territory and coverage from the config.
// It does not change the phase.
func (s *Session) Reset() {
	s.player = newPlayer(s.cfg)
	s.patrols = []*PatrolEnemy{NewPatrolEnemy(s.cfg.Perimeter(), s.cfg.PatrolSpeed)}
	s.roaming = NewRoamingEnemy(s.cfg.RoamingStart(), s.cfg.RoamingBounds(), s.cfg.RoamingSpeed, s.cfg.RoamingRadius, s.rng)
	s.areas = nil
	s.coverage = NewCoverage(s.cfg.TotalArea(), s.cfg.WinThreshold)
	s.stats = Stats{}
	s.touching = false
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Log returns the session's event log.
func (s *Session) Log() *SimLog { return s.log }

// Player exposes the live player for tests and tooling. Frontends should
// draw from Frame instead.
func (s *Session) Player() *Player { return s.player }

// Patrols exposes the live patrol enemies.
func (s *Session) Patrols() []*PatrolEnemy { return s.patrols }

// Roaming exposes the live roaming enemy.
func (s *Session) Roaming() *RoamingEnemy { return s.roaming }

// Snapshot returns the current frame without advancing anything.
func (s *Session) Snapshot(now time.Time) Frame { return s.snapshot(now) }

// Tick advances the session one frame. Edge commands are dispatched to the
// current phase first. The Playing simulation only advances when that
// dispatch left the phase unchanged, so a transition consumes its tick.
func (s *Session) Tick(now time.Time, in Input) (Frame, error) {
	s.tick++
	s.collision = NoCollision
	s.claimed = false
	s.contact = false

	if in.Pressed.Has(Quit) {
		return s.snapshot(now), ErrExit
	}

	before := s.phase
	if err := s.dispatch(now, in.Pressed); err != nil {
		return s.snapshot(now), err
	}
	if s.phase == Playing && before == Playing {
		s.update(now, in.Held)
	}
	return s.snapshot(now), nil
}

func (s *Session) dispatch(now time.Time, pressed Command) error {
	switch s.phase {
	case MainMenu:
		switch {
		case pressed.Has(MoveUp):
			s.menuSel = MenuItem(cycle(int(s.menuSel), -1, int(menuItemCount)))
		case pressed.Has(MoveDown):
			s.menuSel = MenuItem(cycle(int(s.menuSel), 1, int(menuItemCount)))
		case pressed.Has(Confirm):
			switch s.menuSel {
			case MenuStart:
				s.start()
			case MenuInstructions:
				s.setPhase(InstructionsDetail)
			case MenuExit:
				return ErrExit
			}
		}

	case InstructionsDetail:
		if pressed.Has(Cancel) {
			s.setPhase(MainMenu)
		}

	case Playing:
		if pressed.Has(Cancel) {
			s.pauseSel = PauseResume
			s.pausedAt = now
			s.setPhase(Paused)
			return nil
		}
		if pressed.Has(TogglePush) {
			s.togglePush()
		}

	case Paused:
		switch {
		case pressed.Has(MoveUp):
			s.pauseSel = PauseItem(cycle(int(s.pauseSel), -1, int(pauseItemCount)))
		case pressed.Has(MoveDown):
			s.pauseSel = PauseItem(cycle(int(s.pauseSel), 1, int(pauseItemCount)))
		case pressed.Has(Confirm):
			switch s.pauseSel {
			case PauseResume:
				s.resume(now)
			case PauseMainMenu:
				s.setPhase(MainMenu)
			case PauseExit:
				return ErrExit
			}
		case pressed.Has(Cancel):
			s.resume(now)
		}

	case EndGame:
		switch {
		case pressed.Has(Confirm):
			s.start()
		case pressed.Has(Cancel):
			return ErrExit
		}
	}
	return nil
}

func (s *Session) start() {
	s.Reset()
	s.log.Add(s.tick, "phase", "reset", fmt.Sprintf("lives=%d total_area=%.0f", s.player.Lives, s.coverage.Total()), 0)
	s.setPhase(Playing)
}

func (s *Session) resume(now time.Time) {
	if s.freezeTimers {
		d := now.Sub(s.pausedAt)
		s.player.invulnerable.Shift(d)
		s.coverage.shift(d)
	}
	s.setPhase(Playing)
}

func (s *Session) setPhase(p Phase) {
	if p == s.phase {
		return
	}
	s.log.Add(s.tick, "phase", "change", fmt.Sprintf("%s → %s", s.phase, p), float64(p))
	s.phase = p
}

func (s *Session) togglePush() {
	wasDrawing := s.player.Mode == Drawing
	points := len(s.player.Path)
	area, claimed := s.player.TogglePush()
	switch {
	case claimed:
		s.areas = append(s.areas, area)
		s.claimed = true
		s.stats.Claims++
		a := PolygonArea(area)
		s.log.Add(s.tick, "territory", "claimed", fmt.Sprintf("%d pts area=%.0f", len(area), a), a)
	case wasDrawing:
		s.stats.Discarded++
		s.log.Add(s.tick, "territory", "discarded", fmt.Sprintf("%d pts", points), float64(points))
	}
	if s.player.Mode == Drawing {
		s.log.Add(s.tick, "player", "push_on", s.player.Pos.String(), 0)
	} else {
		s.log.Add(s.tick, "player", "push_off", s.player.Pos.String(), 0)
	}
}

// update runs one Playing tick: end checks, then player, enemies, collisions
// and coverage in that order.
func (s *Session) update(now time.Time, held Command) {
	if s.player.Lives <= 0 {
		s.setPhase(EndGame)
		return
	}
	if s.coverage.Passed() && s.coverage.PassedFor(now) >= s.cfg.LevelPassDuration {
		s.setPhase(MainMenu)
		return
	}
	s.stats.Ticks++

	if s.player.Move(held) {
		s.log.AddVerbose(s.tick, "move", "player", s.player.Pos.String(), 0)
	}
	for _, pe := range s.patrols {
		pe.Step()
	}
	s.roaming.Step()

	result, idx := resolvePatrolCollisions(s.player, s.patrols, s.cfg, now)
	s.collision = result
	switch result {
	case LifeLost:
		s.stats.LivesLost++
		s.log.Add(s.tick, "life", "lost", fmt.Sprintf("patrol=%d lives=%d", idx, s.player.Lives), float64(s.player.Lives))
	case ShieldExpired:
		s.log.Add(s.tick, "life", "invulnerable_end", "", 0)
	}

	s.contact = roamingContact(s.player, s.roaming)
	if s.contact && !s.touching {
		s.stats.RoamingContacts++
		s.log.Add(s.tick, "roaming", "contact", s.roaming.Pos.String(), 0)
	}
	s.touching = s.contact

	percent, newly := s.coverage.Update(s.areas, now)
	if newly {
		s.stats.LevelPassTick = s.tick
		s.log.Add(s.tick, "coverage", "level_passed", fmt.Sprintf("%.2f%%", percent), percent)
	}
}
