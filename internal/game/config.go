package game

import (
	"errors"
	"fmt"
	"time"
)

// TickRate is the fixed simulation rate the frontends drive Tick at.
const TickRate = 60

// FrameDuration is the wall-clock length of one tick at TickRate.
const FrameDuration = time.Second / TickRate

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable the simulation depends on. All distances are in
// arena pixels, speeds in pixels per tick.
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64

	// Border margins between the arena edge and the border line the player
	// travels on.
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	// BorderThickness is the drawn border width. Only the vertical extent of
	// the playable area loses it, twice, when computing total area.
	BorderThickness float64

	PlayerWidth  float64
	PlayerHeight float64
	Speed        float64

	StartingLives           int
	InvulnerabilityDuration time.Duration
	LevelPassDuration       time.Duration
	WinThreshold            float64 // percent
	BlinkRate               float64 // blinks per second while invulnerable

	PatrolSpeed        float64
	PatrolHalfExtent   float64 // half side of the patrol enemy's hit box
	PatrolHazardRadius float64 // circle tested against the drawn path

	RoamingSpeed  float64
	RoamingRadius float64
}

// DefaultConfig returns the classic 700x700 arena tuning.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:  700,
		ArenaHeight: 700,

		MarginLeft:      50,
		MarginRight:     50,
		MarginTop:       20,
		MarginBottom:    50,
		BorderThickness: 10,

		PlayerWidth:  10,
		PlayerHeight: 10,
		Speed:        5,

		StartingLives:           3,
		InvulnerabilityDuration: 2 * time.Second,
		LevelPassDuration:       2 * time.Second,
		WinThreshold:            20,
		BlinkRate:               10,

		PatrolSpeed:        5,
		PatrolHalfExtent:   7,
		PatrolHazardRadius: 7,

		RoamingSpeed:  3,
		RoamingRadius: 14,
	}
}

// Validate reports the first setting that would leave the simulation
// without a playable interior or with a stalled clock.
func (c Config) Validate() error {
	switch {
	case c.ArenaWidth <= 0 || c.ArenaHeight <= 0:
		return fmt.Errorf("game: arena %vx%v: %w", c.ArenaWidth, c.ArenaHeight, ErrInvalidConfig)
	case c.MarginLeft < 0 || c.MarginRight < 0 || c.MarginTop < 0 || c.MarginBottom < 0 || c.BorderThickness < 0:
		return fmt.Errorf("game: negative margin: %w", ErrInvalidConfig)
	case c.PlayerWidth <= 0 || c.PlayerHeight <= 0:
		return fmt.Errorf("game: player size %vx%v: %w", c.PlayerWidth, c.PlayerHeight, ErrInvalidConfig)
	case c.Speed <= 0 || c.PatrolSpeed <= 0 || c.RoamingSpeed <= 0:
		return fmt.Errorf("game: speeds must be positive: %w", ErrInvalidConfig)
	case c.StartingLives <= 0:
		return fmt.Errorf("game: starting lives %d: %w", c.StartingLives, ErrInvalidConfig)
	case c.InvulnerabilityDuration < 0 || c.LevelPassDuration < 0:
		return fmt.Errorf("game: negative duration: %w", ErrInvalidConfig)
	case c.WinThreshold <= 0 || c.WinThreshold > 100:
		return fmt.Errorf("game: win threshold %v%%: %w", c.WinThreshold, ErrInvalidConfig)
	case c.BlinkRate < 0:
		return fmt.Errorf("game: blink rate %v: %w", c.BlinkRate, ErrInvalidConfig)
	case c.PatrolHalfExtent < 0 || c.PatrolHazardRadius < 0 || c.RoamingRadius < 0:
		return fmt.Errorf("game: negative enemy size: %w", ErrInvalidConfig)
	}
	b := c.Bounds()
	if b.MaxX <= b.MinX || b.MaxY <= b.MinY {
		return fmt.Errorf("game: margins leave no room for the player: %w", ErrInvalidConfig)
	}
	return nil
}

// Bounds is the inner rectangle the player's top-left corner is clamped to.
// The border lines the player travels on are its four edges.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Bounds derives the player clamp rectangle from the margins and player size.
func (c Config) Bounds() Bounds {
	return Bounds{
		MinX: c.MarginLeft,
		MinY: c.MarginTop,
		MaxX: c.ArenaWidth - c.PlayerWidth - c.MarginRight,
		MaxY: c.ArenaHeight - c.PlayerHeight - c.MarginBottom,
	}
}

// Perimeter returns the border corners clockwise from the top-left. The
// patrol enemy cycles through them.
func (c Config) Perimeter() []Point {
	left, top := c.MarginLeft, c.MarginTop
	right, bottom := c.ArenaWidth-c.MarginRight, c.ArenaHeight-c.MarginBottom
	return []Point{
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}
}

// RoamingBounds is the box the roaming enemy's center reflects inside.
func (c Config) RoamingBounds() Bounds {
	return Bounds{
		MinX: c.MarginLeft,
		MinY: c.MarginTop,
		MaxX: c.ArenaWidth - c.MarginRight,
		MaxY: c.ArenaHeight - c.MarginBottom,
	}
}

// TotalArea is the playable interior used as the coverage denominator.
func (c Config) TotalArea() float64 {
	w := c.ArenaWidth - c.MarginLeft - c.MarginRight
	h := c.ArenaHeight - c.MarginTop - c.MarginBottom - 2*c.BorderThickness
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// StartPosition is where the player spawns and respawns: horizontally
// centered on the bottom border line, clamped into Bounds.
func (c Config) StartPosition() Point {
	b := c.Bounds()
	return Point{X: min(max(c.ArenaWidth/2, b.MinX), b.MaxX), Y: b.MaxY}
}

// RoamingStart is the arena center, clamped into RoamingBounds.
func (c Config) RoamingStart() Point {
	b := c.RoamingBounds()
	return Point{
		X: min(max(c.ArenaWidth/2, b.MinX), b.MaxX),
		Y: min(max(c.ArenaHeight/2, b.MinY), b.MaxY),
	}
}
