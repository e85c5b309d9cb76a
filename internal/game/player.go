package game

import "time"

// Mode is the player's capture mode.
type Mode int

const (
	// Idle players travel the border only.
	Idle Mode = iota
	// Drawing players move freely and leave a trail.
	Drawing
)

func (m Mode) String() string {
	if m == Drawing {
		return "drawing"
	}
	return "idle"
}

// Player is the marker the user steers.
type Player struct {
	Pos    Point // top-left corner
	Width  float64
	Height float64
	Mode   Mode
	Path   []Point
	Lives  int

	invulnerable Timer
	speed        float64
	bounds       Bounds
	start        Point
}

func newPlayer(cfg Config) *Player {
	start := cfg.StartPosition()
	return &Player{
		Pos:          start,
		Width:        cfg.PlayerWidth,
		Height:       cfg.PlayerHeight,
		Lives:        cfg.StartingLives,
		invulnerable: NewTimer(cfg.InvulnerabilityDuration),
		speed:        cfg.Speed,
		bounds:       cfg.Bounds(),
		start:        start,
	}
}

// Center is the point the trail is recorded at. Half sizes are truncated to
// whole pixels so trail points stay on the integer grid.
func (p *Player) Center() Point {
	return p.Pos.Add(float64(int(p.Width)/2), float64(int(p.Height)/2))
}

// Box is the player's hit box.
func (p *Player) Box() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// Invulnerable reports whether the post-hit grace window is running.
func (p *Player) Invulnerable() bool { return p.invulnerable.Active() }

// TogglePush flips between Idle and Drawing. Leaving Drawing with at least
// three trail points returns them as a new territory polygon. The trail is
// cleared either way.
func (p *Player) TogglePush() (area []Point, claimed bool) {
	if p.Mode == Drawing {
		if len(p.Path) >= 3 {
			area = make([]Point, len(p.Path))
			copy(area, p.Path)
			claimed = true
		}
		p.Mode = Idle
	} else {
		p.Mode = Drawing
	}
	p.Path = nil
	return area, claimed
}

// Move advances the player one tick for the held directions and reports
// whether the position changed.
func (p *Player) Move(held Command) bool {
	before := p.Pos
	if p.Mode == Drawing {
		p.moveFree(held)
	} else {
		p.moveAlongBorder(held)
	}
	return p.Pos != before
}

func (p *Player) moveFree(held Command) {
	vertical := held.Has(MoveUp) || held.Has(MoveDown)
	horizontal := held.Has(MoveLeft) || held.Has(MoveRight)
	b := p.bounds
	before := p.Pos

	switch {
	case held.Has(MoveLeft) && !vertical:
		p.Pos.X = max(b.MinX, p.Pos.X-p.speed)
	case held.Has(MoveRight) && !vertical:
		p.Pos.X = min(b.MaxX, p.Pos.X+p.speed)
	case held.Has(MoveUp) && !horizontal:
		p.Pos.Y = max(b.MinY, p.Pos.Y-p.speed)
	case held.Has(MoveDown) && !horizontal:
		p.Pos.Y = min(b.MaxY, p.Pos.Y+p.speed)
	}
	if p.Pos != before {
		p.Path = append(p.Path, p.Center())
	}
}

func (p *Player) moveAlongBorder(held Command) {
	b := p.bounds
	onHorizontal := p.Pos.Y == b.MinY || p.Pos.Y == b.MaxY
	onVertical := p.Pos.X == b.MinX || p.Pos.X == b.MaxX

	switch {
	case held.Has(MoveLeft) && onHorizontal:
		p.Pos.X = max(b.MinX, p.Pos.X-p.speed)
	case held.Has(MoveRight) && onHorizontal:
		p.Pos.X = min(b.MaxX, p.Pos.X+p.speed)
	case held.Has(MoveUp) && onVertical:
		p.Pos.Y = max(b.MinY, p.Pos.Y-p.speed)
	case held.Has(MoveDown) && onVertical:
		p.Pos.Y = min(b.MaxY, p.Pos.Y+p.speed)
	}
}

// hit costs a life and respawns the player at the start position with a
// fresh grace window.
func (p *Player) hit(now time.Time) {
	if p.Lives > 0 {
		p.Lives--
	}
	p.Pos = p.start
	p.Mode = Idle
	p.Path = nil
	p.invulnerable.Start(now)
}
