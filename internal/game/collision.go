package game

import "time"

// CollisionResult is the outcome of one tick's patrol collision pass.
type CollisionResult int

const (
	NoCollision CollisionResult = iota
	// Shielded means checks were skipped because the player is invulnerable.
	Shielded
	// ShieldExpired means invulnerability ended this tick; checks were still
	// skipped.
	ShieldExpired
	// LifeLost means a patrol caught the trail and the player respawned.
	LifeLost
)

func (r CollisionResult) String() string {
	switch r {
	case Shielded:
		return "shielded"
	case ShieldExpired:
		return "shield_expired"
	case LifeLost:
		return "life_lost"
	}
	return "none"
}

// resolvePatrolCollisions runs the life-loss rules against every patrol and
// stops at the first hit, so at most one life goes per tick. It returns the
// index of the patrol that hit, or -1.
func resolvePatrolCollisions(p *Player, patrols []*PatrolEnemy, cfg Config, now time.Time) (CollisionResult, int) {
	if p.invulnerable.Active() {
		if p.invulnerable.Expire(now) {
			return ShieldExpired, -1
		}
		return Shielded, -1
	}

	box := p.Box()
	for i, pe := range patrols {
		if !box.Intersects(RectAround(pe.Pos, cfg.PatrolHalfExtent)) {
			continue
		}
		if p.Mode != Drawing {
			continue
		}
		if PathIntersectsCircle(p.Path, pe.Pos, cfg.PatrolHazardRadius) {
			p.hit(now)
			return LifeLost, i
		}
	}
	return NoCollision, -1
}

// roamingContact reports whether the roaming enemy's circle touches the
// player's box or, while drawing, the trail. Contact is surfaced to the
// frontends but never costs a life.
func roamingContact(p *Player, re *RoamingEnemy) bool {
	box := p.Box()
	nx := min(max(re.Pos.X, box.X), box.X+box.W)
	ny := min(max(re.Pos.Y, box.Y), box.Y+box.H)
	dx, dy := re.Pos.X-nx, re.Pos.Y-ny
	if dx*dx+dy*dy <= re.Radius*re.Radius {
		return true
	}
	return p.Mode == Drawing && PathIntersectsCircle(p.Path, re.Pos, re.Radius)
}
