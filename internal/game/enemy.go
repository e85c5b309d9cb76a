package game

import "math/rand"

// PatrolEnemy walks the border corners in a fixed cycle.
type PatrolEnemy struct {
	Pos       Point
	Waypoints []Point
	Index     int
	Speed     float64
}

// NewPatrolEnemy places a patrol on the first waypoint.
func NewPatrolEnemy(waypoints []Point, speed float64) *PatrolEnemy {
	wp := make([]Point, len(waypoints))
	copy(wp, waypoints)
	pe := &PatrolEnemy{Waypoints: wp, Speed: speed}
	if len(wp) > 0 {
		pe.Pos = wp[0]
	}
	return pe
}

// Target returns the waypoint the patrol is currently heading for.
func (pe *PatrolEnemy) Target() Point {
	return pe.Waypoints[pe.Index]
}

// Step moves the patrol one tick. Arriving on the target advances the index,
// and the patrol rests on that corner for the tick. Each axis closes on
// the target independently, so one may arrive before the other.
func (pe *PatrolEnemy) Step() {
	if len(pe.Waypoints) == 0 {
		return
	}
	target := pe.Target()
	if pe.Pos == target {
		pe.Index = (pe.Index + 1) % len(pe.Waypoints)
	}
	pe.Pos.X = approach(pe.Pos.X, target.X, pe.Speed)
	pe.Pos.Y = approach(pe.Pos.Y, target.Y, pe.Speed)
}

// approach moves v toward target by at most step without overshooting.
func approach(v, target, step float64) float64 {
	switch {
	case v < target:
		return min(target, v+step)
	case v > target:
		return max(target, v-step)
	}
	return v
}

// RoamingEnemy bounces around the interior with perfect reflection.
type RoamingEnemy struct {
	Pos    Point
	DX, DY float64
	Radius float64
	bounds Bounds
}

// NewRoamingEnemy starts at start with each velocity component's sign
// picked at random. It reflects inside bounds.
func NewRoamingEnemy(start Point, bounds Bounds, speed, radius float64, rng *rand.Rand) *RoamingEnemy {
	re := &RoamingEnemy{
		Pos:    start,
		DX:     speed,
		DY:     speed,
		Radius: radius,
		bounds: bounds,
	}
	if rng.Intn(2) == 0 {
		re.DX = -speed
	}
	if rng.Intn(2) == 0 {
		re.DY = -speed
	}
	return re
}

// Step integrates one tick and reflects off any bound reached or crossed.
func (re *RoamingEnemy) Step() {
	re.Pos.X += re.DX
	re.Pos.Y += re.DY
	if re.Pos.X <= re.bounds.MinX || re.Pos.X >= re.bounds.MaxX {
		re.DX = -re.DX
	}
	if re.Pos.Y <= re.bounds.MinY || re.Pos.Y >= re.bounds.MaxY {
		re.DY = -re.DY
	}
}
