package game

import "fmt"

// Point is an arena coordinate. X grows right, Y grows down.
type Point struct {
	X, Y float64
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.0f,%.0f)", p.X, p.Y)
}

// Rect is an axis-aligned box with its top-left corner at X, Y.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns the square box of the given half side centered on c.
func RectAround(c Point, half float64) Rect {
	return Rect{X: c.X - half, Y: c.Y - half, W: 2 * half, H: 2 * half}
}

// Intersects reports whether the two boxes overlap. Boxes that only share an
// edge do not.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.X+o.W || o.X >= r.X+r.W {
		return false
	}
	if r.Y >= o.Y+o.H || o.Y >= r.Y+r.H {
		return false
	}
	return true
}

// PolygonArea returns the unsigned shoelace area of poly. Fewer than three
// vertices enclose nothing.
func PolygonArea(poly []Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X * poly[j].Y
		area -= poly[j].X * poly[i].Y
	}
	if area < 0 {
		area = -area
	}
	return area / 2
}

// circleTolerance absorbs sampling slack between entities that each move
// several pixels per frame.
const circleTolerance = 1.0

// SegmentIntersectsCircle reports whether the segment p1-p2 passes within
// radius (plus a one pixel tolerance) of center.
func SegmentIntersectsCircle(p1, p2, center Point, radius float64) bool {
	r := radius + circleTolerance
	if p1 == p2 {
		dx, dy := center.X-p1.X, center.Y-p1.Y
		return dx*dx+dy*dy <= r*r
	}

	lx, ly := p2.X-p1.X, p2.Y-p1.Y
	cx, cy := center.X-p1.X, center.Y-p1.Y
	t := (cx*lx + cy*ly) / (lx*lx + ly*ly)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	dx := center.X - (p1.X + t*lx)
	dy := center.Y - (p1.Y + t*ly)
	return dx*dx+dy*dy <= r*r
}

// PathIntersectsCircle reports whether any segment of path touches the
// circle. Paths shorter than two points have no segments.
func PathIntersectsCircle(path []Point, center Point, radius float64) bool {
	for i := 0; i+1 < len(path); i++ {
		if SegmentIntersectsCircle(path[i], path[i+1], center, radius) {
			return true
		}
	}
	return false
}

// CoveragePercentage is the summed area of areas as a percentage of
// totalArea. A non-positive totalArea yields 0.
func CoveragePercentage(areas [][]Point, totalArea float64) float64 {
	if totalArea <= 0 {
		return 0
	}
	return 100 * coveredArea(areas) / totalArea
}

func coveredArea(areas [][]Point) float64 {
	sum := 0.0
	for _, a := range areas {
		sum += PolygonArea(a)
	}
	return sum
}

// PointInPolygon reports whether p lies inside poly using the even-odd
// rule. Frontends that cannot fill paths use it to rasterize territory.
func PointInPolygon(p Point, poly []Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
