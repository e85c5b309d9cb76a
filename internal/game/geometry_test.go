package game

import (
	"math"
	"testing"
)

func TestPolygonArea_Rectangle(t *testing.T) {
	rect := []Point{{0, 0}, {10, 0}, {10, 5}, {0, 5}}
	if got := PolygonArea(rect); got != 50 {
		t.Fatalf("expected area 50, got %v", got)
	}
}

func TestPolygonArea_TranslationInvariant(t *testing.T) {
	tri := []Point{{1, 2}, {7, 3}, {4, 9}}
	moved := make([]Point, len(tri))
	for i, p := range tri {
		moved[i] = p.Add(100, -50)
	}
	a, b := PolygonArea(tri), PolygonArea(moved)
	if a != 19.5 {
		t.Fatalf("expected triangle area 19.5, got %v", a)
	}
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("translation changed area: %v vs %v", a, b)
	}
}

func TestPolygonArea_ReversalInvariant(t *testing.T) {
	poly := []Point{{0, 0}, {40, 0}, {40, 10}, {20, 30}, {0, 10}}
	rev := make([]Point, len(poly))
	for i := range poly {
		rev[i] = poly[len(poly)-1-i]
	}
	if PolygonArea(poly) != PolygonArea(rev) {
		t.Fatalf("reversal changed area: %v vs %v", PolygonArea(poly), PolygonArea(rev))
	}
}

func TestPolygonArea_Degenerate(t *testing.T) {
	if got := PolygonArea(nil); got != 0 {
		t.Fatalf("nil polygon area = %v, want 0", got)
	}
	if got := PolygonArea([]Point{{0, 0}, {10, 10}}); got != 0 {
		t.Fatalf("two-point polygon area = %v, want 0", got)
	}
	if got := PolygonArea([]Point{{0, 0}, {5, 0}, {10, 0}}); got != 0 {
		t.Fatalf("collinear polygon area = %v, want 0", got)
	}
}

func TestSegmentIntersectsCircle_CenterOnSegment(t *testing.T) {
	if !SegmentIntersectsCircle(Point{0, 0}, Point{10, 0}, Point{5, 0}, 0) {
		t.Fatal("circle centered on the segment should intersect")
	}
}

func TestSegmentIntersectsCircle_BeyondTolerance(t *testing.T) {
	if SegmentIntersectsCircle(Point{0, 0}, Point{10, 0}, Point{5, 10}, 5) {
		t.Fatal("distance 10 with radius 5 (+1) should not intersect")
	}
}

func TestSegmentIntersectsCircle_ToleranceBoundary(t *testing.T) {
	// Closest distance 6 equals radius 5 plus the one pixel tolerance.
	if !SegmentIntersectsCircle(Point{0, 0}, Point{10, 0}, Point{5, 6}, 5) {
		t.Fatal("distance equal to radius+1 should intersect")
	}
}

func TestSegmentIntersectsCircle_ClampsToEndpoint(t *testing.T) {
	// Center lies past the end of the segment; the projection clamps to (10,0).
	if !SegmentIntersectsCircle(Point{0, 0}, Point{10, 0}, Point{15, 0}, 4) {
		t.Fatal("endpoint within radius+1 should intersect")
	}
	if SegmentIntersectsCircle(Point{0, 0}, Point{10, 0}, Point{15, 0}, 3) {
		t.Fatal("endpoint beyond radius+1 should not intersect")
	}
}

func TestSegmentIntersectsCircle_ZeroLength(t *testing.T) {
	p := Point{3, 4}
	if !SegmentIntersectsCircle(p, p, Point{0, 0}, 4) {
		t.Fatal("point at distance 5 should be inside radius 4 (+1)")
	}
	if SegmentIntersectsCircle(p, p, Point{0, 0}, 3.9) {
		t.Fatal("point at distance 5 should be outside radius 3.9 (+1)")
	}
}

func TestPathIntersectsCircle_NeedsTwoPoints(t *testing.T) {
	if PathIntersectsCircle([]Point{{5, 5}}, Point{5, 5}, 10) {
		t.Fatal("a single point has no segment to intersect")
	}
	path := []Point{{0, 0}, {10, 0}, {10, 10}}
	if !PathIntersectsCircle(path, Point{10, 5}, 1) {
		t.Fatal("second segment passes through the circle")
	}
}

func TestCoveragePercentage_GuardsTotalArea(t *testing.T) {
	areas := [][]Point{{{0, 0}, {10, 0}, {10, 5}, {0, 5}}}
	if got := CoveragePercentage(areas, 0); got != 0 {
		t.Fatalf("zero total area should give 0%%, got %v", got)
	}
	if got := CoveragePercentage(areas, -10); got != 0 {
		t.Fatalf("negative total area should give 0%%, got %v", got)
	}
	if got := CoveragePercentage(areas, 200); got != 25 {
		t.Fatalf("expected 25%%, got %v", got)
	}
}

func TestRectIntersects_EdgeContactIsNotOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Fatal("boxes sharing an edge should not overlap")
	}
	if !a.Intersects(Rect{X: 9, Y: 9, W: 10, H: 10}) {
		t.Fatal("boxes sharing a corner pixel should overlap")
	}
	if !RectAround(Point{5, 5}, 7).Intersects(a) {
		t.Fatal("enclosing box should overlap")
	}
}

func TestPointInPolygon(t *testing.T) {
	sq := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !PointInPolygon(Point{5, 5}, sq) {
		t.Fatal("center should be inside")
	}
	if PointInPolygon(Point{15, 5}, sq) || PointInPolygon(Point{5, -1}, sq) {
		t.Fatal("outside points reported inside")
	}
	if PointInPolygon(Point{1, 1}, sq[:2]) {
		t.Fatal("degenerate polygon has no inside")
	}
}
