package game

import (
	"testing"
	"time"
)

func newTestPlayer() *Player {
	return newPlayer(DefaultConfig())
}

func TestPlayer_StartsOnBottomBorder(t *testing.T) {
	p := newTestPlayer()
	if p.Pos != (Point{350, 640}) {
		t.Fatalf("start position = %v, want (350,640)", p.Pos)
	}
	if p.Lives != 3 || p.Mode != Idle || len(p.Path) != 0 || p.Invulnerable() {
		t.Fatalf("unexpected initial player state: %+v", p)
	}
}

func TestPlayer_IdleMovesOnlyAlongBorder(t *testing.T) {
	p := newTestPlayer()

	if p.Move(MoveUp) {
		t.Fatal("idle player off a vertical border line must not move vertically")
	}
	if !p.Move(MoveLeft) || p.Pos.X != 345 {
		t.Fatalf("idle player on the bottom line should slide left, at %v", p.Pos)
	}

	for i := 0; i < 100; i++ {
		p.Move(MoveLeft)
	}
	if p.Pos.X != 50 {
		t.Fatalf("left slide should clamp at 50, got %v", p.Pos.X)
	}
	if !p.Move(MoveUp) || p.Pos.Y != 635 {
		t.Fatalf("on the left line the player should climb, at %v", p.Pos)
	}
	if p.Move(MoveRight) {
		t.Fatal("off the top/bottom lines horizontal movement is not allowed")
	}
	if len(p.Path) != 0 {
		t.Fatal("idle movement must not leave a trail")
	}
}

func TestPlayer_DrawingRecordsCenters(t *testing.T) {
	p := newTestPlayer()
	p.TogglePush()
	if p.Mode != Drawing {
		t.Fatal("toggle should enter drawing mode")
	}

	p.Move(MoveUp)
	p.Move(MoveUp)
	p.Move(MoveLeft)
	want := []Point{{355, 640}, {355, 635}, {350, 635}}
	if len(p.Path) != len(want) {
		t.Fatalf("path = %v, want %v", p.Path, want)
	}
	for i := range want {
		if p.Path[i] != want[i] {
			t.Fatalf("path[%d] = %v, want %v", i, p.Path[i], want[i])
		}
	}
}

func TestPlayer_DiagonalInputSuppressed(t *testing.T) {
	p := newTestPlayer()
	p.TogglePush()
	before := p.Pos
	if p.Move(MoveUp | MoveLeft) {
		t.Fatal("diagonal input should not move the player")
	}
	if p.Pos != before || len(p.Path) != 0 {
		t.Fatalf("diagonal input changed state: pos=%v path=%v", p.Pos, p.Path)
	}
}

func TestPlayer_ClampedStepLeavesNoTrail(t *testing.T) {
	p := newTestPlayer()
	p.TogglePush()
	if p.Move(MoveDown) {
		t.Fatal("player on the bottom bound cannot move further down")
	}
	if len(p.Path) != 0 {
		t.Fatalf("clamped step added trail points: %v", p.Path)
	}
}

func TestPlayer_ToggleWithTwoPointsDiscards(t *testing.T) {
	p := newTestPlayer()
	p.TogglePush()
	p.Move(MoveUp)
	p.Move(MoveUp)
	area, claimed := p.TogglePush()
	if claimed || area != nil {
		t.Fatalf("two-point path should be discarded, got %v", area)
	}
	if p.Mode != Idle || len(p.Path) != 0 {
		t.Fatal("toggle off should reset mode and path")
	}
}

func TestPlayer_ToggleWithThreePointsClaims(t *testing.T) {
	p := newTestPlayer()
	p.TogglePush()
	p.Move(MoveUp)
	p.Move(MoveUp)
	p.Move(MoveUp)
	area, claimed := p.TogglePush()
	if !claimed || len(area) != 3 {
		t.Fatalf("three collinear points should still commit, got claimed=%v area=%v", claimed, area)
	}
	if len(p.Path) != 0 {
		t.Fatal("path must be cleared after commit")
	}
}

func TestPlayer_ToggleOnClearsPath(t *testing.T) {
	p := newTestPlayer()
	p.Path = []Point{{1, 1}, {2, 2}}
	p.TogglePush()
	if p.Mode != Drawing || len(p.Path) != 0 {
		t.Fatal("entering drawing mode starts a fresh path")
	}
}

func TestPlayer_HitNeverGoesNegative(t *testing.T) {
	p := newTestPlayer()
	now := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		p.hit(now)
	}
	if p.Lives != 0 {
		t.Fatalf("lives = %d, want floor of 0", p.Lives)
	}
}
