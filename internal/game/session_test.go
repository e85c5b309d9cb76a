package game

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestSession_FreshStart(t *testing.T) {
	ts := NewTestSim()
	if ts.Frame.Phase != MainMenu || ts.Frame.MenuSelection != MenuStart {
		t.Fatalf("new session should sit on the main menu at Start, got %v/%v", ts.Frame.Phase, ts.Frame.MenuSelection)
	}

	f := ts.Start()
	if f.Phase != Playing {
		t.Fatalf("confirming Start should begin play, got %v", f.Phase)
	}
	if f.Player.Lives != 3 || f.Coverage != 0 || len(f.Areas) != 0 {
		t.Fatalf("fresh game: lives=%d coverage=%v areas=%d", f.Player.Lives, f.Coverage, len(f.Areas))
	}
	if !ts.SimLog.HasEntry("phase", "change", "main_menu → playing") {
		t.Fatal("expected a phase change entry")
	}
}

func TestNewSession_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MarginLeft = 400
	cfg.MarginRight = 400
	_, err := NewSession(cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSession_MainMenuCyclesAndExits(t *testing.T) {
	ts := NewTestSim()
	f := ts.Press(MoveUp)
	if f.MenuSelection != MenuExit {
		t.Fatalf("up from Start should wrap to Exit, got %v", f.MenuSelection)
	}
	f = ts.Press(MoveDown)
	if f.MenuSelection != MenuStart {
		t.Fatalf("down from Exit should wrap to Start, got %v", f.MenuSelection)
	}
	ts.Press(MoveUp)
	ts.Press(Confirm)
	if !errors.Is(ts.Err, ErrExit) {
		t.Fatalf("confirming Exit should request exit, got %v", ts.Err)
	}
}

func TestSession_InstructionsRoundTrip(t *testing.T) {
	ts := NewTestSim()
	ts.Press(MoveDown)
	if f := ts.Press(Confirm); f.Phase != InstructionsDetail {
		t.Fatalf("expected instructions, got %v", f.Phase)
	}
	if f := ts.Press(Confirm); f.Phase != InstructionsDetail {
		t.Fatalf("confirm should do nothing on instructions, got %v", f.Phase)
	}
	if f := ts.Press(Cancel); f.Phase != MainMenu {
		t.Fatalf("cancel should return to the menu, got %v", f.Phase)
	}
}

func TestSession_QuitFromAnyPhase(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	ts.Press(Quit)
	if !errors.Is(ts.Err, ErrExit) {
		t.Fatalf("quit while playing should request exit, got %v", ts.Err)
	}
}

func TestSession_PauseMenu(t *testing.T) {
	ts := NewTestSim()
	ts.Start()

	f := ts.Press(Cancel)
	if f.Phase != Paused || f.PauseSelection != PauseResume {
		t.Fatalf("cancel should pause at Resume, got %v/%v", f.Phase, f.PauseSelection)
	}
	if f = ts.Press(Cancel); f.Phase != Playing {
		t.Fatalf("cancel on pause should resume, got %v", f.Phase)
	}

	ts.Press(Cancel)
	ts.Press(MoveDown)
	if f = ts.Press(Confirm); f.Phase != MainMenu {
		t.Fatalf("Main Menu item should return to the menu, got %v", f.Phase)
	}

	ts.Start()
	f = ts.Press(Cancel)
	if f.PauseSelection != PauseResume {
		t.Fatal("pausing again should reset the selection")
	}
	ts.Press(MoveUp)
	ts.Press(Confirm)
	if !errors.Is(ts.Err, ErrExit) {
		t.Fatalf("Exit Game should request exit, got %v", ts.Err)
	}
}

func TestSession_PauseResumePreservesSimulation(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	ts.Press(TogglePush)
	ts.Hold(MoveUp, 5)
	ts.Hold(MoveLeft, 3)
	before := ts.Frame

	ts.Press(Cancel)
	ts.RunTicks(30)
	after := ts.Press(Confirm)
	if after.Phase != Playing {
		t.Fatalf("expected to resume, got %v", after.Phase)
	}

	if after.Player.Pos != before.Player.Pos || after.Player.Mode != Drawing {
		t.Fatalf("player changed across pause: %v → %v", before.Player.Pos, after.Player.Pos)
	}
	if !reflect.DeepEqual(before.Path, after.Path) {
		t.Fatalf("path changed across pause:\n%v\n%v", before.Path, after.Path)
	}
	if !reflect.DeepEqual(before.Patrols, after.Patrols) || before.Roaming != after.Roaming {
		t.Fatal("enemies moved while paused")
	}
}

func TestSession_TwoPointPathDiscarded(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	ts.Press(TogglePush)
	ts.Hold(MoveUp, 2)
	f := ts.Press(TogglePush)
	if len(f.Areas) != 0 || f.Claimed {
		t.Fatalf("two-point path should not claim, areas=%d", len(f.Areas))
	}
	if ts.SimLog.CountCategory("territory", "discarded") != 1 {
		t.Fatal("expected a discarded entry")
	}
}

func TestSession_ToggleWithoutMovingDiscards(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	for i := 0; i < 6; i++ {
		ts.Press(TogglePush)
	}
	if len(ts.Frame.Areas) != 0 {
		t.Fatalf("zero-length paths must never claim, got %d areas", len(ts.Frame.Areas))
	}
}

func TestSession_ThreePointPathClaimsOnce(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	ts.Press(TogglePush)
	ts.Hold(MoveUp, 3)
	f := ts.Press(TogglePush)
	if len(f.Areas) != 1 || !f.Claimed {
		t.Fatalf("three points should claim exactly one area, got %d", len(f.Areas))
	}
	if len(f.Areas[0]) != 3 {
		t.Fatalf("claimed polygon has %d vertices, want 3", len(f.Areas[0]))
	}
	if f.Player.Mode != Idle || len(f.Path) != 0 {
		t.Fatal("claiming should return the player to idle with no trail")
	}
}

// parkPatrol pins the session's patrol on p so it stays put between ticks.
func parkPatrol(s *Session, p Point) {
	pe := s.Patrols()[0]
	pe.Pos = p
	pe.Waypoints = []Point{p}
	pe.Index = 0
}

// armTrap puts the player, drawing, right on top of the parked patrol.
func armTrap(s *Session) {
	pl := s.Player()
	pl.Pos = Point{350, 640}
	pl.Mode = Drawing
	pl.Path = []Point{{345, 645}, {365, 645}}
	parkPatrol(s, Point{355, 645})
}

func TestSession_DrawingHitLosesLifeAndRespawns(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	armTrap(ts.Session)

	f := ts.Step(Input{})
	if f.Collision != LifeLost {
		t.Fatalf("expected a life lost, got %v", f.Collision)
	}
	if f.Player.Lives != 2 {
		t.Fatalf("lives = %d, want 2", f.Player.Lives)
	}
	if f.Player.Pos != DefaultConfig().StartPosition() || f.Player.Mode != Idle || len(f.Path) != 0 {
		t.Fatalf("player should respawn idle at start, got %+v", f.Player)
	}
	if !f.Player.Invulnerable || f.Player.InvulnerableRemaining != 2*time.Second {
		t.Fatalf("expected a fresh 2s invulnerability window, got %v", f.Player.InvulnerableRemaining)
	}
	if ts.SimLog.CountCategory("life", "lost") != 1 {
		t.Fatal("expected one life lost entry")
	}
}

func TestSession_IdleOverlapIsHarmless(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	armTrap(ts.Session)
	ts.Session.Player().Mode = Idle

	f := ts.Step(Input{})
	if f.Collision != NoCollision || f.Player.Lives != 3 {
		t.Fatalf("idle overlap must be harmless, got %v lives=%d", f.Collision, f.Player.Lives)
	}
	if f.Player.Pos != (Point{350, 640}) {
		t.Fatalf("idle overlap must not reset the player, at %v", f.Player.Pos)
	}
}

func TestSession_InvulnerabilityExpiresOnWallClock(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	armTrap(ts.Session)
	ts.Step(Input{})

	if f := ts.RunTicks(110); !f.Player.Invulnerable {
		t.Fatal("still inside the 2s window after 110 frames")
	}
	if f := ts.RunTicks(15); f.Player.Invulnerable {
		t.Fatal("window should have closed after 125 frames")
	}
	if ts.SimLog.CountCategory("life", "invulnerable_end") != 1 {
		t.Fatal("expected one invulnerable_end entry")
	}
}

func TestSession_TimersRunDuringPauseByDefault(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	armTrap(ts.Session)
	ts.Step(Input{})

	ts.Press(Cancel)
	ts.Advance(10 * time.Second)
	ts.Press(Cancel)
	if f := ts.Step(Input{}); f.Player.Invulnerable {
		t.Fatal("wall-clock timer should have expired during the pause")
	}
}

func TestSession_FrozenTimersSurvivePause(t *testing.T) {
	ts := NewTestSim(WithSessionOptions(WithFreezeTimersOnPause(true)))
	ts.Start()
	armTrap(ts.Session)
	ts.Step(Input{})

	ts.Press(Cancel)
	ts.Advance(10 * time.Second)
	ts.Press(Cancel)
	f := ts.Step(Input{})
	if !f.Player.Invulnerable {
		t.Fatal("frozen timer should not expire while paused")
	}
	if f.Player.InvulnerableRemaining < time.Second {
		t.Fatalf("most of the window should remain, got %v", f.Player.InvulnerableRemaining)
	}
}

func TestSession_LastLifeEndsGameOnNextTick(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	ts.Session.Player().Lives = 1
	armTrap(ts.Session)

	f := ts.Step(Input{})
	if f.Player.Lives != 0 || f.Phase != Playing {
		t.Fatalf("the hit tick should stay in play, got lives=%d phase=%v", f.Player.Lives, f.Phase)
	}
	f = ts.Step(Input{})
	if f.Phase != EndGame {
		t.Fatalf("expected end game on the following tick, got %v", f.Phase)
	}
	if f.Player.Lives < 0 {
		t.Fatal("lives went negative")
	}

	f = ts.Press(Confirm)
	if f.Phase != Playing || f.Player.Lives != 3 {
		t.Fatalf("confirm on end game should restart, got %v lives=%d", f.Phase, f.Player.Lives)
	}

	ts.Session.Player().Lives = 0
	ts.Step(Input{})
	ts.Press(Cancel)
	if !errors.Is(ts.Err, ErrExit) {
		t.Fatalf("cancel on end game should exit, got %v", ts.Err)
	}
}

func TestSession_RoamingContactNeverCostsLife(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	parkPatrol(ts.Session, Point{50, 20})
	ts.Press(TogglePush)
	ts.Hold(MoveUp, 4)

	for i := 0; i < 30; i++ {
		ts.Session.Roaming().Pos = ts.Session.Player().Center()
		f := ts.Step(Input{})
		if !f.RoamingContact {
			t.Fatalf("tick %d: expected roaming contact", i)
		}
	}
	if ts.Frame.Player.Lives != 3 || ts.Frame.Player.Mode != Drawing {
		t.Fatalf("roaming contact must not cost a life, lives=%d", ts.Frame.Player.Lives)
	}
	if got := ts.Session.Summary().RoamingContacts; got != 1 {
		t.Fatalf("a continuous contact should count once, got %d", got)
	}
}

func tinyThresholdConfig() Config {
	cfg := DefaultConfig()
	cfg.WinThreshold = 0.001
	return cfg
}

// claimTriangle draws a right triangle of legs 5 off the bottom border.
func claimTriangle(ts *TestSim) Frame {
	ts.Press(TogglePush)
	ts.Hold(MoveUp, 2)
	ts.Hold(MoveLeft, 1)
	return ts.Press(TogglePush)
}

func TestSession_LevelPassLatchesAndReturnsToMenu(t *testing.T) {
	ts := NewTestSim(WithConfig(tinyThresholdConfig()))
	ts.Start()
	parkPatrol(ts.Session, Point{50, 20})

	f := claimTriangle(ts)
	if len(f.Areas) != 1 || PolygonArea(f.Areas[0]) != 12.5 {
		t.Fatalf("expected one 12.5 px² triangle, got %v", f.Areas)
	}
	if !f.LevelPassed || !f.ShowLevelPassed {
		t.Fatalf("reaching the threshold should latch the pass, got %+v", f)
	}
	if ts.SimLog.CountCategory("coverage", "level_passed") != 1 {
		t.Fatal("expected one level_passed entry")
	}

	if f = ts.RunTicks(110); f.Phase != Playing || !f.LevelPassed {
		t.Fatalf("banner should still be showing, got %v", f.Phase)
	}
	if f = ts.RunTicks(15); f.Phase != MainMenu {
		t.Fatalf("after the banner the game should return to the menu, got %v", f.Phase)
	}
	if !f.LevelPassed || len(f.Areas) != 1 {
		t.Fatal("territory is left unreset until the next Start")
	}

	f = ts.Start()
	if f.LevelPassed || len(f.Areas) != 0 || f.Coverage != 0 {
		t.Fatal("a new Start resets territory and the latch")
	}
}

func TestSession_CoverageMonotoneUnderAutopilot(t *testing.T) {
	cfg := DefaultConfig()
	ts := NewTestSim(WithConfig(cfg))
	a := ClaimRectanglesAutopilot(cfg, 100, 150, 6)

	prev := 0.0
	for !a.Done() && ts.Err == nil {
		f := ts.Step(a.Next())
		if f.Phase != Playing {
			continue
		}
		if f.Coverage < prev {
			t.Fatalf("tick %d: coverage dropped from %.3f to %.3f", f.Tick, prev, f.Coverage)
		}
		prev = f.Coverage
	}
	if ts.Session.Summary().Claims < 1 {
		t.Fatal("autopilot should claim at least one rectangle")
	}
	if first, ok := ts.SimLog.FirstOf("territory", "claimed"); !ok || first.NumVal < 14000 {
		t.Fatalf("first claim should be roughly 100x150, got %+v", first)
	}
}

func TestSession_FrameSlicesAreCopies(t *testing.T) {
	ts := NewTestSim()
	ts.Start()
	ts.Press(TogglePush)
	f := ts.Hold(MoveUp, 3)
	f.Path[0] = Point{-1, -1}
	if ts.Session.Player().Path[0] == (Point{-1, -1}) {
		t.Fatal("frame path aliases the live trail")
	}
}

func TestSession_VerboseLogRecordsMoves(t *testing.T) {
	ts := NewTestSim(WithVerbose(true), WithStartTime(time.Unix(0, 0)))
	ts.Start()
	ts.Hold(MoveLeft, 3)
	if got := ts.SimLog.CountCategory("move", "player"); got != 3 {
		t.Fatalf("expected 3 move entries, got %d", got)
	}
	if last, _ := ts.SimLog.LastOf("move", "player"); last.Value != "(335,640)" {
		t.Fatalf("last move = %q", last.Value)
	}
}
