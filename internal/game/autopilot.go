package game

import "math"

type autoStep struct {
	in    Input
	ticks int
}

// Autopilot replays a fixed input script one tick at a time. It drives the
// headless report and long-running tests.
type Autopilot struct {
	steps []autoStep
	idx   int
	used  int
}

// Next returns the input for the coming tick. Once the script is exhausted
// it returns an empty Input.
func (a *Autopilot) Next() Input {
	for a.idx < len(a.steps) {
		st := &a.steps[a.idx]
		if a.used < st.ticks {
			a.used++
			return st.in
		}
		a.idx++
		a.used = 0
	}
	return Input{}
}

// Done reports whether the script has run out.
func (a *Autopilot) Done() bool {
	return a.idx >= len(a.steps)
}

func (a *Autopilot) hold(c Command, ticks int) {
	if ticks > 0 {
		a.steps = append(a.steps, autoStep{in: Hold(c), ticks: ticks})
	}
}

func (a *Autopilot) press(c Command) {
	a.steps = append(a.steps, autoStep{in: Press(c), ticks: 1})
}

func (a *Autopilot) wait(ticks int) {
	if ticks > 0 {
		a.steps = append(a.steps, autoStep{ticks: ticks})
	}
}

// IdleAutopilot starts a game from the main menu and then does nothing.
func IdleAutopilot() *Autopilot {
	a := &Autopilot{}
	a.press(Confirm)
	return a
}

// ClaimRectanglesAutopilot starts a game, runs to the bottom-left corner and
// then claims count rectangles of roughly w by h pixels, each one drawn up,
// across and back down to the bottom border.
func ClaimRectanglesAutopilot(cfg Config, w, h float64, count int) *Autopilot {
	steps := func(d float64) int {
		return int(math.Round(d / cfg.Speed))
	}
	a := &Autopilot{}
	a.press(Confirm)
	a.hold(MoveLeft, steps(cfg.StartPosition().X-cfg.Bounds().MinX))
	for i := 0; i < count; i++ {
		a.press(TogglePush)
		a.hold(MoveUp, steps(h))
		a.hold(MoveRight, steps(w))
		a.hold(MoveDown, steps(h))
		a.press(TogglePush)
		a.wait(1)
		a.hold(MoveRight, 1)
	}
	return a
}
