package game

import (
	"fmt"
	"time"
)

// TestSim is a headless harness around a Session with a fake clock that
// advances one frame per tick. Tests and the headless report use it; it has
// no frontend dependency.
type TestSim struct {
	Session *Session
	SimLog  *SimLog
	Frame   Frame
	Err     error

	now time.Time
}

type simSetup struct {
	cfg     Config
	start   time.Time
	verbose bool
	opts    []SessionOption
}

// SimOption configures a TestSim.
type SimOption func(*simSetup)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) SimOption {
	return func(s *simSetup) { s.cfg = cfg }
}

// WithStartTime sets the fake clock's initial reading.
func WithStartTime(t time.Time) SimOption {
	return func(s *simSetup) { s.start = t }
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return func(s *simSetup) { s.verbose = v }
}

// WithSessionOptions forwards options to NewSession.
func WithSessionOptions(opts ...SessionOption) SimOption {
	return func(s *simSetup) { s.opts = append(s.opts, opts...) }
}

// NewTestSim builds a seeded session on the main menu. It panics on an
// invalid config since it only runs under tests and tooling.
func NewTestSim(opts ...SimOption) *TestSim {
	setup := simSetup{
		cfg:   DefaultConfig(),
		start: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, o := range opts {
		o(&setup)
	}
	log := NewSimLog(setup.verbose)
	sessOpts := append([]SessionOption{WithSeed(1), WithSimLog(log)}, setup.opts...)
	s, err := NewSession(setup.cfg, sessOpts...)
	if err != nil {
		panic(fmt.Sprintf("test harness: %v", err))
	}
	ts := &TestSim{Session: s, SimLog: log, now: setup.start}
	ts.Frame = s.Snapshot(ts.now)
	return ts
}

// Now returns the fake clock reading.
func (ts *TestSim) Now() time.Time { return ts.now }

// Advance moves the fake clock without ticking.
func (ts *TestSim) Advance(d time.Duration) { ts.now = ts.now.Add(d) }

// Step advances the clock one frame and ticks once with in.
func (ts *TestSim) Step(in Input) Frame {
	ts.now = ts.now.Add(FrameDuration)
	ts.Frame, ts.Err = ts.Session.Tick(ts.now, in)
	return ts.Frame
}

// Press ticks once with c pressed.
func (ts *TestSim) Press(c Command) Frame { return ts.Step(Press(c)) }

// Hold ticks n times with c held.
func (ts *TestSim) Hold(c Command, n int) Frame {
	for i := 0; i < n; i++ {
		ts.Step(Hold(c))
	}
	return ts.Frame
}

// RunTicks ticks n times with no input.
func (ts *TestSim) RunTicks(n int) Frame {
	for i := 0; i < n; i++ {
		ts.Step(Input{})
	}
	return ts.Frame
}

// Start confirms the main menu's default selection.
func (ts *TestSim) Start() Frame { return ts.Press(Confirm) }

// RunAutopilot feeds a's script until it runs out, the session errors, or
// maxTicks is reached, and returns the number of ticks run.
func (ts *TestSim) RunAutopilot(a *Autopilot, maxTicks int) int {
	n := 0
	for n < maxTicks && !a.Done() {
		ts.Step(a.Next())
		n++
		if ts.Err != nil {
			break
		}
	}
	return n
}
