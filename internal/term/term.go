// Package term is a terminal frontend built on tcell. It scales the arena
// down to the character grid and drives the session from a ticker.
package term

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Garsondee/mqix/internal/game"
	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

// DefaultHoldTicks is how long one arrow key event keeps its direction held.
// Terminals report key repeats but never releases, so a held arrow is a
// stream of presses each extending the hold.
const DefaultHoldTicks = 8

const statusTicks = 2 * game.TickRate

const moveMask = game.MoveUp | game.MoveDown | game.MoveLeft | game.MoveRight

// Frontend renders a session to a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	session *game.Session
	frame   game.Frame

	holdTicks int
	held      game.Command
	holdLeft  int
	pressed   game.Command

	copyFn        func(string) error
	copyRequested bool
	status        string
	statusUntil   int
}

// Option configures a Frontend.
type Option func(*Frontend)

// WithHoldTicks overrides DefaultHoldTicks.
func WithHoldTicks(n int) Option {
	return func(f *Frontend) {
		if n > 0 {
			f.holdTicks = n
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(f *Frontend) { f.copyFn = fn }
}

// New binds s to an initialized screen.
func New(screen tcell.Screen, s *game.Session, opts ...Option) *Frontend {
	f := &Frontend{
		screen:    screen,
		session:   s,
		frame:     s.Snapshot(time.Now()),
		holdTicks: DefaultHoldTicks,
		copyFn:    clipboard.WriteAll,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Frame returns the last frame produced by Step.
func (f *Frontend) Frame() game.Frame { return f.frame }

// HandleEvent queues the commands carried by ev for the next Step.
func (f *Frontend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := commandFor(ev)
		if cmd&moveMask != 0 {
			// A new direction replaces the old one instead of forming a
			// diagonal the session would ignore.
			f.held = cmd
			f.holdLeft = f.holdTicks
		}
		f.pressed |= cmd
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			f.copyRequested = true
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

func commandFor(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.MoveUp
	case tcell.KeyDown:
		return game.MoveDown
	case tcell.KeyLeft:
		return game.MoveLeft
	case tcell.KeyRight:
		return game.MoveRight
	case tcell.KeyEnter:
		return game.Confirm
	case tcell.KeyEscape:
		return game.Cancel
	case tcell.KeyCtrlC:
		return game.Quit
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return game.TogglePush
		}
	}
	return 0
}

// Step ticks the session once with the queued input.
func (f *Frontend) Step(now time.Time) (game.Frame, error) {
	in := game.Input{Pressed: f.pressed}
	f.pressed = 0
	if f.holdLeft > 0 {
		in.Held = f.held
		f.holdLeft--
	}

	frame, err := f.session.Tick(now, in)
	f.frame = frame
	if f.copyRequested {
		f.copyRequested = false
		if frame.Phase == game.Paused || frame.Phase == game.EndGame {
			f.copySummary()
		}
	}
	return frame, err
}

func (f *Frontend) copySummary() {
	if err := f.copyFn(game.FormatSummary(f.session.Summary())); err != nil {
		log.Printf("clipboard: %v", err)
		f.setStatus("copy failed")
		return
	}
	f.setStatus("summary copied")
}

func (f *Frontend) setStatus(s string) {
	f.status = s
	f.statusUntil = f.frame.Tick + statusTicks
}

// Run polls events and ticks at game.TickRate until the player exits or ctx
// is cancelled. A requested exit returns nil. The caller owns Init and Fini.
func (f *Frontend) Run(ctx context.Context) error {
	ticker := time.NewTicker(game.FrameDuration)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			f.HandleEvent(ev)
		case now := <-ticker.C:
			_, err := f.Step(now)
			if errors.Is(err, game.ErrExit) {
				return nil
			}
			if err != nil {
				return err
			}
			f.Draw()
		}
	}
}
