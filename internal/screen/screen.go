// Package screen is the ebiten frontend. It turns keyboard state into
// game.Input, ticks the session once per frame and draws the returned
// Frame.
package screen

import (
	"errors"
	"log"
	"time"

	"github.com/Garsondee/mqix/internal/game"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// statusTicks is how long a status line stays on screen.
const statusTicks = 2 * game.TickRate

// Game implements ebiten.Game over a game.Session.
type Game struct {
	session *game.Session
	frame   game.Frame

	prevKeys map[ebiten.Key]bool
	face     text.Face

	// Status line shown after copying the summary.
	status      string
	statusUntil int

	showDebug bool
}

// New wraps s. The session should be sitting on the main menu.
func New(s *game.Session) *Game {
	return &Game{
		session:  s,
		frame:    s.Snapshot(time.Now()),
		prevKeys: make(map[ebiten.Key]bool),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update ticks the session with this frame's input.
func (g *Game) Update() error {
	cur := pollKeys()
	in := inputFromKeys(cur, g.prevKeys)
	g.prevKeys = cur
	if ebiten.IsWindowBeingClosed() {
		in.Pressed |= game.Quit
	}

	f, err := g.session.Tick(time.Now(), in)
	g.frame = f
	if errors.Is(err, game.ErrExit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && (f.Phase == game.Paused || f.Phase == game.EndGame) {
		g.copySummary()
	}
	return nil
}

func (g *Game) copySummary() {
	summary := game.FormatSummary(g.session.Summary())
	if err := clipboard.WriteAll(summary); err != nil {
		log.Printf("clipboard: %v", err)
		g.setStatus("copy failed")
		return
	}
	g.setStatus("summary copied")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusUntil = g.frame.Tick + statusTicks
}

// Draw renders the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.session.Config()
	f := g.frame
	switch f.Phase {
	case game.MainMenu:
		g.drawMainMenu(screen, f)
	case game.InstructionsDetail:
		g.drawInstructions(screen, cfg)
	case game.Playing:
		g.drawPlay(screen, cfg, f)
	case game.Paused:
		g.drawPause(screen, f)
	case game.EndGame:
		g.drawGameOver(screen, f)
	}
	if g.status != "" && f.Tick < g.statusUntil {
		g.drawStatus(screen, cfg)
	}
	if g.showDebug {
		g.drawDebug(screen, f)
	}
}

// Layout keeps the logical screen at the arena size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return int(cfg.ArenaWidth), int(cfg.ArenaHeight)
}
