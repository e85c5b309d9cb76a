package term

import (
	"fmt"
	"strings"

	"github.com/Garsondee/mqix/internal/game"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleDefault   = tcell.StyleDefault
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleSelected  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHint      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTerritory = tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
	stylePath      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBlink     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePatrol    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleRoaming   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleGameOver  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBanner    = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
)

// grid maps arena pixels onto the terminal. Row 0 is the status line.
type grid struct {
	cols, rows   int
	cellW, cellH float64
}

func newGrid(cfg game.Config, cols, rows int) grid {
	g := grid{cols: cols, rows: rows}
	if cols > 0 {
		g.cellW = cfg.ArenaWidth / float64(cols)
	}
	if rows > 1 {
		g.cellH = cfg.ArenaHeight / float64(rows-1)
	}
	return g
}

// cell returns the screen cell containing p.
func (g grid) cell(p game.Point) (int, int) {
	if g.cellW <= 0 || g.cellH <= 0 {
		return 0, 0
	}
	x := clamp(int(p.X/g.cellW), 0, g.cols-1)
	y := clamp(1+int(p.Y/g.cellH), 1, g.rows-1)
	return x, y
}

// center returns the arena point at the middle of screen cell (x, y).
func (g grid) center(x, y int) game.Point {
	return game.Point{X: (float64(x) + 0.5) * g.cellW, Y: (float64(y-1) + 0.5) * g.cellH}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draw renders the last frame and shows it.
func (f *Frontend) Draw() {
	f.screen.Clear()
	cfg := f.session.Config()
	fr := f.frame
	switch fr.Phase {
	case game.MainMenu:
		f.drawMenu(game.Title, menuLabels(), int(fr.MenuSelection))
	case game.InstructionsDetail:
		f.drawInstructions(cfg)
	case game.Playing:
		f.drawPlay(cfg, fr)
	case game.Paused:
		f.drawMenu("PAUSED", pauseLabels(), int(fr.PauseSelection))
		f.centerText(f.height()-2, "c = copy session summary", styleHint)
	case game.EndGame:
		f.drawGameOver(fr)
	}
	if f.status != "" && fr.Tick < f.statusUntil {
		f.centerText(f.height()-1, f.status, styleHint)
	}
	f.screen.Show()
}

func (f *Frontend) width() int {
	w, _ := f.screen.Size()
	return w
}

func (f *Frontend) height() int {
	_, h := f.screen.Size()
	return h
}

// putText writes s from column x and returns the column after it.
func (f *Frontend) putText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (f *Frontend) centerText(y int, s string, style tcell.Style) {
	x := (f.width() - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	f.putText(x, y, s, style)
}

func menuLabels() []string {
	var out []string
	for _, m := range game.MenuItems() {
		out = append(out, m.String())
	}
	return out
}

func pauseLabels() []string {
	var out []string
	for _, p := range game.PauseItems() {
		out = append(out, p.String())
	}
	return out
}

func (f *Frontend) drawMenu(title string, items []string, selected int) {
	top := f.height() / 3
	f.centerText(top, title, styleTitle)
	for i, item := range items {
		style := styleDefault
		label := "  " + item + "  "
		if i == selected {
			style = styleSelected
			label = "> " + item + " <"
		}
		f.centerText(top+2+i*2, label, style)
	}
}

func (f *Frontend) drawInstructions(cfg game.Config) {
	f.centerText(0, "How to Play", styleTitle)
	for i, line := range game.InstructionLines(cfg.WinThreshold) {
		style := styleDefault
		if strings.HasSuffix(line, ":") {
			style = styleSelected
		}
		f.putText(2, 1+i, line, style)
	}
}

func (f *Frontend) drawGameOver(fr game.Frame) {
	top := f.height() / 3
	f.centerText(top, "GAME OVER", styleGameOver)
	f.centerText(top+2, fmt.Sprintf("Territory Covered: %.2f%%", fr.Coverage), styleDefault)
	f.centerText(top+4, "Press ENTER to Restart", styleDefault)
	f.centerText(top+5, "Press ESC to Quit", styleDefault)
	f.centerText(top+7, "c = copy session summary", styleHint)
}

func (f *Frontend) drawPlay(cfg game.Config, fr game.Frame) {
	w, h := f.screen.Size()
	g := newGrid(cfg, w, h)

	// Territory first so everything else draws on top of it.
	if len(fr.Areas) > 0 {
		for y := 1; y < h; y++ {
			for x := 0; x < w; x++ {
				c := g.center(x, y)
				for _, area := range fr.Areas {
					if game.PointInPolygon(c, area) {
						f.screen.SetContent(x, y, '░', nil, styleTerritory)
						break
					}
				}
			}
		}
	}

	x0, y0 := g.cell(game.Point{X: cfg.MarginLeft, Y: cfg.MarginTop})
	x1, y1 := g.cell(game.Point{X: cfg.ArenaWidth - cfg.MarginRight, Y: cfg.ArenaHeight - cfg.MarginBottom})
	for x := x0; x <= x1; x++ {
		f.screen.SetContent(x, y0, '#', nil, styleBorder)
		f.screen.SetContent(x, y1, '#', nil, styleBorder)
	}
	for y := y0; y <= y1; y++ {
		f.screen.SetContent(x0, y, '#', nil, styleBorder)
		f.screen.SetContent(x1, y, '#', nil, styleBorder)
	}

	if fr.Player.Mode == game.Drawing {
		for _, p := range fr.Path {
			x, y := g.cell(p)
			f.screen.SetContent(x, y, '·', nil, stylePath)
		}
	}

	for _, pe := range fr.Patrols {
		x, y := g.cell(pe)
		f.screen.SetContent(x, y, 'o', nil, stylePatrol)
	}
	rx, ry := g.cell(fr.Roaming)
	f.screen.SetContent(rx, ry, 'Q', nil, styleRoaming)

	ps := stylePlayer
	if fr.Player.Blink {
		ps = styleBlink
	}
	px, py := g.cell(fr.Player.Center)
	f.screen.SetContent(px, py, '█', nil, ps)

	f.putText(0, 0, hudLine(fr), styleDefault)
	if fr.ShowLevelPassed {
		f.centerText(h/2, "Congrats! Level Passed!", styleBanner)
	}
}

// hudLine is the status row shown above the arena while playing.
func hudLine(fr game.Frame) string {
	s := fmt.Sprintf("Lives: %d  Territory: %.2f%%", fr.Player.Lives, fr.Coverage)
	if fr.Player.Invulnerable {
		s += fmt.Sprintf("  Vulnerable in: %.1fs", fr.Player.InvulnerableRemaining.Seconds())
	}
	if fr.Player.Mode == game.Drawing {
		s += "  [PUSH]"
	}
	return s
}
