package screen

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/Garsondee/mqix/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colBlack     = color.RGBA{A: 255}
	colWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colYellow    = color.RGBA{R: 255, G: 255, A: 255}
	colRed       = color.RGBA{R: 255, A: 255}
	colGray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colGreen     = color.RGBA{G: 128, A: 255}
	colBright    = color.RGBA{G: 255, A: 255}
	colTerritory = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	colPatrol    = color.RGBA{R: 255, G: 165, A: 255}
	colRoaming   = color.RGBA{R: 128, B: 128, A: 255}
	colPanel     = color.RGBA{R: 200, G: 200, B: 200, A: 180}
)

// Text scales relative to the 7x13 base face.
const (
	titleScale = 4
	itemScale  = 2
	bodyScale  = 1
	lineHeight = 13
)

func (g *Game) textWidth(s string, scale float64) float64 {
	return text.Advance(s, g.face) * scale
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawCentered(dst *ebiten.Image, s string, y, scale float64, clr color.Color) {
	w := float64(dst.Bounds().Dx())
	g.drawText(dst, s, (w-g.textWidth(s, scale))/2, y, scale, clr)
}

// drawList draws centered menu items, highlighting selected.
func (g *Game) drawList(dst *ebiten.Image, items []string, selected int, top float64) {
	for i, item := range items {
		clr := color.Color(colWhite)
		if i == selected {
			clr = colYellow
		}
		g.drawCentered(dst, item, top+float64(i)*50, itemScale, clr)
	}
}

func (g *Game) drawMainMenu(dst *ebiten.Image, f game.Frame) {
	dst.Fill(colBlack)
	g.drawCentered(dst, game.Title, 180, titleScale, colWhite)
	items := make([]string, 0, 3)
	for _, m := range game.MenuItems() {
		items = append(items, m.String())
	}
	g.drawList(dst, items, int(f.MenuSelection), 290)
}

func (g *Game) drawInstructions(dst *ebiten.Image, cfg game.Config) {
	dst.Fill(colBlack)
	g.drawCentered(dst, "How to Play", 50, itemScale+1, colWhite)
	for i, line := range game.InstructionLines(cfg.WinThreshold) {
		clr := color.Color(colWhite)
		if strings.HasSuffix(line, ":") {
			clr = colYellow
		}
		g.drawText(dst, line, 50, 130+float64(i)*24, bodyScale+0.4, clr)
	}
}

func (g *Game) drawPause(dst *ebiten.Image, f game.Frame) {
	dst.Fill(colBlack)
	g.drawCentered(dst, "PAUSED", 180, titleScale, colWhite)
	items := make([]string, 0, 3)
	for _, p := range game.PauseItems() {
		items = append(items, p.String())
	}
	g.drawList(dst, items, int(f.PauseSelection), 290)
	g.drawCentered(dst, "C = copy session summary", 480, bodyScale, colGray)
}

func (g *Game) drawGameOver(dst *ebiten.Image, f game.Frame) {
	dst.Fill(colWhite)
	g.drawCentered(dst, "GAME OVER", 180, titleScale, colRed)
	g.drawCentered(dst, fmt.Sprintf("Territory Covered: %.2f%%", f.Coverage), 250, itemScale, colBlack)
	g.drawCentered(dst, "Press ENTER to Restart", 300, itemScale, colBlack)
	g.drawCentered(dst, "Press ESC to Quit", 350, itemScale, colBlack)
	g.drawCentered(dst, "C = copy session summary", 420, bodyScale, colGray)
}

func (g *Game) drawPlay(dst *ebiten.Image, cfg game.Config, f game.Frame) {
	dst.Fill(colWhite)

	for _, area := range f.Areas {
		fillPolygon(dst, area, colTerritory)
	}

	// Border, drawn as a stroke centered on the playable rectangle's edge.
	bw := float32(cfg.BorderThickness)
	x := float32(cfg.MarginLeft) + bw/2
	y := float32(cfg.MarginTop) + bw/2
	w := float32(cfg.ArenaWidth-cfg.MarginLeft-cfg.MarginRight) - bw
	h := float32(cfg.ArenaHeight-cfg.MarginTop-cfg.MarginBottom) - bw
	vector.StrokeRect(dst, x, y, w, h, bw, colBlack, false)

	if f.Player.Mode == game.Drawing && len(f.Path) > 1 {
		for i := 0; i+1 < len(f.Path); i++ {
			a, b := f.Path[i], f.Path[i+1]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, colBright, true)
		}
	}

	pc := colRed
	if f.Player.Blink {
		pc = colGray
	}
	p := f.Player
	vector.FillRect(dst, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Width), float32(p.Height), pc, false)

	for _, pe := range f.Patrols {
		vector.FillCircle(dst, float32(pe.X), float32(pe.Y), float32(f.PatrolRadius), colPatrol, true)
	}
	vector.FillCircle(dst, float32(f.Roaming.X), float32(f.Roaming.Y), float32(f.RoamingRadius), colRoaming, true)

	g.drawPanel(dst, f)

	if f.ShowLevelPassed {
		g.drawCentered(dst, "Congrats! Level Passed!", float64(dst.Bounds().Dy())/2-50, itemScale+1, colBright)
	}
}

// drawPanel is the lives/territory panel in the top-right corner.
func (g *Game) drawPanel(dst *ebiten.Image, f game.Frame) {
	const panelW, panelH = 200, 150
	px := float32(dst.Bounds().Dx()) - panelW - 20
	py := float32(20)
	vector.FillRect(dst, px, py, panelW, panelH, colPanel, false)

	tx, ty := float64(px)+20, float64(py)+20
	g.drawText(dst, "Lives:", tx, ty, itemScale, colBlack)
	g.drawText(dst, fmt.Sprintf("%d", f.Player.Lives), tx+100, ty-6, titleScale-1, colRed)
	g.drawText(dst, "Territory:", tx, ty+50, bodyScale+0.5, colBlack)
	g.drawText(dst, fmt.Sprintf("%.2f%%", f.Coverage), tx+100, ty+50, bodyScale+0.5, colGreen)
	if f.Player.Invulnerable {
		g.drawText(dst, "Vulnerable in:", tx, ty+90, bodyScale+0.3, colBlack)
		g.drawText(dst, fmt.Sprintf("%.1fs", f.Player.InvulnerableRemaining.Seconds()), tx+110, ty+90, bodyScale+0.3, colRed)
	}
}

func (g *Game) drawStatus(dst *ebiten.Image, cfg game.Config) {
	y := cfg.ArenaHeight - cfg.MarginBottom/2 - lineHeight/2
	g.drawCentered(dst, g.status, y, bodyScale, colGray)
}

func (g *Game) drawDebug(dst *ebiten.Image, f game.Frame) {
	line := fmt.Sprintf("tick=%d phase=%s fps=%.0f tps=%.0f", f.Tick, f.Phase, ebiten.ActualFPS(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(dst, line, 4, dst.Bounds().Dy()-16)
}

// fillPolygon fills pts as a closed polygon with the nonzero rule.
func fillPolygon(dst *ebiten.Image, pts []game.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, &path, &vector.FillOptions{}, op)
}
