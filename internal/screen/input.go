package screen

import (
	"github.com/Garsondee/mqix/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// binding maps one physical key to a game command.
type binding struct {
	key ebiten.Key
	cmd game.Command
}

var bindings = []binding{
	{ebiten.KeyArrowUp, game.MoveUp},
	{ebiten.KeyArrowDown, game.MoveDown},
	{ebiten.KeyArrowLeft, game.MoveLeft},
	{ebiten.KeyArrowRight, game.MoveRight},
	{ebiten.KeySpace, game.TogglePush},
	{ebiten.KeyEnter, game.Confirm},
	{ebiten.KeyNumpadEnter, game.Confirm},
	{ebiten.KeyEscape, game.Cancel},
}

// inputFromKeys builds a tick's input from this frame's and last frame's
// key state. A key counts as pressed only on the frame it goes down.
// Movement is always reported as held; the session applies it only while
// playing and reads presses for menu navigation.
func inputFromKeys(cur, prev map[ebiten.Key]bool) game.Input {
	var in game.Input
	for _, b := range bindings {
		if !cur[b.key] {
			continue
		}
		in.Held |= b.cmd
		if !prev[b.key] {
			in.Pressed |= b.cmd
		}
	}
	in.Held &= game.MoveUp | game.MoveDown | game.MoveLeft | game.MoveRight
	return in
}

// pollKeys samples every bound key.
func pollKeys() map[ebiten.Key]bool {
	cur := make(map[ebiten.Key]bool, len(bindings))
	for _, b := range bindings {
		if ebiten.IsKeyPressed(b.key) {
			cur[b.key] = true
		}
	}
	return cur
}
