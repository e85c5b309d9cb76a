package game

import "fmt"

// Phase is the session's top-level state.
type Phase int

const (
	MainMenu Phase = iota
	InstructionsDetail
	Playing
	Paused
	EndGame
)

var phaseNames = [...]string{"main_menu", "instructions", "playing", "paused", "end_game"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuInstructions
	MenuExit
	menuItemCount
)

func (m MenuItem) String() string {
	switch m {
	case MenuStart:
		return "Start"
	case MenuInstructions:
		return "Instructions"
	case MenuExit:
		return "Exit"
	}
	return ""
}

// MenuItems lists the main menu in display order.
func MenuItems() []MenuItem {
	return []MenuItem{MenuStart, MenuInstructions, MenuExit}
}

// PauseItem is an entry of the pause menu.
type PauseItem int

const (
	PauseResume PauseItem = iota
	PauseMainMenu
	PauseExit
	pauseItemCount
)

func (p PauseItem) String() string {
	switch p {
	case PauseResume:
		return "Resume"
	case PauseMainMenu:
		return "Main Menu"
	case PauseExit:
		return "Exit Game"
	}
	return ""
}

// PauseItems lists the pause menu in display order.
func PauseItems() []PauseItem {
	return []PauseItem{PauseResume, PauseMainMenu, PauseExit}
}

// cycle steps a selection by delta and wraps it into [0, n).
func cycle(sel, delta, n int) int {
	return ((sel+delta)%n + n) % n
}

// Title is shown on the main menu.
const Title = "MQIX"

// InstructionLines is the body of the instructions screen for the given win
// threshold. Lines ending in ':' are section headers.
func InstructionLines(threshold float64) []string {
	return []string{
		fmt.Sprintf("Objective: Cover at least %g%% of the screen", threshold),
		"",
		"Controls:",
		"- Arrow Keys: Move around the border or when not pushing",
		"- Spacebar: Start/Stop pushing to draw lines",
		"- ESC: Pause Game",
		"",
		"Gameplay:",
		"- Move along the border to start pushing",
		"- Create territories by drawing closed paths",
		"- Avoid Sparx (orange circles) and Qix (purple circle)",
		"- Don't get caught while pushing!",
		"",
		"Enemies:",
		"- Sparx: Patrol the border",
		"- Qix: Moves freely inside the play area",
		"",
		"Tips:",
		"- Be strategic in your territory claims",
		"- Watch out for enemy movements",
		"",
		"Press ESC to Return to Menu",
	}
}
