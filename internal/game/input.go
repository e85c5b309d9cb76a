package game

import "strings"

// Command is one discrete player intent. Commands combine as a bit set.
type Command uint16

const (
	MoveUp Command = 1 << iota
	MoveDown
	MoveLeft
	MoveRight
	TogglePush
	Confirm
	Cancel
	Quit
)

var commandNames = [...]string{"up", "down", "left", "right", "push", "confirm", "cancel", "quit"}

// Has reports whether every command in o is set in c.
func (c Command) Has(o Command) bool { return o != 0 && c&o == o }

func (c Command) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for i, name := range commandNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "+")
}

// Input is the already-debounced command set for one tick. Held carries
// continuous movement keys; Pressed carries commands that went down this
// tick. Menu navigation reads MoveUp/MoveDown from Pressed.
type Input struct {
	Held    Command
	Pressed Command
}

// Hold returns an Input with the given commands held.
func Hold(c Command) Input { return Input{Held: c} }

// Press returns an Input with the given commands pressed this tick.
func Press(c Command) Input { return Input{Pressed: c} }
