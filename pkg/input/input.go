// pkg/input/input.go
package input

import "github.com/gdamore/tcell/v2"

// Command is a device-independent player action
type Command int

const (
	None Command = iota
	RotateLeft
	RotateRight
	PowerUp
	PowerDown
	Fire
	Pause
	SaveReplay
	Quit
	// SelectWeapon0 through SelectWeapon8 map the number row.
	// WeaponIndex recovers the slot number.
	SelectWeapon0
	SelectWeapon1
	SelectWeapon2
	SelectWeapon3
	SelectWeapon4
	SelectWeapon5
	SelectWeapon6
	SelectWeapon7
	SelectWeapon8
)

// IsWeaponSelect reports whether cmd selects a weapon slot
func (c Command) IsWeaponSelect() bool {
	return c >= SelectWeapon0 && c <= SelectWeapon8
}

// WeaponIndex returns the weapon slot for a selection command, or -1
// for any other command.
func (c Command) WeaponIndex() int {
	if !c.IsWeaponSelect() {
		return -1
	}
	return int(c - SelectWeapon0)
}

// Translate maps a terminal key event to a Command. Unbound keys map
// to None.
func Translate(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return RotateLeft
	case tcell.KeyRight:
		return RotateRight
	case tcell.KeyUp:
		return PowerUp
	case tcell.KeyDown:
		return PowerDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	}
	return None
}

func translateRune(r rune) Command {
	switch r {
	case ' ':
		return Fire
	case 'p', 'P':
		return Pause
	case 'r', 'R':
		return SaveReplay
	case 'q', 'Q':
		return Quit
	}
	if r >= '1' && r <= '9' {
		return SelectWeapon0 + Command(r-'1')
	}
	return None
}
