// pkg/engine/command.go
package engine

import "orbital-defense/pkg/input"

const (
	angleStep = 0.1 // radians per rotate command
	powerStep = 5   // percent per power command
)

// HandleCommand applies one player command to the session. Quit and
// SaveReplay are lifecycle concerns the caller owns; they are ignored
// here.
func (g *Game) HandleCommand(cmd input.Command) {
	if cmd.IsWeaponSelect() {
		g.Station.SelectWeapon(cmd.WeaponIndex())
		return
	}

	switch cmd {
	case input.RotateLeft:
		g.Station.AdjustAngle(angleStep)
	case input.RotateRight:
		g.Station.AdjustAngle(-angleStep)
	case input.PowerUp:
		g.Station.AdjustPower(powerStep)
	case input.PowerDown:
		g.Station.AdjustPower(-powerStep)
	case input.Fire:
		g.Fire()
	case input.Pause:
		g.TogglePause()
	}
}
