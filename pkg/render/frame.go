// pkg/render/frame.go
package render

import (
	"fmt"
	"math"
	"strings"

	"orbital-defense/pkg/engine"
	"orbital-defense/pkg/entity"
	"orbital-defense/pkg/physics"
)

const (
	charPlanet     = 'O'
	charStation    = '^'
	charProjectile = '*'
	charAsteroid   = 'A'
	charShip       = 'S'
	charLead       = 'X'
	charAim        = '>'
)

// aimIndicatorLength is how far ahead of the station the aim marker
// sits, in world units.
const aimIndicatorLength = 3

// Frame is a character buffer holding one composed game frame. World
// coordinates map directly onto cells, so the play field and the frame
// share dimensions.
type Frame struct {
	Width  int
	Height int
	cells  [][]rune
}

// NewFrame allocates a frame buffer
func NewFrame(width, height int) *Frame {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
	}
	return &Frame{Width: width, Height: height, cells: cells}
}

// At returns the rune at a cell, or space when out of bounds
func (f *Frame) At(x, y int) rune {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return ' '
	}
	return f.cells[y][x]
}

// Rows returns the frame as strings, one per row
func (f *Frame) Rows() []string {
	rows := make([]string, f.Height)
	for y, row := range f.cells {
		rows[y] = string(row)
	}
	return rows
}

// String joins the rows with newlines
func (f *Frame) String() string {
	return strings.Join(f.Rows(), "\n")
}

// Compose redraws the frame from a game snapshot. Layering follows
// background to foreground: border, trajectory, aim marker, planet,
// station, projectiles, lead indicators, enemies, then the UI text.
func (f *Frame) Compose(fs engine.FrameState) {
	f.clear()
	f.drawBorder()
	f.drawTrajectory(fs.Trajectory)

	aim := fs.StationPosition.Add(physics.FromPolar(aimIndicatorLength, fs.StationAngle))
	f.set(int(aim.X), int(aim.Y), charAim)

	f.drawCircle(int(fs.PlanetPosition.X), int(fs.PlanetPosition.Y), fs.PlanetRadius, charPlanet)
	f.set(int(fs.StationPosition.X), int(fs.StationPosition.Y), charStation)

	for _, pos := range fs.Projectiles {
		f.set(int(pos.X), int(pos.Y), charProjectile)
	}

	for i, enemy := range fs.Enemies {
		// Lead marker one second ahead at current velocity.
		lead := enemy.Position.Add(enemy.Velocity)
		f.set(int(lead.X), int(lead.Y), charLead)

		ch := charShip
		if enemy.Kind == entity.KindAsteroid {
			ch = charAsteroid
		}
		x, y := int(enemy.Position.X), int(enemy.Position.Y)
		f.set(x, y, ch)
		f.set(x+1, y, rune('1'+i%9))
	}

	f.drawUI(fs)
}

func (f *Frame) clear() {
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = ' '
		}
	}
}

func (f *Frame) set(x, y int, ch rune) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.cells[y][x] = ch
}

func (f *Frame) setText(x, y int, text string) {
	for i, ch := range text {
		f.set(x+i, y, ch)
	}
}

func (f *Frame) drawBorder() {
	for x := 0; x < f.Width; x++ {
		f.cells[0][x] = '-'
		f.cells[f.Height-1][x] = '-'
	}
	for y := 0; y < f.Height; y++ {
		f.cells[y][0] = '|'
		f.cells[y][f.Width-1] = '|'
	}
}

func (f *Frame) drawCircle(cx, cy int, radius float64, ch rune) {
	r := int(radius)
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if float64(dx*dx+dy*dy) <= radius*radius {
				f.set(cx+dx, cy+dy, ch)
			}
		}
	}
}

// drawTrajectory stages the predicted path: dots for the first third,
// plus signs for the middle, asterisks for the tail.
func (f *Frame) drawTrajectory(points []physics.Vector2D) {
	n := len(points)
	for i, p := range points {
		ch := '*'
		switch {
		case i < n/3:
			ch = '.'
		case i < 2*n/3:
			ch = '+'
		}
		f.set(int(p.X), int(p.Y), ch)
	}
}

func (f *Frame) drawUI(fs engine.FrameState) {
	f.setText(1, 1, fmt.Sprintf("Weapon: %s | Power: %d%%", fs.WeaponName, int(fs.Power)))

	if fs.CooldownRemaining > 0 {
		f.setText(1, 2, fmt.Sprintf("Cooldown: %.1fs", fs.CooldownRemaining))
	} else {
		f.setText(1, 2, "READY TO FIRE!")
	}

	angleDegrees := int(fs.StationAngle*180/math.Pi) % 360
	angleText := fmt.Sprintf("Angle: %d", angleDegrees)
	f.setText(f.Width-len(angleText)-20, 2, angleText)

	scoreText := fmt.Sprintf("Score: %d", fs.Score)
	f.setText(f.Width-len(scoreText)-1, 1, scoreText)

	switch fs.Status {
	case engine.StatusPaused:
		f.centerText(f.Height/2, "PAUSED")
	case engine.StatusEnded:
		f.centerText(f.Height/2, fmt.Sprintf("GAME OVER - Score: %d", fs.Score))
	}
}

func (f *Frame) centerText(y int, text string) {
	f.setText((f.Width-len(text))/2, y, text)
}
