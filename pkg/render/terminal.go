// pkg/render/terminal.go
package render

import (
	"github.com/gdamore/tcell/v2"

	"orbital-defense/pkg/engine"
)

const helpText = "Arrows: Aim/Power | 1-9: Weapons | SPACE: Fire | P: Pause | R: Replay | Q: Quit"

// TerminalRenderer paints composed frames onto a tcell screen. The
// frame occupies the top-left corner; the help line sits directly
// below it.
type TerminalRenderer struct {
	screen tcell.Screen
	frame  *Frame
	style  tcell.Style
}

// NewTerminalRenderer initializes the terminal for drawing
func NewTerminalRenderer(width, height int) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &TerminalRenderer{
		screen: screen,
		frame:  NewFrame(width, height),
		style:  tcell.StyleDefault,
	}, nil
}

func (r *TerminalRenderer) Render(fs engine.FrameState) {
	r.frame.Compose(fs)

	for y := 0; y < r.frame.Height; y++ {
		for x := 0; x < r.frame.Width; x++ {
			r.screen.SetContent(x, y, r.frame.At(x, y), nil, r.style)
		}
	}
	for i, ch := range helpText {
		r.screen.SetContent(i, r.frame.Height, ch, nil, r.style)
	}

	r.screen.Show()
}

// PollEvent blocks until the next terminal event
func (r *TerminalRenderer) PollEvent() tcell.Event {
	return r.screen.PollEvent()
}

// Close restores the terminal
func (r *TerminalRenderer) Close() {
	r.screen.Fini()
}
