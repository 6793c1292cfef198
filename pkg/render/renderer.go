// pkg/render/renderer.go
package render

import "orbital-defense/pkg/engine"

// Renderer draws game frames
type Renderer interface {
	// Render draws one frame from a game snapshot.
	Render(fs engine.FrameState)
	// Close releases the rendering backend.
	Close()
}

// BufferRenderer composes frames into an in-memory buffer. It backs
// tests and any headless use.
type BufferRenderer struct {
	frame *Frame
}

// NewBufferRenderer creates a headless renderer
func NewBufferRenderer(width, height int) *BufferRenderer {
	return &BufferRenderer{frame: NewFrame(width, height)}
}

func (r *BufferRenderer) Render(fs engine.FrameState) {
	r.frame.Compose(fs)
}

func (r *BufferRenderer) Close() {}

// Frame returns the last composed frame
func (r *BufferRenderer) Frame() *Frame {
	return r.frame
}
