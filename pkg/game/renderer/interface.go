// Package renderer defines the rendering contract and the pure frame
// snapshot every display backend consumes.
package renderer

import (
	"gridbot/pkg/engine/input"
)

// Renderer is the contract a display backend fulfils. RenderFrame is
// a pure sink: it draws a snapshot and never reaches back into game
// state. NextIntent blocks until the player produces one input event.
type Renderer interface {
	// Init prepares the backend (colors, screen, window).
	Init() error

	// RenderFrame draws one turn's snapshot.
	RenderFrame(f *Frame)

	// NextIntent blocks for the next input event.
	NextIntent() (input.Intent, error)

	// Close releases the display.
	Close()
}
