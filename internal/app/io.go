package app

import (
	"image/color"

	"lifeboard/internal/core"
)

// EventKind discriminates input events.
type EventKind int

const (
	// Quit asks the loop to stop after the current tick.
	Quit EventKind = iota
	// PointerDown is a mouse press at a pixel position.
	PointerDown
)

// MouseButton identifies which pointer button was pressed.
type MouseButton int

const (
	Primary MouseButton = iota
	Secondary
	Middle
)

// Event is one discrete input event.
type Event struct {
	Kind   EventKind
	Button MouseButton
	Pos    core.Point
}

// QuitEvent returns a Quit event.
func QuitEvent() Event { return Event{Kind: Quit} }

// PressEvent returns a PointerDown event for button b at (x, y).
func PressEvent(b MouseButton, x, y int) Event {
	return Event{Kind: PointerDown, Button: b, Pos: core.Point{X: x, Y: y}}
}

// Input is an event source polled once per tick.
type Input interface {
	// Poll returns every event that arrived since the last call, oldest
	// first, without blocking.
	Poll() []Event
	// Cursor returns the last known pointer position.
	Cursor() core.Point
}

// Renderer is the drawing surface the loop paints on. Coordinates are
// pixels with the origin at the top-left of the window.
type Renderer interface {
	Clear(clr color.Color)
	DrawLine(a, b core.Point, clr color.Color)
	FillRect(r core.Rect, clr color.Color)
	// DrawText draws s centred on center.
	DrawText(s string, center core.Point, clr color.Color)
	Present()
}
