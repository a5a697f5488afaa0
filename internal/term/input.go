package term

import (
	"lifeboard/internal/app"
	"lifeboard/internal/core"

	"github.com/gdamore/tcell/v2"
)

var mouseButtons = []struct {
	mask tcell.ButtonMask
	btn  app.MouseButton
}{
	{tcell.Button1, app.Primary},
	{tcell.Button2, app.Secondary},
	{tcell.Button3, app.Middle},
}

// Input turns tcell events into loop events. tcell delivers events on a
// channel fed by its own goroutine; Poll drains it without blocking.
type Input struct {
	screen tcell.Screen
	scale  Scale
	events chan tcell.Event
	quit   chan struct{}

	cursor  core.Point
	buttons tcell.ButtonMask
}

// NewInput starts listening for events on screen.
func NewInput(screen tcell.Screen, scale Scale) *Input {
	in := newInput(screen, scale)
	go screen.ChannelEvents(in.events, in.quit)
	return in
}

func newInput(screen tcell.Screen, scale Scale) *Input {
	return &Input{
		screen: screen,
		scale:  scale,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
		cursor: core.Point{X: -1, Y: -1},
	}
}

// Close stops the event goroutine.
func (in *Input) Close() { close(in.quit) }

// Cursor returns the pixel at the centre of the last hovered character.
func (in *Input) Cursor() core.Point { return in.cursor }

// Poll returns the events queued since the previous call.
func (in *Input) Poll() []app.Event {
	var out []app.Event
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return append(out, app.QuitEvent())
			}
			out = in.translate(out, ev)
		default:
			return out
		}
	}
}

func (in *Input) translate(out []app.Event, ev tcell.Event) []app.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			out = append(out, app.QuitEvent())
		}
	case *tcell.EventMouse:
		in.cursor = in.scale.ToPixel(ev.Position())
		buttons := ev.Buttons()
		pressed := buttons &^ in.buttons
		in.buttons = buttons
		for _, mb := range mouseButtons {
			if pressed&mb.mask != 0 {
				out = append(out, app.PressEvent(mb.btn, in.cursor.X, in.cursor.Y))
			}
		}
	case *tcell.EventResize:
		in.screen.Sync()
	}
	return out
}
