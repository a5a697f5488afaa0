//go:build ebiten

package app

import (
	"lifeboard/internal/core"
	"lifeboard/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = []struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, Primary},
	{ebiten.MouseButtonRight, Secondary},
	{ebiten.MouseButtonMiddle, Middle},
}

// Game adapts a Loop to the ebiten.Game interface. ebiten's TPS setting is
// the frame limiter: each Update is one tick.
type Game struct {
	loop   *Loop
	canvas *render.Canvas
	w, h   int
}

// New constructs a Game for the provided configuration.
func New(cfg Config) (*Game, error) {
	w, h := cfg.WindowSize()
	canvas := render.NewCanvas(w, h)
	loop, err := NewLoop(cfg, canvas)
	if err != nil {
		return nil, err
	}
	loop.Start()
	return &Game{loop: loop, canvas: canvas, w: w, h: h}, nil
}

// Loop exposes the underlying loop.
func (g *Game) Loop() *Loop { return g.loop }

// Update collects this tick's input and runs one loop tick.
func (g *Game) Update() error {
	if !g.loop.Tick(g.events(), cursor()) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) events() []Event {
	var evs []Event
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		evs = append(evs, QuitEvent())
	}
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			p := cursor()
			evs = append(evs, PressEvent(mb.btn, p.X, p.Y))
		}
	}
	return evs
}

func cursor() core.Point {
	x, y := ebiten.CursorPosition()
	return core.Point{X: x, Y: y}
}

// Draw copies the canvas to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
