package term

import (
	"image/color"

	"lifeboard/internal/core"
	"lifeboard/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer paints onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	scale  Scale
}

// NewRenderer returns a renderer for screen.
func NewRenderer(screen tcell.Screen, scale Scale) *Renderer {
	return &Renderer{screen: screen, scale: scale}
}

func tcolor(c color.Color) tcell.Color {
	r, g, b := render.RGB8(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Clear fills the screen with clr.
func (r *Renderer) Clear(clr color.Color) {
	r.screen.SetStyle(tcell.StyleDefault.Background(tcolor(clr)))
	r.screen.Clear()
}

// DrawLine is a no-op: separator lines fall between character cells.
func (r *Renderer) DrawLine(a, b core.Point, clr color.Color) {}

// FillRect paints every character cell rect touches.
func (r *Renderer) FillRect(rect core.Rect, clr color.Color) {
	if rect.Empty() {
		return
	}
	x0, y0 := r.scale.ToChar(core.Point{X: rect.X, Y: rect.Y})
	x1, y1 := r.scale.ToChar(core.Point{X: rect.X + rect.W - 1, Y: rect.Y + rect.H - 1})
	style := tcell.StyleDefault.Background(tcolor(clr))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText writes s centred on center, keeping whatever background is
// already under each character.
func (r *Renderer) DrawText(s string, center core.Point, clr color.Color) {
	cx, cy := r.scale.ToChar(center)
	x := cx - runewidth.StringWidth(s)/2
	fg := tcolor(clr)
	for _, ch := range s {
		_, _, st, _ := r.screen.GetContent(x, cy)
		r.screen.SetContent(x, cy, ch, nil, st.Foreground(fg))
		x += runewidth.RuneWidth(ch)
	}
}

// Present flushes pending changes to the terminal.
func (r *Renderer) Present() { r.screen.Show() }
