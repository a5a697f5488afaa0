//go:build ebiten

package render

import (
	"image/color"

	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Canvas is a persistent offscreen image the board is painted onto. Only
// the parts that change in a tick are redrawn; the game blits the whole
// canvas to the screen every frame.
type Canvas struct {
	img   *ebiten.Image
	pixel *ebiten.Image
	face  font.Face

	frames int
}

// NewCanvas allocates a w×h canvas.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	c := &Canvas{
		img:   ebiten.NewImage(w, h),
		pixel: ebiten.NewImage(1, 1),
		face:  basicfont.Face7x13,
	}
	c.pixel.Fill(color.White)
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Frames returns how many frames have been presented.
func (c *Canvas) Frames() int { return c.frames }

// Clear fills the whole canvas.
func (c *Canvas) Clear(clr color.Color) { c.img.Fill(clr) }

// DrawLine draws a one pixel wide line. Axis-aligned lines are filled as
// rectangles so they land exactly on pixel columns and rows.
func (c *Canvas) DrawLine(a, b core.Point, clr color.Color) {
	switch {
	case a.X == b.X:
		y0, y1 := minMax(a.Y, b.Y)
		c.FillRect(core.Rect{X: a.X, Y: y0, W: 1, H: y1 - y0 + 1}, clr)
	case a.Y == b.Y:
		x0, x1 := minMax(a.X, b.X)
		c.FillRect(core.Rect{X: x0, Y: a.Y, W: x1 - x0 + 1, H: 1}, clr)
	default:
		ebitenutil.DrawLine(c.img, float64(a.X), float64(a.Y), float64(b.X), float64(b.Y), clr)
	}
}

// FillRect fills r by stretching a single white pixel.
func (c *Canvas) FillRect(r core.Rect, clr color.Color) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W), float64(r.H))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(clr)
	c.img.DrawImage(c.pixel, op)
}

// DrawText draws s centred on center.
func (c *Canvas) DrawText(s string, center core.Point, clr color.Color) {
	bounds := text.BoundString(c.face, s)
	x := center.X - bounds.Dx()/2
	y := center.Y - bounds.Dy()/2 + bounds.Dy()
	text.Draw(c.img, s, c.face, x, y, clr)
}

// Present marks the end of a frame. The image itself reaches the screen
// when the game's Draw runs.
func (c *Canvas) Present() { c.frames++ }

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
