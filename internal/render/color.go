package render

import "image/color"

// Palette holds every colour the board and its button are drawn with.
type Palette struct {
	Background  color.RGBA
	Line        color.RGBA
	Alive       color.RGBA
	Dead        color.RGBA
	ButtonIdle  color.RGBA
	ButtonHover color.RGBA
	Label       color.RGBA
}

// DefaultPalette returns the standard white board with blue live cells.
func DefaultPalette() Palette {
	return Palette{
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Line:        color.RGBA{A: 255},
		Alive:       color.RGBA{B: 255, A: 255},
		Dead:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ButtonIdle:  color.RGBA{R: 220, G: 220, B: 220, A: 255},
		ButtonHover: color.RGBA{R: 255, A: 255},
		Label:       color.RGBA{A: 255},
	}
}

// CellColor picks the fill for a cell.
func (p Palette) CellColor(alive bool) color.RGBA {
	if alive {
		return p.Alive
	}
	return p.Dead
}

// RGB8 converts any colour to 8-bit channels, dropping alpha.
func RGB8(c color.Color) (r, g, b uint8) {
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}
