// Package term runs the board in a terminal through tcell. Pixel
// coordinates are mapped onto character cells: one board cell is two
// characters wide and one character tall.
package term

import "lifeboard/internal/core"

// Scale is the number of pixels one character cell covers on each axis.
type Scale struct {
	X, Y int
}

// NewScale returns the scale for a board with the given cell size.
func NewScale(cellSize int) Scale {
	return Scale{X: max(1, cellSize/2), Y: max(1, cellSize)}
}

// ToChar maps a pixel to the character cell containing it.
func (s Scale) ToChar(p core.Point) (int, int) {
	return floorDiv(p.X, s.X), floorDiv(p.Y, s.Y)
}

// ToPixel maps a character cell to the pixel at its centre.
func (s Scale) ToPixel(x, y int) core.Point {
	return core.Point{X: x*s.X + s.X/2, Y: y*s.Y + s.Y/2}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
