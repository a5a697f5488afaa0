package core

import (
	"errors"
	"fmt"
)

// ErrNegativeSize is returned when a grid is requested with negative
// dimensions.
var ErrNegativeSize = errors.New("grid dimensions must not be negative")

// Cell is a single square of the board.
type Cell struct {
	// X, Y is the pixel-space top-left corner, fixed at creation.
	X, Y int

	alive     bool
	pending   bool
	neighbors uint8
}

// Alive reports the displayed state.
func (c Cell) Alive() bool { return c.alive }

// Neighbors returns the count cached by the last generation scan.
func (c Cell) Neighbors() int { return int(c.neighbors) }

// Grid stores rows×cols interior cells surrounded by a one-cell ring of
// permanently dead border cells, in row-major order.
type Grid struct {
	rows, cols int
	cellSize   int
	stride     int
	cells      []Cell
	generation int
}

// NewGrid allocates a grid with every interior cell dead.
func NewGrid(rows, cols, cellSize int) (*Grid, error) {
	if rows < 0 || cols < 0 || cellSize < 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d cell=%d", ErrNegativeSize, rows, cols, cellSize)
	}
	g := &Grid{
		rows:     rows,
		cols:     cols,
		cellSize: cellSize,
		stride:   cols + 2,
		cells:    make([]Cell, (rows+2)*(cols+2)),
	}
	for row := 0; row < rows+2; row++ {
		for col := 0; col < cols+2; col++ {
			c := &g.cells[g.index(row, col)]
			c.X = (col - 1) * cellSize
			c.Y = (row - 1) * cellSize
		}
	}
	return g, nil
}

func (g *Grid) index(row, col int) int { return row*g.stride + col }

// Rows returns the number of interior rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of interior columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the edge length of a cell in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// Len returns the number of allocated cells, border included.
func (g *Grid) Len() int { return len(g.cells) }

// Generation returns how many generations have been committed.
func (g *Grid) Generation() int { return g.generation }

// Interior reports whether (row, col) addresses a playable cell.
func (g *Grid) Interior(row, col int) bool {
	return row >= 1 && row <= g.rows && col >= 1 && col <= g.cols
}

// Cell returns a copy of the cell at (row, col). Border coordinates are
// valid here and always report a dead cell.
func (g *Grid) Cell(row, col int) Cell { return g.cells[g.index(row, col)] }

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool { return g.cells[g.index(row, col)].alive }

// Bounds is the pixel rectangle covered by interior cells. Remainder pixels
// of a field that is not a multiple of the cell size fall outside it.
func (g *Grid) Bounds() Rect {
	return Rect{W: g.cols * g.cellSize, H: g.rows * g.cellSize}
}

// CellAt maps a pixel position to interior coordinates. ok is false when p
// lies outside Bounds.
func (g *Grid) CellAt(p Point) (row, col int, ok bool) {
	if g.cellSize == 0 || !g.Bounds().Contains(p) {
		return 0, 0, false
	}
	return p.Y/g.cellSize + 1, p.X/g.cellSize + 1, true
}

// Toggle flips the cell at the 1-based interior coordinates (row, col).
// Callers must range-check first; the border is never addressed.
func (g *Grid) Toggle(row, col int) {
	if !g.Interior(row, col) {
		panic(fmt.Sprintf("core: toggle outside interior (%d,%d)", row, col))
	}
	c := &g.cells[g.index(row, col)]
	c.alive = !c.alive
}

// Step advances the board by one generation. Neighbour counts are taken
// from the pre-update state of every cell before any cell changes.
func (g *Grid) Step() {
	// scan
	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			n := 0
			for dr := -1; dr <= 1; dr++ {
				base := (row+dr)*g.stride + col
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if g.cells[base+dc].alive {
						n++
					}
				}
			}
			g.cells[g.index(row, col)].neighbors = uint8(n)
		}
	}
	// transition
	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			c := &g.cells[g.index(row, col)]
			c.pending = c.neighbors == 3 || (c.alive && c.neighbors == 2)
		}
	}
	// commit
	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			c := &g.cells[g.index(row, col)]
			c.alive = c.pending
			c.pending = false
		}
	}
	g.generation++
}

// Each calls fn for every interior cell in row-major order.
func (g *Grid) Each(fn func(row, col int, c Cell)) {
	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			fn(row, col, g.cells[g.index(row, col)])
		}
	}
}

// Population counts live interior cells.
func (g *Grid) Population() int {
	n := 0
	g.Each(func(_, _ int, c Cell) {
		if c.alive {
			n++
		}
	})
	return n
}

// Randomize sets each interior cell alive with the given probability. The
// border and the generation counter are left alone.
func (g *Grid) Randomize(rng *RNG, density float64) {
	if density <= 0 {
		return
	}
	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			g.cells[g.index(row, col)].alive = rng.Chance(density)
		}
	}
}
