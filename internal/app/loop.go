package app

import (
	"lifeboard/internal/core"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"
)

// Loop owns the board, its control and button, and sequences one frame of
// input handling, stepping and drawing per tick.
type Loop struct {
	cfg     Config
	palette render.Palette

	grid    *core.Grid
	button  *ui.Button
	control *ui.Control
	out     Renderer

	quit bool
}

// NewLoop validates cfg and builds an empty (or randomly filled) board
// drawing onto out.
func NewLoop(cfg Config, out Renderer) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Rows(), cfg.Cols(), cfg.CellSize)
	if err != nil {
		return nil, err
	}
	if cfg.Fill > 0 {
		grid.Randomize(core.NewRNG(cfg.Seed), cfg.Fill)
	}
	p := render.DefaultPalette()
	button := ui.NewButton(cfg.ButtonCenter(), cfg.ButtonWidth, cfg.ButtonHeight,
		p.ButtonIdle, p.ButtonHover, p.Label, ui.LabelStart)
	return &Loop{
		cfg:     cfg,
		palette: p,
		grid:    grid,
		button:  button,
		control: ui.NewControl(button),
		out:     out,
	}, nil
}

// Grid exposes the board.
func (l *Loop) Grid() *core.Grid { return l.grid }

// Control exposes the run-state machine.
func (l *Loop) Control() *ui.Control { return l.control }

// Button exposes the start/pause button.
func (l *Loop) Button() *ui.Button { return l.button }

// Done reports whether a Quit event has been seen.
func (l *Loop) Done() bool { return l.quit }

// Start paints the background, separator lines and initial cells.
func (l *Loop) Start() {
	l.out.Clear(l.palette.Background)
	l.drawLines()
	l.drawCells()
	l.out.Present()
}

// Tick handles events in arrival order, redraws and, while running,
// advances one generation. It returns false once a Quit event was seen.
func (l *Loop) Tick(events []Event, cursor core.Point) bool {
	for _, ev := range events {
		switch ev.Kind {
		case Quit:
			l.quit = true
		case PointerDown:
			if ev.Button == Primary {
				l.click(ev.Pos)
			}
		}
	}

	l.button.Draw(l.out, cursor)
	l.drawLines()
	if l.control.Stepping() {
		l.grid.Step()
		l.drawCells()
	}
	l.out.Present()
	return !l.quit
}

// Run starts the board and ticks at the configured rate until in delivers
// a Quit event.
func (l *Loop) Run(in Input) {
	limiter := core.NewLimiter(l.cfg.TickRate)
	l.Start()
	for l.Tick(in.Poll(), in.Cursor()) {
		limiter.Wait()
	}
}

// click routes a primary press. The button wins over any cell beneath it.
func (l *Loop) click(pos core.Point) {
	if l.button.HitTest(pos) {
		l.button.Activate()
		return
	}
	if !l.control.CanEdit() {
		return
	}
	row, col, ok := l.grid.CellAt(pos)
	if !ok {
		return
	}
	l.grid.Toggle(row, col)
	l.drawCell(l.grid.Cell(row, col))
}

func (l *Loop) drawLines() {
	w, h, step := l.cfg.Width, l.cfg.Height, l.cfg.CellSize
	for x := 0; x < w; x += step {
		l.out.DrawLine(core.Point{X: x}, core.Point{X: x, Y: h}, l.palette.Line)
	}
	for y := 0; y < h; y += step {
		l.out.DrawLine(core.Point{Y: y}, core.Point{X: w, Y: y}, l.palette.Line)
	}
}

func (l *Loop) drawCells() {
	l.grid.Each(func(_, _ int, c core.Cell) {
		l.drawCell(c)
	})
}

// drawCell fills a cell inset by one pixel so the separator lines survive.
func (l *Loop) drawCell(c core.Cell) {
	size := l.cfg.CellSize - 1
	l.out.FillRect(core.Rect{X: c.X + 1, Y: c.Y + 1, W: size, H: size}, l.palette.CellColor(c.Alive()))
}
