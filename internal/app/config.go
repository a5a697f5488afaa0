package app

import (
	"errors"
	"flag"
	"fmt"

	"lifeboard/internal/core"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Width        int
	Height       int
	ButtonWidth  int
	ButtonHeight int
	CellSize     int
	TickRate     int
	Seed         int64
	Fill         float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:        640,
		Height:       480,
		ButtonWidth:  80,
		ButtonHeight: 40,
		CellSize:     10,
		TickRate:     10,
		Seed:         42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "playing field width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "playing field height in pixels")
	fs.IntVar(&c.ButtonWidth, "button-width", c.ButtonWidth, "start/pause button width in pixels")
	fs.IntVar(&c.ButtonHeight, "button-height", c.ButtonHeight, "start/pause button height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge length in pixels")
	fs.IntVar(&c.TickRate, "tps", c.TickRate, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial fill")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "fraction of cells alive at start (0 = empty board)")
}

// Validate rejects sizes and rates the board cannot be built from.
func (c *Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: field size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.ButtonWidth < 0 || c.ButtonHeight < 0:
		return fmt.Errorf("%w: button size %dx%d", ErrInvalidConfig, c.ButtonWidth, c.ButtonHeight)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.TickRate)
	case c.Fill < 0 || c.Fill > 1:
		return fmt.Errorf("%w: fill %g outside [0,1]", ErrInvalidConfig, c.Fill)
	}
	return nil
}

// Rows returns the number of whole cells that fit vertically.
func (c *Config) Rows() int { return c.Height / c.CellSize }

// Cols returns the number of whole cells that fit horizontally.
func (c *Config) Cols() int { return c.Width / c.CellSize }

// WindowSize returns the full surface size: the field plus the button strip.
func (c *Config) WindowSize() (int, int) { return c.Width, c.Height + c.ButtonHeight }

// ButtonCenter is where the start/pause button sits, one cell below the
// field and horizontally centred.
func (c *Config) ButtonCenter() core.Point {
	return core.Point{X: c.Width / 2, Y: c.Height + c.CellSize}
}
