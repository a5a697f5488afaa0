package ui

// State is the run mode of the board.
type State int

const (
	// NotStarted is the initial state: the board is editable and idle.
	NotStarted State = iota
	// Running advances one generation per tick and locks the board.
	Running
	// Paused stops stepping and re-enables editing.
	Paused
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Button labels for each state.
const (
	LabelStart    = "Start"
	LabelPause    = "Pause"
	LabelContinue = "Continue"
)

// Control gates stepping and editing and keeps its button's label in sync.
type Control struct {
	state  State
	button *Button
}

// NewControl binds the control to b and labels it for the initial state.
func NewControl(b *Button) *Control {
	c := &Control{state: NotStarted, button: b}
	if b != nil {
		b.Bind(c.Advance)
	}
	c.sync()
	return c
}

// State returns the current state.
func (c *Control) State() State { return c.state }

// Label returns the text the button should show in the current state.
func (c *Control) Label() string { return labelFor(c.state) }

// CanEdit reports whether manual cell toggling is allowed.
func (c *Control) CanEdit() bool { return c.state != Running }

// Stepping reports whether the loop should advance a generation this tick.
func (c *Control) Stepping() bool { return c.state == Running }

// Advance performs the transition for one click on the button.
func (c *Control) Advance() {
	switch c.state {
	case NotStarted, Paused:
		c.state = Running
	case Running:
		c.state = Paused
	}
	c.sync()
}

func (c *Control) sync() {
	if c.button != nil {
		c.button.Label = labelFor(c.state)
	}
}

func labelFor(s State) string {
	switch s {
	case Running:
		return LabelPause
	case Paused:
		return LabelContinue
	default:
		return LabelStart
	}
}
