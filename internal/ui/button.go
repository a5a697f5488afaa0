package ui

import (
	"image/color"

	"lifeboard/internal/core"
)

// Painter is the subset of a renderer a Button draws with.
type Painter interface {
	FillRect(r core.Rect, clr color.Color)
	DrawText(s string, center core.Point, clr color.Color)
}

// Button is a clickable rectangle with a centred label.
type Button struct {
	Rect  core.Rect
	Idle  color.Color
	Hover color.Color
	Text  color.Color
	Label string

	onClick func()
}

// NewButton returns a button centred at center. A nil hover colour falls
// back to the idle colour.
func NewButton(center core.Point, w, h int, idle, hover, text color.Color, label string) *Button {
	if hover == nil {
		hover = idle
	}
	return &Button{
		Rect:  core.RectCentered(center, w, h),
		Idle:  idle,
		Hover: hover,
		Text:  text,
		Label: label,
	}
}

// Bind sets the click callback.
func (b *Button) Bind(fn func()) { b.onClick = fn }

// HitTest reports whether p lies on the button.
func (b *Button) HitTest(p core.Point) bool { return b.Rect.Contains(p) }

// Activate runs the bound callback, if any.
func (b *Button) Activate() {
	if b.onClick != nil {
		b.onClick()
	}
}

// Color returns the fill used when the pointer is at cursor.
func (b *Button) Color(cursor core.Point) color.Color {
	if b.HitTest(cursor) {
		return b.Hover
	}
	return b.Idle
}

// Draw fills the button and overlays its label.
func (b *Button) Draw(p Painter, cursor core.Point) {
	p.FillRect(b.Rect, b.Color(cursor))
	if b.Label != "" {
		p.DrawText(b.Label, b.Rect.Center(), b.Text)
	}
}
