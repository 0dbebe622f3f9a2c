package ui

import "github.com/ja-he/tileplan/internal/styling"

// CR is a constrained renderer for a TUI.
// It only allows rendering using the underlying screen handler within the set
// dimension constraint.
//
// Non-conforming rendering requests are corrected to be within the bounds.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a renderer drawing through renderer, but
// only within the bounds returned by constraint.
func NewConstrainedRenderer(
	renderer Renderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the current constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text, within the given dimensions, constrained by
// the set constraint, in the given style.
func (r *CR) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawText(cx, cy, cw, ch, style, text)
}

// DrawBox draws a box of the given dimensions, constrained by the set
// constraint, in the given style.
func (r *CR) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawBox(cx, cy, cw, ch, style)
}

func (r *CR) constrain(rawX, rawY, rawW, rawH int) (x, y, w, h int) {
	xConstraint, yConstraint, wConstraint, hConstraint := r.constraint()
	x, w = constrainAxis(rawX, rawW, xConstraint, wConstraint)
	y, h = constrainAxis(rawY, rawH, yConstraint, hConstraint)
	return x, y, w, h
}

// constrainAxis moves the start of a span into bounds, shortening it
// accordingly, then cuts off what extends past the end of the bounds.
func constrainAxis(rawPos, rawLen, boundPos, boundLen int) (pos, length int) {
	pos, length = rawPos, rawLen
	if pos < boundPos {
		length -= boundPos - pos
		pos = boundPos
	}
	if maxLen := boundLen - (pos - boundPos); length > maxLen {
		length = maxLen
	}
	return pos, length
}
