// Package ui contains the building blocks of the editor's terminal user
// interface: panes, the renderers they draw through and the factory of views.
package ui

import (
	"fmt"

	"github.com/ja-he/tileplan/internal/styling"
)

// Pane is a UI pane.
//
// Panes are drawn back to front by the root pane; a pane that is not visible
// is skipped.
type Pane interface {
	Draw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
	Identify() PaneID
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID represents "no pane", e.g. no cursor requester.
const NonePaneID PaneID = 0

// Renderer draws boxes and text.
type Renderer interface {
	// Draw a box of the indicated dimensions at the indicated location but
	// limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// Draw text within the box described by the given coordinates and dimensions,
	// but limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// TextCursorController offers control of a text cursor, such as for a terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is a position of the text cursor on screen.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}
