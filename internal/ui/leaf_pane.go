package ui

import (
	"github.com/ja-he/tileplan/internal/styling"
)

// LeafPane is a simple set of data and implementation of a "leaf pane", i.E. a
// pane that does not have subpanes but instead makes actual draw calls.
type LeafPane struct {
	PaneBase
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet styling.Stylesheet
}

// NewLeafPane returns a leaf pane with a freshly generated ID.
func NewLeafPane(
	renderer ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	visible func() bool,
) LeafPane {
	return LeafPane{
		PaneBase:   NewPaneBase(visible),
		Renderer:   renderer,
		Dims:       dimensions,
		Stylesheet: stylesheet,
	}
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *LeafPane) Dimensions() (x, y, w, h int) {
	return p.Dims()
}
