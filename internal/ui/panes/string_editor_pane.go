package panes

import (
	"github.com/ja-he/tileplan/internal/control/edit"
	"github.com/ja-he/tileplan/internal/styling"
	"github.com/ja-he/tileplan/internal/ui"
)

// StringEditorPane visualizes the editing of a string (as seen by a
// StringEditorView) in a single line, e.g. over the status bar.
// It is visible while there is a view to show.
type StringEditorPane struct {
	ui.LeafPane

	view func() edit.StringEditorView

	cursorController ui.CursorLocationRequestHandler
}

// Draw draws the editor line and requests the cursor at the edit position.
func (p *StringEditorPane) Draw() {
	view := p.view()
	if view == nil {
		return
	}
	x, y, w, h := p.Dims()

	label := view.GetName() + ": "
	labelWidth := len([]rune(label))
	padding := 1

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Status)
	p.Renderer.DrawText(x+padding, y, labelWidth, h, p.Stylesheet.Status.Italicized(), label)
	contentXOffset := padding + labelWidth
	p.Renderer.DrawText(x+contentXOffset, y, w-contentXOffset-padding, h, p.Stylesheet.NormalEmphasized, view.GetContent())

	if p.cursorController != nil {
		p.cursorController.Put(ui.CursorLocation{X: x + contentXOffset + view.GetCursorPos(), Y: y}, p.Identify())
	}
}

// Undraw withdraws the pane's cursor request; to be called when the editor
// closes.
func (p *StringEditorPane) Undraw() {
	if p.cursorController != nil {
		p.cursorController.Delete(p.Identify())
	}
}

// NewStringEditorPane creates a new StringEditorPane, showing whatever view
// returns.
func NewStringEditorPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view func() edit.StringEditorView,
	cursorController ui.CursorLocationRequestHandler,
) *StringEditorPane {
	p := &StringEditorPane{
		view:             view,
		cursorController: cursorController,
	}
	p.LeafPane = ui.NewLeafPane(renderer, dimensions, stylesheet, func() bool { return p.view() != nil })
	return p
}
