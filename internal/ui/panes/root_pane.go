package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/input"
	"github.com/ja-he/tileplan/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering and dispatching input.
type RootPane struct {
	ui.PaneBase

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	mapPane     ui.Pane
	palettePane ui.Pane
	statusPane  ui.Pane
	editorPane  ui.Pane
	logPane     ui.Pane
	helpPane    ui.Pane

	inputProcessor input.ModalProcessor

	log zerolog.Logger
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	mapPane ui.Pane,
	palettePane ui.Pane,
	statusPane ui.Pane,
	editorPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	inputProcessor input.ModalProcessor,
) *RootPane {
	rootPane := &RootPane{
		PaneBase:       ui.NewPaneBase(nil),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		mapPane:        mapPane,
		palettePane:    palettePane,
		statusPane:     statusPane,
		editorPane:     editorPane,
		logPane:        logPane,
		helpPane:       helpPane,
		inputProcessor: inputProcessor,
		log:            log.With().Str("component", "root-pane").Logger(),
	}
	rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())
	return rootPane
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// panes returns the subpanes in drawing order, bottom first.
func (p *RootPane) panes() []ui.Pane {
	return []ui.Pane{p.mapPane, p.palettePane, p.statusPane, p.editorPane, p.logPane, p.helpPane}
}

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	for _, pane := range p.panes() {
		if pane == nil || !pane.IsVisible() {
			continue
		}
		p.log.Trace().Msgf("drawing %d...", pane.Identify())
		pane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (p *RootPane) ProcessInput(key input.Key) bool {
	applied := p.inputProcessor.ProcessInput(key)
	if !applied {
		p.log.Trace().Str("key", key.ToDebugString()).Msg("input did not apply")
	}
	return applied
}

// ApplyModalOverlay puts overlay over the editor's input processing, e.g.
// the help or a line editor, and returns its stack index.
func (p *RootPane) ApplyModalOverlay(overlay input.Processor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost input overlay.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	return p.inputProcessor.GetHelp()
}
