package cli

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/config"
	"github.com/ja-he/tileplan/internal/control"
	"github.com/ja-he/tileplan/internal/control/action"
	"github.com/ja-he/tileplan/internal/control/edit"
	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/input"
	"github.com/ja-he/tileplan/internal/input/processors"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/potatolog"
	"github.com/ja-he/tileplan/internal/styling"
	"github.com/ja-he/tileplan/internal/tui"
	"github.com/ja-he/tileplan/internal/ui"
	"github.com/ja-he/tileplan/internal/ui/panes"
)

// Editor is the interactive tile map editor, running on a screen until
// quit.
type Editor struct {
	registry *factory.Registry
	projects *control.ProjectController
	tileMaps *control.TileMapController

	screen *tui.ScreenHandler
	events tui.EventPollable

	root       *panes.RootPane
	mapPane    *panes.TileMapPane
	status     *panes.StatusPane
	editorPane *panes.StringEditorPane

	stringEditor *edit.StringEditor

	path string

	showHelp      bool
	showLog       bool
	quitArmed     bool
	quit          bool
	redrawPending bool

	log zerolog.Logger
}

// NewEditor sets up the editor's panes on screen, as views of r, and binds
// the configured keys. Edits are saved to path.
func NewEditor(
	screen *tui.ScreenHandler,
	r *factory.Registry,
	cfg config.Config,
	logReader potatolog.LogReader,
	path string,
) (*Editor, error) {
	projects, err := control.Projects(r)
	if err != nil {
		return nil, err
	}
	tileMaps, err := control.TileMaps(r)
	if err != nil {
		return nil, err
	}
	views, ok := ui.Views(r)
	if !ok {
		return nil, fmt.Errorf("no view factory registered")
	}

	e := &Editor{
		registry: r,
		projects: projects,
		tileMaps: tileMaps,
		screen:   screen,
		events:   screen.GetEventPollable(),
		path:     path,
		log:      log.With().Str("component", "editor").Logger(),
	}

	stylesheet := *styling.NewStylesheetFromConfig(cfg.Stylesheet)
	cursorWrangler := ui.NewCursorWrangler(screen)

	screenDimensions := screen.Dimensions
	mapDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		return 0, 0, w - panes.PaletteWidth, h - 1
	}
	paletteDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		return w - panes.PaletteWidth, 0, panes.PaletteWidth, h - 1
	}
	statusDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		return 0, h - 1, w, 1
	}
	logDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		return w / 2, 0, w - w/2, h - 1
	}

	e.mapPane = panes.NewTileMapPane(
		ui.NewConstrainedRenderer(screen, mapDimensions),
		mapDimensions,
		stylesheet,
		cursorWrangler,
		e.requestRedraw,
	)
	palettePane := panes.NewPalettePane(
		ui.NewConstrainedRenderer(screen, paletteDimensions),
		paletteDimensions,
		stylesheet,
		e.mapPane,
		1,
		0,
		nil,
	)
	e.status = panes.NewStatusPane(
		ui.NewConstrainedRenderer(screen, statusDimensions),
		statusDimensions,
		stylesheet,
		e.mapPane,
		projects.Modified,
		logReader,
	)
	e.editorPane = panes.NewStringEditorPane(
		ui.NewConstrainedRenderer(screen, statusDimensions),
		statusDimensions,
		stylesheet,
		func() edit.StringEditorView {
			if e.stringEditor == nil {
				return nil
			}
			return e.stringEditor
		},
		cursorWrangler,
	)
	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(screen, logDimensions),
		logDimensions,
		stylesheet,
		func() bool { return e.showLog },
		logReader,
	)

	bindings, err := input.Bind(cfg.Keys, e.actions())
	if err != nil {
		return nil, fmt.Errorf("could not bind keys (%w)", err)
	}
	tree, err := input.ConstructInputTree(bindings)
	if err != nil {
		return nil, fmt.Errorf("could not construct input tree (%w)", err)
	}
	help := tree.GetHelp()
	helpDimensions := func() (x, y, w, h int) {
		_, _, sw, sh := screenDimensions()
		w, h = 60, len(help)+2
		return (sw - w) / 2, (sh - h) / 2, w, h
	}
	helpPane := panes.NewHelpPane(
		ui.NewConstrainedRenderer(screen, helpDimensions),
		helpDimensions,
		stylesheet,
		func() bool { return e.showHelp },
		func() input.Help { return help },
	)

	e.root = panes.NewRootPane(
		screen,
		cursorWrangler,
		screenDimensions,
		e.mapPane,
		palettePane,
		e.status,
		e.editorPane,
		logPane,
		helpPane,
		processors.NewModalInputProcessor(tree),
	)

	views.Add(e.mapPane, true)
	views.Add(e.status, true)
	if project := projects.Project(); project != nil {
		ui.Rebind(views, e, project)
	}

	return e, nil
}

// MapPane returns the pane showing the map being edited.
func (e *Editor) MapPane() *panes.TileMapPane { return e.mapPane }

// Run draws and processes screen events until quit.
func (e *Editor) Run() {
	e.root.Draw()
	for !e.quit {
		ev := e.events.PollEvent()
		if ev == nil {
			// screen was finalized
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			key := input.KeyFromTcellEvent(ev)
			if !e.root.ProcessInput(key) {
				e.log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
			}
		case *tcell.EventResize:
			e.screen.NeedsSync()
		case *tcell.EventInterrupt:
			e.redrawPending = false
		}

		if !e.quit {
			e.root.Draw()
		}
	}
}

// requestRedraw asks the event loop to redraw, keeping at most one request
// pending.
func (e *Editor) requestRedraw() {
	if e.redrawPending {
		return
	}
	e.redrawPending = true
	e.screen.RequestRedraw()
}

func (e *Editor) actions() map[string]action.Action {
	simple := func(explanation string, f func()) action.Action {
		return action.NewOneWay(explanation, func() {
			if explanation != "quit" {
				e.quitArmed = false
			}
			f()
		})
	}

	actions := map[string]action.Action{
		"cursor-left":  simple("move cursor left", func() { e.mapPane.MoveCursor(0, -1) }),
		"cursor-right": simple("move cursor right", func() { e.mapPane.MoveCursor(0, 1) }),
		"cursor-up":    simple("move cursor up", func() { e.mapPane.MoveCursor(-1, 0) }),
		"cursor-down":  simple("move cursor down", func() { e.mapPane.MoveCursor(1, 0) }),
		"paint":        simple("paint cell with selected tile", func() { e.paint(e.mapPane.SelectedTile()) }),
		"clear":        simple("clear cell", func() { e.paint(nil) }),
		"fill":         simple("fill layer with selected tile", e.fill),
		"next-layer":   simple("edit next layer", e.mapPane.NextLayer),
		"prev-layer":   simple("edit previous layer", e.mapPane.PrevLayer),
		"toggle-layer": simple("show/hide layer", e.toggleLayer),
		"add-layer":    simple("add layer", e.addLayer),
		"rename-layer": simple("rename layer", e.renameLayer),
		"rename-map":   simple("rename map", e.renameMap),
		"remove-layer": simple("remove layer", e.removeLayer),
		"undo":         simple("undo", e.undo),
		"save":         simple("save", e.save),
		"help":         simple("show help", e.toggleHelp),
		"log":          simple("show/hide log", func() { e.showLog = !e.showLog }),
		"quit":         simple("quit", e.requestQuit),
	}
	for i := 1; i <= 9; i++ {
		index := i - 1
		actions[fmt.Sprintf("select-tile-%d", i)] = simple(fmt.Sprintf("select tile %d", i), func() {
			if !e.mapPane.SelectTile(index) {
				e.log.Warn().Int("tile", index+1).Msg("no such tile in palette")
			}
		})
	}
	return actions
}

func (e *Editor) paint(tile *model.TileModel) {
	layer := e.mapPane.Layer()
	if layer == nil {
		e.log.Warn().Msg("no layer to paint on")
		return
	}
	row, col := e.mapPane.Cursor()
	if err := e.tileMaps.Paint(layer, row, col, tile); err != nil {
		e.log.Error().Err(err).Msg("could not paint")
	}
}

func (e *Editor) fill() {
	layer := e.mapPane.Layer()
	if layer == nil {
		e.log.Warn().Msg("no layer to fill")
		return
	}
	e.tileMaps.Fill(layer, e.mapPane.SelectedTile())
}

func (e *Editor) toggleLayer() {
	if layer := e.mapPane.Layer(); layer != nil {
		e.tileMaps.SetLayerVisible(layer, !layer.Visible())
	}
}

func (e *Editor) addLayer() {
	m := e.mapPane.TileMap()
	if m == nil {
		return
	}
	n := len(m.Layers())
	if _, err := e.tileMaps.AddLayer(m, fmt.Sprintf("layer %d", n+1)); err != nil {
		e.log.Error().Err(err).Msg("could not add layer")
		return
	}
	e.mapPane.SelectLayer(n)
}

func (e *Editor) removeLayer() {
	m := e.mapPane.TileMap()
	layer := e.mapPane.Layer()
	if m == nil || layer == nil {
		return
	}
	if len(m.Layers()) == 1 {
		e.log.Warn().Msg("cannot remove the only layer")
		return
	}
	if err := e.tileMaps.RemoveLayer(layer); err != nil {
		e.log.Error().Err(err).Msg("could not remove layer")
	}
}

func (e *Editor) renameLayer() {
	if layer := e.mapPane.Layer(); layer != nil {
		e.openRename("layer", layer)
	}
}

func (e *Editor) renameMap() {
	if m := e.mapPane.TileMap(); m != nil {
		e.openRename("map", m)
	}
}

// openRename opens a string editor over the status bar for the name of
// target, capturing all input until it is written or quit.
func (e *Editor) openRename(what string, target control.Named) {
	if e.stringEditor != nil {
		return
	}
	stringEditor := edit.NewStringEditor(what, target.Name(), func(name string) {
		if strings.TrimSpace(name) == "" {
			e.log.Warn().Str("what", what).Msg("refusing empty name")
			return
		}
		e.tileMaps.Rename(target, name)
	})
	processor, err := stringEditor.CreateInputProcessor()
	if err != nil {
		e.log.Error().Err(err).Msg("could not open string editor")
		return
	}
	stringEditor.AddQuitCallback(func() {
		e.stringEditor = nil
		e.editorPane.Undraw()
		if err := e.root.PopModalOverlay(); err != nil {
			e.log.Error().Err(err).Msg("could not close string editor")
		}
	})
	e.stringEditor = stringEditor
	e.root.ApplyModalOverlay(processor)
}

func (e *Editor) undo() {
	explanation, ok := e.tileMaps.Undo()
	if !ok {
		e.log.Info().Msg("nothing to undo")
		return
	}
	e.log.Info().Msgf("undid '%s'", explanation)
}

func (e *Editor) save() {
	if err := e.projects.Save(e.path); err != nil {
		e.log.Error().Err(err).Msg("could not save")
	}
}

func (e *Editor) toggleHelp() {
	if e.showHelp {
		return
	}
	e.showHelp = true
	closeHelp := action.NewOneWay("close help", func() {
		e.showHelp = false
		if err := e.root.PopModalOverlay(); err != nil {
			e.log.Error().Err(err).Msg("could not close help")
		}
	})
	overlay, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"?":     closeHelp,
		"<esc>": closeHelp,
		"q":     closeHelp,
	})
	if err != nil {
		e.log.Error().Err(err).Msg("could not construct help input tree")
		e.showHelp = false
		return
	}
	e.root.ApplyModalOverlay(overlay)
}

func (e *Editor) requestQuit() {
	if e.projects.Modified() && !e.quitArmed {
		e.quitArmed = true
		e.log.Warn().Msg("unsaved changes, quit again to discard them")
		return
	}
	e.quit = true
}
