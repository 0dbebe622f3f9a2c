package panes

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/signal"
	"github.com/ja-he/tileplan/internal/styling"
	"github.com/ja-he/tileplan/internal/ui"
)

// KindTileMapPane is the kind of TileMapPane views.
const KindTileMapPane factory.Kind = "tile-map-pane"

// CellWidth is the number of terminal columns a single map cell takes up.
const CellWidth = 2

// TileMapPane shows a tile map with its visible layers composed on top of
// each other, and a cursor on one of its cells.
//
// The pane holds on to the map it shows by identity (its handle), so that
// when a project is (re)opened it finds the same map again among the newly
// materialized models.
type TileMapPane struct {
	ui.LeafPane
	signal.Signals

	handle  uuid.UUID
	tileMap *model.TileMapModel
	watched []model.Model

	cursorRow, cursorCol int
	layer                int
	selected             int

	// first row and column shown, to keep the cursor in view
	offsetRow, offsetCol int

	cursor        ui.CursorLocationRequestHandler
	requestRedraw func()

	log zerolog.Logger
}

// NewTileMapPane constructs and returns a new TileMapPane.
// requestRedraw is called whenever a model the pane shows has changed; it
// may be nil.
func NewTileMapPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	cursor ui.CursorLocationRequestHandler,
	requestRedraw func(),
) *TileMapPane {
	p := &TileMapPane{
		LeafPane:      ui.NewLeafPane(renderer, dimensions, stylesheet, nil),
		cursor:        cursor,
		requestRedraw: requestRedraw,
	}
	p.log = log.With().Str("component", "tile-map-pane").Uint("pane", uint(p.Identify())).Logger()
	p.registerSignalListeners()
	return p
}

func (p *TileMapPane) registerSignalListeners() {
	p.BindUpdate(func(e *signal.EventArgs) {
		p.log.Trace().Str("op", string(e.OperationName())).Msg("update")
		if p.requestRedraw != nil {
			p.requestRedraw()
		}
	})
	p.AddSignal(ui.OpBind, func(e *signal.EventArgs) {
		project, ok := e.Payload().(*model.ProjectModel)
		if !ok || project == nil {
			p.Bind(nil)
			return
		}
		if m := project.TileMapByID(p.handle); m != nil {
			p.Bind(m)
			return
		}
		if maps := project.TileMaps(); len(maps) > 0 {
			p.Bind(maps[0])
			return
		}
		p.Bind(nil)
	})
	p.AddSignal(model.OpRemoved, func(e *signal.EventArgs) {
		if p.tileMap != nil && p.tileMap.Equals(e.Source()) {
			p.log.Debug().Str("map", p.tileMap.Name()).Msg("shown map was removed")
			p.unwatch()
			p.tileMap = nil
		}
	})
	// layers and tiles joining the map are watched as well
	p.AddSignal(model.OpLayerAdded, func(*signal.EventArgs) { p.watch() })
	p.AddSignal(model.OpTileAdded, func(*signal.EventArgs) { p.watch() })
	p.AddSignal(model.OpLayerRemoved, func(*signal.EventArgs) { p.clamp() })
	p.AddSignal(model.OpTileRemoved, func(*signal.EventArgs) { p.clamp() })
	p.AddSignal(model.OpResized, func(*signal.EventArgs) { p.clamp() })
}

// Kind returns KindTileMapPane.
func (p *TileMapPane) Kind() factory.Kind { return KindTileMapPane }

// Bind makes the pane show m; nil shows nothing.
func (p *TileMapPane) Bind(m *model.TileMapModel) {
	p.unwatch()
	p.tileMap = m
	if m != nil {
		p.handle = m.UUID()
	}
	p.watch()
	p.clamp()
}

// watch adds the pane as listener to the map, its layers and its tiles.
func (p *TileMapPane) watch() {
	if p.tileMap == nil {
		return
	}
	targets := []model.Model{p.tileMap}
	for _, l := range p.tileMap.Layers() {
		targets = append(targets, l)
	}
	for _, t := range p.tileMap.Tiles() {
		targets = append(targets, t)
	}
	for _, m := range targets {
		m.AddListener(p)
	}
	p.watched = targets
}

func (p *TileMapPane) unwatch() {
	for _, m := range p.watched {
		m.RemoveListener(p)
	}
	p.watched = nil
}

// Dispose stops watching the map.
func (p *TileMapPane) Dispose() {
	p.unwatch()
	p.tileMap = nil
}

// TileMap returns the map shown, nil if there is none.
func (p *TileMapPane) TileMap() *model.TileMapModel { return p.tileMap }

// Handle returns the identity of the map the pane shows or last showed.
func (p *TileMapPane) Handle() uuid.UUID { return p.handle }

// Cursor returns the cursor's row and column.
func (p *TileMapPane) Cursor() (row, col int) { return p.cursorRow, p.cursorCol }

// MoveCursor moves the cursor by the given deltas, stopping at the map's
// edges.
func (p *TileMapPane) MoveCursor(dRow, dCol int) {
	p.cursorRow += dRow
	p.cursorCol += dCol
	p.clamp()
}

// Layer returns the layer being edited, nil if the map has none.
func (p *TileMapPane) Layer() *model.TileLayerModel {
	if p.tileMap == nil {
		return nil
	}
	layers := p.tileMap.Layers()
	if p.layer < 0 || p.layer >= len(layers) {
		return nil
	}
	return layers[p.layer]
}

// LayerIndex returns the index of the layer being edited, bottom first.
func (p *TileMapPane) LayerIndex() int { return p.layer }

// NextLayer moves editing to the layer above, wrapping around.
func (p *TileMapPane) NextLayer() { p.cycleLayer(1) }

// PrevLayer moves editing to the layer below, wrapping around.
func (p *TileMapPane) PrevLayer() { p.cycleLayer(-1) }

func (p *TileMapPane) cycleLayer(delta int) {
	if p.tileMap == nil {
		return
	}
	n := len(p.tileMap.Layers())
	if n == 0 {
		return
	}
	p.layer = ((p.layer+delta)%n + n) % n
}

// SelectLayer moves editing to the layer of the given index.
func (p *TileMapPane) SelectLayer(i int) {
	p.layer = i
	p.clamp()
}

// SelectTile selects the palette tile of the given index and returns whether
// there is one.
func (p *TileMapPane) SelectTile(i int) bool {
	if p.tileMap == nil || i < 0 || i >= len(p.tileMap.Tiles()) {
		return false
	}
	p.selected = i
	return true
}

// SelectedTile returns the selected palette tile, nil if the palette is
// empty.
func (p *TileMapPane) SelectedTile() *model.TileModel {
	if p.tileMap == nil {
		return nil
	}
	tiles := p.tileMap.Tiles()
	if p.selected < 0 || p.selected >= len(tiles) {
		return nil
	}
	return tiles[p.selected]
}

// clamp keeps cursor, layer and tile selection within what the map offers.
func (p *TileMapPane) clamp() {
	if p.tileMap == nil {
		p.cursorRow, p.cursorCol, p.layer, p.selected = 0, 0, 0, 0
		return
	}
	p.cursorRow = clampInt(p.cursorRow, 0, p.tileMap.Rows()-1)
	p.cursorCol = clampInt(p.cursorCol, 0, p.tileMap.Columns()-1)
	p.layer = clampInt(p.layer, 0, len(p.tileMap.Layers())-1)
	p.selected = clampInt(p.selected, 0, len(p.tileMap.Tiles())-1)
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// TopTileAt returns the tile shown at the given cell: that of the topmost
// visible layer with a non-empty cell there. Returns nil for an empty cell.
func (p *TileMapPane) TopTileAt(row, col int) *model.TileModel {
	if p.tileMap == nil {
		return nil
	}
	layers := p.tileMap.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		if !layers[i].Visible() {
			continue
		}
		id, ok := layers[i].Cell(row, col)
		if !ok || id == uuid.Nil {
			continue
		}
		if t := p.tileMap.TileByID(id); t != nil {
			return t
		}
	}
	return nil
}

// Draw draws the map's title line and as many of its cells as fit, keeping
// the cursor in view.
func (p *TileMapPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	if p.tileMap == nil {
		msg := "no tile map"
		p.Renderer.DrawText(x+(w-len(msg))/2, y+h/2, len(msg), 1, p.Stylesheet.Normal.DefaultDimmed(), msg)
		if p.cursor != nil {
			p.cursor.Delete(p.Identify())
		}
		return
	}

	title := fmt.Sprintf(" %s (%dx%d) ", p.tileMap.Name(), p.tileMap.Rows(), p.tileMap.Columns())
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.Grid)
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.Grid, title)

	visibleRows := h - 1
	visibleCols := w / CellWidth
	p.offsetRow = scrollOffset(p.offsetRow, p.cursorRow, visibleRows)
	p.offsetCol = scrollOffset(p.offsetCol, p.cursorCol, visibleCols)

	for r := 0; r < visibleRows && p.offsetRow+r < p.tileMap.Rows(); r++ {
		for c := 0; c < visibleCols && p.offsetCol+c < p.tileMap.Columns(); c++ {
			row, col := p.offsetRow+r, p.offsetCol+c
			style, text := p.cellAppearance(row, col)
			p.Renderer.DrawText(x+c*CellWidth, y+1+r, CellWidth, 1, style, text)
		}
	}

	if p.cursor != nil {
		p.cursor.Put(ui.CursorLocation{
			X: x + (p.cursorCol-p.offsetCol)*CellWidth,
			Y: y + 1 + p.cursorRow - p.offsetRow,
		}, p.Identify())
	}
}

func (p *TileMapPane) cellAppearance(row, col int) (styling.DrawStyling, string) {
	tile := p.TopTileAt(row, col)

	var style styling.DrawStyling
	text := "· "
	if tile == nil {
		style = p.Stylesheet.EmptyCell
	} else {
		style = styling.TileStyle(tile.Color(), model.DefaultTileColor)
		text = glyph(tile.Name())
	}

	if row == p.cursorRow && col == p.cursorCol {
		style = p.Stylesheet.Cursor
		if tile == nil {
			text = "[]"
		}
	}
	return style, text
}

// glyph is the text a tile is drawn with: the first letter of its name.
func glyph(name string) string {
	for _, r := range name {
		return string(r) + " "
	}
	return "  "
}

// scrollOffset returns the offset to show a span of the given size from,
// such that pos is within it, moving the previous offset as little as
// possible.
func scrollOffset(offset, pos, size int) int {
	if size <= 0 {
		return pos
	}
	if pos < offset {
		return pos
	}
	if pos >= offset+size {
		return pos - size + 1
	}
	return offset
}
