package panes

import (
	"fmt"

	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/styling"
	"github.com/ja-he/tileplan/internal/ui"
)

// PaletteWidth is the width the palette pane is laid out with.
const PaletteWidth = 16

// PalettePane shows the palette of the map a TileMapPane shows, each tile
// in its color and with the number selecting it, the selected tile
// emphasized.
type PalettePane struct {
	ui.LeafPane

	mapPane *TileMapPane

	horizPadding, gap int
}

type paletteBox struct {
	x, y, w int
}

// Draw draws this pane.
func (p *PalettePane) Draw() {
	x, y, w, h := p.Dims()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)
	p.Renderer.DrawText(x+p.horizPadding, y, w-2*p.horizPadding, 1, p.Stylesheet.Grid, "palette")

	m := p.mapPane.TileMap()
	if m == nil {
		return
	}
	tiles := m.Tiles()
	selected := p.mapPane.SelectedTile()
	for i, box := range p.tileBoxes(x, y+1, w, tiles, selected) {
		tile := tiles[i]
		style := styling.TileStyle(tile.Color(), model.DefaultTileColor)
		if tile == selected {
			style = style.Bolded()
		}
		label := "  " + tile.Name()
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, tile.Name())
		}
		p.Renderer.DrawBox(box.x, box.y, box.w, 1, style)
		p.Renderer.DrawText(box.x+1, box.y, box.w-2, 1, style, truncateAt(label, box.w-2))
	}
}

// tileBoxes lays the tiles out top to bottom; the selected tile's box sticks
// out into the padding.
func (p *PalettePane) tileBoxes(x, y, w int, tiles []*model.TileModel, selected *model.TileModel) []paletteBox {
	result := make([]paletteBox, len(tiles))
	for i, tile := range tiles {
		box := paletteBox{
			x: x + p.horizPadding,
			y: y + i*(1+p.gap),
			w: w - 2*p.horizPadding,
		}
		if tile == selected && p.horizPadding > 0 {
			box.x--
			box.w += 2
		}
		result[i] = box
	}
	return result
}

func truncateAt(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// NewPalettePane constructs and returns a new PalettePane.
func NewPalettePane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	mapPane *TileMapPane,
	horizPadding int,
	gap int,
	visible func() bool,
) *PalettePane {
	return &PalettePane{
		LeafPane:     ui.NewLeafPane(renderer, dimensions, stylesheet, visible),
		mapPane:      mapPane,
		horizPadding: horizPadding,
		gap:          gap,
	}
}
