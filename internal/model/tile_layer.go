package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/signal"
)

// TileLayerModel is one layer of a tile map: a grid of cells, each either
// empty or referring to a tile by its UUID.
type TileLayerModel struct {
	Base

	name          string
	visible       bool
	rows, columns int

	// row-major, uuid.Nil for empty cells
	cells []uuid.UUID
}

// NewTileLayerModel returns an empty, visible, zero-sized layer.
func NewTileLayerModel() *TileLayerModel {
	l := &TileLayerModel{visible: true}
	l.setup(l)
	l.registerSignalListeners()
	return l
}

// NewTileLayer returns an empty visible layer of the given name and size.
func NewTileLayer(name string, rows, columns int) *TileLayerModel {
	l := NewTileLayerModel()
	l.name = name
	l.rows, l.columns = clampSize(rows, columns)
	l.cells = make([]uuid.UUID, l.rows*l.columns)
	return l
}

func (l *TileLayerModel) registerSignalListeners() {
	l.AddSignal(OpTileRemoved, func(e *signal.EventArgs) {
		if tile, ok := e.Source().(*TileModel); ok {
			l.ClearTile(tile.UUID())
		}
	})
	l.pipeTo(l.Record)
}

// Kind returns KindTileLayer.
func (l *TileLayerModel) Kind() factory.Kind { return KindTileLayer }

// Name returns the layer's name.
func (l *TileLayerModel) Name() string { return l.name }

// SetName sets the layer's name.
func (l *TileLayerModel) SetName(name string) {
	if l.name == name {
		return
	}
	l.name = name
	l.DoneUpdating(OpNameChanged)
}

// Visible returns whether the layer is drawn.
func (l *TileLayerModel) Visible() bool { return l.visible }

// SetVisible sets whether the layer is drawn.
func (l *TileLayerModel) SetVisible(visible bool) {
	if l.visible == visible {
		return
	}
	l.visible = visible
	l.DoneUpdating(OpVisibilityChanged)
}

// Rows returns the number of rows.
func (l *TileLayerModel) Rows() int { return l.rows }

// Columns returns the number of columns.
func (l *TileLayerModel) Columns() int { return l.columns }

// Resize changes the layer's size, keeping the cells that lie within both
// the old and the new size.
func (l *TileLayerModel) Resize(rows, columns int) {
	rows, columns = clampSize(rows, columns)
	if rows == l.rows && columns == l.columns {
		return
	}
	cells := make([]uuid.UUID, rows*columns)
	for row := 0; row < rows && row < l.rows; row++ {
		for col := 0; col < columns && col < l.columns; col++ {
			cells[row*columns+col] = l.cells[row*l.columns+col]
		}
	}
	l.rows, l.columns, l.cells = rows, columns, cells
	l.DoneUpdating(OpResized)
}

func (l *TileLayerModel) inBounds(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.columns
}

// Cell returns the tile at the given position, uuid.Nil for an empty cell.
// Returns false if the position is out of bounds.
func (l *TileLayerModel) Cell(row, col int) (uuid.UUID, bool) {
	if !l.inBounds(row, col) {
		return uuid.Nil, false
	}
	return l.cells[row*l.columns+col], true
}

// Paint sets the cell at the given position to the given tile; uuid.Nil
// empties the cell.
func (l *TileLayerModel) Paint(row, col int, tile uuid.UUID) error {
	if !l.inBounds(row, col) {
		return fmt.Errorf("cell %d:%d out of bounds for %dx%d layer '%s'", row, col, l.rows, l.columns, l.name)
	}
	i := row*l.columns + col
	if l.cells[i] == tile {
		return nil
	}
	l.cells[i] = tile
	l.DoneUpdating(OpCellsChanged)
	return nil
}

// Fill sets all cells to the given tile.
func (l *TileLayerModel) Fill(tile uuid.UUID) {
	for i := range l.cells {
		l.cells[i] = tile
	}
	l.DoneUpdating(OpCellsChanged)
}

// ClearTile empties every cell referring to tile and returns how many there
// were.
func (l *TileLayerModel) ClearTile(tile uuid.UUID) int {
	n := 0
	for i := range l.cells {
		if l.cells[i] == tile {
			l.cells[i] = uuid.Nil
			n++
		}
	}
	if n > 0 {
		l.DoneUpdating(OpCellsChanged)
	}
	return n
}

// Painted returns the number of non-empty cells.
func (l *TileLayerModel) Painted() int {
	n := 0
	for _, c := range l.cells {
		if c != uuid.Nil {
			n++
		}
	}
	return n
}

// CopyData copies identity, name, visibility, size and cells from another
// layer.
func (l *TileLayerModel) CopyData(from Model) error {
	f, ok := from.(*TileLayerModel)
	if !ok {
		return fmt.Errorf("%w: cannot copy %s into %s", ErrKindMismatch, from.Kind(), l.Kind())
	}
	l.id = f.id
	l.name = f.name
	l.visible = f.visible
	l.rows, l.columns = f.rows, f.columns
	l.cells = make([]uuid.UUID, len(f.cells))
	copy(l.cells, f.cells)
	return nil
}

// ClearData empties and unnames the layer, keeping its size.
func (l *TileLayerModel) ClearData() {
	l.SetSuppressUpdates(true)
	l.SetName("")
	l.SetVisible(true)
	l.Fill(uuid.Nil)
	l.SetSuppressUpdates(false)
	l.DoneUpdating(OpDataCleared)
}

// Record returns the layer's TileLayerRecord.
func (l *TileLayerModel) Record() Record {
	return TileLayerRecord{
		ID:      l.id.String(),
		Name:    l.name,
		Visible: l.visible,
		Rows:    l.rows,
		Columns: l.columns,
		Cells:   idsToStrings(l.cells),
	}
}

// TileLayerFromRecord returns a layer holding the record's data.
// The number of cells has to match the size.
func TileLayerFromRecord(r TileLayerRecord) (*TileLayerModel, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("layer '%s': %w", r.Name, err)
	}
	if r.Rows < 0 || r.Columns < 0 || len(r.Cells) != r.Rows*r.Columns {
		return nil, fmt.Errorf("layer '%s': %d cells do not fit %dx%d", r.Name, len(r.Cells), r.Rows, r.Columns)
	}
	cells, err := parseIDs(r.Cells)
	if err != nil {
		return nil, fmt.Errorf("layer '%s': %w", r.Name, err)
	}
	l := NewTileLayerModel()
	l.id = id
	l.name = r.Name
	l.visible = r.Visible
	l.rows, l.columns = r.Rows, r.Columns
	l.cells = cells
	return l, nil
}

func clampSize(rows, columns int) (int, int) {
	if rows < 0 {
		rows = 0
	}
	if columns < 0 {
		columns = 0
	}
	return rows, columns
}
