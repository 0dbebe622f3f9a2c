package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/signal"
)

// TileMapModel is a grid-shaped map made up of layers, painted with the tiles
// of its palette.
type TileMapModel struct {
	Base

	name          string
	rows, columns int

	layers []*TileLayerModel
	tiles  []*TileModel

	// children known by identity only, after CopyData; resolved by Link
	pendingLayers []uuid.UUID
	pendingTiles  []uuid.UUID
}

// NewTileMapModel returns an empty, unnamed, zero-sized tile map.
func NewTileMapModel() *TileMapModel {
	m := &TileMapModel{}
	m.setup(m)
	m.registerSignalListeners()
	return m
}

// NewTileMap returns an empty tile map of the given name and size.
func NewTileMap(name string, rows, columns int) *TileMapModel {
	m := NewTileMapModel()
	m.name = name
	m.rows, m.columns = clampSize(rows, columns)
	return m
}

func (m *TileMapModel) registerSignalListeners() {
	m.AddSignal(OpLayerRemoved, func(e *signal.EventArgs) {
		if layer, ok := e.Source().(*TileLayerModel); ok {
			m.RemoveLayer(layer)
		}
	})
	m.AddSignal(OpTileRemoved, func(e *signal.EventArgs) {
		if tile, ok := e.Source().(*TileModel); ok {
			m.RemoveTile(tile)
		}
	})
	m.pipeTo(m.Record)
}

// Kind returns KindTileMap.
func (m *TileMapModel) Kind() factory.Kind { return KindTileMap }

// Name returns the map's name.
func (m *TileMapModel) Name() string { return m.name }

// SetName sets the map's name and announces OpNameChanged.
func (m *TileMapModel) SetName(name string) {
	if m.name == name {
		return
	}
	m.name = name
	m.DoneUpdating(OpNameChanged)
}

// Rows returns the number of rows.
func (m *TileMapModel) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *TileMapModel) Columns() int { return m.columns }

// SetSize resizes the map and all of its layers.
func (m *TileMapModel) SetSize(rows, columns int) {
	rows, columns = clampSize(rows, columns)
	if rows == m.rows && columns == m.columns {
		return
	}
	m.rows, m.columns = rows, columns
	for _, l := range m.layers {
		l.Resize(rows, columns)
	}
	m.DoneUpdating(OpResized)
}

// Layers returns the map's layers, bottom first.
func (m *TileMapModel) Layers() []*TileLayerModel {
	result := make([]*TileLayerModel, len(m.layers))
	copy(result, m.layers)
	return result
}

// LayerByID returns the layer of the given identity, nil if there is none.
func (m *TileMapModel) LayerByID(id uuid.UUID) *TileLayerModel {
	for _, l := range m.layers {
		if l.UUID() == id {
			return l
		}
	}
	return nil
}

// AddLayer puts layer on top of the map's layers, resizing it to the map's
// size if needed.
func (m *TileMapModel) AddLayer(layer *TileLayerModel) {
	if layer == nil || m.LayerByID(layer.UUID()) != nil {
		return
	}
	layer.Resize(m.rows, m.columns)
	m.layers = append(m.layers, layer)
	m.DoneUpdating(OpLayerAdded)
}

// RemoveLayer removes the layer of layer's identity and returns whether it
// was present.
func (m *TileMapModel) RemoveLayer(layer *TileLayerModel) bool {
	for i, l := range m.layers {
		if l.Equals(layer) {
			m.layers = append(m.layers[:i:i], m.layers[i+1:]...)
			m.DoneUpdating(OpLayerRemoved)
			return true
		}
	}
	return false
}

// Tiles returns the map's palette.
func (m *TileMapModel) Tiles() []*TileModel {
	result := make([]*TileModel, len(m.tiles))
	copy(result, m.tiles)
	return result
}

// TileByID returns the palette tile of the given identity, nil if there is
// none.
func (m *TileMapModel) TileByID(id uuid.UUID) *TileModel {
	for _, t := range m.tiles {
		if t.UUID() == id {
			return t
		}
	}
	return nil
}

// AddTile appends tile to the map's palette.
func (m *TileMapModel) AddTile(tile *TileModel) {
	if tile == nil || m.TileByID(tile.UUID()) != nil {
		return
	}
	m.tiles = append(m.tiles, tile)
	m.DoneUpdating(OpTileAdded)
}

// RemoveTile removes the tile of tile's identity from the palette and returns
// whether it was present. Cells referring to it are not touched; the layers
// take care of that themselves when signalled.
func (m *TileMapModel) RemoveTile(tile *TileModel) bool {
	for i, t := range m.tiles {
		if t.Equals(tile) {
			m.tiles = append(m.tiles[:i:i], m.tiles[i+1:]...)
			m.DoneUpdating(OpTileRemoved)
			return true
		}
	}
	return false
}

// LayerIDs returns the identities of all layers, linked or pending.
func (m *TileMapModel) LayerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m.layers)+len(m.pendingLayers))
	for _, l := range m.layers {
		ids = append(ids, l.UUID())
	}
	return append(ids, m.pendingLayers...)
}

// TileIDs returns the identities of all palette tiles, linked or pending.
func (m *TileMapModel) TileIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m.tiles)+len(m.pendingTiles))
	for _, t := range m.tiles {
		ids = append(ids, t.UUID())
	}
	return append(ids, m.pendingTiles...)
}

// Pending returns whether the map has children known by identity only.
func (m *TileMapModel) Pending() bool {
	return len(m.pendingLayers) > 0 || len(m.pendingTiles) > 0
}

// Link resolves the children known by identity only through the given
// lookups and announces the result once.
// Children that cannot be resolved stay pending and are reported in the
// returned error.
func (m *TileMapModel) Link(layerByID func(uuid.UUID) *TileLayerModel, tileByID func(uuid.UUID) *TileModel) error {
	missing := []string{}

	m.SetSuppressUpdates(true)
	pendingLayers := m.pendingLayers
	m.pendingLayers = nil
	for _, id := range pendingLayers {
		if l := layerByID(id); l != nil {
			m.AddLayer(l)
		} else {
			m.pendingLayers = append(m.pendingLayers, id)
			missing = append(missing, "layer "+id.String())
		}
	}
	pendingTiles := m.pendingTiles
	m.pendingTiles = nil
	for _, id := range pendingTiles {
		if t := tileByID(id); t != nil {
			m.AddTile(t)
		} else {
			m.pendingTiles = append(m.pendingTiles, id)
			missing = append(missing, "tile "+id.String())
		}
	}
	m.SetSuppressUpdates(false)
	m.Refresh()

	if len(missing) > 0 {
		return fmt.Errorf("tile map '%s' has unresolved children: %s", m.name, strings.Join(missing, ", "))
	}
	return nil
}

// CopyData copies identity, name and size from another tile map. Its
// children are taken over by identity and need to be linked.
func (m *TileMapModel) CopyData(from Model) error {
	f, ok := from.(*TileMapModel)
	if !ok {
		return fmt.Errorf("%w: cannot copy %s into %s", ErrKindMismatch, from.Kind(), m.Kind())
	}
	m.id = f.id
	m.name = f.name
	m.rows, m.columns = f.rows, f.columns
	m.layers, m.tiles = nil, nil
	m.pendingLayers = f.LayerIDs()
	m.pendingTiles = f.TileIDs()
	return nil
}

// ClearData resets the map to an unnamed, zero-sized map without layers or
// tiles, announcing OpDataCleared once.
func (m *TileMapModel) ClearData() {
	m.SetSuppressUpdates(true)
	m.SetName("")
	for _, l := range m.Layers() {
		m.RemoveLayer(l)
	}
	for _, t := range m.Tiles() {
		m.RemoveTile(t)
	}
	m.SetSize(0, 0)
	m.pendingLayers, m.pendingTiles = nil, nil
	m.SetSuppressUpdates(false)
	m.DoneUpdating(OpDataCleared)
}

// Record returns the map's TileMapRecord.
func (m *TileMapModel) Record() Record {
	return TileMapRecord{
		ID:      m.id.String(),
		Name:    m.name,
		Rows:    m.rows,
		Columns: m.columns,
		Layers:  idsToStrings(m.LayerIDs()),
		Tiles:   idsToStrings(m.TileIDs()),
	}
}

// TileMapFromRecord returns a tile map holding the record's data, with its
// children pending.
func TileMapFromRecord(r TileMapRecord) (*TileMapModel, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("tile map '%s': %w", r.Name, err)
	}
	layers, err := parseIDs(r.Layers)
	if err != nil {
		return nil, fmt.Errorf("tile map '%s': %w", r.Name, err)
	}
	tiles, err := parseIDs(r.Tiles)
	if err != nil {
		return nil, fmt.Errorf("tile map '%s': %w", r.Name, err)
	}
	m := NewTileMap(r.Name, r.Rows, r.Columns)
	m.id = id
	m.pendingLayers = layers
	m.pendingTiles = tiles
	return m, nil
}
