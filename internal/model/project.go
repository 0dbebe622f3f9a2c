package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/signal"
)

// ProjectModel is the root of an editing session: a named collection of tile
// maps sharing a tile size.
type ProjectModel struct {
	Base

	name                  string
	tileWidth, tileHeight int

	tileMaps        []*TileMapModel
	pendingTileMaps []uuid.UUID
}

// NewProjectModel returns an empty, unnamed project.
func NewProjectModel() *ProjectModel {
	p := &ProjectModel{}
	p.setup(p)
	p.registerSignalListeners()
	return p
}

// NewProject returns an empty project of the given name and tile size.
func NewProject(name string, tileWidth, tileHeight int) *ProjectModel {
	p := NewProjectModel()
	p.name = name
	p.tileWidth, p.tileHeight = clampSize(tileWidth, tileHeight)
	return p
}

func (p *ProjectModel) registerSignalListeners() {
	p.AddSignal(OpTileMapRemoved, func(e *signal.EventArgs) {
		if m, ok := e.Source().(*TileMapModel); ok {
			p.RemoveTileMap(m)
		}
	})
	p.pipeTo(p.Record)
}

// Kind returns KindProject.
func (p *ProjectModel) Kind() factory.Kind { return KindProject }

// Name returns the project's name.
func (p *ProjectModel) Name() string { return p.name }

// SetName sets the project's name.
func (p *ProjectModel) SetName(name string) {
	if p.name == name {
		return
	}
	p.name = name
	p.DoneUpdating(OpNameChanged)
}

// TileSize returns the width and height of the project's tiles in pixels.
func (p *ProjectModel) TileSize() (width, height int) { return p.tileWidth, p.tileHeight }

// SetTileSize sets the width and height of the project's tiles in pixels.
func (p *ProjectModel) SetTileSize(width, height int) {
	width, height = clampSize(width, height)
	if width == p.tileWidth && height == p.tileHeight {
		return
	}
	p.tileWidth, p.tileHeight = width, height
	p.DoneUpdating(OpTileSizeChanged)
}

// TileMaps returns the project's tile maps.
func (p *ProjectModel) TileMaps() []*TileMapModel {
	result := make([]*TileMapModel, len(p.tileMaps))
	copy(result, p.tileMaps)
	return result
}

// TileMapByID returns the tile map of the given identity, nil if there is
// none.
func (p *ProjectModel) TileMapByID(id uuid.UUID) *TileMapModel {
	for _, m := range p.tileMaps {
		if m.UUID() == id {
			return m
		}
	}
	return nil
}

// AddTileMap adds m to the project.
func (p *ProjectModel) AddTileMap(m *TileMapModel) {
	if m == nil || p.TileMapByID(m.UUID()) != nil {
		return
	}
	p.tileMaps = append(p.tileMaps, m)
	p.DoneUpdating(OpTileMapAdded)
}

// RemoveTileMap removes the tile map of m's identity and returns whether it
// was present.
func (p *ProjectModel) RemoveTileMap(m *TileMapModel) bool {
	for i, existing := range p.tileMaps {
		if existing.Equals(m) {
			p.tileMaps = append(p.tileMaps[:i:i], p.tileMaps[i+1:]...)
			p.DoneUpdating(OpTileMapRemoved)
			return true
		}
	}
	return false
}

// TileMapIDs returns the identities of all tile maps, linked or pending.
func (p *ProjectModel) TileMapIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.tileMaps)+len(p.pendingTileMaps))
	for _, m := range p.tileMaps {
		ids = append(ids, m.UUID())
	}
	return append(ids, p.pendingTileMaps...)
}

// Link resolves the tile maps known by identity only and announces the
// result once. Unresolvable ones stay pending and are reported.
func (p *ProjectModel) Link(tileMapByID func(uuid.UUID) *TileMapModel) error {
	missing := []string{}

	p.SetSuppressUpdates(true)
	pending := p.pendingTileMaps
	p.pendingTileMaps = nil
	for _, id := range pending {
		if m := tileMapByID(id); m != nil {
			p.AddTileMap(m)
		} else {
			p.pendingTileMaps = append(p.pendingTileMaps, id)
			missing = append(missing, id.String())
		}
	}
	p.SetSuppressUpdates(false)
	p.Refresh()

	if len(missing) > 0 {
		return fmt.Errorf("project '%s' has unresolved tile maps: %s", p.name, strings.Join(missing, ", "))
	}
	return nil
}

// CopyData copies identity, name and tile size from another project. Its
// tile maps are taken over by identity and need to be linked.
func (p *ProjectModel) CopyData(from Model) error {
	f, ok := from.(*ProjectModel)
	if !ok {
		return fmt.Errorf("%w: cannot copy %s into %s", ErrKindMismatch, from.Kind(), p.Kind())
	}
	p.id = f.id
	p.name = f.name
	p.tileWidth, p.tileHeight = f.tileWidth, f.tileHeight
	p.tileMaps = nil
	p.pendingTileMaps = f.TileMapIDs()
	return nil
}

// ClearData resets the project to an unnamed project without tile maps,
// announcing OpDataCleared once.
func (p *ProjectModel) ClearData() {
	p.SetSuppressUpdates(true)
	p.SetName("")
	p.SetTileSize(0, 0)
	for _, m := range p.TileMaps() {
		p.RemoveTileMap(m)
	}
	p.pendingTileMaps = nil
	p.SetSuppressUpdates(false)
	p.DoneUpdating(OpDataCleared)
}

// Record returns the project's ProjectRecord.
func (p *ProjectModel) Record() Record {
	return ProjectRecord{
		ID:         p.id.String(),
		Name:       p.name,
		TileWidth:  p.tileWidth,
		TileHeight: p.tileHeight,
		TileMaps:   idsToStrings(p.TileMapIDs()),
	}
}

// ProjectFromRecord returns a project holding the record's data, with its
// tile maps pending.
func ProjectFromRecord(r ProjectRecord) (*ProjectModel, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("project '%s': %w", r.Name, err)
	}
	maps, err := parseIDs(r.TileMaps)
	if err != nil {
		return nil, fmt.Errorf("project '%s': %w", r.Name, err)
	}
	p := NewProject(r.Name, r.TileWidth, r.TileHeight)
	p.id = id
	p.pendingTileMaps = maps
	return p, nil
}
