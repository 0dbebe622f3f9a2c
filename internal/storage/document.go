package storage

import (
	"fmt"

	"github.com/ja-he/tileplan/internal/model"
)

// DocumentVersion is the version of the document format written.
const DocumentVersion = 1

// Document is the persisted form of a project: the records of all models,
// grouped per kind, each group in the order the records were put.
type Document struct {
	Version int `yaml:"version"`

	Projects []model.ProjectRecord    `yaml:"projects,omitempty"`
	TileMaps []model.TileMapRecord    `yaml:"tile-maps,omitempty"`
	Layers   []model.TileLayerRecord  `yaml:"layers,omitempty"`
	Tiles    []model.TileRecord       `yaml:"tiles,omitempty"`
	Assets   []model.ImageAssetRecord `yaml:"assets,omitempty"`
}

// NewDocument returns an empty document of the current version.
func NewDocument() *Document {
	return &Document{Version: DocumentVersion}
}

// Put adds r to the group of its kind.
// Records of unknown types are dropped.
func (d *Document) Put(r model.Record) {
	switch rec := r.(type) {
	case model.ProjectRecord:
		d.Projects = append(d.Projects, rec)
	case model.TileMapRecord:
		d.TileMaps = append(d.TileMaps, rec)
	case model.TileLayerRecord:
		d.Layers = append(d.Layers, rec)
	case model.TileRecord:
		d.Tiles = append(d.Tiles, rec)
	case model.ImageAssetRecord:
		d.Assets = append(d.Assets, rec)
	}
}

// Records returns all records in document order: projects, tile maps,
// layers, tiles and finally assets.
func (d *Document) Records() []model.Record {
	result := make([]model.Record, 0, d.Len())
	for _, r := range d.Projects {
		result = append(result, r)
	}
	for _, r := range d.TileMaps {
		result = append(result, r)
	}
	for _, r := range d.Layers {
		result = append(result, r)
	}
	for _, r := range d.Tiles {
		result = append(result, r)
	}
	for _, r := range d.Assets {
		result = append(result, r)
	}
	return result
}

// Len returns the number of records in the document.
func (d *Document) Len() int {
	return len(d.Projects) + len(d.TileMaps) + len(d.Layers) + len(d.Tiles) + len(d.Assets)
}

// Check validates the document's structure: supported version, unique ids,
// references that point at records of the right kind, and layers that fit
// the map they are in and only hold tiles of that map.
func (d *Document) Check() error {
	if d.Version > DocumentVersion {
		return fmt.Errorf("unsupported document version %d (newest known is %d)", d.Version, DocumentVersion)
	}

	kinds := make(map[string]string, d.Len())
	for _, r := range d.Records() {
		if _, dup := kinds[r.RecordID()]; dup {
			return fmt.Errorf("duplicate id '%s'", r.RecordID())
		}
		kinds[r.RecordID()] = string(r.RecordKind())
	}

	refersTo := func(owner string, ids []string, kind string) error {
		for _, id := range ids {
			if id == "" {
				continue
			}
			if got, ok := kinds[id]; !ok || got != kind {
				return fmt.Errorf("%s refers to unknown %s '%s'", owner, kind, id)
			}
		}
		return nil
	}
	for _, p := range d.Projects {
		if err := refersTo("project '"+p.Name+"'", p.TileMaps, string(model.KindTileMap)); err != nil {
			return err
		}
	}
	for _, m := range d.TileMaps {
		if err := refersTo("tile map '"+m.Name+"'", m.Layers, string(model.KindTileLayer)); err != nil {
			return err
		}
		if err := refersTo("tile map '"+m.Name+"'", m.Tiles, string(model.KindTile)); err != nil {
			return err
		}
	}
	for _, t := range d.Tiles {
		if err := refersTo("tile '"+t.Name+"'", []string{t.Image}, string(model.KindImageAsset)); err != nil {
			return err
		}
	}

	layerByID := make(map[string]model.TileLayerRecord, len(d.Layers))
	for _, l := range d.Layers {
		layerByID[l.ID] = l
	}
	for _, m := range d.TileMaps {
		palette := make(map[string]bool, len(m.Tiles))
		for _, id := range m.Tiles {
			palette[id] = true
		}
		for _, id := range m.Layers {
			l := layerByID[id]
			if l.Rows != m.Rows || l.Columns != m.Columns {
				return fmt.Errorf("layer '%s' is %dx%d, its tile map '%s' is %dx%d",
					l.Name, l.Rows, l.Columns, m.Name, m.Rows, m.Columns)
			}
			for i, cell := range l.Cells {
				if cell != "" && !palette[cell] {
					return fmt.Errorf("cell %d of layer '%s' holds tile '%s', which tile map '%s' does not have",
						i, l.Name, cell, m.Name)
				}
			}
		}
	}
	return nil
}

// Copy returns a deep copy of the document.
func (d *Document) Copy() *Document {
	c := &Document{
		Version:  d.Version,
		Projects: append([]model.ProjectRecord(nil), d.Projects...),
		TileMaps: append([]model.TileMapRecord(nil), d.TileMaps...),
		Layers:   append([]model.TileLayerRecord(nil), d.Layers...),
		Tiles:    append([]model.TileRecord(nil), d.Tiles...),
		Assets:   append([]model.ImageAssetRecord(nil), d.Assets...),
	}
	for i := range c.Projects {
		c.Projects[i].TileMaps = append([]string(nil), c.Projects[i].TileMaps...)
	}
	for i := range c.TileMaps {
		c.TileMaps[i].Layers = append([]string(nil), c.TileMaps[i].Layers...)
		c.TileMaps[i].Tiles = append([]string(nil), c.TileMaps[i].Tiles...)
	}
	for i := range c.Layers {
		c.Layers[i].Cells = append([]string(nil), c.Layers[i].Cells...)
	}
	return c
}
