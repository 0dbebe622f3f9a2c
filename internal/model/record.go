package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/factory"
)

// Record is the persisted representation of a model.
type Record interface {
	RecordKind() factory.Kind
	RecordID() string
}

// ProjectRecord is the persisted representation of a ProjectModel.
type ProjectRecord struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	TileWidth  int      `yaml:"tile-width"`
	TileHeight int      `yaml:"tile-height"`
	TileMaps   []string `yaml:"tile-maps,omitempty"`
}

// TileMapRecord is the persisted representation of a TileMapModel.
type TileMapRecord struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Rows    int      `yaml:"rows"`
	Columns int      `yaml:"columns"`
	Layers  []string `yaml:"layers,omitempty"`
	Tiles   []string `yaml:"tiles,omitempty"`
}

// TileLayerRecord is the persisted representation of a TileLayerModel.
// Cells are stored row by row; an empty string is an empty cell.
type TileLayerRecord struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Visible bool     `yaml:"visible"`
	Rows    int      `yaml:"rows"`
	Columns int      `yaml:"columns"`
	Cells   []string `yaml:"cells,flow"`
}

// TileRecord is the persisted representation of a TileModel.
type TileRecord struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Image string `yaml:"image,omitempty"`
}

// ImageAssetRecord is the persisted representation of an ImageAsset.
type ImageAssetRecord struct {
	ID     string `yaml:"id"`
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func (r ProjectRecord) RecordKind() factory.Kind    { return KindProject }
func (r TileMapRecord) RecordKind() factory.Kind    { return KindTileMap }
func (r TileLayerRecord) RecordKind() factory.Kind  { return KindTileLayer }
func (r TileRecord) RecordKind() factory.Kind       { return KindTile }
func (r ImageAssetRecord) RecordKind() factory.Kind { return KindImageAsset }

func (r ProjectRecord) RecordID() string    { return r.ID }
func (r TileMapRecord) RecordID() string    { return r.ID }
func (r TileLayerRecord) RecordID() string  { return r.ID }
func (r TileRecord) RecordID() string       { return r.ID }
func (r ImageAssetRecord) RecordID() string { return r.ID }

func idsToStrings(ids []uuid.UUID) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			result = append(result, "")
		} else {
			result = append(result, id.String())
		}
	}
	return result
}

func parseIDs(ss []string) ([]uuid.UUID, error) {
	result := make([]uuid.UUID, 0, len(ss))
	for _, s := range ss {
		id, err := parseOptionalID(s)
		if err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, nil
}

func parseOptionalID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id '%s' (%w)", s, err)
	}
	return id, nil
}

func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, fmt.Errorf("missing id")
	}
	return parseOptionalID(s)
}
