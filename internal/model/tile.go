package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/factory"
)

// DefaultTileColor is the color of tiles that were not given one.
const DefaultTileColor = "#cccccc"

// TileModel is a paintable tile of a tile map's palette.
// It has a color and can refer to an image asset for its looks.
type TileModel struct {
	Base

	name  string
	color string
	image uuid.UUID
}

// NewTileModel returns an empty tile with the default color.
func NewTileModel() *TileModel {
	t := &TileModel{color: DefaultTileColor}
	t.setup(t)
	t.pipeTo(t.Record)
	return t
}

// NewTile returns a tile of the given name and color.
func NewTile(name, color string) *TileModel {
	t := NewTileModel()
	t.name = name
	if color != "" {
		t.color = color
	}
	return t
}

// Kind returns KindTile.
func (t *TileModel) Kind() factory.Kind { return KindTile }

// Name returns the tile's name.
func (t *TileModel) Name() string { return t.name }

// SetName sets the tile's name.
func (t *TileModel) SetName(name string) {
	if t.name == name {
		return
	}
	t.name = name
	t.DoneUpdating(OpNameChanged)
}

// Color returns the tile's color in hex notation.
func (t *TileModel) Color() string { return t.color }

// SetColor sets the tile's color, given in hex notation.
func (t *TileModel) SetColor(color string) {
	if t.color == color {
		return
	}
	t.color = color
	t.DoneUpdating(OpColorChanged)
}

// Image returns the UUID of the image asset of the tile, uuid.Nil if none.
func (t *TileModel) Image() uuid.UUID { return t.image }

// SetImage sets the image asset of the tile; uuid.Nil unsets it.
func (t *TileModel) SetImage(image uuid.UUID) {
	if t.image == image {
		return
	}
	t.image = image
	t.DoneUpdating(OpImageChanged)
}

// CopyData copies identity, name, color and image from another tile.
func (t *TileModel) CopyData(from Model) error {
	f, ok := from.(*TileModel)
	if !ok {
		return fmt.Errorf("%w: cannot copy %s into %s", ErrKindMismatch, from.Kind(), t.Kind())
	}
	t.id = f.id
	t.name = f.name
	t.color = f.color
	t.image = f.image
	return nil
}

// ClearData resets the tile to an unnamed default-colored tile.
func (t *TileModel) ClearData() {
	t.SetSuppressUpdates(true)
	t.SetName("")
	t.SetColor(DefaultTileColor)
	t.SetImage(uuid.Nil)
	t.SetSuppressUpdates(false)
	t.DoneUpdating(OpDataCleared)
}

// Record returns the tile's TileRecord.
func (t *TileModel) Record() Record {
	r := TileRecord{
		ID:    t.id.String(),
		Name:  t.name,
		Color: t.color,
	}
	if t.image != uuid.Nil {
		r.Image = t.image.String()
	}
	return r
}

// TileFromRecord returns a tile holding the record's data.
func TileFromRecord(r TileRecord) (*TileModel, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("tile '%s': %w", r.Name, err)
	}
	image, err := parseOptionalID(r.Image)
	if err != nil {
		return nil, fmt.Errorf("tile '%s': %w", r.Name, err)
	}
	t := NewTile(r.Name, r.Color)
	t.id = id
	t.image = image
	return t, nil
}
