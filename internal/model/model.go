// Package model contains the editor's models: the project, its tile maps,
// their layers and tiles, and the image assets tiles may refer to.
//
// All models embed Base, which gives them a UUID identity, a list of
// observing listeners and the suppressible change broadcast.
package model

import (
	"errors"

	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/signal"
)

// ErrKindMismatch is returned when data is copied between models of
// different kinds.
var ErrKindMismatch = errors.New("model kind mismatch")

// Kinds of models.
const (
	KindProject    factory.Kind = "project"
	KindTileMap    factory.Kind = "tile-map"
	KindTileLayer  factory.Kind = "tile-layer"
	KindTile       factory.Kind = "tile"
	KindImageAsset factory.Kind = "image-asset"

	// KindAsset is not the kind of any model itself; all data assets extend it.
	KindAsset factory.Kind = "asset"
)

// Operations raised by models.
const (
	OpNameChanged       signal.Operation = "name-changed"
	OpResized           signal.Operation = "resized"
	OpDataCleared       signal.Operation = "data-cleared"
	OpRemoved           signal.Operation = "removed"
	OpTileMapAdded      signal.Operation = "tile-map-added"
	OpTileMapRemoved    signal.Operation = "tile-map-removed"
	OpLayerAdded        signal.Operation = "layer-added"
	OpLayerRemoved      signal.Operation = "layer-removed"
	OpTileAdded         signal.Operation = "tile-added"
	OpTileRemoved       signal.Operation = "tile-removed"
	OpCellsChanged      signal.Operation = "cells-changed"
	OpVisibilityChanged signal.Operation = "visibility-changed"
	OpColorChanged      signal.Operation = "color-changed"
	OpImageChanged      signal.Operation = "image-changed"
	OpTileSizeChanged   signal.Operation = "tile-size-changed"

	// OpPipe asks a model to write its record into the Sink carried as the
	// event's payload.
	OpPipe signal.Operation = "pipe"
)

// Model is implemented by all models.
type Model interface {
	factory.Resource

	UUID() uuid.UUID
	Equals(other any) bool

	AddListener(l signal.Listener)
	RemoveListener(l signal.Listener)

	// CopyData overwrites this model's persisted data (including its identity)
	// with from's and returns ErrKindMismatch if from is of a different kind.
	CopyData(from Model) error
	// ClearData resets the model's data, announcing it once.
	ClearData()

	Refresh()
	Dispose()

	// Record returns the persisted representation of the model.
	Record() Record
}

// A Sink takes the records of models, e.g. to write them to a file.
type Sink interface {
	Put(r Record)
}
