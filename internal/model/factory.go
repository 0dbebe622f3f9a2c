package model

import (
	"fmt"

	"github.com/ja-he/tileplan/internal/factory"
)

// Factory kinds under which the model factories are registered.
const (
	FactoryKind     factory.FactoryKind = "models"
	DataFactoryKind factory.FactoryKind = "data"
)

// Factory is a factory of models.
type Factory = factory.SignalFactory[Model]

// NewFactory returns the (non-persistent) factory of the editing session's
// models. Queued models are materialized onto live ones as they are added.
func NewFactory() *Factory {
	return factory.NewSignalFactory("models",
		factory.WithMaterializer(materialize),
		factory.WithConstructor(KindProject, func() (Model, error) { return NewProjectModel(), nil }),
		factory.WithConstructor(KindTileMap, func() (Model, error) { return NewTileMapModel(), nil }),
		factory.WithConstructor(KindTileLayer, func() (Model, error) { return NewTileLayerModel(), nil }),
		factory.WithConstructor(KindTile, func() (Model, error) { return NewTileModel(), nil }),
	)
}

// NewDataFactory returns the persistent factory of data assets, which
// survives the reset of a session.
func NewDataFactory() *Factory {
	return factory.NewSignalFactory("data",
		factory.Persistent[Model](),
		factory.WithMaterializer(materialize),
		factory.WithConstructor(KindImageAsset, func() (Model, error) { return NewImageAsset("", 0, 0), nil }),
	)
}

func materialize(live, cached Model) error {
	if err := live.CopyData(cached); err != nil {
		return err
	}
	live.Refresh()
	return nil
}

// RegisterFactories registers the model and data factories with r.
func RegisterFactories(r *factory.Registry) {
	r.Register(FactoryKind, func(*factory.Registry) (factory.Factory, error) { return NewFactory(), nil })
	r.Register(DataFactoryKind, func(*factory.Registry) (factory.Factory, error) { return NewDataFactory(), nil })
}

// Models returns the model factory of r.
func Models(r *factory.Registry) (*Factory, bool) {
	return factory.As[*Factory](r, FactoryKind)
}

// Data returns the data factory of r.
func Data(r *factory.Registry) (*Factory, bool) {
	return factory.As[*Factory](r, DataFactoryKind)
}

// AllOf returns all models of the given kind in f that are of type M.
func AllOf[M Model](f *Factory, kind factory.Kind) []M {
	result := []M{}
	for _, m := range f.GetAll(kind) {
		if typed, ok := m.(M); ok {
			result = append(result, typed)
		}
	}
	return result
}

// FromRecord returns a model holding the record's data.
func FromRecord(r Record) (Model, error) {
	switch rec := r.(type) {
	case ProjectRecord:
		return ProjectFromRecord(rec)
	case TileMapRecord:
		return TileMapFromRecord(rec)
	case TileLayerRecord:
		return TileLayerFromRecord(rec)
	case TileRecord:
		return TileFromRecord(rec)
	case ImageAssetRecord:
		return ImageAssetFromRecord(rec)
	default:
		return nil, fmt.Errorf("%w: unknown record type %T", ErrKindMismatch, r)
	}
}
