package builder

import (
	"fmt"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/signal"
	"github.com/ja-he/tileplan/internal/storage"
)

// ExportBuilder writes every live model and data asset of a registry to a
// document provider.
type ExportBuilder struct {
	registry *factory.Registry
	sink     storage.DocumentProvider
}

// NewExportBuilder returns a builder exporting the models of r into sink.
func NewExportBuilder(r *factory.Registry, sink storage.DocumentProvider) *ExportBuilder {
	return &ExportBuilder{registry: r, sink: sink}
}

// Steps returns reset, pipe models, pipe assets and write.
func (b *ExportBuilder) Steps() []Step {
	return []Step{
		{Name: "reset", Run: func() error { b.sink.Reset(); return nil }},
		{Name: "pipe models", Run: b.pipeModels},
		{Name: "pipe assets", Run: b.pipeAssets},
		{Name: "write", Run: b.sink.Write},
	}
}

func (b *ExportBuilder) pipeModels() error {
	models, ok := model.Models(b.registry)
	if !ok {
		return fmt.Errorf("no model factory")
	}
	for _, kind := range []factory.Kind{model.KindProject, model.KindTileMap, model.KindTileLayer, model.KindTile} {
		models.MulticastSignalListeners(kind, b.pipeEvent())
	}
	return nil
}

func (b *ExportBuilder) pipeAssets() error {
	data, ok := model.Data(b.registry)
	if !ok {
		return fmt.Errorf("no data factory")
	}
	data.MulticastSignalListeners(model.KindImageAsset, b.pipeEvent())
	return nil
}

// the event has no source, so that no model is excluded
func (b *ExportBuilder) pipeEvent() *signal.EventArgs {
	return signal.NewEventArgs(nil, model.OpPipe).WithPayload(b.sink).WithSuppressedUpdate()
}
