package builder

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/storage"
)

// ImportBuilder replaces the session of a registry with the project read
// from a document provider.
//
// The document is read and fully validated before the session is touched;
// an invalid document leaves the registry as it was.
type ImportBuilder struct {
	registry *factory.Registry
	source   storage.DocumentProvider

	doc     *storage.Document
	models  []model.Model
	assets  []model.Model
	project *model.ProjectModel
}

// NewImportBuilder returns a builder importing the project of source into r.
func NewImportBuilder(r *factory.Registry, source storage.DocumentProvider) *ImportBuilder {
	return &ImportBuilder{registry: r, source: source}
}

// Steps returns read, validate, queue, materialize and link.
func (b *ImportBuilder) Steps() []Step {
	return []Step{
		{Name: "read", Run: b.read},
		{Name: "validate", Run: b.validate},
		{Name: "queue", Run: b.queue},
		{Name: "materialize", Run: b.materialize},
		{Name: "link", Run: b.link},
	}
}

// Project returns the imported project, nil before a successful build.
func (b *ImportBuilder) Project() *model.ProjectModel { return b.project }

func (b *ImportBuilder) read() error {
	doc, err := b.source.Read()
	if err != nil {
		return err
	}
	b.doc = doc
	return nil
}

func (b *ImportBuilder) validate() error {
	if err := b.doc.Check(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, err.Error())
	}
	if len(b.doc.Projects) != 1 {
		return fmt.Errorf("%w: expected exactly one project, found %d", ErrInvalidDocument, len(b.doc.Projects))
	}

	b.models, b.assets = nil, nil
	for _, r := range b.doc.Records() {
		m, err := model.FromRecord(r)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidDocument, err.Error())
		}
		if m.Kind() == model.KindImageAsset {
			b.assets = append(b.assets, m)
		} else {
			b.models = append(b.models, m)
		}
	}

	// images of tiles must be of the project's tile size
	p := b.doc.Projects[0]
	assetByID := make(map[string]model.ImageAssetRecord, len(b.doc.Assets))
	for _, a := range b.doc.Assets {
		assetByID[a.ID] = a
	}
	for _, t := range b.doc.Tiles {
		if t.Image == "" {
			continue
		}
		a := assetByID[t.Image]
		if a.Width != p.TileWidth || a.Height != p.TileHeight {
			return fmt.Errorf("%w: image '%s' of tile '%s' is %dx%d, tiles are %dx%d",
				ErrInvalidDocument, a.Path, t.Name, a.Width, a.Height, p.TileWidth, p.TileHeight)
		}
	}

	return nil
}

func (b *ImportBuilder) queue() error {
	models, ok := model.Models(b.registry)
	if !ok {
		return fmt.Errorf("no model factory")
	}
	data, ok := model.Data(b.registry)
	if !ok {
		return fmt.Errorf("no data factory")
	}

	b.registry.ClearFactories()

	for _, m := range b.models {
		models.QueueResource(m)
	}
	for _, a := range b.assets {
		if hasModel(data, a.Kind(), a.UUID()) {
			log.Debug().Str("asset", a.UUID().String()).Msg("asset already loaded, not queueing")
			continue
		}
		data.QueueResource(a)
	}
	return nil
}

func (b *ImportBuilder) materialize() error {
	models, _ := model.Models(b.registry)
	data, _ := model.Data(b.registry)

	for _, f := range []*model.Factory{models, data} {
		for _, kind := range []factory.Kind{model.KindProject, model.KindTileMap, model.KindTileLayer, model.KindTile, model.KindImageAsset} {
			for f.Queued(kind) > 0 {
				if _, err := f.Create(kind, shared(kind)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (b *ImportBuilder) link() error {
	models, _ := model.Models(b.registry)

	layers := indexByID(model.AllOf[*model.TileLayerModel](models, model.KindTileLayer))
	tiles := indexByID(model.AllOf[*model.TileModel](models, model.KindTile))
	mapList := model.AllOf[*model.TileMapModel](models, model.KindTileMap)
	maps := indexByID(mapList)

	for _, m := range mapList {
		err := m.Link(
			func(id uuid.UUID) *model.TileLayerModel { return layers[id] },
			func(id uuid.UUID) *model.TileModel { return tiles[id] },
		)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidDocument, err.Error())
		}
	}

	projects := model.AllOf[*model.ProjectModel](models, model.KindProject)
	if len(projects) != 1 {
		return fmt.Errorf("expected one project after materializing, have %d", len(projects))
	}
	err := projects[0].Link(func(id uuid.UUID) *model.TileMapModel { return maps[id] })
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, err.Error())
	}

	b.project = projects[0]
	return nil
}

// the project and the data assets are looked up by kind, so they are shared
func shared(kind factory.Kind) bool {
	return kind == model.KindProject || kind == model.KindImageAsset
}

func hasModel(f *model.Factory, kind factory.Kind, id uuid.UUID) bool {
	for _, m := range f.GetAll(kind) {
		if m.UUID() == id {
			return true
		}
	}
	return false
}

func indexByID[M model.Model](ms []M) map[uuid.UUID]M {
	result := make(map[uuid.UUID]M, len(ms))
	for _, m := range ms {
		result[m.UUID()] = m
	}
	return result
}
