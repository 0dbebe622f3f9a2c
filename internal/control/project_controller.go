package control

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/builder"
	"github.com/ja-he/tileplan/internal/config"
	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/signal"
	"github.com/ja-he/tileplan/internal/storage"
	"github.com/ja-he/tileplan/internal/ui"
)

// ErrNoPath is returned when saving a project that was never saved or
// opened, without giving a path.
var ErrNoPath = errors.New("no path to save to")

// ProjectController creates, opens and saves projects, and keeps track of
// whether the open project was modified since.
type ProjectController struct {
	signal.Signals

	registry *factory.Registry
	director *builder.Director
	cfg      config.Config

	project  *model.ProjectModel
	path     string
	modified bool

	log zerolog.Logger
}

// NewProjectController returns a project controller working on r.
func NewProjectController(r *factory.Registry, cfg config.Config) *ProjectController {
	c := &ProjectController{
		registry: r,
		director: builder.NewDirector(),
		cfg:      cfg,
		log:      log.With().Str("component", "project-controller").Logger(),
	}
	c.registerSignalListeners()
	return c
}

func (c *ProjectController) registerSignalListeners() {
	c.AddSignal(OpModified, func(*signal.EventArgs) {
		c.modified = true
	})
	c.AddSignal(model.OpRemoved, func(e *signal.EventArgs) {
		if c.project != nil && c.project.Equals(e.Source()) {
			c.project = nil
		}
	})
	c.BindUpdate(func(e *signal.EventArgs) {
		switch e.OperationName() {
		case model.OpNameChanged, model.OpTileSizeChanged, model.OpTileMapAdded, model.OpTileMapRemoved:
			if _, fromProject := e.Source().(*model.ProjectModel); fromProject {
				c.modified = true
			}
		}
	})
}

// Kind returns KindProjectController.
func (c *ProjectController) Kind() factory.Kind { return KindProjectController }

// Project returns the open project, nil if there is none.
func (c *ProjectController) Project() *model.ProjectModel { return c.project }

// Path returns the file the project was last opened from or saved to.
func (c *ProjectController) Path() string { return c.path }

// Modified returns whether the project was edited since it was created,
// opened or saved.
func (c *ProjectController) Modified() bool { return c.modified }

// NewProject replaces the session with a new project, named name (or the
// configured default name if empty), holding one tile map with one layer
// and the configured palette.
func (c *ProjectController) NewProject(name string, rows, columns int) (*model.ProjectModel, error) {
	models, err := modelFactory(c.registry)
	if err != nil {
		return nil, err
	}
	defaults := c.cfg.Defaults
	if name == "" {
		name = defaults.ProjectName
	}
	if rows <= 0 {
		rows = defaults.Rows
	}
	if columns <= 0 {
		columns = defaults.Columns
	}

	c.registry.ClearFactories()

	project := models.Add(model.NewProject(name, defaults.TileWidth, defaults.TileHeight), true).(*model.ProjectModel)
	tileMap := models.Add(model.NewTileMap("map", rows, columns), false).(*model.TileMapModel)
	tileMap.AddLayer(models.Add(model.NewTileLayer("ground", rows, columns), false).(*model.TileLayerModel))
	for _, t := range c.cfg.Palette {
		tileMap.AddTile(models.Add(model.NewTile(t.Name, t.Color), false).(*model.TileModel))
	}
	project.AddTileMap(tileMap)

	c.open(project, "")
	c.log.Info().Str("name", name).Int("rows", rows).Int("columns", columns).Msg("created new project")
	return project, nil
}

// Open replaces the session with the project read from the file at path.
// If the file cannot be read or is invalid, the session is left as it was.
func (c *ProjectController) Open(path string) error {
	b := builder.NewImportBuilder(c.registry, storage.NewFileSystem(path))
	if err := c.director.Construct(b); err != nil {
		return fmt.Errorf("could not open '%s' (%w)", path, err)
	}

	c.open(b.Project(), path)
	c.log.Info().Str("path", path).Str("name", b.Project().Name()).Msg("opened project")
	return nil
}

// Save writes the open project to the file at path; an empty path saves to
// the file the project was last opened from or saved to.
func (c *ProjectController) Save(path string) error {
	if c.project == nil {
		return ErrNoProject
	}
	if path == "" {
		path = c.path
	}
	if path == "" {
		return ErrNoPath
	}

	b := builder.NewExportBuilder(c.registry, storage.NewFileSystem(path))
	if err := c.director.Construct(b); err != nil {
		return fmt.Errorf("could not save to '%s' (%w)", path, err)
	}

	c.path = path
	c.modified = false
	c.log.Info().Str("path", path).Msg("saved project")
	return nil
}

// open makes project the open project and tells views and controllers.
func (c *ProjectController) open(project *model.ProjectModel, path string) {
	if c.project != nil && !c.project.Disposed() {
		c.project.RemoveListener(c)
	}
	c.project = project
	c.path = path
	project.AddListener(c)
	c.modified = false

	notify(c.registry, c, KindTileMapController, OpProjectOpened)
	if views, ok := ui.Views(c.registry); ok {
		ui.Rebind(views, c, project)
	}
}
