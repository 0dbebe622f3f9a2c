// Package control contains the controllers that carry out the editor's
// operations on the models of a session, and the setup of the registry they
// and everything else live in.
package control

import (
	"errors"
	"fmt"

	"github.com/ja-he/tileplan/internal/config"
	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/signal"
	"github.com/ja-he/tileplan/internal/ui"
)

// ControllerFactoryKind is the kind the controller factory is registered
// under.
const ControllerFactoryKind factory.FactoryKind = "controllers"

// Kinds of controllers.
const (
	KindProjectController factory.Kind = "project-controller"
	KindTileMapController factory.Kind = "tile-map-controller"
)

// Operations raised between controllers.
const (
	// OpModified tells the project controller that the session was edited.
	OpModified signal.Operation = "modified"
	// OpProjectOpened tells controllers that the session was replaced.
	OpProjectOpened signal.Operation = "project-opened"
)

// ErrNoProject is returned by operations that need an open project.
var ErrNoProject = errors.New("no project open")

// ControllerFactory is a factory of controllers.
type ControllerFactory = factory.SignalFactory[factory.Resource]

// NewControllerFactory returns the persistent factory of the controllers
// working on r, configured by cfg.
func NewControllerFactory(r *factory.Registry, cfg config.Config) *ControllerFactory {
	return factory.NewSignalFactory("controllers",
		factory.Persistent[factory.Resource](),
		factory.WithConstructor(KindProjectController, func() (factory.Resource, error) {
			return NewProjectController(r, cfg), nil
		}),
		factory.WithConstructor(KindTileMapController, func() (factory.Resource, error) {
			return NewTileMapController(r), nil
		}),
	)
}

// NewRegistry returns a registry with all factories of the editor
// registered: models, data assets, views and controllers.
func NewRegistry(cfg config.Config) *factory.Registry {
	r := factory.NewRegistry()
	model.RegisterFactories(r)
	ui.RegisterFactory(r)
	r.Register(ControllerFactoryKind, func(r *factory.Registry) (factory.Factory, error) {
		return NewControllerFactory(r, cfg), nil
	})
	return r
}

// Controllers returns the controller factory of r.
func Controllers(r *factory.Registry) (*ControllerFactory, bool) {
	return factory.As[*ControllerFactory](r, ControllerFactoryKind)
}

// Projects returns the shared project controller of r, creating it on first
// use.
func Projects(r *factory.Registry) (*ProjectController, error) {
	return sharedController[*ProjectController](r, KindProjectController)
}

// TileMaps returns the shared tile map controller of r, creating it on first
// use.
func TileMaps(r *factory.Registry) (*TileMapController, error) {
	return sharedController[*TileMapController](r, KindTileMapController)
}

func sharedController[C factory.Resource](r *factory.Registry, kind factory.Kind) (C, error) {
	var zero C
	f, ok := Controllers(r)
	if !ok {
		return zero, fmt.Errorf("no controller factory registered")
	}
	c, ok := f.Get(kind)
	if !ok {
		var err error
		c, err = f.Create(kind, true)
		if err != nil {
			return zero, err
		}
	}
	typed, ok := c.(C)
	if !ok {
		return zero, fmt.Errorf("controller of kind '%s' has unexpected type %T", kind, c)
	}
	return typed, nil
}

// notify invokes an event of the given operation on all controllers of the
// given kind in r.
func notify(r *factory.Registry, source any, kind factory.Kind, op signal.Operation) {
	if f, ok := Controllers(r); ok {
		f.MulticastSignalListeners(kind, signal.NewEventArgs(source, op))
	}
}

func modelFactory(r *factory.Registry) (*model.Factory, error) {
	models, ok := model.Models(r)
	if !ok {
		return nil, fmt.Errorf("no model factory registered")
	}
	return models, nil
}
