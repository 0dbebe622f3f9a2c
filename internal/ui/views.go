package ui

import (
	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/signal"
)

// ViewFactoryKind is the kind the view factory is registered under.
const ViewFactoryKind factory.FactoryKind = "views"

// OpBind asks a view to (re)bind to the project carried as the event's
// payload.
const OpBind signal.Operation = "bind"

// View is a pane that observes models.
type View interface {
	factory.Resource
	Pane
}

// ViewFactory is a factory of views.
type ViewFactory = factory.SignalFactory[View]

// NewViewFactory returns the persistent factory of views. Views outlive the
// editing session's models and rebind when a project is opened.
func NewViewFactory() *ViewFactory {
	return factory.NewSignalFactory("views", factory.Persistent[View]())
}

// RegisterFactory registers the view factory with r.
func RegisterFactory(r *factory.Registry) {
	r.Register(ViewFactoryKind, func(*factory.Registry) (factory.Factory, error) { return NewViewFactory(), nil })
}

// Views returns the view factory of r.
func Views(r *factory.Registry) (*ViewFactory, bool) {
	return factory.As[*ViewFactory](r, ViewFactoryKind)
}

// Rebind signals every view in f to bind to project.
func Rebind(f *ViewFactory, source any, project *model.ProjectModel) {
	e := signal.NewEventArgs(source, OpBind).WithPayload(project)
	for _, kind := range f.Kinds() {
		f.MulticastSignalListeners(kind, e)
	}
}
