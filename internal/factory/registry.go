package factory

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FactoryKind identifies a factory within a Registry.
type FactoryKind string

// Factory is the part of a factory the Registry manages.
type Factory interface {
	Name() string
	Persistent() bool
	Running() bool
	Clear()
}

// Constructor constructs a factory. It is handed the registry so that the
// factory may look up the factories it depends on.
type Constructor func(r *Registry) (Factory, error)

// Registry holds at most one factory per FactoryKind.
// Factories are constructed on first request from the registered
// constructors and kept until the registry is dropped.
type Registry struct {
	constructors map[FactoryKind]Constructor
	factories    map[FactoryKind]Factory
	order        []FactoryKind

	log zerolog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[FactoryKind]Constructor),
		factories:    make(map[FactoryKind]Factory),
		log:          log.With().Str("component", "factory-registry").Logger(),
	}
}

// Register sets the constructor for kind. It does not construct anything and
// does not affect an already constructed factory of that kind.
func (r *Registry) Register(kind FactoryKind, ctor Constructor) {
	r.constructors[kind] = ctor
}

// Factory returns the factory of the given kind, constructing it if needed.
// If the kind is unknown or construction fails, the failure is logged and
// nil is returned.
func (r *Registry) Factory(kind FactoryKind) Factory {
	if f, ok := r.factories[kind]; ok {
		return f
	}

	ctor, ok := r.constructors[kind]
	if !ok {
		r.log.Error().Str("kind", string(kind)).Msg("no constructor registered for factory")
		return nil
	}

	f, err := constructFactory(r, ctor)
	if err != nil {
		r.log.Error().Err(err).Str("kind", string(kind)).Msg("could not construct factory")
		return nil
	}

	r.factories[kind] = f
	r.order = append(r.order, kind)
	r.log.Debug().Str("kind", string(kind)).Str("name", f.Name()).Bool("persistent", f.Persistent()).Msg("constructed factory")
	return f
}

func constructFactory(r *Registry, ctor Constructor) (f Factory, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: constructor panicked: %v", ErrConstruction, recovered)
		}
	}()
	f, err = ctor(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConstruction, err.Error())
	}
	if f == nil {
		return nil, fmt.Errorf("%w: constructor returned nil", ErrConstruction)
	}
	return f, nil
}

// As returns the factory of the given kind as F.
// Returns false if the factory cannot be constructed or is not an F.
func As[F Factory](r *Registry, kind FactoryKind) (F, bool) {
	var zero F
	f := r.Factory(kind)
	if f == nil {
		return zero, false
	}
	typed, ok := f.(F)
	if !ok {
		r.log.Error().Str("kind", string(kind)).Str("name", f.Name()).Msg("factory has unexpected type")
		return zero, false
	}
	return typed, true
}

// Factories returns the constructed factories in construction order.
func (r *Registry) Factories() []Factory {
	result := make([]Factory, 0, len(r.order))
	for _, kind := range r.order {
		result = append(result, r.factories[kind])
	}
	return result
}

// IsRunning returns whether any non-persistent factory holds resources.
// This is what "a project is open" boils down to.
func (r *Registry) IsRunning() bool {
	for _, f := range r.Factories() {
		if !f.Persistent() && f.Running() {
			return true
		}
	}
	return false
}

// ClearFactories clears every non-persistent factory. Persistent factories
// are left untouched.
func (r *Registry) ClearFactories() {
	for _, f := range r.Factories() {
		if f.Persistent() {
			continue
		}
		f.Clear()
	}
}
