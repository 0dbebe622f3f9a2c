package factory

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/signal"
)

// Option configures a SignalFactory.
type Option[T Resource] func(*SignalFactory[T])

// Persistent marks the factory as surviving Registry.ClearFactories.
func Persistent[T Resource]() Option[T] {
	return func(f *SignalFactory[T]) { f.persistent = true }
}

// WithConstructor registers the constructor used by Create for kind.
func WithConstructor[T Resource](kind Kind, ctor func() (T, error)) Option[T] {
	return func(f *SignalFactory[T]) { f.constructors[kind] = ctor }
}

// WithMaterializer enables draining the cache on Add. When a resource of a
// kind with queued entries is added, the oldest queued entry is dequeued and
// passed to materialize together with the live resource.
func WithMaterializer[T Resource](materialize func(live, cached T) error) Option[T] {
	return func(f *SignalFactory[T]) { f.materialize = materialize }
}

// SignalFactory owns the entities of one family.
//
// It is not safe for concurrent use; all access is expected to happen on the
// editor's event loop.
type SignalFactory[T Resource] struct {
	name       string
	persistent bool

	// every resource ever added (and not removed), per kind, in order
	private map[Kind][]T
	kinds   []Kind

	// resources added as shared, in order
	public []T

	// queued resources awaiting materialization, per kind, FIFO
	cache map[Kind][]T

	constructors map[Kind]func() (T, error)
	materialize  func(live, cached T) error

	log zerolog.Logger
}

// NewSignalFactory returns an empty factory with the given name.
func NewSignalFactory[T Resource](name string, opts ...Option[T]) *SignalFactory[T] {
	f := &SignalFactory[T]{
		name:         name,
		private:      make(map[Kind][]T),
		cache:        make(map[Kind][]T),
		constructors: make(map[Kind]func() (T, error)),
		log:          log.With().Str("factory", name).Logger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the factory's name.
func (f *SignalFactory[T]) Name() string { return f.name }

// Persistent returns whether the factory survives a registry reset.
func (f *SignalFactory[T]) Persistent() bool { return f.persistent }

// Running returns whether the factory holds any resources, live or queued.
func (f *SignalFactory[T]) Running() bool {
	return len(f.private) > 0 || len(f.cache) > 0
}

// RegisterConstructor registers the constructor used by Create for kind,
// replacing any previous one.
func (f *SignalFactory[T]) RegisterConstructor(kind Kind, ctor func() (T, error)) {
	f.constructors[kind] = ctor
}

// Add adds r to the private history and, if shared, to the public list.
// Adding the same reference again does not duplicate it in either.
// If r is new to the factory and resources of its kind are queued, the oldest
// one is materialized onto r.
// Returns r.
func (f *SignalFactory[T]) Add(r T, shared bool) T {
	if any(r) == nil {
		return r
	}

	kind := r.Kind()
	if !containsRef(f.private[kind], r) {
		if _, ok := f.private[kind]; !ok {
			f.kinds = append(f.kinds, kind)
		}
		f.private[kind] = append(f.private[kind], r)
		f.drain(r)
	}

	if shared && !containsRef(f.public, r) {
		f.public = append(f.public, r)
	}

	return r
}

func (f *SignalFactory[T]) drain(live T) {
	if f.materialize == nil {
		return
	}
	kind := live.Kind()
	queue := f.cache[kind]
	if len(queue) == 0 {
		return
	}

	cached := queue[0]
	if len(queue) == 1 {
		delete(f.cache, kind)
	} else {
		f.cache[kind] = queue[1:]
	}

	if err := f.materialize(live, cached); err != nil {
		f.log.Error().Err(err).Str("kind", string(kind)).Msg("could not materialize queued resource")
		return
	}
	f.log.Debug().Str("kind", string(kind)).Int("remaining", len(f.cache[kind])).Msg("materialized queued resource")
}

// Create constructs a resource of the given kind through its registered
// constructor and adds it.
// Failures (no constructor, constructor error or panic) are logged and
// returned wrapping ErrConstruction.
func (f *SignalFactory[T]) Create(kind Kind, shared bool) (T, error) {
	var zero T

	ctor, ok := f.constructors[kind]
	if !ok {
		err := fmt.Errorf("%w: no constructor for kind '%s' in factory '%s'", ErrConstruction, kind, f.name)
		f.log.Error().Err(err).Msg("could not create resource")
		return zero, err
	}

	r, err := construct(ctor)
	if err != nil {
		err = fmt.Errorf("%w: kind '%s' in factory '%s' (%s)", ErrConstruction, kind, f.name, err.Error())
		f.log.Error().Err(err).Msg("could not create resource")
		return zero, err
	}

	return f.Add(r, shared), nil
}

func construct[T any](ctor func() (T, error)) (r T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("constructor panicked: %v", recovered)
		}
	}()
	r, err = ctor()
	if err == nil && any(r) == nil {
		err = fmt.Errorf("constructor returned nil")
	}
	return r, err
}

// Get returns the shared resource of the given kind.
// An exact kind match is preferred; failing that, the first shared resource
// (in insertion order) that extends the kind is returned, with a warning, as
// the choice is ambiguous if several such resources are shared.
func (f *SignalFactory[T]) Get(kind Kind) (T, bool) {
	for _, r := range f.public {
		if r.Kind() == kind {
			return r, true
		}
	}
	for _, r := range f.public {
		if ext, ok := any(r).(Extender); ok && ext.Extends(kind) {
			f.log.Warn().
				Str("requested", string(kind)).
				Str("found", string(r.Kind())).
				Msg("no exact match for shared resource, using first extending resource")
			return r, true
		}
	}
	var zero T
	return zero, false
}

// GetAll returns a copy of the private history for kind; never nil.
func (f *SignalFactory[T]) GetAll(kind Kind) []T {
	result := make([]T, len(f.private[kind]))
	copy(result, f.private[kind])
	return result
}

// Shared returns a copy of the public list.
func (f *SignalFactory[T]) Shared() []T {
	result := make([]T, len(f.public))
	copy(result, f.public)
	return result
}

// Kinds returns the kinds with resources in the private history, in the order
// they were first added.
func (f *SignalFactory[T]) Kinds() []Kind {
	result := make([]Kind, len(f.kinds))
	copy(result, f.kinds)
	return result
}

// Contains returns whether r is in the private history.
func (f *SignalFactory[T]) Contains(r T) bool {
	if any(r) == nil {
		return false
	}
	return containsRef(f.private[r.Kind()], r)
}

// Remove removes r from the private history and the public list.
// If r was present in either, it is disposed.
// Removing an absent resource does nothing.
func (f *SignalFactory[T]) Remove(r T) {
	if any(r) == nil {
		return
	}

	kind := r.Kind()
	removed := false

	if i := indexOfRef(f.private[kind], r); i != -1 {
		list := f.private[kind]
		f.private[kind] = append(list[:i:i], list[i+1:]...)
		if len(f.private[kind]) == 0 {
			delete(f.private, kind)
			f.dropKind(kind)
		}
		f.log.Debug().Str("kind", string(kind)).Msg("removed resource from private list")
		removed = true
	}

	if i := indexOfRef(f.public, r); i != -1 {
		f.public = append(f.public[:i:i], f.public[i+1:]...)
		f.log.Debug().Str("kind", string(kind)).Msg("removed resource from public list")
		removed = true
	}

	if removed {
		if d, ok := any(r).(Disposer); ok {
			d.Dispose()
		}
	}
}

func (f *SignalFactory[T]) dropKind(kind Kind) {
	for i, k := range f.kinds {
		if k == kind {
			f.kinds = append(f.kinds[:i], f.kinds[i+1:]...)
			return
		}
	}
}

// QueueResource appends r to the cache for its kind, to be materialized onto
// the next live resource of that kind that is added.
func (f *SignalFactory[T]) QueueResource(r T) {
	if any(r) == nil {
		return
	}
	kind := r.Kind()
	f.cache[kind] = append(f.cache[kind], r)
}

// Queued returns the number of queued resources of the given kind.
func (f *SignalFactory[T]) Queued(kind Kind) int {
	return len(f.cache[kind])
}

// QueuedTotal returns the number of queued resources of all kinds.
func (f *SignalFactory[T]) QueuedTotal() int {
	n := 0
	for _, queue := range f.cache {
		n += len(queue)
	}
	return n
}

// MulticastSignalListeners invokes e on every resource of the given kind
// except the event's own source.
// If the event asks for it, each recipient receives a copy retargeted to
// itself.
// The recipients are collected before the first delivery; resources added
// or removed by a receiver do not change who is signalled.
func (f *SignalFactory[T]) MulticastSignalListeners(kind Kind, e *signal.EventArgs) {
	for _, r := range f.GetAll(kind) {
		if same(r, e.Source()) {
			continue
		}
		delivered := e
		if e.DestinationAsTarget() {
			delivered = e.Retarget(r)
		}
		r.InvokeSignal(delivered)
	}
}

// Clear drops the cache and removes every private and public resource
// individually, disposing each.
func (f *SignalFactory[T]) Clear() {
	f.cache = make(map[Kind][]T)
	for _, kind := range f.Kinds() {
		for _, r := range f.GetAll(kind) {
			f.Remove(r)
		}
	}
	for _, r := range f.Shared() {
		f.Remove(r)
	}
	f.log.Debug().Msg("cleared")
}
