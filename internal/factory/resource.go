// Package factory provides the registries that own the editor's entities.
//
// A Registry holds one instance of each factory kind, constructed lazily
// from a constructor table. A SignalFactory owns the entities of one family
// (models, views, controllers, data assets) in three spaces: the private
// history every added entity lands in, the public list of shared entities,
// and a FIFO cache of not yet materialized entities.
package factory

import (
	"errors"

	"github.com/ja-he/tileplan/internal/signal"
)

// ErrConstruction is wrapped by all errors of failed constructions.
var ErrConstruction = errors.New("construction failed")

// Kind tags the concrete type of a resource.
type Kind string

// Resource is anything a SignalFactory can own.
type Resource interface {
	signal.Listener
	Kind() Kind
}

// Extender is implemented by resources that can stand in for kinds other
// than their own, e.g. an image asset for the generic asset kind.
type Extender interface {
	Extends(k Kind) bool
}

// Disposer is implemented by resources that need to release listeners and
// signals when they are removed from their factory.
type Disposer interface {
	Dispose()
}

type equaler interface {
	Equals(other any) bool
}

// same reports whether r is to be considered the same entity as other.
// Resources with an Equals method decide for themselves (models compare by
// UUID), others compare by reference.
func same(r any, other any) bool {
	if other == nil {
		return false
	}
	if eq, ok := r.(equaler); ok {
		return eq.Equals(other)
	}
	return r == other
}

func containsRef[T any](list []T, r T) bool {
	return indexOfRef(list, r) != -1
}

func indexOfRef[T any](list []T, r T) int {
	for i := range list {
		if any(list[i]) == any(r) {
			return i
		}
	}
	return -1
}
