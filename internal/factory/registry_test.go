package factory_test

import (
	"errors"
	"testing"

	"github.com/ja-he/tileplan/internal/factory"
)

const (
	session factory.FactoryKind = "session"
	assets  factory.FactoryKind = "assets"
	broken  factory.FactoryKind = "broken"
	panicky factory.FactoryKind = "panicky"
)

func newTestRegistry() *factory.Registry {
	r := factory.NewRegistry()
	r.Register(session, func(*factory.Registry) (factory.Factory, error) {
		return factory.NewSignalFactory[*thing]("session"), nil
	})
	r.Register(assets, func(*factory.Registry) (factory.Factory, error) {
		return factory.NewSignalFactory("assets", factory.Persistent[*thing]()), nil
	})
	r.Register(broken, func(*factory.Registry) (factory.Factory, error) {
		return nil, errors.New("nope")
	})
	r.Register(panicky, func(*factory.Registry) (factory.Factory, error) {
		panic("nope")
	})
	return r
}

func TestRegistryFactory(t *testing.T) {

	t.Run("singleton per kind", func(t *testing.T) {
		r := newTestRegistry()
		a := r.Factory(session)
		b := r.Factory(session)
		if a == nil || a != b {
			t.Error("factory not a singleton")
		}
		if len(r.Factories()) != 1 {
			t.Error("unexpected number of factories:", len(r.Factories()))
		}
	})

	t.Run("failures degrade to nil", func(t *testing.T) {
		r := newTestRegistry()
		for _, kind := range []factory.FactoryKind{broken, panicky, "unknown"} {
			if f := r.Factory(kind); f != nil {
				t.Errorf("expected nil for '%s'", kind)
			}
		}
		if len(r.Factories()) != 0 {
			t.Error("failed factories were registered")
		}
	})

	t.Run("typed access", func(t *testing.T) {
		r := newTestRegistry()
		f, ok := factory.As[*factory.SignalFactory[*thing]](r, session)
		if !ok || f == nil {
			t.Fatal("typed access failed")
		}
		if _, ok := factory.As[*factory.SignalFactory[*thing]](r, broken); ok {
			t.Error("typed access to broken factory succeeded")
		}
	})

	t.Run("registries are isolated", func(t *testing.T) {
		a, b := newTestRegistry(), newTestRegistry()
		if a.Factory(session) == b.Factory(session) {
			t.Error("registries share factories")
		}
	})

}

func TestClearFactories(t *testing.T) {
	r := newTestRegistry()
	s, _ := factory.As[*factory.SignalFactory[*thing]](r, session)
	p, _ := factory.As[*factory.SignalFactory[*thing]](r, assets)

	live := newThing(kindThing, 1)
	shared := newThing(kindWidget, 2)
	s.Add(live, false)
	s.Add(shared, true)
	s.QueueResource(newThing(kindThing, 3))

	asset := newThing(kindThing, 4)
	p.Add(asset, true)

	if !r.IsRunning() {
		t.Fatal("registry with session entities not running")
	}

	r.ClearFactories()

	if r.IsRunning() {
		t.Error("registry still running after clear")
	}
	if s.Running() || len(s.Shared()) != 0 || s.QueuedTotal() != 0 {
		t.Error("session factory not emptied")
	}
	if !live.disposed || !shared.disposed {
		t.Error("cleared resources not disposed")
	}
	if !p.Contains(asset) || len(p.Shared()) != 1 || asset.disposed {
		t.Error("persistent factory was touched")
	}
}

func TestIsRunningIgnoresPersistent(t *testing.T) {
	r := newTestRegistry()
	p, _ := factory.As[*factory.SignalFactory[*thing]](r, assets)
	p.Add(newThing(kindThing, 1), false)
	if r.IsRunning() {
		t.Error("persistent factory counted as running")
	}
}
