package factory_test

import (
	"errors"
	"testing"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/signal"
)

const (
	kindThing   factory.Kind = "thing"
	kindWidget  factory.Kind = "widget"
	kindGeneric factory.Kind = "generic"
)

type thing struct {
	signal.Signals
	kind     factory.Kind
	id       int
	data     string
	received []*signal.EventArgs
	disposed bool
	extends  factory.Kind
}

func newThing(kind factory.Kind, id int) *thing {
	t := &thing{kind: kind, id: id}
	t.AddSignal("poke", func(e *signal.EventArgs) { t.received = append(t.received, e) })
	return t
}

func (t *thing) Kind() factory.Kind { return t.kind }
func (t *thing) Dispose()           { t.disposed = true }
func (t *thing) Extends(k factory.Kind) bool {
	return t.extends != "" && t.extends == k
}
func (t *thing) Equals(other any) bool {
	o, ok := other.(*thing)
	return ok && o.id == t.id
}

func TestAdd(t *testing.T) {

	t.Run("idempotent", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		r := newThing(kindThing, 1)

		if f.Add(r, true) != r {
			t.Error("add did not return the resource")
		}
		f.Add(r, true)

		if n := len(f.GetAll(kindThing)); n != 1 {
			t.Errorf("expected 1 private entry, got %d", n)
		}
		if n := len(f.Shared()); n != 1 {
			t.Errorf("expected 1 shared entry, got %d", n)
		}
	})

	t.Run("later shared add only inserts into shared list", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		r := newThing(kindThing, 1)
		f.Add(r, false)
		if len(f.Shared()) != 0 {
			t.Error("unshared add ended up in shared list")
		}
		f.Add(r, true)
		if len(f.GetAll(kindThing)) != 1 || len(f.Shared()) != 1 {
			t.Error("unexpected collection sizes after shared re-add")
		}
	})

	t.Run("get all is a copy and never nil", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		all := f.GetAll(kindWidget)
		if all == nil || len(all) != 0 {
			t.Error("expected empty non-nil slice")
		}

		f.Add(newThing(kindThing, 1), false)
		all = f.GetAll(kindThing)
		all[0] = nil
		if f.GetAll(kindThing)[0] == nil {
			t.Error("get all exposed internal slice")
		}
	})

}

func TestCacheDrain(t *testing.T) {
	materialized := []string{}
	f := factory.NewSignalFactory("test", factory.WithMaterializer(func(live, cached *thing) error {
		live.data = cached.data
		materialized = append(materialized, cached.data)
		return nil
	}))

	for _, d := range []string{"r1", "r2", "r3"} {
		q := newThing(kindThing, 0)
		q.data = d
		f.QueueResource(q)
	}
	if f.Queued(kindThing) != 3 || !f.Running() {
		t.Fatal("queueing failed")
	}

	lives := []*thing{newThing(kindThing, 1), newThing(kindThing, 2), newThing(kindThing, 3)}
	for i, live := range lives {
		f.Add(live, false)
		if f.Queued(kindThing) != 2-i {
			t.Errorf("after add %d expected %d queued, got %d", i, 2-i, f.Queued(kindThing))
		}
	}

	for i, want := range []string{"r1", "r2", "r3"} {
		if lives[i].data != want {
			t.Errorf("live %d got '%s', want '%s'", i, lives[i].data, want)
		}
	}
	if len(materialized) != 3 || f.QueuedTotal() != 0 {
		t.Error("cache not drained:", materialized, f.QueuedTotal())
	}

	// re-adding does not drain anything further
	q := newThing(kindThing, 0)
	q.data = "r4"
	f.QueueResource(q)
	f.Add(lives[0], false)
	if f.Queued(kindThing) != 1 || lives[0].data != "r1" {
		t.Error("re-add drained the cache")
	}
}

func TestCacheNotDrainedWithoutMaterializer(t *testing.T) {
	f := factory.NewSignalFactory[*thing]("test")
	f.QueueResource(newThing(kindThing, 0))
	f.Add(newThing(kindThing, 1), false)
	if f.Queued(kindThing) != 1 {
		t.Error("factory without materializer drained its cache")
	}
}

func TestGet(t *testing.T) {

	t.Run("exact match preferred", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		ext := newThing(kindWidget, 1)
		ext.extends = kindThing
		exact := newThing(kindThing, 2)
		f.Add(ext, true)
		f.Add(exact, true)

		got, ok := f.Get(kindThing)
		if !ok || got != exact {
			t.Error("exact match not returned")
		}
	})

	t.Run("fallback to first extending resource", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		a := newThing(kindWidget, 1)
		a.extends = kindGeneric
		b := newThing(kindThing, 2)
		b.extends = kindGeneric
		f.Add(a, true)
		f.Add(b, true)

		got, ok := f.Get(kindGeneric)
		if !ok || got != a {
			t.Error("fallback did not return first extending resource")
		}
	})

	t.Run("unshared resources are not found", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		f.Add(newThing(kindThing, 1), false)
		if _, ok := f.Get(kindThing); ok {
			t.Error("found unshared resource")
		}
	})

}

func TestRemove(t *testing.T) {
	f := factory.NewSignalFactory[*thing]("test")
	a := newThing(kindThing, 1)
	b := newThing(kindThing, 2)
	f.Add(a, true)
	f.Add(b, false)

	f.Remove(a)
	if !a.disposed {
		t.Error("removed resource not disposed")
	}
	if f.Contains(a) || len(f.Shared()) != 0 {
		t.Error("resource still present after removal")
	}
	if !f.Contains(b) {
		t.Error("wrong resource removed")
	}

	absent := newThing(kindThing, 3)
	f.Remove(absent)
	if absent.disposed {
		t.Error("absent resource disposed")
	}

	f.Remove(b)
	if len(f.Kinds()) != 0 || f.Running() {
		t.Error("empty factory still reports kinds or running")
	}
}

func TestMulticast(t *testing.T) {

	t.Run("self exclusion", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		a, b, c := newThing(kindThing, 1), newThing(kindThing, 2), newThing(kindThing, 3)
		f.Add(a, false)
		f.Add(b, false)
		f.Add(c, false)

		f.MulticastSignalListeners(kindThing, signal.NewEventArgs(b, "poke"))

		if len(b.received) != 0 {
			t.Error("source received its own multicast")
		}
		if len(a.received) != 1 || len(c.received) != 1 {
			t.Error("recipients did not receive multicast")
		}
	})

	t.Run("self exclusion by equality", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		a := newThing(kindThing, 1)
		f.Add(a, false)
		twin := newThing(kindThing, 1)

		f.MulticastSignalListeners(kindThing, signal.NewEventArgs(twin, "poke"))

		if len(a.received) != 0 {
			t.Error("entity equal to source received multicast")
		}
	})

	t.Run("destination as target", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		a, b := newThing(kindThing, 1), newThing(kindThing, 2)
		f.Add(a, false)
		f.Add(b, false)

		e := signal.NewEventArgs(nil, "poke").WithDestinationAsTarget()
		f.MulticastSignalListeners(kindThing, e)

		if len(a.received) != 1 || a.received[0].Source() != a {
			t.Error("a did not receive event targeted at itself")
		}
		if len(b.received) != 1 || b.received[0].Source() != b {
			t.Error("b did not receive event targeted at itself")
		}
		if e.Source() != nil {
			t.Error("original event was modified")
		}
	})

	t.Run("removal during multicast", func(t *testing.T) {
		f := factory.NewSignalFactory[*thing]("test")
		a, b := newThing(kindThing, 1), newThing(kindThing, 2)
		a.AddSignal("remove-b", func(e *signal.EventArgs) { f.Remove(b) })
		b.AddSignal("remove-b", func(e *signal.EventArgs) {})
		f.Add(a, false)
		f.Add(b, false)

		f.MulticastSignalListeners(kindThing, signal.NewEventArgs(nil, "remove-b"))

		if f.Contains(b) || !b.disposed {
			t.Error("b was not removed")
		}
	})

}

func TestCreate(t *testing.T) {
	f := factory.NewSignalFactory("test",
		factory.WithConstructor(kindThing, func() (*thing, error) { return newThing(kindThing, 1), nil }),
		factory.WithConstructor(kindWidget, func() (*thing, error) { return nil, errors.New("out of widgets") }),
		factory.WithConstructor(kindGeneric, func() (*thing, error) { panic("boom") }),
	)

	r, err := f.Create(kindThing, true)
	if err != nil || r == nil || !f.Contains(r) {
		t.Error("create failed:", err)
	}
	if got, ok := f.Get(kindThing); !ok || got != r {
		t.Error("created shared resource not found")
	}

	for _, kind := range []factory.Kind{kindWidget, kindGeneric, "unknown"} {
		r, err := f.Create(kind, false)
		if !errors.Is(err, factory.ErrConstruction) {
			t.Errorf("kind '%s': expected construction error, got %v", kind, err)
		}
		if r != nil {
			t.Errorf("kind '%s': expected nil resource", kind)
		}
	}
}
