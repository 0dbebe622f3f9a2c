package model_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/signal"
)

type spy struct {
	signal.Signals
	events []*signal.EventArgs
}

func newSpy() *spy {
	s := &spy{}
	s.BindUpdate(func(e *signal.EventArgs) { s.events = append(s.events, e) })
	return s
}

func (s *spy) reset() { s.events = nil }

func (s *spy) ops() []signal.Operation {
	result := []signal.Operation{}
	for _, e := range s.events {
		result = append(result, e.OperationName())
	}
	return result
}

func TestIdentity(t *testing.T) {

	t.Run("fresh models never collide", func(t *testing.T) {
		seen := make(map[uuid.UUID]struct{}, 10000)
		for i := 0; i < 10000; i++ {
			id := model.NewTileModel().UUID()
			if _, ok := seen[id]; ok {
				t.Fatalf("uuid collision after %d models", i)
			}
			seen[id] = struct{}{}
		}
	})

	t.Run("equality is identity", func(t *testing.T) {
		a := model.NewTile("grass", "#00ff00")
		b := model.NewTile("grass", "#00ff00")
		if a.Equals(b) {
			t.Error("independent models equal")
		}
		if !a.Equals(a) {
			t.Error("model not equal to itself")
		}

		c := model.NewTile("water", "#0000ff")
		if err := c.CopyData(a); err != nil {
			t.Fatal(err)
		}
		if !c.Equals(a) || c.UUID() != a.UUID() {
			t.Error("model with copied identity not equal")
		}
		if a.Equals(nil) || a.Equals("grass") {
			t.Error("model equal to non-model")
		}
	})

}

func TestSuppression(t *testing.T) {
	m := model.NewTileMap("Level1", 2, 2)
	s := newSpy()
	m.AddListener(s)
	s.reset()

	m.SetSuppressUpdates(true)
	m.SetName("a")
	m.SetName("b")
	m.DoneUpdating(model.OpNameChanged)
	m.Refresh()
	m.RefreshAs("whatever")
	if len(s.events) != 0 {
		t.Errorf("suppressed model notified %d times", len(s.events))
	}

	m.SetSuppressUpdates(false)
	m.Refresh()
	if len(s.events) != 1 || s.events[0].OperationName() != signal.OpRefresh {
		t.Error("expected exactly one refresh notification, got", s.ops())
	}
}

func TestClearDataAnnouncesOnce(t *testing.T) {
	m := model.NewTileMap("Level1", 3, 3)
	m.AddLayer(model.NewTileLayer("ground", 3, 3))
	m.AddTile(model.NewTile("grass", ""))
	s := newSpy()
	m.AddListener(s)
	s.reset()

	m.ClearData()

	if len(s.events) != 1 || s.events[0].OperationName() != model.OpDataCleared {
		t.Error("expected one data-cleared notification, got", s.ops())
	}
	if m.Name() != "" || m.Rows() != 0 || len(m.Layers()) != 0 || len(m.Tiles()) != 0 {
		t.Error("data not cleared")
	}
}

func TestListeners(t *testing.T) {

	t.Run("listener added announces state", func(t *testing.T) {
		m := model.NewTile("grass", "")
		s := newSpy()
		m.AddListener(s)
		if len(s.events) != 1 || s.events[0].OperationName() != signal.OpListenerAdded {
			t.Error("unexpected events on add:", s.ops())
		}
		if s.events[0].Source() != m {
			t.Error("event source is not the model")
		}
	})

	t.Run("listeners are distinct", func(t *testing.T) {
		m := model.NewTile("grass", "")
		s := newSpy()
		m.AddListener(s)
		m.AddListener(s)
		if len(m.Listeners()) != 1 {
			t.Error("listener added twice")
		}
	})

	t.Run("named signals of listeners fire", func(t *testing.T) {
		m := model.NewTile("grass", "")
		s := newSpy()
		renamed := 0
		s.AddSignal(model.OpNameChanged, func(e *signal.EventArgs) { renamed++ })
		m.AddListener(s)

		m.SetName("dirt")
		m.SetName("dirt")

		if renamed != 1 {
			t.Errorf("expected one rename, got %d", renamed)
		}
	})

	t.Run("listener removing itself during broadcast", func(t *testing.T) {
		m := model.NewTile("grass", "")
		a, b := newSpy(), newSpy()
		m.AddListener(a)
		m.AddListener(b)
		a.reset()
		b.reset()
		a.AddSignal(model.OpColorChanged, func(e *signal.EventArgs) { m.RemoveListener(a) })

		m.SetColor("#123456")

		if len(a.events) != 1 || len(b.events) != 1 {
			t.Errorf("broadcast disturbed by removal: a=%v b=%v", a.ops(), b.ops())
		}
		if len(m.Listeners()) != 1 {
			t.Error("listener not removed")
		}
	})

	t.Run("dispose", func(t *testing.T) {
		m := model.NewTileMap("Level1", 1, 1)
		s := newSpy()
		m.AddListener(s)
		s.reset()

		m.Dispose()
		if len(s.events) != 1 || s.events[0].OperationName() != model.OpRemoved {
			t.Error("expected removal notification, got", s.ops())
		}
		if len(m.Listeners()) != 0 || len(m.SignalNames()) != 0 || !m.Disposed() {
			t.Error("disposed model kept listeners or signals")
		}

		s.reset()
		m.SetName("after")
		m.AddListener(s)
		if len(s.events) != 0 {
			t.Error("disposed model notified")
		}
	})

}

func TestCopyDataKindMismatch(t *testing.T) {
	err := model.NewTileModel().CopyData(model.NewTileLayerModel())
	if !errors.Is(err, model.ErrKindMismatch) {
		t.Error("expected kind mismatch, got", err)
	}
}

func TestEndToEndRename(t *testing.T) {
	f := model.NewFactory()

	m := f.Add(model.NewTileMap("Level1", 2, 2), false).(*model.TileMapModel)
	m.AddTile(f.Add(model.NewTile("grass", "#00ff00"), false).(*model.TileModel))
	m.AddTile(f.Add(model.NewTile("water", "#0000ff"), false).(*model.TileModel))

	s := newSpy()
	m.AddListener(s)
	s.reset()

	m.SetName("Level1b")

	if len(s.events) != 1 {
		t.Fatalf("expected exactly one event, got %v", s.ops())
	}
	e := s.events[0]
	if e.OperationName() != model.OpNameChanged {
		t.Error("unexpected operation", e.OperationName())
	}
	if !m.Equals(e.Source()) {
		t.Error("event source is not the tile map")
	}
	if len(m.Tiles()) != 2 || len(f.GetAll(model.KindTile)) != 2 {
		t.Error("tiles missing")
	}
}
