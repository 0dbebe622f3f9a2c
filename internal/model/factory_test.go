package model_test

import (
	"testing"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/signal"
)

func TestQueueDrainOrder(t *testing.T) {
	f := model.NewFactory()

	queued := []*model.TileModel{
		model.NewTile("r1", "#111111"),
		model.NewTile("r2", "#222222"),
		model.NewTile("r3", "#333333"),
	}
	for _, q := range queued {
		f.QueueResource(q)
	}

	for i := range queued {
		live := model.NewTileModel()
		s := newSpy()
		live.AddListener(s)
		s.reset()

		f.Add(live, false)

		if !live.Equals(queued[i]) || live.Name() != queued[i].Name() || live.Color() != queued[i].Color() {
			t.Errorf("live %d did not receive data of r%d (got '%s')", i, i+1, live.Name())
		}
		if len(s.events) != 1 || s.events[0].OperationName() != signal.OpRefresh {
			t.Errorf("live %d: expected one refresh, got %v", i, s.ops())
		}
	}

	if f.QueuedTotal() != 0 {
		t.Error("cache not empty after draining")
	}
}

func TestQueueOnlyDrainsSameKind(t *testing.T) {
	f := model.NewFactory()
	f.QueueResource(model.NewTile("queued", ""))

	f.Add(model.NewTileLayerModel(), false)
	if f.Queued(model.KindTile) != 1 {
		t.Error("adding another kind drained the queue")
	}
}

func TestCreate(t *testing.T) {
	f := model.NewFactory()
	for _, kind := range []factory.Kind{model.KindProject, model.KindTileMap, model.KindTileLayer, model.KindTile} {
		m, err := f.Create(kind, false)
		if err != nil {
			t.Errorf("could not create %s: %s", kind, err)
			continue
		}
		if m.Kind() != kind {
			t.Errorf("created %s for %s", m.Kind(), kind)
		}
	}
	if _, err := f.Create(model.KindImageAsset, false); err == nil {
		t.Error("model factory created a data asset")
	}
}

func TestRegistryReset(t *testing.T) {
	r := factory.NewRegistry()
	model.RegisterFactories(r)
	models, ok := model.Models(r)
	if !ok {
		t.Fatal("no model factory")
	}
	data, ok := model.Data(r)
	if !ok {
		t.Fatal("no data factory")
	}

	m := models.Add(model.NewTileMap("Level1", 1, 1), true)
	asset := data.Add(model.NewImageAsset("grass.png", 16, 16), true)

	if !r.IsRunning() {
		t.Error("registry not running with an open map")
	}

	r.ClearFactories()

	if r.IsRunning() {
		t.Error("registry still running after reset")
	}
	if !m.(*model.TileMapModel).Disposed() {
		t.Error("session model not disposed")
	}
	if got, ok := data.Get(model.KindAsset); !ok || got != asset {
		t.Error("data asset lost or not found through its extended kind")
	}
}

func TestTileRemovalCascade(t *testing.T) {
	f := model.NewFactory()
	m := f.Add(model.NewTileMap("Level1", 2, 2), false).(*model.TileMapModel)
	layer := f.Add(model.NewTileLayer("ground", 2, 2), false).(*model.TileLayerModel)
	m.AddLayer(layer)
	grass := f.Add(model.NewTile("grass", ""), false).(*model.TileModel)
	m.AddTile(grass)
	layer.Fill(grass.UUID())

	e := signal.NewEventArgs(grass, model.OpTileRemoved)
	f.MulticastSignalListeners(model.KindTileMap, e)
	f.MulticastSignalListeners(model.KindTileLayer, e)
	f.Remove(grass)

	if len(m.Tiles()) != 0 {
		t.Error("tile still in palette")
	}
	if layer.Painted() != 0 {
		t.Error("cells still refer to removed tile")
	}
	if !grass.Disposed() {
		t.Error("removed tile not disposed")
	}
}

func TestPipe(t *testing.T) {
	f := model.NewFactory()
	f.Add(model.NewTile("grass", ""), false)
	f.Add(model.NewTile("water", ""), false)

	sink := &recordSink{}
	f.MulticastSignalListeners(model.KindTile, signal.NewEventArgs(nil, model.OpPipe).WithPayload(sink).WithSuppressedUpdate())

	if len(sink.records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(sink.records))
	}
	if sink.records[0].(model.TileRecord).Name != "grass" || sink.records[1].(model.TileRecord).Name != "water" {
		t.Error("records out of order")
	}
}

type recordSink struct {
	records []model.Record
}

func (s *recordSink) Put(r model.Record) { s.records = append(s.records, r) }
