package model_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/model"
)

func TestPaint(t *testing.T) {
	l := model.NewTileLayer("ground", 2, 3)
	grass := uuid.New()

	if err := l.Paint(1, 2, grass); err != nil {
		t.Fatal(err)
	}
	if got, ok := l.Cell(1, 2); !ok || got != grass {
		t.Error("cell not painted")
	}
	if err := l.Paint(2, 0, grass); err == nil {
		t.Error("painting out of bounds succeeded")
	}
	if _, ok := l.Cell(-1, 0); ok {
		t.Error("out of bounds cell reported")
	}

	s := newSpy()
	l.AddListener(s)
	s.reset()
	if err := l.Paint(1, 2, grass); err != nil {
		t.Fatal(err)
	}
	if len(s.events) != 0 {
		t.Error("repainting with the same tile announced a change")
	}
}

func TestResizeKeepsOverlap(t *testing.T) {
	l := model.NewTileLayer("ground", 2, 2)
	a, b := uuid.New(), uuid.New()
	_ = l.Paint(0, 0, a)
	_ = l.Paint(1, 1, b)

	l.Resize(3, 1)

	if got, _ := l.Cell(0, 0); got != a {
		t.Error("overlapping cell lost")
	}
	if l.Painted() != 1 {
		t.Errorf("expected 1 painted cell, got %d", l.Painted())
	}
	if l.Rows() != 3 || l.Columns() != 1 {
		t.Error("unexpected size")
	}
}

func TestTileMapResizesLayers(t *testing.T) {
	m := model.NewTileMap("Level1", 2, 2)
	l := model.NewTileLayer("ground", 5, 5)
	m.AddLayer(l)
	if l.Rows() != 2 || l.Columns() != 2 {
		t.Error("added layer not resized to map")
	}
	m.SetSize(4, 3)
	if l.Rows() != 4 || l.Columns() != 3 {
		t.Error("layer not resized with map")
	}
}

func TestLayerRecord(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		l := model.NewTileLayer("ground", 2, 2)
		grass := uuid.New()
		_ = l.Paint(0, 1, grass)

		rec := l.Record().(model.TileLayerRecord)
		if len(rec.Cells) != 4 || rec.Cells[0] != "" || rec.Cells[1] != grass.String() {
			t.Errorf("unexpected cells %v", rec.Cells)
		}

		restored, err := model.TileLayerFromRecord(rec)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equals(l) || restored.Painted() != 1 {
			t.Error("layer not restored")
		}
	})

	t.Run("cell count mismatch", func(t *testing.T) {
		rec := model.TileLayerRecord{ID: uuid.NewString(), Name: "broken", Rows: 2, Columns: 2, Cells: []string{""}}
		if _, err := model.TileLayerFromRecord(rec); err == nil {
			t.Error("mismatching cells accepted")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		if _, err := model.FromRecord(model.TileRecord{Name: "grass"}); err == nil {
			t.Error("record without id accepted")
		}
	})

}

func TestLink(t *testing.T) {
	original := model.NewTileMap("Level1", 1, 1)
	layer := model.NewTileLayer("ground", 1, 1)
	tile := model.NewTile("grass", "")
	original.AddLayer(layer)
	original.AddTile(tile)

	loaded, err := model.TileMapFromRecord(original.Record().(model.TileMapRecord))
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Pending() {
		t.Fatal("children of loaded map not pending")
	}

	s := newSpy()
	loaded.AddListener(s)
	s.reset()

	err = loaded.Link(
		func(id uuid.UUID) *model.TileLayerModel {
			if id == layer.UUID() {
				return layer
			}
			return nil
		},
		func(uuid.UUID) *model.TileModel { return nil },
	)
	if err == nil {
		t.Error("missing tile not reported")
	}
	if loaded.LayerByID(layer.UUID()) == nil {
		t.Error("layer not linked")
	}
	if !loaded.Pending() || len(loaded.TileIDs()) != 1 {
		t.Error("unresolved tile dropped")
	}
	if len(s.events) != 1 {
		t.Error("expected a single announcement for linking, got", s.ops())
	}
}
