package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/config"
	"github.com/ja-he/tileplan/internal/control"
	"github.com/ja-he/tileplan/internal/control/cli"
	"github.com/ja-he/tileplan/internal/potatolog"
	"github.com/ja-he/tileplan/internal/tui"
)

func TestNewAndInfo(t *testing.T) {
	cfg := config.Default(config.Dark)
	path := filepath.Join(t.TempDir(), "demo.yaml")

	newCommand := cli.NewCommand{Output: path, Name: "demo", Rows: 3, Columns: 4}
	if err := newCommand.Run(cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal("project file not created:", err)
	}

	t.Run("refuses to overwrite", func(t *testing.T) {
		if err := newCommand.Run(cfg); err == nil {
			t.Error("expected error for existing file")
		}
		forced := newCommand
		forced.Force = true
		if err := forced.Run(cfg); err != nil {
			t.Error("forced overwrite failed:", err)
		}
	})

	t.Run("info", func(t *testing.T) {
		var out bytes.Buffer
		info := cli.InfoCommand{Input: path}
		if err := info.Run(cfg, &out); err != nil {
			t.Fatal(err)
		}
		expected := []string{
			"project 'demo' (tiles 16x16)",
			"  map 'map' 3x4: 1 layers, 5 tiles",
			"    layer 'ground' (visible): 0 painted cells",
			"    tile 'grass' #5fa84a",
		}
		for _, line := range expected {
			if !strings.Contains(out.String(), line+"\n") {
				t.Errorf("summary lacks line %q:\n%s", line, out.String())
			}
		}
	})

	t.Run("info on missing file", func(t *testing.T) {
		info := cli.InfoCommand{Input: filepath.Join(t.TempDir(), "nope.yaml")}
		if err := info.Run(cfg, &bytes.Buffer{}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("summarize without project", func(t *testing.T) {
		if err := cli.Summarize(&bytes.Buffer{}, control.NewRegistry(cfg), nil); err != control.ErrNoProject {
			t.Error("expected ErrNoProject, got", err)
		}
	})
}

func newEditor(t *testing.T, path string) (tcell.SimulationScreen, *control.ProjectController, *cli.Editor) {
	t.Helper()
	cfg := config.Default(config.Dark)
	r := control.NewRegistry(cfg)
	projects, err := control.Projects(r)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := projects.NewProject("demo", 4, 4); err != nil {
		t.Fatal(err)
	}

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := tui.NewScreenHandler(sim)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)

	editor, err := cli.NewEditor(screen, r, cfg, &potatolog.MemoryLogReaderWriter{}, path)
	if err != nil {
		t.Fatal(err)
	}
	return sim, projects, editor
}

func typeRunes(sim tcell.SimulationScreen, runes string) {
	for _, r := range runes {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

func TestEditor(t *testing.T) {

	t.Run("paint, save and quit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "demo.yaml")
		sim, projects, editor := newEditor(t, path)

		sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
		typeRunes(sim, "2 sq")
		editor.Run()

		m := editor.MapPane().TileMap()
		water := m.Tiles()[1]
		if id, _ := m.Layers()[0].Cell(0, 1); id != water.UUID() {
			t.Error("cell right of the start not painted with water")
		}
		if _, err := os.Stat(path); err != nil {
			t.Error("project not saved:", err)
		}
		if projects.Modified() {
			t.Error("project still modified after save")
		}
	})

	t.Run("unsaved changes need a second quit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "demo.yaml")
		sim, projects, editor := newEditor(t, path)

		// the clear in between disarms the first quit, so the undo still runs
		typeRunes(sim, " qxquqq")
		editor.Run()

		m := editor.MapPane().TileMap()
		grass := m.Tiles()[0]
		if id, _ := m.Layers()[0].Cell(0, 0); id != grass.UUID() {
			t.Error("expected the undone clear to leave grass, got", id)
		}
		if id, _ := m.Layers()[0].Cell(0, 1); id != uuid.Nil {
			t.Error("unexpected paint at 0:1")
		}
		if !projects.Modified() {
			t.Error("expected unsaved changes")
		}
		if _, err := os.Stat(path); err == nil {
			t.Error("project saved without asking")
		}
	})

	t.Run("rename layer", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "demo.yaml")
		sim, _, editor := newEditor(t, path)

		typeRunes(sim, "r")
		sim.InjectKey(tcell.KeyCtrlU, 0, tcell.ModCtrl)
		typeRunes(sim, "b")
		sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
		typeRunes(sim, "qq")
		editor.Run()

		if name := editor.MapPane().Layer().Name(); name != "b" {
			t.Errorf("layer named '%s'", name)
		}
	})
}
