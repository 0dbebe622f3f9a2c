package panes

import (
	"fmt"
	"strings"

	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
	"github.com/ja-he/tileplan/internal/potatolog"
	"github.com/ja-he/tileplan/internal/signal"
	"github.com/ja-he/tileplan/internal/styling"
	"github.com/ja-he/tileplan/internal/ui"
)

// KindStatusPane is the kind of StatusPane views.
const KindStatusPane factory.Kind = "status-pane"

// StatusPane is a status bar that displays the project, the map and layer
// being edited, the cursor position, the selected tile and the most recent
// log message.
type StatusPane struct {
	ui.LeafPane
	signal.Signals

	project  *model.ProjectModel
	mapPane  *TileMapPane
	modified func() bool

	logReader potatolog.LogReader
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	mapPane *TileMapPane,
	modified func() bool,
	logReader potatolog.LogReader,
) *StatusPane {
	p := &StatusPane{
		LeafPane:  ui.NewLeafPane(renderer, dimensions, stylesheet, nil),
		mapPane:   mapPane,
		modified:  modified,
		logReader: logReader,
	}
	p.AddSignal(ui.OpBind, func(e *signal.EventArgs) {
		project, _ := e.Payload().(*model.ProjectModel)
		p.Bind(project)
	})
	p.AddSignal(model.OpRemoved, func(e *signal.EventArgs) {
		if p.project != nil && p.project.Equals(e.Source()) {
			p.project = nil
		}
	})
	return p
}

// Kind returns KindStatusPane.
func (p *StatusPane) Kind() factory.Kind { return KindStatusPane }

// Bind makes the pane show project; nil shows nothing.
func (p *StatusPane) Bind(project *model.ProjectModel) {
	if p.project != nil {
		p.project.RemoveListener(p)
	}
	p.project = project
	if project != nil {
		project.AddListener(p)
	}
}

// Dispose stops watching the project.
func (p *StatusPane) Dispose() { p.Bind(nil) }

// Text returns the left-hand status text.
func (p *StatusPane) Text() string {
	parts := []string{}

	if p.project == nil {
		parts = append(parts, "no project")
	} else {
		name := p.project.Name()
		if p.modified != nil && p.modified() {
			name += " [+]"
		}
		parts = append(parts, name)
	}

	if m := p.mapPane.TileMap(); m != nil {
		parts = append(parts, m.Name())
		if l := p.mapPane.Layer(); l != nil {
			layer := fmt.Sprintf("layer %d/%d '%s'", p.mapPane.LayerIndex()+1, len(m.Layers()), l.Name())
			if !l.Visible() {
				layer += " (hidden)"
			}
			parts = append(parts, layer)
		}
		row, col := p.mapPane.Cursor()
		parts = append(parts, fmt.Sprintf("%d:%d", row, col))
		if t := p.mapPane.SelectedTile(); t != nil {
			parts = append(parts, fmt.Sprintf("tile '%s'", t.Name()))
		}
	}

	return " " + strings.Join(parts, " | ") + " "
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Status)
	text := p.Text()
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.Status.DefaultEmphasized(), text)

	if p.logReader == nil {
		return
	}
	entry, ok := p.logReader.Last("info")
	if !ok {
		return
	}
	msg, _ := entry["message"].(string)
	level, _ := entry["level"].(string)
	remaining := w - len([]rune(text))
	if msg == "" || remaining <= 2 {
		return
	}
	if len([]rune(msg)) > remaining-1 {
		msg = string([]rune(msg)[:remaining-1])
	}
	p.Renderer.DrawText(x+w-len([]rune(msg))-1, y, len([]rune(msg)), 1, p.levelStyle(level), msg)
}

func (p *StatusPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error", "fatal", "panic":
		return p.Stylesheet.LogEntryError
	case "warn":
		return p.Stylesheet.LogEntryWarn
	default:
		return p.Stylesheet.LogEntryInfo
	}
}
