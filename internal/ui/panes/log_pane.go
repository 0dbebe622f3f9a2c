package panes

import (
	"fmt"
	"sort"

	"github.com/ja-he/tileplan/internal/potatolog"
	"github.com/ja-he/tileplan/internal/styling"
	"github.com/ja-he/tileplan/internal/ui"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)
	title := "LOG"
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.NormalEmphasized)
	p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.NormalEmphasized, title)

	const levelLen = len(" error ")
	row := y + 2
	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < y+h; i-- {
		entry := entries[i]
		level := str(entry["level"])

		p.Renderer.DrawText(x, row, levelLen, 1, p.levelStyle(level), padCenter(level, levelLen))
		col := x + levelLen + 1

		msg := str(entry["message"])
		p.Renderer.DrawText(col, row, w-(col-x), 1, p.Stylesheet.Normal, msg)
		col += len([]rune(msg)) + 1

		p.Renderer.DrawText(col, row, w-(col-x), 1, p.Stylesheet.Normal.DefaultDimmed(), str(entry["time"]))
		row++

		for _, k := range extraKeys(entry) {
			line := fmt.Sprintf("%s: %s", k, str(entry[k]))
			p.Renderer.DrawText(x+levelLen+1, row, w-levelLen-1, 1, p.Stylesheet.Normal.DefaultDimmed().Italicized(), line)
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error", "fatal", "panic":
		return p.Stylesheet.LogEntryError
	case "warn":
		return p.Stylesheet.LogEntryWarn
	case "info":
		return p.Stylesheet.LogEntryInfo
	}
	return p.Stylesheet.Normal.DefaultDimmed()
}

// extraKeys returns the keys of an entry's fields besides the standard ones,
// sorted.
func extraKeys(entry potatolog.LogEntry) []string {
	keys := []string{}
	for k := range entry {
		switch k {
		case "level", "message", "time", "caller":
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func padCenter(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return fmt.Sprintf("%*s%s%*s", left, "", s, pad-left, "")
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane:  ui.NewLeafPane(renderer, dimensions, stylesheet, condition),
		logReader: logReader,
	}
}
