package panes

import (
	"sort"

	"github.com/ja-he/tileplan/internal/input"
	"github.com/ja-he/tileplan/internal/styling"
	"github.com/ja-he/tileplan/internal/ui"
)

// A HelpPane is a pane that displays a help popup.
// For example, it could display a list of key mappings and their actions.
type HelpPane struct {
	ui.LeafPane

	Content func() input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const maxKeyWidth = 20
	const pad = 1
	keyOffset := x + border
	descriptionOffset := keyOffset + maxKeyWidth + pad

	for i, m := range sortedMappings(p.Content()) {
		keys := string(m.mapping)
		row := y + border + i
		p.Renderer.DrawText(keyOffset+maxKeyWidth-len([]rune(keys)), row, len([]rune(keys)), 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), keys)
		p.Renderer.DrawText(descriptionOffset, row, w-(descriptionOffset-x)-border, 1, p.Stylesheet.Help.Italicized(), m.action)
	}
}

type mappingAndAction struct {
	mapping input.Keyspec
	action  string
}

// sortedMappings orders help entries by their description, then by their
// keys.
func sortedMappings(help input.Help) []mappingAndAction {
	content := make([]mappingAndAction, 0, len(help))
	for mapping, action := range help {
		content = append(content, mappingAndAction{mapping: mapping, action: action})
	}
	sort.Slice(content, func(i, j int) bool {
		if content[i].action != content[j].action {
			return content[i].action < content[j].action
		}
		return content[i].mapping < content[j].mapping
	})
	return content
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	content func() input.Help,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.NewLeafPane(renderer, dimensions, stylesheet, condition),
		Content:  content,
	}
}
