package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ja-he/tileplan/internal/config"
	"github.com/ja-he/tileplan/internal/control"
	"github.com/ja-he/tileplan/internal/factory"
	"github.com/ja-he/tileplan/internal/model"
)

// InfoCommand contains flags for the `info` command line command, for
// `go-flags` to parse command line args into.
type InfoCommand struct {
	Input string `short:"i" long:"input" description:"the project file to summarize" value-name:"<file>" required:"true"`
}

// Execute executes the info command.
// (This gets called by `go-flags` when `info` is provided on the command line)
func (command *InfoCommand) Execute(args []string) error {
	cfg, err := LoadConfig(config.Dark)
	if err != nil {
		return err
	}
	return command.Run(cfg, os.Stdout)
}

// Run opens the project file and writes its summary to w.
func (command *InfoCommand) Run(cfg config.Config, w io.Writer) error {
	r := control.NewRegistry(cfg)
	projects, err := control.Projects(r)
	if err != nil {
		return err
	}
	if err := projects.Open(command.Input); err != nil {
		return err
	}
	return Summarize(w, r, projects.Project())
}

// Summarize writes a summary of project to w: its maps with their layers
// and palettes, and the assets known to r.
func Summarize(w io.Writer, r *factory.Registry, project *model.ProjectModel) error {
	if project == nil {
		return control.ErrNoProject
	}

	tileWidth, tileHeight := project.TileSize()
	lines := []string{fmt.Sprintf("project '%s' (tiles %dx%d)", project.Name(), tileWidth, tileHeight)}
	for _, m := range project.TileMaps() {
		lines = append(lines, fmt.Sprintf("  map '%s' %dx%d: %d layers, %d tiles", m.Name(), m.Rows(), m.Columns(), len(m.Layers()), len(m.Tiles())))
		for _, l := range m.Layers() {
			visibility := "visible"
			if !l.Visible() {
				visibility = "hidden"
			}
			lines = append(lines, fmt.Sprintf("    layer '%s' (%s): %d painted cells", l.Name(), visibility, l.Painted()))
		}
		for _, t := range m.Tiles() {
			lines = append(lines, fmt.Sprintf("    tile '%s' %s", t.Name(), t.Color()))
		}
	}
	if data, ok := model.Data(r); ok {
		for _, a := range model.AllOf[*model.ImageAsset](data, model.KindImageAsset) {
			width, height := a.Dimensions()
			lines = append(lines, fmt.Sprintf("  asset '%s' %dx%d", a.Path(), width, height))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
