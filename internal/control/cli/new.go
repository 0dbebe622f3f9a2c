package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ja-he/tileplan/internal/config"
	"github.com/ja-he/tileplan/internal/control"
)

// NewCommand contains flags for the `new` command line command, for
// `go-flags` to parse command line args into.
type NewCommand struct {
	Output  string `short:"o" long:"output" description:"the project file to create" value-name:"<file>" required:"true"`
	Name    string `short:"n" long:"name" description:"the project's name; the configured default if omitted" value-name:"<name>"`
	Rows    int    `short:"r" long:"rows" description:"the number of rows of the first tile map" value-name:"<n>"`
	Columns int    `short:"c" long:"columns" description:"the number of columns of the first tile map" value-name:"<n>"`
	Force   bool   `short:"f" long:"force" description:"overwrite an existing file"`
}

// Execute executes the new command.
// (This gets called by `go-flags` when `new` is provided on the command line)
func (command *NewCommand) Execute(args []string) error {
	cfg, err := LoadConfig(config.Dark)
	if err != nil {
		return err
	}
	return command.Run(cfg)
}

// Run creates the project file per the command's flags using cfg.
func (command *NewCommand) Run(cfg config.Config) error {
	if _, err := os.Stat(command.Output); err == nil && !command.Force {
		return fmt.Errorf("'%s' already exists (use --force to overwrite)", command.Output)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not check '%s' (%w)", command.Output, err)
	}

	projects, err := control.Projects(control.NewRegistry(cfg))
	if err != nil {
		return err
	}
	project, err := projects.NewProject(command.Name, command.Rows, command.Columns)
	if err != nil {
		return err
	}
	if err := projects.Save(command.Output); err != nil {
		return err
	}

	fmt.Printf("created project '%s' in '%s'\n", project.Name(), command.Output)
	return nil
}
