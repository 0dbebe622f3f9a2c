package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/control"
	"github.com/ja-he/tileplan/internal/potatolog"
	"github.com/ja-he/tileplan/internal/tui"
)

// EditCommand contains flags for the `edit` command line command, for
// `go-flags` to parse command line args into.
type EditCommand struct {
	Input         string `short:"i" long:"input" description:"the project file to edit; created on first save if it does not exist" value-name:"<file>" required:"true"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute executes the edit command.
// (This gets called by `go-flags` when `edit` is provided on the command line)
func (command *EditCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging (%w)", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	cfg, err := LoadConfig(themeFromString(command.Theme))
	if err != nil {
		return fmt.Errorf("can't parse config data (%w)", err)
	}

	r := control.NewRegistry(cfg)
	projects, err := control.Projects(r)
	if err != nil {
		return err
	}
	if _, err := os.Stat(command.Input); errors.Is(err, fs.ErrNotExist) {
		if _, err := projects.NewProject("", 0, 0); err != nil {
			return err
		}
		log.Info().Str("path", command.Input).Msg("file does not exist, started a new project")
	} else if err := projects.Open(command.Input); err != nil {
		return err
	}

	screen, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}
	defer screen.Fini()

	editor, err := NewEditor(screen, r, cfg, &potatolog.GlobalMemoryLogReaderWriter, command.Input)
	if err != nil {
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	editor.Run()
	return nil
}
