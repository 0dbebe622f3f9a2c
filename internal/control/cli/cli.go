// Package cli provides the command-line interface for tileplan.
package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/config"
)

// CommandLineOpts are the options and commands of the command line, for
// `go-flags` to parse command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	NewCommand     NewCommand     `command:"new" subcommands-optional:"true" description:"create a new project file"`
	InfoCommand    InfoCommand    `command:"info" subcommands-optional:"true" description:"summarize a project file"`
	EditCommand    EditCommand    `command:"edit" subcommands-optional:"true" description:"edit a project file in the terminal"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true" description:"show the program version"`
}

// Opts are the parsed command line options.
var Opts CommandLineOpts

// BaseDirPath returns the directory holding tileplan's configuration:
// '${TILEPLAN_HOME}', falling back to '${HOME}/.config/tileplan'.
func BaseDirPath() string {
	tileplanHome := os.Getenv("TILEPLAN_HOME")
	if tileplanHome == "" {
		return filepath.Join(os.Getenv("HOME"), ".config", "tileplan")
	}
	return strings.TrimRight(tileplanHome, "/")
}

// LoadConfig reads the config file from the base directory and augments the
// defaults of the given theme with it.
// A missing config file is not an error; the defaults are used.
func LoadConfig(theme config.ColorschemeType) (config.Config, error) {
	path := filepath.Join(BaseDirPath(), "config.yaml")
	yamlData, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("no config file, using defaults")
		yamlData = nil
	} else if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("can't read config file, using defaults")
		yamlData = nil
	}
	return config.ParseConfigAugmentDefaults(theme, yamlData)
}

func themeFromString(s string) config.ColorschemeType {
	switch s {
	case "light":
		return config.Light
	default:
		return config.Dark
	}
}
