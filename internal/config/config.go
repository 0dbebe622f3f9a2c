package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${TILEPLAN_HOME}/config.yaml'.
type Config struct {
	Defaults   Defaults          `yaml:"defaults"`
	Palette    []PaletteTile     `yaml:"palette"`
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Keys       map[string]string `yaml:"keys"`
}

// Defaults are the values new projects are created with.
type Defaults struct {
	ProjectName string `yaml:"project-name,omitempty"`
	TileWidth   int    `yaml:"tile-width,omitempty"`
	TileHeight  int    `yaml:"tile-height,omitempty"`
	Rows        int    `yaml:"rows,omitempty"`
	Columns     int    `yaml:"columns,omitempty"`
}

// A PaletteTile is a tile new tile maps start out with.
type PaletteTile struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal           Styling `yaml:"normal"`
	NormalEmphasized Styling `yaml:"normal-emphasized"`
	Status           Styling `yaml:"status"`
	Grid             Styling `yaml:"grid"`
	EmptyCell        Styling `yaml:"empty-cell"`
	Cursor           Styling `yaml:"cursor"`
	Help             Styling `yaml:"help"`
	LogEntryError    Styling `yaml:"log-entry-error"`
	LogEntryWarn     Styling `yaml:"log-entry-warn"`
	LogEntryInfo     Styling `yaml:"log-entry-info"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Defaults = base.Defaults.augmentWith(augment.Defaults)
	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if len(augment.Palette) > 0 {
		result.Palette = augment.Palette
	}

	result.Keys = make(map[string]string, len(base.Keys)+len(augment.Keys))
	for action, keyspec := range base.Keys {
		result.Keys[action] = keyspec
	}
	for action, keyspec := range augment.Keys {
		result.Keys[action] = keyspec
	}

	return result
}

func (base Defaults) augmentWith(augment Defaults) Defaults {
	result := base
	if augment.ProjectName != "" {
		result.ProjectName = augment.ProjectName
	}
	if augment.TileWidth > 0 {
		result.TileWidth = augment.TileWidth
	}
	if augment.TileHeight > 0 {
		result.TileHeight = augment.TileHeight
	}
	if augment.Rows > 0 {
		result.Rows = augment.Rows
	}
	if augment.Columns > 0 {
		result.Columns = augment.Columns
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.NormalEmphasized.overwriteIfDefined(augment.NormalEmphasized)
	result.Status.overwriteIfDefined(augment.Status)
	result.Grid.overwriteIfDefined(augment.Grid)
	result.EmptyCell.overwriteIfDefined(augment.EmptyCell)
	result.Cursor.overwriteIfDefined(augment.Cursor)
	result.Help.overwriteIfDefined(augment.Help)
	result.LogEntryError.overwriteIfDefined(augment.LogEntryError)
	result.LogEntryWarn.overwriteIfDefined(augment.LogEntryWarn)
	result.LogEntryInfo.overwriteIfDefined(augment.LogEntryInfo)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		// copy, as the base's font style may be shared with other configs
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
