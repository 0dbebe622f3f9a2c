package styling

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal           DrawStyling
	NormalEmphasized DrawStyling

	Status DrawStyling

	Grid      DrawStyling
	EmptyCell DrawStyling
	Cursor    DrawStyling

	Help DrawStyling

	LogEntryError DrawStyling
	LogEntryWarn  DrawStyling
	LogEntryInfo  DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(config config.Stylesheet) *Stylesheet {
	stylesheet := Stylesheet{}

	stylesheet.Normal = StyleFromConfig(config.Normal)
	stylesheet.NormalEmphasized = StyleFromConfig(config.NormalEmphasized)
	stylesheet.Status = StyleFromConfig(config.Status)
	stylesheet.Grid = StyleFromConfig(config.Grid)
	stylesheet.EmptyCell = StyleFromConfig(config.EmptyCell)
	stylesheet.Cursor = StyleFromConfig(config.Cursor)
	stylesheet.Help = StyleFromConfig(config.Help)
	stylesheet.LogEntryError = StyleFromConfig(config.LogEntryError)
	stylesheet.LogEntryWarn = StyleFromConfig(config.LogEntryWarn)
	stylesheet.LogEntryInfo = StyleFromConfig(config.LogEntryInfo)

	return &stylesheet
}

// StyleFromConfig converts a configured styling.
// Invalid colors are logged and replaced by white on black.
func StyleFromConfig(c config.Styling) DrawStyling {
	style, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		log.Warn().Err(err).Msg("invalid styling in config, falling back to white on black")
		style = ColorStyling{FG: colorful.Color{R: 1, G: 1, B: 1}}
	}
	if c.Style != nil {
		style.Font = *c.Style
	}
	return style
}

// TileStyle returns the styling for a cell painted with a tile of the given
// color: the color as background, with black or white text, whichever is more
// readable.
// An invalid color is logged and rendered as the fallback color.
func TileStyle(hex string, fallback string) DrawStyling {
	bg, err := ParseColor(hex)
	if err != nil {
		log.Warn().Err(err).Str("fallback", fallback).Msg("invalid tile color")
		bg, err = ParseColor(fallback)
		if err != nil {
			bg = colorful.Color{R: 0.8, G: 0.8, B: 0.8}
		}
	}
	return ColorStyling{FG: contrastingColor(bg), BG: bg}
}
