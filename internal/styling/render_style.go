package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/tileplan/internal/config"
)

// DrawStyling is how text and cells are drawn: colors and font.
// Variations return modified copies; a styling itself is never changed.
type DrawStyling interface {
	AsTcell() tcell.Style

	// DefaultDimmed is used for placeholders, e.g. "no tile map".
	DefaultDimmed() DrawStyling
	// DefaultEmphasized is used for highlights, e.g. the selected tile.
	DefaultEmphasized() DrawStyling

	Italicized() DrawStyling
	Bolded() DrawStyling

	String() string
}

// ColorStyling is a DrawStyling of a fore- and background color and a font
// style.
type ColorStyling struct {
	FG, BG colorful.Color
	Font   config.FontStyle
}

// percentages by which dimmed and emphasized stylings differ
const (
	dimPercentage      = 50
	emphasisPercentage = 20
)

// AsTcell returns the styling as a tcell.Style.
func (s ColorStyling) AsTcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(colorfulColorToTcellColor(s.FG)).
		Background(colorfulColorToTcellColor(s.BG)).
		Bold(s.Font.Bold).
		Italic(s.Font.Italic).
		Underline(s.Font.Underlined)
}

// DefaultDimmed returns the styling with both colors lightened.
func (s ColorStyling) DefaultDimmed() DrawStyling {
	s.FG = lightenColorfulColor(s.FG, dimPercentage)
	s.BG = lightenColorfulColor(s.BG, dimPercentage)
	return s
}

// DefaultEmphasized returns the styling with both colors darkened.
func (s ColorStyling) DefaultEmphasized() DrawStyling {
	s.FG = darkenColorfulColor(s.FG, emphasisPercentage)
	s.BG = darkenColorfulColor(s.BG, emphasisPercentage)
	return s
}

// Italicized returns the styling in italics.
func (s ColorStyling) Italicized() DrawStyling {
	s.Font.Italic = true
	return s
}

// Bolded returns the styling in bold.
func (s ColorStyling) Bolded() DrawStyling {
	s.Font.Bold = true
	return s
}

// String returns e.g. "#ffffff on #000000 (bold)", for logging.
func (s ColorStyling) String() string {
	font := ""
	for _, f := range []struct {
		set  bool
		name string
	}{{s.Font.Bold, "bold"}, {s.Font.Italic, "italic"}, {s.Font.Underlined, "underlined"}} {
		if !f.set {
			continue
		}
		if font != "" {
			font += ", "
		}
		font += f.name
	}
	if font == "" {
		return fmt.Sprintf("%s on %s", s.FG.Hex(), s.BG.Hex())
	}
	return fmt.Sprintf("%s on %s (%s)", s.FG.Hex(), s.BG.Hex(), font)
}

// StyleFromHex returns the styling of two colors in hex notation, e.g.
// '#ffffff' on '#000000'.
func StyleFromHex(fg, bg string) (ColorStyling, error) {
	fgColor, err := ParseColor(fg)
	if err != nil {
		return ColorStyling{}, err
	}
	bgColor, err := ParseColor(bg)
	if err != nil {
		return ColorStyling{}, err
	}
	return ColorStyling{FG: fgColor, BG: bgColor}, nil
}
