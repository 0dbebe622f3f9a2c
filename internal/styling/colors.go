package styling

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func colorfulColorToTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.Clamped().RGB255()

	rgb := ((uint32(r)) << 16) | (uint32(g) << 8) | (uint32(b))

	return tcell.NewHexColor(int32(rgb))
}

func lightenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	scalar := float64(percentage) / 100.0

	lightnessDelta := 1.0 - ltn
	newLightness := math.Min(1.0, ltn+(lightnessDelta*scalar))

	return colorful.Hsl(hue, sat, newLightness)
}

func darkenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	scalar := float64(percentage) / 100.0

	darknessDelta := ltn
	newLightness := math.Max(0.0, ltn-(darknessDelta*scalar))

	return colorful.Hsl(hue, sat, newLightness)
}

// ParseColor parses a color in hexadecimal or HTML color notation, leading
// with a '#'.
//
// Examples:
//   - '#ff0000'
//   - '#fff'
//   - '#BEEF42'
func ParseColor(hex string) (colorful.Color, error) {
	color, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color '%s' (%w)", hex, err)
	}
	return color, nil
}

// relative luminance as per WCAG
func getLuminance(color colorful.Color) float64 {
	linear := func(v float64) float64 {
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(color.R) + 0.7152*linear(color.G) + 0.0722*linear(color.B)
}

// contrastingColor returns black or white, whichever is easier to read on the
// given background.
func contrastingColor(bg colorful.Color) colorful.Color {
	if getLuminance(bg) > 0.179 {
		return colorful.Color{R: 0, G: 0, B: 0}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}
