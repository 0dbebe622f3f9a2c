package config

import "fmt"

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Defaults: Defaults{
			ProjectName: "untitled",
			TileWidth:   16,
			TileHeight:  16,
			Rows:        16,
			Columns:     24,
		},
		Palette: []PaletteTile{
			{Name: "grass", Color: "#5fa84a"},
			{Name: "water", Color: "#3b7dd8"},
			{Name: "sand", Color: "#e3cf8f"},
			{Name: "rock", Color: "#7a7a7a"},
			{Name: "lava", Color: "#d8542b"},
		},
		Stylesheet: defaultStylesheet(colorschemeType),
		Keys:       DefaultKeys(),
	}
}

// DefaultKeys returns the default key bindings, mapping editor actions to
// key sequences.
func DefaultKeys() map[string]string {
	keys := map[string]string{
		"cursor-left":  "<left>",
		"cursor-right": "<right>",
		"cursor-up":    "<up>",
		"cursor-down":  "<down>",
		"paint":        "<space>",
		"clear":        "x",
		"fill":         "F",
		"next-layer":   "n",
		"prev-layer":   "N",
		"toggle-layer": "v",
		"add-layer":    "a",
		"remove-layer": "D",
		"rename-layer": "r",
		"rename-map":   "R",
		"undo":         "u",
		"save":         "s",
		"help":         "?",
		"log":          "L",
		"quit":         "q",
	}
	for i := 1; i <= 9; i++ {
		keys[fmt.Sprintf("select-tile-%d", i)] = fmt.Sprint(i)
	}
	return keys
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:           Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			NormalEmphasized: Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Status:           Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Grid:             Styling{Fg: "#c0c0c0", Bg: "#ffffff", Style: &FontStyle{}},
			EmptyCell:        Styling{Fg: "#d0d0d0", Bg: "#fafafa", Style: &FontStyle{}},
			Cursor:           Styling{Fg: "#ffffff", Bg: "#cc0000", Style: &FontStyle{Bold: true}},
			Help:             Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			LogEntryError:    Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryWarn:     Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryInfo:     Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
		}
	}
	return Stylesheet{
		Normal:           Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		NormalEmphasized: Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
		Status:           Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		Grid:             Styling{Fg: "#404040", Bg: "#000000", Style: &FontStyle{}},
		EmptyCell:        Styling{Fg: "#303030", Bg: "#101010", Style: &FontStyle{}},
		Cursor:           Styling{Fg: "#ffffff", Bg: "#cc0000", Style: &FontStyle{Bold: true}},
		Help:             Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		LogEntryError:    Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogEntryWarn:     Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogEntryInfo:     Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
	}
}
