package config_test

import (
	"testing"

	"github.com/ja-he/tileplan/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty file gives defaults", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte{})
		if err != nil {
			t.Fatal(err)
		}
		d := config.Default(config.Dark)
		if c.Defaults != d.Defaults || len(c.Palette) != len(d.Palette) {
			t.Error("defaults not kept")
		}
		if c.Stylesheet.Normal.Bg != "#000000" {
			t.Error("not the dark theme")
		}
		if c.Keys["paint"] != "<space>" {
			t.Error("default keys missing")
		}
	})

	t.Run("light theme", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Light, nil)
		if err != nil {
			t.Fatal(err)
		}
		if c.Stylesheet.Normal.Bg != "#ffffff" {
			t.Error("not the light theme")
		}
	})

	t.Run("file overrides what it defines", func(t *testing.T) {
		yamlData := []byte(`
defaults:
  rows: 8
palette:
  - name: snow
    color: "#ffffff"
stylesheet:
  cursor:
    fg: "#000000"
    bg: "#00ff00"
    style:
      italic: true
keys:
  paint: p
`)
		c, err := config.ParseConfigAugmentDefaults(config.Dark, yamlData)
		if err != nil {
			t.Fatal(err)
		}
		if c.Defaults.Rows != 8 || c.Defaults.Columns != config.Default(config.Dark).Defaults.Columns {
			t.Error("defaults not augmented correctly:", c.Defaults)
		}
		if len(c.Palette) != 1 || c.Palette[0].Name != "snow" {
			t.Error("palette not replaced")
		}
		if c.Stylesheet.Cursor.Bg != "#00ff00" || !c.Stylesheet.Cursor.Style.Italic || c.Stylesheet.Cursor.Style.Bold {
			t.Error("cursor styling not overridden")
		}
		if c.Stylesheet.Status.Bg != "#000000" {
			t.Error("undefined styling overridden")
		}
		if c.Keys["paint"] != "p" || c.Keys["quit"] != "q" {
			t.Error("keys not merged")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("defaults: [")); err == nil {
			t.Error("invalid yaml accepted")
		}
	})

	t.Run("overrides do not leak into defaults", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("stylesheet:\n  normal:\n    fg: '#111111'\n    bg: '#222222'\n    style:\n      bold: true\n"))
		if err != nil {
			t.Fatal(err)
		}
		if config.Default(config.Dark).Stylesheet.Normal.Style.Bold {
			t.Error("default modified")
		}
	})

}
