package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/tileplan/internal/styling"
	"github.com/ja-he/tileplan/internal/tui"
	"github.com/ja-he/tileplan/internal/ui"
)

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestScreenHandler(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	sh, err := tui.NewScreenHandler(sim)
	if err != nil {
		t.Fatal(err)
	}
	defer sh.Fini()
	sim.SetSize(10, 5)
	style, _ := styling.StyleFromHex("#ffffff", "#000000")

	t.Run("dimensions", func(t *testing.T) {
		x, y, w, h := sh.Dimensions()
		if x != 0 || y != 0 || w != 10 || h != 5 {
			t.Errorf("unexpected dimensions %d,%d %dx%d", x, y, w, h)
		}
	})

	t.Run("text wraps and is cut", func(t *testing.T) {
		sh.Clear()
		sh.DrawText(1, 1, 3, 2, style, "abcdefgh")
		sh.Show()
		expected := map[[2]int]rune{
			{1, 1}: 'a', {2, 1}: 'b', {3, 1}: 'c',
			{1, 2}: 'd', {2, 2}: 'e', {3, 2}: 'f',
			{1, 3}: ' ', {4, 1}: ' ',
		}
		for pos, r := range expected {
			if got := runeAt(sim, pos[0], pos[1]); got != r {
				t.Errorf("expected '%c' at %v, got '%c'", r, pos, got)
			}
		}
	})

	t.Run("box overwrites", func(t *testing.T) {
		sh.Clear()
		sh.DrawText(0, 0, 10, 1, style, "xxxx")
		sh.DrawBox(1, 0, 2, 1, style)
		sh.Show()
		if runeAt(sim, 0, 0) != 'x' || runeAt(sim, 1, 0) != ' ' || runeAt(sim, 2, 0) != ' ' || runeAt(sim, 3, 0) != 'x' {
			t.Error("box did not overwrite exactly its area")
		}
	})

	t.Run("cursor", func(t *testing.T) {
		sh.ShowCursor(ui.CursorLocation{X: 4, Y: 2})
		sh.Show()
		if x, y, visible := sim.GetCursor(); !visible || x != 4 || y != 2 {
			t.Errorf("cursor at %d:%d (visible: %t)", x, y, visible)
		}
		sh.HideCursor()
		sh.Show()
		if _, _, visible := sim.GetCursor(); visible {
			t.Error("cursor still visible")
		}
	})

	t.Run("redraw request", func(t *testing.T) {
		sh.RequestRedraw()
		if _, ok := sh.GetEventPollable().PollEvent().(*tcell.EventInterrupt); !ok {
			t.Error("expected an interrupt event")
		}
	})
}
