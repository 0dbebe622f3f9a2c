package edit_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/tileplan/internal/control/edit"
	"github.com/ja-he/tileplan/internal/input"
)

func TestStringEditor(t *testing.T) {
	expect := func(t *testing.T, e *edit.StringEditor, content string, cursor int) {
		t.Helper()
		if e.GetContent() != content || e.GetCursorPos() != cursor {
			t.Errorf("expected '%s' at %d, got '%s' at %d", content, cursor, e.GetContent(), e.GetCursorPos())
		}
	}

	t.Run("starts past the end", func(t *testing.T) {
		e := edit.NewStringEditor("layer", "ground", nil)
		expect(t, e, "ground", 6)
		if e.GetName() != "layer" {
			t.Error("unexpected name", e.GetName())
		}
	})

	t.Run("insert and delete", func(t *testing.T) {
		e := edit.NewStringEditor("layer", "ground", nil)
		e.AddRune('s')
		expect(t, e, "grounds", 7)
		e.MoveCursorToBeginning()
		e.AddRune('u')
		e.AddRune('\n')
		expect(t, e, "ugrounds", 1)
		e.BackspaceRune()
		e.BackspaceRune()
		expect(t, e, "grounds", 0)
		e.DeleteRune()
		expect(t, e, "rounds", 0)
		e.MoveCursorRight()
		e.MoveCursorRight()
		e.DeleteToEnd()
		expect(t, e, "ro", 2)
		e.MoveCursorLeft()
		e.BackspaceToBeginning()
		expect(t, e, "o", 0)
		e.Clear()
		expect(t, e, "", 0)
		e.MoveCursorLeft()
		e.DeleteRune()
		expect(t, e, "", 0)
	})

	t.Run("words", func(t *testing.T) {
		e := edit.NewStringEditor("map", "big  old island", nil)
		e.MoveCursorToBeginning()
		e.MoveCursorNextWordBeginning()
		expect(t, e, "big  old island", 5)
		e.MoveCursorNextWordBeginning()
		e.MoveCursorNextWordBeginning()
		expect(t, e, "big  old island", 15)
		e.MoveCursorPrevWordBeginning()
		expect(t, e, "big  old island", 9)
		e.MoveCursorLeft()
		e.MoveCursorPrevWordBeginning()
		expect(t, e, "big  old island", 5)
	})

	t.Run("input processor writes and quits", func(t *testing.T) {
		committed := ""
		quits := 0
		e := edit.NewStringEditor("layer", "ground", func(s string) { committed = s })
		e.AddQuitCallback(func() { quits++ })
		p, err := e.CreateInputProcessor()
		if err != nil {
			t.Fatal(err)
		}

		p.ProcessInput(input.Key{Key: tcell.KeyCtrlU})
		for _, r := range "sea floor" {
			p.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: r})
		}
		p.ProcessInput(input.Key{Key: tcell.KeyEnter})
		if committed != "sea floor" || quits != 1 {
			t.Errorf("committed '%s', quit %d times", committed, quits)
		}

		p.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: '!'})
		p.ProcessInput(input.Key{Key: tcell.KeyESC})
		if committed != "sea floor" || quits != 2 {
			t.Error("escape should quit without writing")
		}
	})
}
