package processors_test

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/tileplan/internal/control/action"
	"github.com/ja-he/tileplan/internal/input"
	"github.com/ja-he/tileplan/internal/input/processors"
)

func TestModalInputProcessor(t *testing.T) {
	x := input.Key{Key: tcell.KeyRune, Ch: 'x'}
	q := input.Key{Key: tcell.KeyRune, Ch: 'q'}

	t.Run("CapturesInput", func(t *testing.T) {
		base := dummySIP{}
		m := processors.NewModalInputProcessor(&base)
		if m.CapturesInput() {
			t.Error("claims to capture input, initially")
		}
		base.captures = true
		if !m.CapturesInput() {
			t.Error("does not capture input, despite its base processor doing so")
		}
		m.ApplyModalOverlay(&dummySIP{})
		if m.CapturesInput() {
			t.Error("claims to capture input, despite its overlay not capturing")
		}
	})

	t.Run("overlays", func(t *testing.T) {
		base := dummySIP{inputs: map[input.Key]bool{x: true}}
		help := dummySIP{inputs: map[input.Key]bool{q: true}}
		m := processors.NewModalInputProcessor(&base)

		if !m.ProcessInput(x) || m.ProcessInput(q) {
			t.Error("base not processing")
		}

		if i := m.ApplyModalOverlay(&help); i != 0 {
			t.Errorf("got overlay index %d instead of 0", i)
		}
		if !m.Overlaid() {
			t.Error("not overlaid")
		}
		if m.ProcessInput(x) || !m.ProcessInput(q) {
			t.Error("overlay not processing instead of base")
		}

		if err := m.PopModalOverlay(); err != nil {
			t.Fatal(err)
		}
		if !m.ProcessInput(x) || m.Overlaid() {
			t.Error("base not restored")
		}
		if err := m.PopModalOverlay(); !errors.Is(err, input.ErrNoOverlay) {
			t.Error("expected ErrNoOverlay popping empty overlay stack, got", err)
		}
	})

	t.Run("GetHelp", func(t *testing.T) {
		base := dummySIP{help: input.Help{"<space>": "paint"}}
		m := processors.NewModalInputProcessor(&base)
		m.ApplyModalOverlay(&dummySIP{help: input.Help{"q": "close help"}})
		help := m.GetHelp()
		if len(help) != 1 || help["<space>"] != "paint" {
			t.Error("help looks unexpected:", help)
		}
	})

}

// dummy simple input processor for testing
type dummySIP struct {
	captures bool
	inputs   map[input.Key]bool
	help     input.Help
}

func (d *dummySIP) CapturesInput() bool           { return d.captures }
func (d *dummySIP) ProcessInput(k input.Key) bool { return d.inputs[k] }
func (d *dummySIP) GetHelp() input.Help           { return d.help }

func TestTextInputProcessor(t *testing.T) {
	typed := ""
	closed := false
	p, err := processors.NewTextInputProcessor(
		map[input.Keyspec]action.Action{
			"<esc>": action.NewOneWay("close", func() { closed = true }),
		},
		func(r rune) { typed += string(r) },
	)
	if err != nil {
		t.Fatal(err)
	}

	if !p.CapturesInput() {
		t.Error("text input should capture")
	}
	for _, r := range "a b" {
		if !p.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: r}) {
			t.Errorf("rune '%c' not processed", r)
		}
	}
	if typed != "a b" {
		t.Errorf("typed '%s'", typed)
	}
	if p.ProcessInput(input.Key{Key: tcell.KeyTab}) {
		t.Error("unmapped key processed")
	}
	if !p.ProcessInput(input.Key{Key: tcell.KeyESC}) || !closed {
		t.Error("mapped key not processed")
	}
	if help := p.GetHelp(); help["<esc>"] != "close" {
		t.Error("unexpected help", help)
	}

	t.Run("multi-key mapping is invalid", func(t *testing.T) {
		_, err := processors.NewTextInputProcessor(map[input.Keyspec]action.Action{"gg": action.NewOneWay("", nil)}, nil)
		if err == nil {
			t.Error("expected error")
		}
	})
}
