package processors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/tileplan/internal/control/action"
	"github.com/ja-he/tileplan/internal/input"
)

// TextInputProcessor is an input.Processor for text input.
// Special keys (e.g. ESC to close the editor) are mapped to actions; any rune
// is handed to its rune callback, which could, e.g., insert it into a string.
type TextInputProcessor struct {
	mappings map[input.Key]action.Action

	runeCallback func(r rune)
}

// ProcessInput attempts to process the provided input.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if key.Key == tcell.KeyRune {
		p.runeCallback(key.Ch)
		return true
	}
	a, ok := p.mappings[key]
	if !ok {
		return false
	}
	a.Do()
	return true
}

// CapturesInput returns true; text input takes precedence over everything.
func (p *TextInputProcessor) CapturesInput() bool {
	return true
}

// GetHelp returns the input help map for this processor.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		identifier, err := input.ToConfigIdentifierString(k)
		if err != nil {
			continue
		}
		result[input.Keyspec(identifier)] = a.Explain()
	}
	return result
}

// NewTextInputProcessor returns a pointer to a new TextInputProcessor.
// Every keyspec of the mappings must be a single key.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune),
) (*TextInputProcessor, error) {
	keyMappings := map[input.Key]action.Action{}
	for keyspec, a := range mappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys (%w)", keyspec, err)
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for text processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		keyMappings[keys[0]] = a
	}
	return &TextInputProcessor{
		mappings:     keyMappings,
		runeCallback: runeCallback,
	}, nil
}
