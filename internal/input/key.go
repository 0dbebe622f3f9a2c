package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press: a special key, or a rune if Key is
// tcell.KeyRune.
type Key struct {
	Key tcell.Key
	Ch  rune
}

// KeyFromTcellEvent returns the Key of a tcell key event.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// ToDebugString returns a representation of the key for logging.
func (k Key) ToDebugString() string {
	if k.Key == tcell.KeyRune {
		return fmt.Sprintf("rune '%c'", k.Ch)
	}
	if name, ok := tcell.KeyNames[k.Key]; ok {
		return name
	}
	return fmt.Sprintf("key %d", k.Key)
}

// Keyspec is a key sequence as written in the config, e.g. "<c-w>x".
type Keyspec string

// Help maps key sequences to the explanation of their actions.
type Help map[Keyspec]string
