package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// named special keys by their identifiers in a Keyspec (without the angle
// brackets); control-letter combinations are added below
var namedKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"tab":   {Key: tcell.KeyTab},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

func controlLetters() map[string]Key {
	m := make(map[string]Key, 26)
	for i := 0; i < 26; i++ {
		m[fmt.Sprintf("c-%c", 'a'+i)] = Key{Key: tcell.KeyCtrlA + tcell.Key(i)}
	}
	return m
}

var specialKeys = func() map[string]Key {
	m := controlLetters()
	for identifier, key := range namedKeys {
		m[identifier] = key
	}
	return m
}()

// some control letters are the same key as a named one (e.g. <c-i> and
// <tab>); the named identifier wins
var specialIdentifiers = func() map[Key]string {
	m := make(map[Key]string, len(specialKeys))
	for identifier, key := range controlLetters() {
		m[key] = identifier
	}
	for identifier, key := range namedKeys {
		m[key] = identifier
	}
	return m
}()

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(spec)
	keys := make([][]rune, 0)
	specialContext := false

	for pos, r := range specR {
		switch r {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{r})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], r)

		default:
			if specialContext {
				if !unicode.IsLetter(r) && r != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], r)
			} else {
				keys = append(keys, []rune{r})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("special context not closed at end of '%s'", spec)
	}

	result := make([]Key, 0)
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %s", string(keyIdentifier), err.Error())
			}
			result = append(result, key)
		} else {
			result = append(result, Key{Key: tcell.KeyRune, Ch: keyIdentifier[0]})
		}
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier.
func ToConfigIdentifierString(k Key) (string, error) {
	if identifier, ok := specialIdentifiers[k]; ok {
		return "<" + identifier + ">", nil
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch), nil
	}
	return "", fmt.Errorf("undescribable key %s", k.ToDebugString())
}
