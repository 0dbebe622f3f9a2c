package input

import (
	"fmt"
	"sort"

	"github.com/ja-he/tileplan/internal/control/action"
)

// Bind maps the configured key sequences (by action name) to the given named
// actions.
// Every configured name must name an action; actions without a configured
// key sequence stay unbound.
func Bind(keys map[string]string, actions map[string]action.Action) (map[Keyspec]action.Action, error) {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(map[Keyspec]action.Action, len(keys))
	for _, name := range names {
		a, ok := actions[name]
		if !ok {
			return nil, fmt.Errorf("key binding for unknown action '%s'", name)
		}
		spec := Keyspec(keys[name])
		if _, taken := result[spec]; taken {
			return nil, fmt.Errorf("'%s' bound to more than one action (at least '%s')", spec, name)
		}
		result[spec] = a
	}
	return result, nil
}
