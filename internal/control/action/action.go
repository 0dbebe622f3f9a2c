// Package action provides the actions triggered by editor input.
package action

// Action is something the user can trigger, e.g. by a key sequence.
type Action interface {
	// Do performs the action.
	Do()

	// Undoable returns whether the action can be undone.
	Undoable() bool

	// Undo reverts the effects of the last Do.
	Undo()

	// Explain returns a short description of the action, e.g. for help.
	Explain() string
}
