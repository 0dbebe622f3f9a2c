package input

import "errors"

// ErrNoOverlay is returned when popping an overlay off a processor that has
// none.
var ErrNoOverlay = errors.New("no input overlay to pop")

// Processor turns keys into actions, e.g. the editor's bindings or the line
// editor used for renaming.
type Processor interface {
	// ProcessInput handles key and returns whether it led to an action.
	ProcessInput(key Key) bool

	// CapturesInput returns whether the processor takes all keys for itself,
	// e.g. while a key sequence is partially typed or while editing text.
	CapturesInput() bool

	// GetHelp returns the bindings the processor offers.
	GetHelp() Help
}

// ModalProcessor is a Processor that can be overlaid by a stack of other
// processors. Only the topmost one gets input, e.g. the help overlay or a
// line editor over the map bindings.
type ModalProcessor interface {
	Processor

	// ApplyModalOverlay puts overlay on top and returns its stack index.
	ApplyModalOverlay(overlay Processor) (index uint)

	// PopModalOverlay removes the topmost overlay, ErrNoOverlay if there is
	// none.
	PopModalOverlay() error
}
