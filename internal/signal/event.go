// Package signal implements the named, synchronous signal dispatch that
// models, views and controllers of the editor communicate through.
//
// Every participant embeds a Signals value, registers receivers on it by
// operation name and binds its own Update hook. InvokeSignal fires the
// matching enabled receiver (if any) and then Update, unless the event asks
// for the update to be suppressed.
package signal

// Operation names a kind of change or request carried by an EventArgs.
// Receivers are registered and looked up by it.
type Operation string

// Operations shared by all entity families. Families add their own.
const (
	OpUpdated       Operation = "updated"
	OpRefresh       Operation = "refresh"
	OpListenerAdded Operation = "listener-added"
)

// EventArgs is the payload of a signal.
//
// The operation name is fixed at construction. The source can only be
// changed through Retarget, which returns a copy.
type EventArgs struct {
	source              any
	operation           Operation
	suppressUpdate      bool
	destinationAsTarget bool
	payload             any
}

// NewEventArgs returns a new event raised by source for the given operation.
func NewEventArgs(source any, op Operation) *EventArgs {
	return &EventArgs{
		source:    source,
		operation: op,
	}
}

// WithSuppressedUpdate marks the event such that receivers' Update hooks are
// not called after named dispatch.
func (e *EventArgs) WithSuppressedUpdate() *EventArgs {
	e.suppressUpdate = true
	return e
}

// WithDestinationAsTarget marks the event such that a multicast rewrites the
// source to each recipient before delivering it.
func (e *EventArgs) WithDestinationAsTarget() *EventArgs {
	e.destinationAsTarget = true
	return e
}

// WithPayload attaches an arbitrary payload, e.g. a sink to pipe data into.
func (e *EventArgs) WithPayload(payload any) *EventArgs {
	e.payload = payload
	return e
}

// Source returns the entity that raised the event.
func (e *EventArgs) Source() any { return e.source }

// OperationName returns the operation the event was raised for.
func (e *EventArgs) OperationName() Operation { return e.operation }

// SuppressUpdate returns whether the Update hook is to be skipped.
func (e *EventArgs) SuppressUpdate() bool { return e.suppressUpdate }

// DestinationAsTarget returns whether a multicast should rewrite the source
// to each recipient.
func (e *EventArgs) DestinationAsTarget() bool { return e.destinationAsTarget }

// Payload returns the attached payload, nil if there is none.
func (e *EventArgs) Payload() any { return e.payload }

// Retarget returns a copy of the event with the source replaced by dst.
// The original event is left untouched, so every recipient of a multicast
// sees its own copy.
func (e *EventArgs) Retarget(dst any) *EventArgs {
	retargeted := *e
	retargeted.source = dst
	return &retargeted
}
