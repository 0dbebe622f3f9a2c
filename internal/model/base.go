package model

import (
	"github.com/google/uuid"

	"github.com/ja-he/tileplan/internal/signal"
)

// Base provides identity, listener bookkeeping and change broadcasting.
//
// A model embedding Base must call setup with itself during construction, so
// that broadcast events carry the model (not the Base) as their source.
type Base struct {
	signal.Signals

	self      any
	id        uuid.UUID
	listeners []signal.Listener

	suppressUpdates bool
	disposed        bool
}

func (b *Base) setup(self any) {
	b.self = self
	b.id = uuid.New()
}

// UUID returns the model's identity.
func (b *Base) UUID() uuid.UUID { return b.id }

// Equals returns whether other is a model (or anything with a UUID) of the
// same identity.
func (b *Base) Equals(other any) bool {
	o, ok := other.(interface{ UUID() uuid.UUID })
	return ok && o.UUID() == b.id
}

// AddListener appends l to the model's listeners, unless already present,
// and announces OpListenerAdded, so that l gets to see the current state.
func (b *Base) AddListener(l signal.Listener) {
	if l == nil || b.disposed {
		return
	}
	for _, existing := range b.listeners {
		if existing == l {
			return
		}
	}
	b.listeners = append(b.listeners, l)
	b.DoneUpdating(signal.OpListenerAdded)
}

// RemoveListener removes l from the model's listeners.
func (b *Base) RemoveListener(l signal.Listener) {
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns a copy of the model's listeners.
func (b *Base) Listeners() []signal.Listener {
	result := make([]signal.Listener, len(b.listeners))
	copy(result, b.listeners)
	return result
}

// SetSuppressUpdates toggles whether changes are announced.
func (b *Base) SetSuppressUpdates(suppress bool) { b.suppressUpdates = suppress }

// SuppressUpdates returns whether changes are currently not announced.
func (b *Base) SuppressUpdates() bool { return b.suppressUpdates }

// DoneUpdating announces a change of the given kind to all listeners.
// It does nothing while updates are suppressed or after disposal.
func (b *Base) DoneUpdating(op signal.Operation) {
	b.announce(op)
}

// Refresh re-announces the current state without implying a specific change.
func (b *Base) Refresh() {
	b.announce(signal.OpRefresh)
}

// RefreshAs re-announces the current state under the given operation.
func (b *Base) RefreshAs(op signal.Operation) {
	b.announce(op)
}

func (b *Base) announce(op signal.Operation) {
	if b.suppressUpdates || b.disposed {
		return
	}
	e := signal.NewEventArgs(b.self, op)
	for _, l := range b.Listeners() {
		l.InvokeSignal(e)
	}
}

// Dispose announces OpRemoved and then drops all listeners and signals.
// A disposed model announces nothing anymore.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.announce(OpRemoved)
	b.listeners = nil
	b.ClearSignals()
	b.disposed = true
}

// Disposed returns whether the model was disposed.
func (b *Base) Disposed() bool { return b.disposed }

// pipeTo registers the OpPipe receiver writing the model's record to the
// sink carried by the event.
func (b *Base) pipeTo(record func() Record) {
	b.AddSignal(OpPipe, func(e *signal.EventArgs) {
		if sink, ok := e.Payload().(Sink); ok {
			sink.Put(record())
		}
	})
}
