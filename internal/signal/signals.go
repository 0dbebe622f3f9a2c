package signal

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Listener is the capability every model, view and controller has: it can be
// signalled by name and observes every event through Update.
type Listener interface {
	InvokeSignal(e *EventArgs)
	Update(e *EventArgs)
}

// Signals holds an entity's named signal containers.
//
// Names are compared case-insensitively, both when registering and when
// dispatching, so there is at most one container per name. Containers are
// kept in registration order.
//
// The zero value is ready to use. Embedders bind their own Update hook with
// BindUpdate.
type Signals struct {
	containers []*Container
	update     Receiver
}

// BindUpdate sets the hook called after named dispatch.
func (s *Signals) BindUpdate(update Receiver) {
	s.update = update
}

// AddSignal registers receiver under name.
// Registering a name that is already taken does nothing.
func (s *Signals) AddSignal(name Operation, receiver Receiver) {
	if s.find(name) != nil {
		log.Debug().Str("signal", string(name)).Msg("signal already registered, ignoring")
		return
	}
	s.containers = append(s.containers, NewContainer(name, receiver))
}

// RemoveSignal removes the container registered under name, if any.
func (s *Signals) RemoveSignal(name Operation) {
	for i, c := range s.containers {
		if sameName(c.name, name) {
			s.containers = append(s.containers[:i], s.containers[i+1:]...)
			return
		}
	}
}

// ClearSignals removes all containers.
func (s *Signals) ClearSignals() {
	s.containers = nil
}

// SetSignalEnabled toggles dispatch for the container registered under name.
// Handlers use this to guard against re-entering themselves.
func (s *Signals) SetSignalEnabled(name Operation, enabled bool) {
	if c := s.find(name); c != nil {
		c.SetEnabled(enabled)
	}
}

// HasSignal returns whether a container is registered under name.
func (s *Signals) HasSignal(name Operation) bool {
	return s.find(name) != nil
}

// SignalEnabled returns whether a container is registered under name and
// enabled.
func (s *Signals) SignalEnabled(name Operation) bool {
	c := s.find(name)
	return c != nil && c.Enabled()
}

// SignalNames returns the registered names in registration order.
func (s *Signals) SignalNames() []Operation {
	names := make([]Operation, 0, len(s.containers))
	for _, c := range s.containers {
		names = append(names, c.name)
	}
	return names
}

// InvokeSignal dispatches e to the enabled container registered under its
// operation name, then calls the Update hook unless the event suppresses it.
// Update is called regardless of whether a container matched.
func (s *Signals) InvokeSignal(e *EventArgs) {
	if c := s.find(e.OperationName()); c != nil && c.Enabled() {
		c.Receive(e)
	}
	if !e.SuppressUpdate() {
		s.Update(e)
	}
}

// Update calls the bound update hook, if any.
func (s *Signals) Update(e *EventArgs) {
	if s.update != nil {
		s.update(e)
	}
}

func (s *Signals) find(name Operation) *Container {
	for _, c := range s.containers {
		if sameName(c.name, name) {
			return c
		}
	}
	return nil
}

func sameName(a, b Operation) bool {
	return strings.EqualFold(string(a), string(b))
}
