package signal_test

import (
	"testing"

	"github.com/ja-he/tileplan/internal/signal"
)

type recorder struct {
	signal.Signals
	updates []*signal.EventArgs
}

func newRecorder() *recorder {
	r := &recorder{}
	r.BindUpdate(r.Update)
	return r
}

func (r *recorder) Update(e *signal.EventArgs) {
	r.updates = append(r.updates, e)
}

func TestInvokeSignal(t *testing.T) {

	t.Run("named receiver fires, then update", func(t *testing.T) {
		r := newRecorder()
		order := []string{}
		r.AddSignal("X", func(e *signal.EventArgs) { order = append(order, "receiver") })
		r.BindUpdate(func(e *signal.EventArgs) { order = append(order, "update") })

		r.InvokeSignal(signal.NewEventArgs(nil, "X"))

		if len(order) != 2 || order[0] != "receiver" || order[1] != "update" {
			t.Error("unexpected dispatch order:", order)
		}
	})

	t.Run("disabled receiver does not fire but update does", func(t *testing.T) {
		r := newRecorder()
		fired := 0
		r.AddSignal("X", func(e *signal.EventArgs) { fired++ })
		r.SetSignalEnabled("X", false)

		r.InvokeSignal(signal.NewEventArgs(nil, "X"))

		if fired != 0 {
			t.Error("disabled receiver fired")
		}
		if len(r.updates) != 1 {
			t.Errorf("expected 1 update, got %d", len(r.updates))
		}

		r.SetSignalEnabled("X", true)
		r.InvokeSignal(signal.NewEventArgs(nil, "X"))
		if fired != 1 {
			t.Error("re-enabled receiver did not fire")
		}
	})

	t.Run("unknown name still updates", func(t *testing.T) {
		r := newRecorder()
		r.InvokeSignal(signal.NewEventArgs(nil, "nobody-listens"))
		if len(r.updates) != 1 {
			t.Errorf("expected 1 update, got %d", len(r.updates))
		}
	})

	t.Run("suppressed update", func(t *testing.T) {
		r := newRecorder()
		fired := 0
		r.AddSignal("X", func(e *signal.EventArgs) { fired++ })

		r.InvokeSignal(signal.NewEventArgs(nil, "X").WithSuppressedUpdate())

		if fired != 1 {
			t.Error("receiver did not fire for suppressed-update event")
		}
		if len(r.updates) != 0 {
			t.Error("update fired despite suppression")
		}
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		r := newRecorder()
		fired := 0
		r.AddSignal("Layer-Removed", func(e *signal.EventArgs) { fired++ })
		r.InvokeSignal(signal.NewEventArgs(nil, "layer-removed"))
		if fired != 1 {
			t.Error("receiver not found case-insensitively")
		}
	})

	t.Run("no update hook bound", func(t *testing.T) {
		var s signal.Signals
		fired := false
		s.AddSignal("X", func(e *signal.EventArgs) { fired = true })
		s.InvokeSignal(signal.NewEventArgs(nil, "X"))
		if !fired {
			t.Error("receiver did not fire on zero value Signals")
		}
	})

}

func TestAddSignal(t *testing.T) {

	t.Run("duplicate registration is a no-op", func(t *testing.T) {
		r := newRecorder()
		first, second := 0, 0
		r.AddSignal("X", func(e *signal.EventArgs) { first++ })
		r.AddSignal("x", func(e *signal.EventArgs) { second++ })

		r.InvokeSignal(signal.NewEventArgs(nil, "X"))

		if first != 1 || second != 0 {
			t.Errorf("expected only first receiver to fire, got first=%d second=%d", first, second)
		}
		if len(r.SignalNames()) != 1 {
			t.Error("duplicate name registered:", r.SignalNames())
		}
	})

	t.Run("registration order kept", func(t *testing.T) {
		r := newRecorder()
		r.AddSignal("c", nil)
		r.AddSignal("a", nil)
		r.AddSignal("b", nil)
		names := r.SignalNames()
		if len(names) != 3 || names[0] != "c" || names[1] != "a" || names[2] != "b" {
			t.Error("unexpected order:", names)
		}
	})

	t.Run("remove and clear", func(t *testing.T) {
		r := newRecorder()
		r.AddSignal("a", nil)
		r.AddSignal("b", nil)

		r.RemoveSignal("A")
		r.RemoveSignal("does-not-exist")
		if r.HasSignal("a") || !r.HasSignal("b") {
			t.Error("remove removed the wrong signal:", r.SignalNames())
		}

		r.ClearSignals()
		if len(r.SignalNames()) != 0 {
			t.Error("clear left signals:", r.SignalNames())
		}
	})

}

func TestReentrancyGuard(t *testing.T) {
	r := newRecorder()
	depth := 0
	r.AddSignal("X", func(e *signal.EventArgs) {
		depth++
		r.SetSignalEnabled("X", false)
		// would recurse forever without the guard
		r.InvokeSignal(signal.NewEventArgs(nil, "X"))
		r.SetSignalEnabled("X", true)
	})

	r.InvokeSignal(signal.NewEventArgs(nil, "X"))

	if depth != 1 {
		t.Errorf("receiver re-entered, depth %d", depth)
	}
	if !r.SignalEnabled("X") {
		t.Error("receiver left itself disabled")
	}
}

func TestRetarget(t *testing.T) {
	a, b := "a", "b"
	e := signal.NewEventArgs(a, "X").WithDestinationAsTarget().WithPayload(42)

	r := e.Retarget(b)

	if e.Source() != a {
		t.Error("retarget modified the original event")
	}
	if r.Source() != b {
		t.Error("retargeted event has wrong source")
	}
	if r.OperationName() != "X" || !r.DestinationAsTarget() || r.Payload() != 42 {
		t.Error("retargeted event lost its data")
	}
}
