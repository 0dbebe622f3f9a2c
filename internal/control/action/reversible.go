package action

// Reversible is an action made of a func() performing it and, if it can be
// undone, another one reverting it.
type Reversible struct {
	do      func()
	undo    func()
	explain string
}

// NewReversible returns an undoable action.
func NewReversible(explanation string, do func(), undo func()) *Reversible {
	return &Reversible{
		do:      do,
		undo:    undo,
		explain: explanation,
	}
}

// NewOneWay returns an action that cannot be undone, e.g. moving the cursor
// or quitting. History does not record it.
func NewOneWay(explanation string, do func()) *Reversible {
	return &Reversible{do: do, explain: explanation}
}

// Do performs this action.
func (a *Reversible) Do() { a.do() }

// Undoable returns whether the action was given a func() reverting it.
func (a *Reversible) Undoable() bool { return a.undo != nil }

// Undo reverts this action; a one-way action is left as done.
func (a *Reversible) Undo() {
	if a.undo != nil {
		a.undo()
	}
}

// Explain returns the explanation given on construction.
func (a *Reversible) Explain() string { return a.explain }

// History performs actions and keeps the undoable ones for undoing them in
// reverse order.
type History struct {
	done  []Action
	limit int
}

// NewHistory returns an empty history keeping at most limit actions; a limit
// of 0 or less keeps all of them.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Perform does a and, if it is undoable, records it.
func (h *History) Perform(a Action) {
	a.Do()
	if !a.Undoable() {
		return
	}
	h.done = append(h.done, a)
	if h.limit > 0 && len(h.done) > h.limit {
		h.done = h.done[len(h.done)-h.limit:]
	}
}

// Undo undoes the most recently performed undoable action and returns it;
// nil if there is nothing to undo.
func (h *History) Undo() Action {
	if len(h.done) == 0 {
		return nil
	}
	a := h.done[len(h.done)-1]
	h.done = h.done[:len(h.done)-1]
	a.Undo()
	return a
}

// Len returns the number of actions that can be undone.
func (h *History) Len() int { return len(h.done) }

// Clear forgets all recorded actions.
func (h *History) Clear() { h.done = nil }
