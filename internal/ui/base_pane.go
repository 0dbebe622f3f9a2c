package ui

import "sync/atomic"

var lastPaneID uint64

// GeneratePaneID returns a PaneID no other pane has; never NonePaneID.
func GeneratePaneID() PaneID {
	return PaneID(atomic.AddUint64(&lastPaneID, 1))
}

// PaneBase is what every pane carries: its identity and whether it is
// currently shown. Embed it to implement Identify and IsVisible.
type PaneBase struct {
	id      PaneID
	visible func() bool
}

// NewPaneBase returns a PaneBase of a fresh identity, shown while visible
// returns true; a nil visible means always shown.
func NewPaneBase(visible func() bool) PaneBase {
	return PaneBase{id: GeneratePaneID(), visible: visible}
}

// Identify returns the pane's ID, NonePaneID for a zero PaneBase.
func (p *PaneBase) Identify() PaneID { return p.id }

// IsVisible indicates whether the pane is shown.
func (p *PaneBase) IsVisible() bool { return p.visible == nil || p.visible() }
