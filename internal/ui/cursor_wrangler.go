package ui

import (
	"github.com/rs/zerolog/log"
)

// CursorLocationRequestHandler is an interface for a type that can handle
// requests to place a (text/terminal) cursor on the screen.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requester PaneID)
	Delete(requester PaneID)
}

// CursorWrangler collects the requests of panes to place the text cursor
// during a draw and enacts the most recent one afterwards.
type CursorWrangler struct {
	cc TextCursorController

	desiredLocation     *CursorLocation
	mostRecentRequester PaneID
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{cc: controller}
}

// Put places the cursor at the given location.
func (w *CursorWrangler) Put(l CursorLocation, requester PaneID) {
	if w.desiredLocation != nil && w.mostRecentRequester != requester {
		log.Warn().Msgf("being asked to put cursor (at %s) by pane %d while it is already placed by pane %d (at %s); will be overwritten", l.String(), requester, w.mostRecentRequester, w.desiredLocation.String())
	}

	w.desiredLocation = &l
	w.mostRecentRequester = requester
}

// Delete removes the cursor, if it was placed by the requester.
func (w *CursorWrangler) Delete(requester PaneID) {
	if w.desiredLocation == nil {
		return
	}
	if w.mostRecentRequester != requester {
		log.Debug().Msgf("ignoring pane %d's request to delete cursor, as current requester is pane %d", requester, w.mostRecentRequester)
		return
	}

	w.desiredLocation = nil
	w.mostRecentRequester = NonePaneID
}

// Location returns the requested location, false if no cursor is requested.
func (w *CursorWrangler) Location() (CursorLocation, bool) {
	if w.desiredLocation == nil {
		return CursorLocation{}, false
	}
	return *w.desiredLocation, true
}

// Enact enacts the current cursor location request via the underlying
// cursor controller.
func (w *CursorWrangler) Enact() {
	if w.desiredLocation != nil {
		w.cc.ShowCursor(*w.desiredLocation)
	} else {
		w.cc.HideCursor()
	}
}
