// Package processors provides input processors composing other processors.
package processors

import (
	"github.com/ja-he/tileplan/internal/input"
)

// ModalInputProcessor is an input processor that can take any number of input
// overlays over its base input processor, e.g. the help overlay over the
// editing bindings.
// It delegates all processing to the topmost of its processors.
type ModalInputProcessor struct {
	base input.Processor

	modalOverlays []input.Processor
}

// NewModalInputProcessor returns a pointer to a new ModalInputProcessor with
// the given base processor and no overlays.
func NewModalInputProcessor(base input.Processor) *ModalInputProcessor {
	return &ModalInputProcessor{base: base}
}

// CapturesInput returns whether the topmost processor captures input.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.applicableProcessor().CapturesInput()
}

// ProcessInput delegates the input to the topmost overlay or, if there are no
// overlays, the base processor.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	return p.applicableProcessor().ProcessInput(key)
}

// ApplyModalOverlay applies an overlay to this processor.
// It returns the overlay's index.
func (p *ModalInputProcessor) ApplyModalOverlay(overlay input.Processor) (index uint) {
	p.modalOverlays = append(p.modalOverlays, overlay)
	return uint(len(p.modalOverlays) - 1)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.modalOverlays) < 1 {
		return input.ErrNoOverlay
	}
	p.modalOverlays = p.modalOverlays[:len(p.modalOverlays)-1]
	return nil
}

// Overlaid returns whether any overlay is applied.
func (p *ModalInputProcessor) Overlaid() bool {
	return len(p.modalOverlays) > 0
}

func (p *ModalInputProcessor) applicableProcessor() input.Processor {
	if len(p.modalOverlays) > 0 {
		return p.modalOverlays[len(p.modalOverlays)-1]
	}
	return p.base
}

// GetHelp returns the help of the base processor; overlays are transient and
// not worth documenting.
func (p *ModalInputProcessor) GetHelp() input.Help {
	return p.base.GetHelp()
}
