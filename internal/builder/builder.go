// Package builder implements multi-step workflows (import and export of
// projects) as builders whose steps are run in order by a Director.
package builder

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrInvalidDocument is returned when an imported document violates the
// structure of a project. Nothing is applied in that case.
var ErrInvalidDocument = errors.New("invalid document")

// Step is one step of a build.
type Step struct {
	Name string
	Run  func() error
}

// Builder provides the ordered steps of a build.
type Builder interface {
	Steps() []Step
}

// Director runs builders.
type Director struct {
	log zerolog.Logger
}

// NewDirector returns a director logging to the global logger.
func NewDirector() *Director {
	return &Director{log: log.With().Str("component", "director").Logger()}
}

// Construct runs the steps of b in order, aborting on the first failing step.
// The returned error names the failing step and wraps its error.
func (d *Director) Construct(b Builder) error {
	steps := b.Steps()
	for i, step := range steps {
		d.log.Debug().Str("step", step.Name).Int("index", i).Int("of", len(steps)).Msg("running build step")
		if err := step.Run(); err != nil {
			d.log.Error().Err(err).Str("step", step.Name).Msg("build aborted")
			return fmt.Errorf("step '%s' failed (%w)", step.Name, err)
		}
	}
	return nil
}
