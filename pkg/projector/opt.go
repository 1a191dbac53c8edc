package projector

import (
	// Packages
	research "github.com/mutablelogic/go-research"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a projector
type Opt func(*Projector) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLogger sets the logger used for warnings about unknown events and
// errors in malformed events. The default is the global zerolog logger.
func WithLogger(logger zerolog.Logger) Opt {
	return func(p *Projector) error {
		p.log = logger
		return nil
	}
}

// WithRun tags every log line with a run identifier
func WithRun(run string) Opt {
	return func(p *Projector) error {
		if run == "" {
			return research.ErrBadParameter.With("run identifier is required")
		}
		p.run = run
		return nil
	}
}
