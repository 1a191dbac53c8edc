package manager

import (
	// Packages
	research "github.com/mutablelogic/go-research"
	session "github.com/mutablelogic/go-research/pkg/session"
	prometheus "github.com/prometheus/client_golang/prometheus"
	zerolog "github.com/rs/zerolog"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a manager
type Opt func(*Manager) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithDefaults sets the configuration which requests start from. The
// credential of the defaults is used when a request does not set one.
func WithDefaults(config *session.Config) Opt {
	return func(m *Manager) error {
		if config == nil {
			return research.ErrBadParameter.With("defaults are required")
		}
		m.defaults = *config
		return nil
	}
}

// WithLogger sets the logger for runs
func WithLogger(logger zerolog.Logger) Opt {
	return func(m *Manager) error {
		m.log = logger
		return nil
	}
}

// WithTracer sets the tracer for run spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(m *Manager) error {
		m.tracer = tracer
		return nil
	}
}

// WithRegisterer sets where metrics are registered. The default is the
// prometheus default registerer.
func WithRegisterer(registry prometheus.Registerer) Opt {
	return func(m *Manager) error {
		if registry == nil {
			return research.ErrBadParameter.With("registerer is required")
		}
		m.registry = registry
		return nil
	}
}
