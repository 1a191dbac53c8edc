/*
manager runs research requests: it submits a configuration through a
connector, projects the returned events onto an observer and records
metrics, log lines and a trace span for each run.
*/
package manager

import (
	"context"
	"errors"

	// Packages
	uuid "github.com/google/uuid"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	research "github.com/mutablelogic/go-research"
	projector "github.com/mutablelogic/go-research/pkg/projector"
	session "github.com/mutablelogic/go-research/pkg/session"
	prometheus "github.com/prometheus/client_golang/prometheus"
	zerolog "github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Starter is implemented by observers which need the run identifier
// before the first event
type Starter interface {
	Start(run string)
}

type Manager struct {
	connect  session.Connector
	defaults session.Config
	log      zerolog.Logger
	tracer   trace.Tracer
	registry prometheus.Registerer
	metrics  *metrics
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a manager which connects to a researcher with the
// connector. The default configuration is the built-in one unless
// replaced with WithDefaults.
func New(connect session.Connector, opts ...Opt) (*Manager, error) {
	if connect == nil {
		return nil, research.ErrBadParameter.With("connector is required")
	}
	defaults, err := session.New()
	if err != nil {
		return nil, err
	}

	m := &Manager{
		connect:  connect,
		defaults: *defaults,
		log:      log.Logger,
		registry: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	// Register metrics
	if metrics, err := newMetrics(m.registry); err != nil {
		return nil, err
	} else {
		m.metrics = metrics
	}

	// Return success
	return m, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Config returns a copy of the default configuration with the options
// applied
func (m *Manager) Config(opts ...session.Opt) (*session.Config, error) {
	config := m.defaults
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	return &config, nil
}

// Research submits the configuration and projects the events onto the
// observer until the stream ends, an error occurs or the context is
// cancelled. Returns the final projection, which is empty if the
// configuration was not valid. The observer may be nil.
func (m *Manager) Research(ctx context.Context, config *session.Config, observer projector.Observer) (_ projector.State, err error) {
	run := uuid.NewString()
	logger := m.log.With().Str("run", run).Str("model", config.Model.String()).Logger()

	// OTEL
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "Research",
		attribute.String("run", run),
		attribute.String("model", config.Model.String()),
	)
	defer func() { endSpan(err) }()

	// Submit the request, nothing is sent when the configuration is invalid
	stream, err := config.Submit(ctx, m.connect)
	if err != nil {
		m.metrics.run(config.Model, resultOf(err))
		logger.Warn().Err(err).Msg("research not submitted")
		return projector.State{}, err
	}
	defer stream.Close()
	logger.Info().Msg("research submitted")
	if starter, ok := observer.(Starter); ok {
		starter.Start(run)
	}

	// Project the events
	p, err := projector.New(observer, projector.WithLogger(m.log), projector.WithRun(run))
	if err != nil {
		return projector.State{}, err
	}
	err = p.Run(ctx, &countingStream{Stream: stream, metrics: m.metrics})

	// Report the result
	state := p.State()
	m.metrics.run(config.Model, resultOf(err))
	if err != nil {
		logger.Error().Err(err).Msg("research ended with an error")
	} else {
		logger.Info().Bool("completed", state.Completed).Int("reasoning", len(state.Reasoning)).Int("answer", len(state.Answer)).Msg("research ended")
	}
	return state, err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// resultOf returns the metrics label for the outcome of a run
func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, research.ErrMissingCredential), errors.Is(err, research.ErrBadParameter):
		return resultRejected
	case errors.Is(err, research.ErrCancelled), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resultCancelled
	default:
		return resultError
	}
}
