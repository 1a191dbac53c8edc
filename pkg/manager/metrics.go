package manager

import (
	"errors"

	// Packages
	research "github.com/mutablelogic/go-research"
	schema "github.com/mutablelogic/go-research/pkg/schema"
	prometheus "github.com/prometheus/client_golang/prometheus"
	promauto "github.com/prometheus/client_golang/prometheus/promauto"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type metrics struct {
	runs   *prometheus.CounterVec
	events *prometheus.CounterVec
}

// countingStream counts each event pulled from the stream by type
type countingStream struct {
	research.Stream
	metrics *metrics
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	namespace = "research"

	resultOK        = "ok"
	resultRejected  = "rejected"
	resultCancelled = "cancelled"
	resultError     = "error"

	eventMalformed = "malformed"
	eventUnknown   = "unknown"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newMetrics(registry prometheus.Registerer) (result *metrics, err error) {
	// promauto panics when a collector is already registered
	defer func() {
		if r := recover(); r != nil {
			err = research.ErrInternalServerError.Withf("metrics: %v", r)
		}
	}()

	factory := promauto.With(registry)
	return &metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total research runs, by model and result.",
		}, []string{"model", "result"}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total response events received, by type.",
		}, []string{"type"}),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (s *countingStream) Next() (schema.Event, error) {
	event, err := s.Stream.Next()
	switch {
	case err == nil:
		if _, unknown := event.(schema.UnknownEvent); unknown {
			s.metrics.event(eventUnknown)
		} else {
			s.metrics.event(event.EventType())
		}
	case errors.Is(err, research.ErrMalformedEvent):
		s.metrics.event(eventMalformed)
	}
	return event, err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (m *metrics) run(model research.Model, result string) {
	m.runs.WithLabelValues(model.String(), result).Inc()
}

func (m *metrics) event(eventType string) {
	m.events.WithLabelValues(eventType).Inc()
}
