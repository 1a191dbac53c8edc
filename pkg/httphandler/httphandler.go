package httphandler

import (
	"errors"
	"net/http"

	// Package
	research "github.com/mutablelogic/go-research"
	manager "github.com/mutablelogic/go-research/pkg/manager"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	jsonschema "github.com/mutablelogic/go-server/pkg/jsonschema"
	prometheus "github.com/prometheus/client_golang/prometheus"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Router registers the handlers for a path, and adds the path to the
// OpenAPI specification
type Router interface {
	RegisterPath(path string, params *jsonschema.Schema, pathitem httprequest.PathItem) error
}

var _ Router = (*httprouter.Router)(nil)

// RegisterHandlers adds the web surface to the router. Metrics are served
// from the gatherer when it is not nil.
func RegisterHandlers(manager *manager.Manager, router Router, gatherer prometheus.Gatherer) error {
	var result error

	// Convenience function to register a path and accumulate any errors
	register := func(path string, pathitem httprequest.PathItem) {
		result = errors.Join(result, router.RegisterPath(path, nil, pathitem))
	}

	// Register handlers
	register(IndexHandler(manager))
	register(ModelListHandler(manager))
	register(ResearchHandler(manager))
	if gatherer != nil {
		register(MetricsHandler(gatherer))
	}

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts a research.Err to an httpresponse.Err, preserving the
// original error message. Unknown error codes map to 500.
func httpErr(err error) error {
	var researchErr research.Err
	if !errors.As(err, &researchErr) {
		return err
	}
	switch researchErr {
	case research.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case research.ErrBadParameter, research.ErrMissingCredential:
		return httpresponse.ErrBadRequest.With(err)
	case research.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	case research.ErrCancelled:
		return httpresponse.Err(http.StatusRequestTimeout).With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
