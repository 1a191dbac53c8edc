package research

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-research/pkg/opt"
	schema "github.com/mutablelogic/go-research/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Researcher is the interface that wraps a deep research provider
type Researcher interface {
	// Return the provider name
	Name() string

	// Research submits a request to the model and returns the live
	// sequence of response events
	Research(ctx context.Context, model Model, opts ...opt.Opt) (Stream, error)
}

// Stream is a pull-based sequence of events from a running request.
// Next blocks until the next event arrives and returns io.EOF when
// the sequence has ended. Close releases the underlying connection
// and may be called at any time.
type Stream interface {
	Next() (schema.Event, error)
	Close() error
}
