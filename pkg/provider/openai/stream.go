package openai

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	// Packages
	client "github.com/mutablelogic/go-client"
	research "github.com/mutablelogic/go-research"
	schema "github.com/mutablelogic/go-research/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// stream hands events from the request goroutine to the consumer over an
// unbuffered channel, so the request only reads ahead by one event.
type stream struct {
	ctx    context.Context
	cancel context.CancelFunc
	items  chan item
	err    error // set by run before items is closed
	once   sync.Once
}

type item struct {
	event schema.Event
	err   error
}

var _ research.Stream = (*stream)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	sseDone = "[DONE]"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newStream(ctx context.Context, cancel context.CancelFunc) *stream {
	return &stream{
		ctx:    ctx,
		cancel: cancel,
		items:  make(chan item),
	}
}

// Close ends the request and waits for it to return
func (s *stream) Close() error {
	s.once.Do(func() {
		s.cancel()
		for range s.items {
			// Drain until the request goroutine has returned
		}
	})
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Next blocks until the next event arrives. It returns io.EOF when the
// response has ended, and an error wrapping research.ErrCancelled when the
// context was cancelled or the stream closed. A record which cannot be
// decoded is returned as an error wrapping research.ErrMalformedEvent, and
// the stream can continue to be read after it.
func (s *stream) Next() (schema.Event, error) {
	item, ok := <-s.items
	if !ok {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	return item.event, item.err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// run performs the request, passing each server-sent event to the consumer
func (s *stream) run(do func(func(client.TextStreamEvent) error) error) {
	defer s.cancel()
	defer close(s.items)

	err := do(s.callback)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		// Normal end of the response
	case s.ctx.Err() != nil:
		s.err = research.ErrCancelled.With(s.ctx.Err())
	default:
		s.err = err
	}
}

func (s *stream) callback(evt client.TextStreamEvent) error {
	data := strings.TrimSpace(evt.Data)
	if data == "" {
		return nil
	} else if data == sseDone {
		return io.EOF
	}

	// Decode the event. Malformed records are passed on as errors and
	// the stream continues.
	var next item
	if event, err := schema.DecodeEvent([]byte(data)); err != nil {
		next.err = research.ErrMalformedEvent.With(err)
	} else if e, ok := event.(schema.ErrorEvent); ok {
		return research.ErrInternalServerError.With(e.Error())
	} else {
		next.event = event
	}

	select {
	case s.items <- next:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
}
