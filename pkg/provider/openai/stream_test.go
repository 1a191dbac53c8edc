package openai

import (
	"context"
	"errors"
	"io"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	research "github.com/mutablelogic/go-research"
	schema "github.com/mutablelogic/go-research/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// UNIT TESTS: stream

// replay returns a request function which sends the given data lines to
// the callback, one event each, stopping when the callback returns an error
func replay(data ...string) func(func(client.TextStreamEvent) error) error {
	return func(callback func(client.TextStreamEvent) error) error {
		for _, d := range data {
			if err := callback(client.TextStreamEvent{Event: "message", Data: d}); err != nil {
				return err
			}
		}
		return nil
	}
}

func startStream(t *testing.T, do func(func(client.TextStreamEvent) error) error) *stream {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	s := newStream(ctx, cancel)
	go s.run(do)
	t.Cleanup(func() { s.Close() })
	return s
}

func Test_stream_001(t *testing.T) {
	// Test events are delivered in order and the stream ends with EOF
	assert := assert.New(t)
	s := startStream(t, replay(
		`{"type":"response.created","response":{"id":"resp_1","output":[]}}`,
		`{"type":"response.output_text.delta","delta":"The"}`,
		``,
		`{"type":"response.output_text.delta","delta":" rule"}`,
	))

	event, err := s.Next()
	assert.NoError(err)
	assert.IsType(schema.ResponseCreated{}, event)

	event, err = s.Next()
	assert.NoError(err)
	assert.Equal("The", event.(schema.OutputTextDelta).Delta)

	event, err = s.Next()
	assert.NoError(err)
	assert.Equal(" rule", event.(schema.OutputTextDelta).Delta)

	_, err = s.Next()
	assert.ErrorIs(err, io.EOF)
	_, err = s.Next()
	assert.ErrorIs(err, io.EOF)
}

func Test_stream_002(t *testing.T) {
	// Test a malformed record is returned as an error and the stream continues
	assert := assert.New(t)
	s := startStream(t, replay(
		`{"type":"response.output_text.delta","delta":1}`,
		`{"type":"response.output_text.delta","delta":"ok"}`,
	))

	_, err := s.Next()
	assert.ErrorIs(err, research.ErrMalformedEvent)

	event, err := s.Next()
	assert.NoError(err)
	assert.Equal("ok", event.(schema.OutputTextDelta).Delta)

	_, err = s.Next()
	assert.ErrorIs(err, io.EOF)
}

func Test_stream_003(t *testing.T) {
	// Test the [DONE] sentinel ends the stream
	assert := assert.New(t)
	s := startStream(t, replay(
		`[DONE]`,
		`{"type":"response.output_text.delta","delta":"never"}`,
	))
	_, err := s.Next()
	assert.ErrorIs(err, io.EOF)
}

func Test_stream_004(t *testing.T) {
	// Test an error record ends the stream with an error
	assert := assert.New(t)
	s := startStream(t, replay(
		`{"type":"error","code":"server_error","message":"boom"}`,
	))
	_, err := s.Next()
	assert.ErrorIs(err, research.ErrInternalServerError)
	assert.ErrorContains(err, "boom")
}

func Test_stream_005(t *testing.T) {
	// Test a transport error is returned by Next
	assert := assert.New(t)
	sentinel := errors.New("connection reset")
	s := startStream(t, func(func(client.TextStreamEvent) error) error {
		return sentinel
	})
	_, err := s.Next()
	assert.ErrorIs(err, sentinel)
}

func Test_stream_006(t *testing.T) {
	// Test closing the stream unblocks a request waiting to hand over an event
	assert := assert.New(t)
	s := startStream(t, func(callback func(client.TextStreamEvent) error) error {
		for {
			if err := callback(client.TextStreamEvent{Data: `{"type":"response.in_progress","response":{"id":"r","output":[]}}`}); err != nil {
				return err
			}
		}
	})

	event, err := s.Next()
	assert.NoError(err)
	assert.IsType(schema.ResponseInProgress{}, event)

	assert.NoError(s.Close())
	_, err = s.Next()
	assert.ErrorIs(err, research.ErrCancelled)
}
