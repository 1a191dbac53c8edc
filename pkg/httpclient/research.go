package httpclient

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-client"
	research "github.com/mutablelogic/go-research"
	projector "github.com/mutablelogic/go-research/pkg/projector"
	schema "github.com/mutablelogic/go-research/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Research runs research on the server and returns the final projection.
// When the observer is not nil, the response is streamed and each change
// is passed to the observer as it arrives.
func (c *Client) Research(ctx context.Context, req schema.ResearchRequest, observer projector.Observer) (projector.State, error) {
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return projector.State{}, err
	}

	// Return the final projection as JSON
	if observer == nil {
		var state projector.State
		if err := c.DoWithContext(ctx, payload, &state, client.OptPath("research"), client.OptNoTimeout()); err != nil {
			return projector.State{}, err
		}
		return state, nil
	}

	// Stream the projection
	var s remote
	s.observer = observer
	var discard struct{}
	if err := c.DoWithContext(ctx, payload, &discard,
		client.OptPath("research"),
		client.OptReqHeader("Accept", "text/event-stream"),
		client.OptTextStreamCallback(s.callback),
		client.OptNoTimeout(),
	); err != nil {
		return s.state, err
	}
	if s.err != nil {
		return s.state, s.err
	} else if !s.ended {
		return s.state, research.ErrInternalServerError.With("stream ended without a completed event")
	}
	return s.state, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// remote rebuilds the projection from the events of a stream
type remote struct {
	observer projector.Observer
	state    projector.State
	ended    bool
	err      error
}

func (s *remote) callback(evt client.TextStreamEvent) error {
	switch evt.Event {
	case schema.EventActivity:
		var update schema.ActivityUpdate
		if err := json.Unmarshal([]byte(evt.Data), &update); err != nil {
			return research.ErrMalformedEvent.With(err)
		}
		s.state.Activity, s.state.Completed = update.Activity, update.Completed
		s.observer.ActivityChanged(update.Activity, update.Completed)
	case schema.EventReasoning:
		var update schema.ReasoningUpdate
		if err := json.Unmarshal([]byte(evt.Data), &update); err != nil {
			return research.ErrMalformedEvent.With(err)
		}
		s.state.Reasoning = update.Log
		s.observer.ReasoningChanged(update.Log)
	case schema.EventAnswer:
		var update schema.AnswerUpdate
		if err := json.Unmarshal([]byte(evt.Data), &update); err != nil {
			return research.ErrMalformedEvent.With(err)
		}
		s.state.Answer = update.Markdown
		s.observer.AnswerChanged(update.Markdown)
	case schema.EventNote:
		var update schema.NoteUpdate
		if err := json.Unmarshal([]byte(evt.Data), &update); err != nil {
			return research.ErrMalformedEvent.With(err)
		}
		s.state.Notes = append(s.state.Notes, update.Text)
		s.observer.Note(update.Text)
	case schema.EventStreamError:
		var e schema.StreamError
		if err := json.Unmarshal([]byte(evt.Data), &e); err != nil {
			return research.ErrMalformedEvent.With(err)
		}
		s.err = research.ErrInternalServerError.With(e.Error)
		s.ended = true
	case schema.EventCompleted:
		s.ended = true
	}
	return nil
}
