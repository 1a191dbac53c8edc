package httphandler

import (
	"bytes"
	"net/http"
	"strings"

	// Packages
	manager "github.com/mutablelogic/go-research/pkg/manager"
	schema "github.com/mutablelogic/go-research/pkg/schema"
	session "github.com/mutablelogic/go-research/pkg/session"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	goldmark "github.com/yuin/goldmark"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// sse writes each change of a display region as a server-sent event
type sse struct {
	write func(event string, data any)
	run   string
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /research
func ResearchHandler(manager *manager.Manager) (string, httprequest.PathItem) {
	return "/research", httprequest.NewPathItem("Research", "Deep research").Post(func(w http.ResponseWriter, r *http.Request) {
		var req schema.ResearchRequest
		if err := httprequest.Read(r, &req); err != nil {
			_ = httpresponse.Error(w, err)
			return
		}

		// Apply the request to the defaults, and check it before any
		// response is started
		config, err := manager.Config(requestOpts(req)...)
		if err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		} else if err := config.Validate(); err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		}

		// Check Accept header for streaming vs JSON
		switch acceptType(r) {
		case acceptStream:
			researchStream(w, r, manager, config)
		case acceptJSON:
			researchJSON(w, r, manager, config)
		default:
			_ = httpresponse.Error(w, httpresponse.Err(http.StatusNotAcceptable))
		}
	}, "Run deep research and return the activity, reasoning and answer")
}

// researchJSON returns the final projection as a single JSON object
func researchJSON(w http.ResponseWriter, r *http.Request, manager *manager.Manager, config *session.Config) {
	state, err := manager.Research(r.Context(), config, nil)
	if err != nil {
		_ = httpresponse.Error(w, httpErr(err))
		return
	}
	_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), state)
}

// researchStream sends each change to the projection as a
// text/event-stream, ending with a completed or error event
func researchStream(w http.ResponseWriter, r *http.Request, manager *manager.Manager, config *session.Config) {
	stream := httpresponse.NewTextStream(w)
	if stream == nil {
		_ = httpresponse.Error(w, httpresponse.ErrInternalError)
		return
	}
	defer stream.Close()

	observer := &sse{
		write: func(event string, data any) {
			stream.Write(event, data)
		},
	}
	state, err := manager.Research(r.Context(), config, observer)
	if err != nil {
		stream.Write(schema.EventStreamError, schema.StreamError{Run: observer.run, Error: err.Error()})
		return
	}

	// Send the final event
	stream.Write(schema.EventCompleted, schema.CompletedUpdate{
		Run:       observer.run,
		Completed: state.Completed,
		Reasoning: len(state.Reasoning),
	})
}

///////////////////////////////////////////////////////////////////////////////
// OBSERVER

func (s *sse) Start(run string) {
	s.run = run
}

func (s *sse) ActivityChanged(activity string, completed bool) {
	s.write(schema.EventActivity, schema.ActivityUpdate{Run: s.run, Activity: activity, Completed: completed})
}

func (s *sse) ReasoningChanged(log []string) {
	s.write(schema.EventReasoning, schema.ReasoningUpdate{Run: s.run, Log: log})
}

func (s *sse) AnswerChanged(answer string) {
	s.write(schema.EventAnswer, schema.AnswerUpdate{Run: s.run, Markdown: answer, HTML: markdownHTML(answer)})
}

func (s *sse) Note(text string) {
	s.write(schema.EventNote, schema.NoteUpdate{Run: s.run, Text: text})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// requestOpts returns the options which apply a request to the defaults
func requestOpts(req schema.ResearchRequest) []session.Opt {
	opts := []session.Opt{
		session.WithCredential(strings.TrimSpace(req.Credential)),
		session.WithModel(req.Model),
	}
	if req.SystemPrompt != nil {
		opts = append(opts, session.WithSystemPrompt(*req.SystemPrompt))
	}
	if req.UserPrompt != nil {
		opts = append(opts, session.WithUserPrompt(*req.UserPrompt))
	}
	return opts
}

// markdownHTML renders markdown, or returns an empty string if it cannot
// be rendered. Raw HTML in the markdown is not passed through.
func markdownHTML(markdown string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return ""
	}
	return buf.String()
}
