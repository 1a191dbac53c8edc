package projector

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"

	// Packages
	research "github.com/mutablelogic/go-research"
	schema "github.com/mutablelogic/go-research/pkg/schema"
	zerolog "github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Observer is notified whenever a display region changes. Each call
// carries the full value of the region, so an observer can redraw it
// without keeping any state of its own.
type Observer interface {
	// The current activity changed, or the research completed
	ActivityChanged(activity string, completed bool)

	// An entry was appended to the reasoning log
	ReasoningChanged(log []string)

	// The answer text changed
	AnswerChanged(answer string)

	// An informational note, which does not change any region
	Note(text string)
}

// State is the projection of the events handled so far
type State struct {
	Activity  string   `json:"activity,omitempty"`
	Reasoning []string `json:"reasoning,omitempty"`
	Answer    string   `json:"answer,omitempty"`
	Completed bool     `json:"completed,omitempty"`
	Notes     []string `json:"notes,omitempty"`
}

// Projector turns a sequence of response events into the three display
// regions. It is not safe for concurrent use: events are handled one at
// a time, in arrival order.
type Projector struct {
	observer Observer
	log      zerolog.Logger
	run      string
	state    State
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a projector with empty state which notifies the observer.
// The observer may be nil, in which case only the state is updated.
func New(observer Observer, opts ...Opt) (*Projector, error) {
	p := &Projector{
		observer: observer,
		log:      log.Logger,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.run != "" {
		p.log = p.log.With().Str("run", p.run).Logger()
	}
	return p, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// State returns a copy of the current projection
func (p *Projector) State() State {
	state := p.state
	state.Reasoning = slices.Clone(p.state.Reasoning)
	state.Notes = slices.Clone(p.state.Notes)
	return state
}

// Run pulls events from the stream and handles each in turn, until the
// stream ends or the context is cancelled. A malformed event is logged and
// skipped. Returns nil when the stream ends normally.
func (p *Projector) Run(ctx context.Context, stream research.Stream) error {
	for {
		if err := ctx.Err(); err != nil {
			return research.ErrCancelled.With(err)
		}
		event, err := stream.Next()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, research.ErrMalformedEvent):
			p.log.Error().Err(err).Msg("skipping malformed event")
			continue
		case err != nil:
			return err
		}
		p.Handle(event)
	}
}

// Handle updates the projection for one event and notifies the observer
// of the regions which changed
func (p *Projector) Handle(event schema.Event) {
	switch e := event.(type) {
	case schema.ReasoningSummaryTextDone:
		p.appendReasoning(reasoningEntry(e.Text))
	case schema.OutputTextDelta:
		p.setAnswer(p.state.Answer + e.Delta)
	case schema.ResponseCreated:
		p.setAnswer(e.Response.OutputText())
	case schema.ResponseCompleted:
		p.setAnswer(e.Response.OutputText())
		p.setActivity(p.state.Activity, true)
	case schema.ResponseFailed:
		p.setActivity(failedActivity(e.Response), false)
	case schema.ResponseIncomplete:
		p.setActivity(failedActivity(e.Response), false)
	case schema.OutputItemAdded:
		p.handleItem(e.Item)
	case schema.OutputItemDone:
		p.handleItem(e.Item)
	case schema.ResponseInProgress, schema.ResponseQueued,
		schema.ContentPartAdded, schema.ContentPartDone,
		schema.OutputTextDone, schema.OutputTextAnnotationAdded,
		schema.AudioDelta, schema.AudioDone,
		schema.AudioTranscriptDelta, schema.AudioTranscriptDone,
		schema.ReasoningSummaryPartAdded, schema.ReasoningSummaryPartDone,
		schema.ReasoningSummaryTextDelta,
		schema.ReasoningSummaryDelta, schema.ReasoningSummaryDone,
		schema.WebSearchCallInProgress, schema.WebSearchCallSearching, schema.WebSearchCallCompleted,
		schema.ErrorEvent:
		// Sub-events of states reflected elsewhere
	default:
		p.log.Warn().Str("type", eventType(event)).Msg("unexpected event type")
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (p *Projector) handleItem(item schema.OutputItem) {
	switch item.Type {
	case schema.ItemWebSearchCall:
		p.handleWebSearch(item)
	case schema.ItemMessage, schema.ItemFileSearchCall, schema.ItemFunctionCall,
		schema.ItemComputerCall, schema.ItemReasoning, schema.ItemImageGenerationCall,
		schema.ItemCodeInterpreterCall, schema.ItemLocalShellCall,
		schema.ItemMcpCall, schema.ItemMcpListTools, schema.ItemMcpApprovalRequest:
		// No display
	default:
		p.note(unhandledItemNote(item.Type))
	}
}

func (p *Projector) handleWebSearch(item schema.OutputItem) {
	action, err := item.WebSearchAction()
	if err != nil {
		p.log.Error().Err(err).Str("item", item.Id).Msg("error processing web search event")
		return
	} else if action == nil {
		return
	}

	var entry string
	switch action.Type {
	case schema.ActionSearch:
		entry = searchEntry(action.Query)
	case schema.ActionOpenPage:
		if action.Url != "" {
			entry = readingEntry(action.Url)
		}
	case schema.ActionFindInPage:
		if action.Url == "" {
			break
		}
		if pattern := strings.TrimSpace(action.Pattern); pattern != "" {
			entry = pageSearchEntry(pattern, action.Url)
		} else {
			entry = readingEntry(action.Url)
		}
	default:
		p.log.Debug().Str("action", action.Type).Msg("ignoring web search action")
	}
	if entry == "" {
		return
	}

	p.setActivity(entry, p.state.Completed)
	p.appendReasoning(entry)
}

func (p *Projector) setActivity(activity string, completed bool) {
	p.state.Activity = activity
	p.state.Completed = completed
	if p.observer != nil {
		p.observer.ActivityChanged(activity, completed)
	}
}

func (p *Projector) appendReasoning(entry string) {
	p.state.Reasoning = append(p.state.Reasoning, entry)
	if p.observer != nil {
		p.observer.ReasoningChanged(slices.Clone(p.state.Reasoning))
	}
}

func (p *Projector) setAnswer(answer string) {
	p.state.Answer = answer
	if p.observer != nil {
		p.observer.AnswerChanged(answer)
	}
}

func (p *Projector) note(text string) {
	p.state.Notes = append(p.state.Notes, text)
	if p.observer != nil {
		p.observer.Note(text)
	}
}

func eventType(event schema.Event) string {
	if event == nil {
		return "<nil>"
	}
	return event.EventType()
}
