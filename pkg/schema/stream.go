package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES
//
// Reference: https://platform.openai.com/docs/api-reference/responses-streaming

// Event is one record of a streamed response. The set of implementations
// is closed: every known record type has its own struct, and any other
// type is returned as UnknownEvent.
type Event interface {
	// EventType returns the record type tag, for example
	// "response.output_text.delta"
	EventType() string

	event()
}

// Response lifecycle, each carrying a snapshot of the response
type (
	ResponseCreated    struct{ snapshot }
	ResponseInProgress struct{ snapshot }
	ResponseQueued     struct{ snapshot }
	ResponseCompleted  struct{ snapshot }
	ResponseFailed     struct{ snapshot }
	ResponseIncomplete struct{ snapshot }
)

// Output item lifecycle, each carrying the item
type (
	OutputItemAdded struct{ outputItem }
	OutputItemDone  struct{ outputItem }
)

// Content part lifecycle
type (
	ContentPartAdded struct{ contentPart }
	ContentPartDone  struct{ contentPart }
)

// OutputTextDelta appends to the answer text
type OutputTextDelta struct {
	position
	Delta string `json:"delta"`
}

// OutputTextDone carries the full text of one content part
type OutputTextDone struct {
	position
	Text string `json:"text"`
}

// OutputTextAnnotationAdded carries a citation for the answer text
type OutputTextAnnotationAdded struct {
	position
	AnnotationIndex int        `json:"annotation_index"`
	Annotation      Annotation `json:"annotation"`
}

// Audio output
type (
	AudioDelta           struct{ delta }
	AudioDone            struct{ sequence }
	AudioTranscriptDelta struct{ delta }
	AudioTranscriptDone  struct{ sequence }
)

// Reasoning summary parts
type (
	ReasoningSummaryPartAdded struct{ summaryPart }
	ReasoningSummaryPartDone  struct{ summaryPart }
)

// ReasoningSummaryTextDelta appends to one part of the reasoning summary
type ReasoningSummaryTextDelta struct {
	summaryPosition
	Delta string `json:"delta"`
}

// ReasoningSummaryTextDone carries the full text of one part of the
// reasoning summary
type ReasoningSummaryTextDone struct {
	summaryPosition
	Text string `json:"text"`
}

// Reasoning summary, as sent by earlier revisions of the API
type (
	ReasoningSummaryDelta struct {
		summaryPosition
		Delta json.RawMessage `json:"delta"`
	}
	ReasoningSummaryDone struct {
		summaryPosition
		Text string `json:"text"`
	}
)

// Web search phase markers
type (
	WebSearchCallInProgress struct{ itemPosition }
	WebSearchCallSearching  struct{ itemPosition }
	WebSearchCallCompleted  struct{ itemPosition }
)

// ErrorEvent reports a failure of the stream itself
type ErrorEvent struct {
	sequence
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param"`
}

// UnknownEvent is any record with a type tag which is not known
type UnknownEvent struct {
	Type string
	Raw  json.RawMessage
}

// Shared fields
type (
	sequence struct {
		SequenceNumber uint64 `json:"sequence_number"`
	}
	snapshot struct {
		sequence
		Response Response `json:"response"`
	}
	itemPosition struct {
		sequence
		ItemId      string `json:"item_id"`
		OutputIndex int    `json:"output_index"`
	}
	outputItem struct {
		sequence
		OutputIndex int        `json:"output_index"`
		Item        OutputItem `json:"item"`
	}
	position struct {
		itemPosition
		ContentIndex int `json:"content_index"`
	}
	contentPart struct {
		position
		Part ContentPart `json:"part"`
	}
	summaryPosition struct {
		itemPosition
		SummaryIndex int `json:"summary_index"`
	}
	summaryPart struct {
		summaryPosition
		Part ContentPart `json:"part"`
	}
	delta struct {
		sequence
		Delta string `json:"delta"`
	}
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Event type tags
const (
	EventResponseCreated           = "response.created"
	EventResponseInProgress        = "response.in_progress"
	EventResponseQueued            = "response.queued"
	EventResponseCompleted         = "response.completed"
	EventResponseFailed            = "response.failed"
	EventResponseIncomplete        = "response.incomplete"
	EventOutputItemAdded           = "response.output_item.added"
	EventOutputItemDone            = "response.output_item.done"
	EventContentPartAdded          = "response.content_part.added"
	EventContentPartDone           = "response.content_part.done"
	EventOutputTextDelta           = "response.output_text.delta"
	EventOutputTextDone            = "response.output_text.done"
	EventOutputTextAnnotationAdded = "response.output_text.annotation.added"
	EventAudioDelta                = "response.audio.delta"
	EventAudioDone                 = "response.audio.done"
	EventAudioTranscriptDelta      = "response.audio.transcript.delta"
	EventAudioTranscriptDone       = "response.audio.transcript.done"
	EventReasoningSummaryPartAdded = "response.reasoning_summary_part.added"
	EventReasoningSummaryPartDone  = "response.reasoning_summary_part.done"
	EventReasoningSummaryTextDelta = "response.reasoning_summary_text.delta"
	EventReasoningSummaryTextDone  = "response.reasoning_summary_text.done"
	EventReasoningSummaryDelta     = "response.reasoning_summary.delta"
	EventReasoningSummaryDone      = "response.reasoning_summary.done"
	EventWebSearchCallInProgress   = "response.web_search_call.in_progress"
	EventWebSearchCallSearching    = "response.web_search_call.searching"
	EventWebSearchCallCompleted    = "response.web_search_call.completed"
	EventError                     = "error"
)

var (
	ErrMissingType = errors.New("missing event type")
)

// Interface compliance checks
var (
	_ Event = ResponseCreated{}
	_ Event = ResponseInProgress{}
	_ Event = ResponseQueued{}
	_ Event = ResponseCompleted{}
	_ Event = ResponseFailed{}
	_ Event = ResponseIncomplete{}
	_ Event = OutputItemAdded{}
	_ Event = OutputItemDone{}
	_ Event = ContentPartAdded{}
	_ Event = ContentPartDone{}
	_ Event = OutputTextDelta{}
	_ Event = OutputTextDone{}
	_ Event = OutputTextAnnotationAdded{}
	_ Event = AudioDelta{}
	_ Event = AudioDone{}
	_ Event = AudioTranscriptDelta{}
	_ Event = AudioTranscriptDone{}
	_ Event = ReasoningSummaryPartAdded{}
	_ Event = ReasoningSummaryPartDone{}
	_ Event = ReasoningSummaryTextDelta{}
	_ Event = ReasoningSummaryTextDone{}
	_ Event = ReasoningSummaryDelta{}
	_ Event = ReasoningSummaryDone{}
	_ Event = WebSearchCallInProgress{}
	_ Event = WebSearchCallSearching{}
	_ Event = WebSearchCallCompleted{}
	_ Event = ErrorEvent{}
	_ Event = UnknownEvent{}
)

///////////////////////////////////////////////////////////////////////////////
// DECODE

// DecodeEvent decodes one record of a streamed response, using the type
// tag to select the struct. Records with an unknown tag are returned as
// UnknownEvent rather than as an error.
func DecodeEvent(data []byte) (Event, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, err
	} else if header.Type == "" {
		return nil, ErrMissingType
	}

	switch header.Type {
	case EventResponseCreated:
		return decode[ResponseCreated](header.Type, data)
	case EventResponseInProgress:
		return decode[ResponseInProgress](header.Type, data)
	case EventResponseQueued:
		return decode[ResponseQueued](header.Type, data)
	case EventResponseCompleted:
		return decode[ResponseCompleted](header.Type, data)
	case EventResponseFailed:
		return decode[ResponseFailed](header.Type, data)
	case EventResponseIncomplete:
		return decode[ResponseIncomplete](header.Type, data)
	case EventOutputItemAdded:
		return decode[OutputItemAdded](header.Type, data)
	case EventOutputItemDone:
		return decode[OutputItemDone](header.Type, data)
	case EventContentPartAdded:
		return decode[ContentPartAdded](header.Type, data)
	case EventContentPartDone:
		return decode[ContentPartDone](header.Type, data)
	case EventOutputTextDelta:
		return decode[OutputTextDelta](header.Type, data)
	case EventOutputTextDone:
		return decode[OutputTextDone](header.Type, data)
	case EventOutputTextAnnotationAdded:
		return decode[OutputTextAnnotationAdded](header.Type, data)
	case EventAudioDelta:
		return decode[AudioDelta](header.Type, data)
	case EventAudioDone:
		return decode[AudioDone](header.Type, data)
	case EventAudioTranscriptDelta:
		return decode[AudioTranscriptDelta](header.Type, data)
	case EventAudioTranscriptDone:
		return decode[AudioTranscriptDone](header.Type, data)
	case EventReasoningSummaryPartAdded:
		return decode[ReasoningSummaryPartAdded](header.Type, data)
	case EventReasoningSummaryPartDone:
		return decode[ReasoningSummaryPartDone](header.Type, data)
	case EventReasoningSummaryTextDelta:
		return decode[ReasoningSummaryTextDelta](header.Type, data)
	case EventReasoningSummaryTextDone:
		return decode[ReasoningSummaryTextDone](header.Type, data)
	case EventReasoningSummaryDelta:
		return decode[ReasoningSummaryDelta](header.Type, data)
	case EventReasoningSummaryDone:
		return decode[ReasoningSummaryDone](header.Type, data)
	case EventWebSearchCallInProgress:
		return decode[WebSearchCallInProgress](header.Type, data)
	case EventWebSearchCallSearching:
		return decode[WebSearchCallSearching](header.Type, data)
	case EventWebSearchCallCompleted:
		return decode[WebSearchCallCompleted](header.Type, data)
	case EventError:
		return decode[ErrorEvent](header.Type, data)
	default:
		return UnknownEvent{Type: header.Type, Raw: append(json.RawMessage(nil), data...)}, nil
	}
}

func decode[T Event](tag string, data []byte) (Event, error) {
	var event T
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	return event, nil
}

///////////////////////////////////////////////////////////////////////////////
// EVENT TYPES

func (ResponseCreated) EventType() string           { return EventResponseCreated }
func (ResponseInProgress) EventType() string        { return EventResponseInProgress }
func (ResponseQueued) EventType() string            { return EventResponseQueued }
func (ResponseCompleted) EventType() string         { return EventResponseCompleted }
func (ResponseFailed) EventType() string            { return EventResponseFailed }
func (ResponseIncomplete) EventType() string        { return EventResponseIncomplete }
func (OutputItemAdded) EventType() string           { return EventOutputItemAdded }
func (OutputItemDone) EventType() string            { return EventOutputItemDone }
func (ContentPartAdded) EventType() string          { return EventContentPartAdded }
func (ContentPartDone) EventType() string           { return EventContentPartDone }
func (OutputTextDelta) EventType() string           { return EventOutputTextDelta }
func (OutputTextDone) EventType() string            { return EventOutputTextDone }
func (OutputTextAnnotationAdded) EventType() string { return EventOutputTextAnnotationAdded }
func (AudioDelta) EventType() string                { return EventAudioDelta }
func (AudioDone) EventType() string                 { return EventAudioDone }
func (AudioTranscriptDelta) EventType() string      { return EventAudioTranscriptDelta }
func (AudioTranscriptDone) EventType() string       { return EventAudioTranscriptDone }
func (ReasoningSummaryPartAdded) EventType() string { return EventReasoningSummaryPartAdded }
func (ReasoningSummaryPartDone) EventType() string  { return EventReasoningSummaryPartDone }
func (ReasoningSummaryTextDelta) EventType() string { return EventReasoningSummaryTextDelta }
func (ReasoningSummaryTextDone) EventType() string  { return EventReasoningSummaryTextDone }
func (ReasoningSummaryDelta) EventType() string     { return EventReasoningSummaryDelta }
func (ReasoningSummaryDone) EventType() string      { return EventReasoningSummaryDone }
func (WebSearchCallInProgress) EventType() string   { return EventWebSearchCallInProgress }
func (WebSearchCallSearching) EventType() string    { return EventWebSearchCallSearching }
func (WebSearchCallCompleted) EventType() string    { return EventWebSearchCallCompleted }
func (ErrorEvent) EventType() string                { return EventError }
func (e UnknownEvent) EventType() string            { return e.Type }

func (sequence) event()     {}
func (UnknownEvent) event() {}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e ErrorEvent) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}
