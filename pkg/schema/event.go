package schema

///////////////////////////////////////////////////////////////////////////////
// SSE EVENT NAMES
//
// Events written by the web surface. Each carries the full value of one
// display region, so a client only ever needs the latest of each.

const (
	EventActivity    = "activity"  // Current activity changed
	EventReasoning   = "reasoning" // Reasoning log changed
	EventAnswer      = "answer"    // Answer text changed
	EventNote        = "note"      // Informational note
	EventCompleted   = "completed" // The event sequence has ended
	EventStreamError = "error"     // Error during processing
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ActivityUpdate is the payload of an activity event
type ActivityUpdate struct {
	Run       string `json:"run"`
	Activity  string `json:"activity"`
	Completed bool   `json:"completed,omitempty"`
}

// ReasoningUpdate is the payload of a reasoning event
type ReasoningUpdate struct {
	Run string   `json:"run"`
	Log []string `json:"log"`
}

// AnswerUpdate is the payload of an answer event
type AnswerUpdate struct {
	Run      string `json:"run"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html,omitempty"`
}

// NoteUpdate is the payload of a note event
type NoteUpdate struct {
	Run  string `json:"run"`
	Text string `json:"text"`
}

// StreamError is the payload of an error event
type StreamError struct {
	Run   string `json:"run,omitempty"`
	Error string `json:"error"`
}
