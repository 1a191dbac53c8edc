package schema

import (
	"encoding/json"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Responses API wire format
//
// Reference: https://platform.openai.com/docs/api-reference/responses

// Response is a snapshot of a response, carried by the lifecycle events
type Response struct {
	Id                string             `json:"id"`
	Object            string             `json:"object,omitempty"`
	CreatedAt         int64              `json:"created_at,omitempty"`
	Status            string             `json:"status,omitempty"`
	Model             string             `json:"model,omitempty"`
	Output            []OutputItem       `json:"output"`
	Error             *ResponseError     `json:"error,omitempty"`
	IncompleteDetails *IncompleteDetails `json:"incomplete_details,omitempty"`
	Usage             *Usage             `json:"usage,omitempty"`
}

// ResponseError is set on a failed response
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IncompleteDetails is set on an incomplete response
type IncompleteDetails struct {
	Reason string `json:"reason"`
}

// Usage reports token counts for a response
type Usage struct {
	InputTokens  uint `json:"input_tokens"`
	OutputTokens uint `json:"output_tokens"`
	TotalTokens  uint `json:"total_tokens"`
}

// OutputItem is one item of response output. The type determines which
// of the other fields are set.
type OutputItem struct {
	Type   string `json:"type"`
	Id     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`

	// message
	Role    string        `json:"role,omitempty"`
	Content []ContentPart `json:"content,omitempty"`

	// reasoning
	Summary []ContentPart `json:"summary,omitempty"`

	// web_search_call
	Action json.RawMessage `json:"action,omitempty"`

	// function_call, mcp_call
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// ContentPart is a part of message content or a reasoning summary
type ContentPart struct {
	Type        string       `json:"type"`
	Text        string       `json:"text,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Annotation is a citation within output text
type Annotation struct {
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	Url        string `json:"url,omitempty"`
	StartIndex int    `json:"start_index,omitempty"`
	EndIndex   int    `json:"end_index,omitempty"`
}

// WebSearchAction describes what a web search call did
type WebSearchAction struct {
	Type    string `json:"type"`
	Query   string `json:"query,omitempty"`
	Url     string `json:"url,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Output item types
const (
	ItemMessage             = "message"
	ItemFileSearchCall      = "file_search_call"
	ItemFunctionCall        = "function_call"
	ItemComputerCall        = "computer_call"
	ItemReasoning           = "reasoning"
	ItemWebSearchCall       = "web_search_call"
	ItemImageGenerationCall = "image_generation_call"
	ItemCodeInterpreterCall = "code_interpreter_call"
	ItemLocalShellCall      = "local_shell_call"
	ItemMcpCall             = "mcp_call"
	ItemMcpListTools        = "mcp_list_tools"
	ItemMcpApprovalRequest  = "mcp_approval_request"
)

// Web search action types
const (
	ActionSearch     = "search"
	ActionOpenPage   = "open_page"
	ActionFindInPage = "find_in_page"
)

// Content part types
const (
	ContentOutputText = "output_text"
	ContentRefusal    = "refusal"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OutputText returns the text of all output_text parts of all message
// items, concatenated in order. Returns an empty string if there is no
// message output yet.
func (r Response) OutputText() string {
	var b strings.Builder
	for _, item := range r.Output {
		if item.Type != ItemMessage {
			continue
		}
		for _, part := range item.Content {
			if part.Type == ContentOutputText {
				b.WriteString(part.Text)
			}
		}
	}
	return b.String()
}

// WebSearchAction decodes the action of a web_search_call item. Returns
// nil without error when the item carries no action, and an error when the
// action is not an object of the expected shape.
func (i OutputItem) WebSearchAction() (*WebSearchAction, error) {
	if len(i.Action) == 0 || string(i.Action) == "null" {
		return nil, nil
	}
	var action WebSearchAction
	if err := json.Unmarshal(i.Action, &action); err != nil {
		return nil, err
	}
	return &action, nil
}

func (r Response) String() string {
	return Stringify(r)
}

func (i OutputItem) String() string {
	return Stringify(i)
}
