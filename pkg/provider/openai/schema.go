package openai

///////////////////////////////////////////////////////////////////////////////
// TYPES - Responses API wire format
//
// Reference: https://platform.openai.com/docs/api-reference/responses/create

// responsesRequest is the request body for POST /v1/responses
type responsesRequest struct {
	Model        string         `json:"model"`
	Input        []inputMessage `json:"input"`
	Reasoning    *reasoning     `json:"reasoning,omitempty"`
	Tools        []tool         `json:"tools,omitempty"`
	MaxToolCalls uint           `json:"max_tool_calls,omitempty"`
	Stream       bool           `json:"stream"`
}

// inputMessage is one turn of input
type inputMessage struct {
	Role    string         `json:"role"`
	Content []inputContent `json:"content"`
}

// inputContent is one part of an input turn
type inputContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// reasoning configures the reasoning output
type reasoning struct {
	Summary string `json:"summary,omitempty"`
}

// tool is a hosted tool the model may call
type tool struct {
	Type      string     `json:"type"`
	Container *container `json:"container,omitempty"`
}

// container is the sandbox for the code interpreter tool
type container struct {
	Type    string   `json:"type"`
	FileIds []string `json:"file_ids"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	roleDeveloper = "developer"
	roleUser      = "user"

	contentInputText = "input_text"

	ToolWebSearchPreview = "web_search_preview"
	ToolCodeInterpreter  = "code_interpreter"

	SummaryAuto     = "auto"
	SummaryConcise  = "concise"
	SummaryDetailed = "detailed"
)
