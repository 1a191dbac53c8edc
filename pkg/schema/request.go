package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ResearchRequest is the body of a research request made to the web
// surface. Empty fields take the value from the server defaults. A nil
// prompt keeps the default, and an empty one is sent empty.
type ResearchRequest struct {
	Credential   string  `json:"credential,omitempty"`
	Model        string  `json:"model,omitempty"`
	SystemPrompt *string `json:"system_prompt,omitempty"`
	UserPrompt   *string `json:"user_prompt,omitempty"`
}

// ModelInfo describes a selectable model
type ModelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default,omitempty"`
}

// ListModelsResponse is the body returned when listing models
type ListModelsResponse struct {
	Count uint        `json:"count"`
	Body  []ModelInfo `json:"body"`
}

// CompletedUpdate is the payload of a completed event
type CompletedUpdate struct {
	Run       string `json:"run"`
	Completed bool   `json:"completed"`
	Reasoning int    `json:"reasoning"`
}
