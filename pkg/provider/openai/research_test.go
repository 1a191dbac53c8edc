package openai

import (
	"encoding/json"
	"testing"

	// Packages
	research "github.com/mutablelogic/go-research"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// UNIT TESTS: requestFromOpts

func Test_request_001(t *testing.T) {
	// Test the deep research request shape
	assert := assert.New(t)

	req, err := GenerateRequest(research.O3DeepResearch,
		WithSystemPrompt("You are a researcher."),
		WithUserPrompt("What is the rule?"),
		WithReasoningSummary(SummaryAuto),
		WithWebSearch(),
	)
	assert.NoError(err)

	data, err := json.Marshal(req)
	assert.NoError(err)
	assert.JSONEq(`{
		"model": "o3-deep-research-2025-06-26",
		"input": [
			{"role": "developer", "content": [{"type": "input_text", "text": "You are a researcher."}]},
			{"role": "user", "content": [{"type": "input_text", "text": "What is the rule?"}]}
		],
		"reasoning": {"summary": "auto"},
		"tools": [{"type": "web_search_preview"}],
		"stream": true
	}`, string(data))
}

func Test_request_002(t *testing.T) {
	// Test blank prompts are sent as given, in two turns
	assert := assert.New(t)
	req, err := GenerateRequest(research.O3DeepResearch, WithSystemPrompt("system"))
	if assert.NoError(err) {
		r := req.(*responsesRequest)
		if assert.Len(r.Input, 2) {
			assert.Equal(roleDeveloper, r.Input[0].Role)
			assert.Equal("system", r.Input[0].Content[0].Text)
			assert.Equal(roleUser, r.Input[1].Role)
			assert.Equal("", r.Input[1].Content[0].Text)
		}
	}

	req, err = GenerateRequest(research.O3DeepResearch, WithUserPrompt("   "))
	if assert.NoError(err) {
		r := req.(*responsesRequest)
		if assert.Len(r.Input, 2) {
			assert.Equal("", r.Input[0].Content[0].Text)
			assert.Equal("   ", r.Input[1].Content[0].Text)
		}
	}
}

func Test_request_003(t *testing.T) {
	// Test an unknown model is rejected
	assert := assert.New(t)
	_, err := GenerateRequest(research.Model("gpt-4o"), WithUserPrompt("hello"))
	assert.ErrorIs(err, research.ErrBadParameter)
}

func Test_request_004(t *testing.T) {
	// Test a blank system prompt is still sent as a developer turn
	assert := assert.New(t)
	req, err := GenerateRequest(research.O4MiniDeepResearch, WithSystemPrompt(" \n"), WithUserPrompt("hello"))
	assert.NoError(err)
	r := req.(*responsesRequest)
	assert.Equal("o4-mini-deep-research-2025-06-26", r.Model)
	if assert.Len(r.Input, 2) {
		assert.Equal(roleDeveloper, r.Input[0].Role)
		assert.Equal(" \n", r.Input[0].Content[0].Text)
		assert.Equal(roleUser, r.Input[1].Role)
		assert.Equal("hello", r.Input[1].Content[0].Text)
	}
	assert.Nil(r.Reasoning)
	assert.Nil(r.Tools)
	assert.True(r.Stream)
}

func Test_request_005(t *testing.T) {
	// Test code interpreter has an automatic container
	assert := assert.New(t)
	req, err := GenerateRequest(research.O3DeepResearch, WithUserPrompt("hello"), WithWebSearch(), WithCodeInterpreter(), WithMaxToolCalls(5))
	assert.NoError(err)

	data, err := json.Marshal(req)
	assert.NoError(err)
	var decoded map[string]any
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal(float64(5), decoded["max_tool_calls"])
	tools, ok := decoded["tools"].([]any)
	if assert.True(ok) && assert.Len(tools, 2) {
		assert.Equal(map[string]any{"type": "web_search_preview"}, tools[0])
		assert.Equal(map[string]any{
			"type":      "code_interpreter",
			"container": map[string]any{"type": "auto", "file_ids": []any{}},
		}, tools[1])
	}
}

func Test_request_006(t *testing.T) {
	// Test option validation
	assert := assert.New(t)
	_, err := GenerateRequest(research.O3DeepResearch, WithUserPrompt("hello"), WithReasoningSummary("verbose"))
	assert.ErrorIs(err, research.ErrBadParameter)
	_, err = GenerateRequest(research.O3DeepResearch, WithUserPrompt("hello"), WithMaxToolCalls(0))
	assert.ErrorIs(err, research.ErrBadParameter)
	_, err = GenerateRequest(research.O3DeepResearch, WithUserPrompt("hello"), WithTimeout(-1))
	assert.ErrorIs(err, research.ErrBadParameter)
}
