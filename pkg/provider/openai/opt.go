package openai

import (
	"fmt"
	"time"

	// Packages
	opt "github.com/mutablelogic/go-research/pkg/opt"
)

////////////////////////////////////////////////////////////////////////////////
// REQUEST OPTIONS

// WithSystemPrompt sets the developer turn of the request
func WithSystemPrompt(value string) opt.Opt {
	return opt.SetString(opt.SystemPromptKey, value)
}

// WithUserPrompt sets the user turn of the request
func WithUserPrompt(value string) opt.Opt {
	return opt.SetString(opt.UserPromptKey, value)
}

// WithReasoningSummary enables reasoning summaries ("auto", "concise" or "detailed")
func WithReasoningSummary(value string) opt.Opt {
	switch value {
	case SummaryAuto, SummaryConcise, SummaryDetailed:
		return opt.SetString(opt.ReasoningSummaryKey, value)
	default:
		return opt.Error(fmt.Errorf("reasoning summary must be %q, %q or %q", SummaryAuto, SummaryConcise, SummaryDetailed))
	}
}

// WithWebSearch allows the model to search the web
func WithWebSearch() opt.Opt {
	return opt.AddString(opt.ToolKey, ToolWebSearchPreview)
}

// WithCodeInterpreter allows the model to run code in a sandbox
func WithCodeInterpreter() opt.Opt {
	return opt.AddString(opt.ToolKey, ToolCodeInterpreter)
}

// WithMaxToolCalls limits the number of tool calls the model may make (minimum 1)
func WithMaxToolCalls(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(fmt.Errorf("max_tool_calls must be at least 1"))
	}
	return opt.SetUint(opt.MaxToolCallsKey, value)
}

// WithTimeout ends the request when the duration has elapsed. A zero
// duration means no timeout.
func WithTimeout(value time.Duration) opt.Opt {
	if value < 0 {
		return opt.Error(fmt.Errorf("timeout must not be negative"))
	}
	return opt.SetDuration(opt.TimeoutKey, value)
}
