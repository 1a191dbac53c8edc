package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	research "github.com/mutablelogic/go-research"
	opt "github.com/mutablelogic/go-research/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Research submits a streamed request to the model and returns the stream
// of response events. The request is sent in the background: transport
// errors, including authentication failures, are returned by the first
// call to Next. Closing the stream or cancelling the context ends the
// request.
func (c *Client) Research(ctx context.Context, model research.Model, opts ...opt.Opt) (research.Stream, error) {
	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, research.ErrBadParameter.With(err)
	}

	// Build request
	request, err := requestFromOpts(model, options)
	if err != nil {
		return nil, err
	}

	// Create JSON payload
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Set up cancellation, with an optional timeout
	var cancel context.CancelFunc
	if timeout := options.GetDuration(opt.TimeoutKey); timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	// Start the request
	stream := newStream(ctx, cancel)
	go stream.run(func(callback func(client.TextStreamEvent) error) error {
		var discard struct{}
		return c.DoWithContext(ctx, payload, &discard,
			client.OptPath("responses"),
			client.OptReqHeader("Accept", "text/event-stream"),
			client.OptTextStreamCallback(callback),
			client.OptNoTimeout(),
		)
	})

	// Return the stream
	return stream, nil
}

// GenerateRequest builds a request from options without sending it.
// Useful for testing and debugging.
func GenerateRequest(model research.Model, opts ...opt.Opt) (any, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, research.ErrBadParameter.With(err)
	}
	return requestFromOpts(model, options)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// requestFromOpts builds a responsesRequest from the model and applied options
func requestFromOpts(model research.Model, options opt.Options) (*responsesRequest, error) {
	if !model.Valid() {
		return nil, research.ErrBadParameter.Withf("unknown model %q", model)
	}

	// Every request has a developer turn and a user turn, with the prompts
	// as given
	input := []inputMessage{
		{Role: roleDeveloper, Content: []inputContent{{Type: contentInputText, Text: options.GetString(opt.SystemPromptKey)}}},
		{Role: roleUser, Content: []inputContent{{Type: contentInputText, Text: options.GetString(opt.UserPromptKey)}}},
	}

	// Reasoning summary
	var summary *reasoning
	if options.Has(opt.ReasoningSummaryKey) {
		summary = &reasoning{Summary: options.GetString(opt.ReasoningSummaryKey)}
	}

	// Tools
	var tools []tool
	for _, name := range options.GetStringArray(opt.ToolKey) {
		switch name {
		case ToolWebSearchPreview:
			tools = append(tools, tool{Type: name})
		case ToolCodeInterpreter:
			tools = append(tools, tool{Type: name, Container: &container{Type: "auto", FileIds: []string{}}})
		default:
			return nil, research.ErrBadParameter.Withf("unknown tool %q", name)
		}
	}

	return &responsesRequest{
		Model:        string(model),
		Input:        input,
		Reasoning:    summary,
		Tools:        tools,
		MaxToolCalls: options.GetUint(opt.MaxToolCallsKey),
		Stream:       true,
	}, nil
}
