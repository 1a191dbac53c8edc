package main

import (
	"errors"
	"io"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	httpclient "github.com/mutablelogic/go-research/pkg/httpclient"
	schema "github.com/mutablelogic/go-research/pkg/schema"
	session "github.com/mutablelogic/go-research/pkg/session"
	text "github.com/mutablelogic/go-research/pkg/ui/text"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCommand struct {
	Prompt          string  `arg:"" name:"prompt" help:"Research question"`
	Model           string  `name:"model" help:"Model name"`
	System          *string `name:"system" help:"System prompt, or empty for none"`
	MaxToolCalls    uint    `name:"max-tool-calls" help:"Maximum number of tool calls, or zero for no limit"`
	CodeInterpreter bool    `name:"code-interpreter" help:"Allow the model to run code"`
	Quiet           bool    `name:"quiet" short:"q" help:"Only write the answer"`
	Output          string  `name:"output" short:"o" type:"path" help:"Write the answer to a file"`
	Remote          string  `name:"remote" env:"RESEARCH_URL" help:"Run the research on a research server at this URL"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCommand) Run(ctx *Globals) (err error) {
	if cmd.Remote != "" {
		return cmd.RunRemote(ctx)
	}
	manager, err := ctx.Manager()
	if err != nil {
		return err
	}

	// Apply the command line to the defaults
	opts := []session.Opt{
		session.WithModel(cmd.Model),
		session.WithUserPrompt(cmd.Prompt),
	}
	if cmd.CodeInterpreter {
		opts = append(opts, session.WithCodeInterpreter(true))
	}
	if cmd.System != nil {
		opts = append(opts, session.WithSystemPrompt(*cmd.System))
	}
	if cmd.MaxToolCalls > 0 {
		opts = append(opts, session.WithMaxToolCalls(cmd.MaxToolCalls))
	}
	config, err := manager.Config(opts...)
	if err != nil {
		return err
	}

	// Set the output for the answer and progress
	display, closer, err := cmd.display()
	if err != nil {
		return err
	}
	defer closer.Close()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AskCommand",
		attribute.String("model", config.Model.String()),
	)
	defer func() { endSpan(err) }()

	// Run the research
	return runDisplay(parent, manager, config, display)
}

// RunRemote runs the research on a research server and projects the
// result locally
func (cmd *AskCommand) RunRemote(ctx *Globals) (err error) {
	client, err := httpclient.New(cmd.Remote, ctx.clientOpts()...)
	if err != nil {
		return err
	}
	display, closer, err := cmd.display()
	if err != nil {
		return err
	}
	defer closer.Close()

	// The server fills in anything not set
	req := schema.ResearchRequest{
		Credential:   ctx.OpenAIKey,
		Model:        cmd.Model,
		SystemPrompt: cmd.System,
		UserPrompt:   &cmd.Prompt,
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AskRemoteCommand",
		attribute.String("remote", cmd.Remote),
	)
	defer func() { endSpan(err) }()

	display.SetBusy(true)
	_, err = client.Research(parent, req, display)
	display.SetBusy(false)
	if err != nil {
		display.Error(err)
	}
	return errors.Join(err, display.Close())
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// display returns a text display which writes the answer to the output
// file or stdout, and progress to stderr unless quiet
func (cmd *AskCommand) display() (*text.Writer, io.Closer, error) {
	var out io.WriteCloser = nopCloser{os.Stdout}
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return nil, nil, err
		}
		out = f
	}
	var progress io.Writer = os.Stderr
	if cmd.Quiet {
		progress = io.Discard
	}
	return text.New(progress, out), out, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
