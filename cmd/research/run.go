package main

import (
	"context"
	"errors"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	research "github.com/mutablelogic/go-research"
	manager "github.com/mutablelogic/go-research/pkg/manager"
	session "github.com/mutablelogic/go-research/pkg/session"
	ui "github.com/mutablelogic/go-research/pkg/ui"
	bubbletea "github.com/mutablelogic/go-research/pkg/ui/bubbletea"
	form "github.com/mutablelogic/go-research/pkg/ui/form"
	attribute "go.opentelemetry.io/otel/attribute"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type RunCommand struct {
	Model string `name:"model" help:"Model selected in the form"`
	Save  bool   `name:"save" help:"Save the submitted settings as the defaults, except the API key"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunCommand) Run(ctx *Globals) (err error) {
	manager, err := ctx.Manager()
	if err != nil {
		return err
	}
	config, err := manager.Config(session.WithModel(cmd.Model))
	if err != nil {
		return err
	}

	// Configure the request, and stop quietly if the user cancels
	if err := form.Run(ctx.ctx, config); errors.Is(err, research.ErrCancelled) {
		return nil
	} else if err != nil {
		return err
	}
	if cmd.Save && ctx.Config != "" {
		if err := config.Save(ctx.Config); err != nil {
			return err
		}
	}

	// Keep the log away from the full-screen display
	if f, err := ctx.LogToFile(); err != nil {
		return err
	} else {
		defer f.Close()
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "RunCommand",
		attribute.String("model", config.Model.String()),
	)
	defer func() { endSpan(err) }()

	// Run the research in the terminal
	display, err := bubbletea.New(config.UserPrompt)
	if err != nil {
		return err
	}
	if err := runDisplay(parent, manager, config, display); errors.Is(err, research.ErrCancelled) {
		return nil
	} else {
		return err
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// runDisplay runs the research with the display as its observer. If the
// display returns an error from Wait, the research is cancelled. The
// display is closed before returning.
func runDisplay(ctx context.Context, manager *manager.Manager, config *session.Config, display ui.Display) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return display.Wait()
	})
	g.Go(func() error {
		display.SetBusy(true)
		defer display.SetBusy(false)
		_, err := manager.Research(ctx, config, display)
		if err != nil {
			display.Error(err)
		}
		return err
	})
	return errors.Join(g.Wait(), display.Close())
}
