// Package form collects a research configuration from the user with an
// interactive terminal form.
package form

import (
	"context"
	"errors"
	"strings"

	// Packages
	huh "github.com/charmbracelet/huh"
	research "github.com/mutablelogic/go-research"
	session "github.com/mutablelogic/go-research/pkg/session"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run shows the form with the values of the configuration as defaults,
// and updates the configuration when the user confirms. Returns
// ErrCancelled if the user aborts or declines to run.
func Run(ctx context.Context, c *session.Config) error {
	var (
		credential = c.Credential
		model      = string(c.Model)
		system     = c.SystemPrompt
		user       = c.UserPrompt
		confirm    = true
	)
	if model == "" {
		model = string(research.DefaultModel)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("OpenAI API Key").
				Description("Inherits from "+session.CredentialEnv+" by default").
				EchoMode(huh.EchoModePassword).
				Value(&credential).
				Validate(validateCredential),
			huh.NewSelect[string]().
				Title("Model").
				Options(modelOptions()...).
				Value(&model),
		),
		huh.NewGroup(
			huh.NewText().
				Title("System Message").
				Lines(8).
				CharLimit(0).
				Value(&system),
			huh.NewText().
				Title("User Message").
				Lines(3).
				CharLimit(0).
				Value(&user),
			huh.NewConfirm().
				Title("Run Deep Research?").
				Affirmative("Run").
				Negative("Cancel").
				Value(&confirm),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return research.ErrCancelled
		}
		return err
	} else if !confirm {
		return research.ErrCancelled
	}

	// Update the configuration
	parsed, err := research.ParseModel(model)
	if err != nil {
		return err
	}
	c.Credential = strings.TrimSpace(credential)
	c.Model = parsed
	c.SystemPrompt = system
	c.UserPrompt = user

	// Return success
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// validateCredential blocks submission until a credential is entered
func validateCredential(value string) error {
	if strings.TrimSpace(value) == "" {
		return research.ErrMissingCredential.With("please enter your OpenAI API key")
	}
	return nil
}

func modelOptions() []huh.Option[string] {
	models := research.Models()
	options := make([]huh.Option[string], 0, len(models))
	for _, model := range models {
		options = append(options, huh.NewOption(model.String(), model.String()))
	}
	return options
}
