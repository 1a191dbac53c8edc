package session

import (
	"time"

	// Packages
	research "github.com/mutablelogic/go-research"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option which changes a configuration
type Opt func(*Config) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithCredential sets the credential. An empty value keeps the current one.
func WithCredential(value string) Opt {
	return func(c *Config) error {
		if value != "" {
			c.Credential = value
		}
		return nil
	}
}

// WithModel sets the model by name. An empty name keeps the current model.
func WithModel(name string) Opt {
	return func(c *Config) error {
		if name == "" {
			return nil
		}
		model, err := research.ParseModel(name)
		if err != nil {
			return err
		}
		c.Model = model
		return nil
	}
}

// WithSystemPrompt replaces the system prompt. An empty value is sent as
// an empty developer turn.
func WithSystemPrompt(value string) Opt {
	return func(c *Config) error {
		c.SystemPrompt = value
		return nil
	}
}

// WithUserPrompt replaces the user prompt, which may be empty
func WithUserPrompt(value string) Opt {
	return func(c *Config) error {
		c.UserPrompt = value
		return nil
	}
}

// WithMaxToolCalls limits the number of tool calls, or zero for no limit
func WithMaxToolCalls(value uint) Opt {
	return func(c *Config) error {
		c.MaxToolCalls = value
		return nil
	}
}

// WithCodeInterpreter allows the model to run code
func WithCodeInterpreter(value bool) Opt {
	return func(c *Config) error {
		c.CodeInterpreter = value
		return nil
	}
}

// WithTimeout ends the request after the duration, or zero for no timeout
func WithTimeout(value time.Duration) Opt {
	return func(c *Config) error {
		if value < 0 {
			return research.ErrBadParameter.With("timeout must not be negative")
		}
		c.Timeout = value
		return nil
	}
}
