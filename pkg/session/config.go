package session

import (
	"context"
	"os"
	"strings"
	"time"

	// Packages
	research "github.com/mutablelogic/go-research"
	opt "github.com/mutablelogic/go-research/pkg/opt"
	openai "github.com/mutablelogic/go-research/pkg/provider/openai"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is the configuration of one research request. The credential
// is never written to a defaults file.
type Config struct {
	Credential      string         `json:"-" yaml:"-"`
	Model           research.Model `json:"model" yaml:"model"`
	SystemPrompt    string         `json:"system_prompt" yaml:"system_prompt"`
	UserPrompt      string         `json:"user_prompt" yaml:"user_prompt"`
	MaxToolCalls    uint           `json:"max_tool_calls,omitempty" yaml:"max_tool_calls,omitempty"`
	CodeInterpreter bool           `json:"code_interpreter,omitempty" yaml:"code_interpreter,omitempty"`
	Timeout         time.Duration  `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Connector returns a researcher which authenticates with the credential
type Connector func(credential string) (research.Researcher, error)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// CredentialEnv is the environment variable holding the default credential
const CredentialEnv = "OPENAI_API_KEY"

const DefaultSystemPrompt = `You are an expert research assistant specializing in comprehensive analysis and synthesis of complex topics. Your role is to:
1. Conduct thorough research across multiple sources and perspectives
2. Analyze information critically and identify key insights
3. Synthesize findings into coherent, well-structured responses
4. Provide citations and evidence to support your conclusions
5. Highlight areas of uncertainty or conflicting information
Always strive for accuracy, objectivity, and depth in your research and analysis.`

const DefaultUserPrompt = `Please conduct a comprehensive analysis of the FTC's "Click to Cancel" Rule.`

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a configuration with the default model and prompts, and the
// credential from the environment, then applies the options
func New(opts ...Opt) (*Config, error) {
	c := &Config{
		Credential:   os.Getenv(CredentialEnv),
		Model:        research.DefaultModel,
		SystemPrompt: DefaultSystemPrompt,
		UserPrompt:   DefaultUserPrompt,
	}
	if err := c.apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate returns ErrMissingCredential when there is no credential, and
// ErrBadParameter when the model is not known. Prompt content is not
// checked.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Credential) == "" {
		return research.ErrMissingCredential
	}
	if !c.Model.Valid() {
		return research.ErrBadParameter.Withf("unknown model %q", c.Model)
	}
	return nil
}

// Opts returns the request options: the system prompt as the developer
// turn, the user prompt as the user turn, automatic reasoning summaries
// and web search
func (c *Config) Opts() []opt.Opt {
	opts := []opt.Opt{
		openai.WithSystemPrompt(c.SystemPrompt),
		openai.WithUserPrompt(c.UserPrompt),
		openai.WithReasoningSummary(openai.SummaryAuto),
		openai.WithWebSearch(),
	}
	if c.CodeInterpreter {
		opts = append(opts, openai.WithCodeInterpreter())
	}
	if c.MaxToolCalls > 0 {
		opts = append(opts, openai.WithMaxToolCalls(c.MaxToolCalls))
	}
	if c.Timeout > 0 {
		opts = append(opts, openai.WithTimeout(c.Timeout))
	}
	return opts
}

// Submit validates the configuration, connects with the credential and
// starts the request. Nothing is sent when validation fails.
func (c *Config) Submit(ctx context.Context, connect Connector) (research.Stream, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	} else if connect == nil {
		return nil, research.ErrBadParameter.With("connector is required")
	}
	researcher, err := connect(strings.TrimSpace(c.Credential))
	if err != nil {
		return nil, err
	}
	return researcher.Research(ctx, c.Model, c.Opts()...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Config) apply(opts ...Opt) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
