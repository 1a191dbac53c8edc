package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	// Packages
	research "github.com/mutablelogic/go-research"
	opt "github.com/mutablelogic/go-research/pkg/opt"
	openai "github.com/mutablelogic/go-research/pkg/provider/openai"
	session "github.com/mutablelogic/go-research/pkg/session"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// fakeResearcher records the request instead of sending it
type fakeResearcher struct {
	model research.Model
	opts  []opt.Opt
}

func (*fakeResearcher) Name() string { return "fake" }

func (r *fakeResearcher) Research(_ context.Context, model research.Model, opts ...opt.Opt) (research.Stream, error) {
	r.model = model
	r.opts = opts
	return nil, nil
}

///////////////////////////////////////////////////////////////////////////////
// CONFIG TESTS

func Test_config_001(t *testing.T) {
	// Defaults, with the credential from the environment
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "sk-env")

	c, err := session.New()
	if assert.NoError(err) {
		assert.Equal("sk-env", c.Credential)
		assert.Equal(research.O3DeepResearch, c.Model)
		assert.Equal(session.DefaultSystemPrompt, c.SystemPrompt)
		assert.Equal(session.DefaultUserPrompt, c.UserPrompt)
		assert.Contains(c.UserPrompt, `"Click to Cancel"`)
		assert.NoError(c.Validate())
	}
}

func Test_config_002(t *testing.T) {
	// Options replace the defaults
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "")

	c, err := session.New(
		session.WithCredential("sk-flag"),
		session.WithModel(string(research.O4MiniDeepResearch)),
		session.WithSystemPrompt(""),
		session.WithUserPrompt("What changed?"),
		session.WithTimeout(time.Minute),
	)
	if assert.NoError(err) {
		assert.Equal("sk-flag", c.Credential)
		assert.Equal(research.O4MiniDeepResearch, c.Model)
		assert.Equal("", c.SystemPrompt)
		assert.Equal("What changed?", c.UserPrompt)
		assert.Equal(time.Minute, c.Timeout)
	}

	_, err = session.New(session.WithModel("gpt-4o"))
	assert.ErrorIs(err, research.ErrBadParameter)
	_, err = session.New(session.WithTimeout(-time.Second))
	assert.ErrorIs(err, research.ErrBadParameter)
}

func Test_config_003(t *testing.T) {
	// An empty credential fails validation
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "")

	c, err := session.New()
	if assert.NoError(err) {
		assert.ErrorIs(c.Validate(), research.ErrMissingCredential)
		c.Credential = "   "
		assert.ErrorIs(c.Validate(), research.ErrMissingCredential)
		c.Credential = "sk-test"
		c.Model = "unknown"
		assert.ErrorIs(c.Validate(), research.ErrBadParameter)
	}
}

func Test_config_004(t *testing.T) {
	// Submitting without a credential never connects
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "")

	c, err := session.New()
	if !assert.NoError(err) {
		t.FailNow()
	}
	connected := false
	stream, err := c.Submit(context.Background(), func(string) (research.Researcher, error) {
		connected = true
		return new(fakeResearcher), nil
	})
	assert.ErrorIs(err, research.ErrMissingCredential)
	assert.Nil(stream)
	assert.False(connected)
}

func Test_config_005(t *testing.T) {
	// Submitting connects with the credential and sends the request
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "")

	c, err := session.New(session.WithCredential(" sk-test "), session.WithModel(string(research.O4MiniDeepResearch)))
	if !assert.NoError(err) {
		t.FailNow()
	}
	r := new(fakeResearcher)
	var credential string
	_, err = c.Submit(context.Background(), func(key string) (research.Researcher, error) {
		credential = key
		return r, nil
	})
	assert.NoError(err)
	assert.Equal("sk-test", credential)
	assert.Equal(research.O4MiniDeepResearch, r.model)
	assert.Equal(len(c.Opts()), len(r.opts))
}

func Test_config_006(t *testing.T) {
	// The request options have the expected shape
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "sk-test")

	c, err := session.New(session.WithSystemPrompt("system"), session.WithUserPrompt("user"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	req, err := openai.GenerateRequest(c.Model, c.Opts()...)
	if !assert.NoError(err) {
		t.FailNow()
	}
	options, err := opt.Apply(c.Opts()...)
	if assert.NoError(err) {
		assert.Equal("system", options.GetString(opt.SystemPromptKey))
		assert.Equal("user", options.GetString(opt.UserPromptKey))
		assert.Equal(openai.SummaryAuto, options.GetString(opt.ReasoningSummaryKey))
		assert.Equal([]string{openai.ToolWebSearchPreview}, options.GetStringArray(opt.ToolKey))
		assert.False(options.Has(opt.MaxToolCallsKey))
	}
	assert.NotNil(req)

	c.CodeInterpreter = true
	c.MaxToolCalls = 3
	options, err = opt.Apply(c.Opts()...)
	if assert.NoError(err) {
		assert.Equal([]string{openai.ToolWebSearchPreview, openai.ToolCodeInterpreter}, options.GetStringArray(opt.ToolKey))
		assert.Equal(uint(3), options.GetUint(opt.MaxToolCallsKey))
	}
}

func Test_config_007(t *testing.T) {
	// Blank prompts are submitted as a developer turn and a user turn
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "")

	c, err := session.New(session.WithCredential("sk-test"), session.WithSystemPrompt(""), session.WithUserPrompt(""))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("", c.UserPrompt)
	assert.NoError(c.Validate())

	r := new(fakeResearcher)
	_, err = c.Submit(context.Background(), func(string) (research.Researcher, error) {
		return r, nil
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	req, err := openai.GenerateRequest(r.model, r.opts...)
	if !assert.NoError(err) {
		t.FailNow()
	}
	data, err := json.Marshal(req)
	if !assert.NoError(err) {
		t.FailNow()
	}
	var body struct {
		Input []struct {
			Role    string `json:"role"`
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		} `json:"input"`
	}
	if assert.NoError(json.Unmarshal(data, &body)) && assert.Len(body.Input, 2) {
		assert.Equal("developer", body.Input[0].Role)
		assert.Equal("", body.Input[0].Content[0].Text)
		assert.Equal("user", body.Input[1].Role)
		assert.Equal("", body.Input[1].Content[0].Text)
	}
}
