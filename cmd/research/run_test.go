package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	// Packages
	research "github.com/mutablelogic/go-research"
	manager "github.com/mutablelogic/go-research/pkg/manager"
	opt "github.com/mutablelogic/go-research/pkg/opt"
	schema "github.com/mutablelogic/go-research/pkg/schema"
	session "github.com/mutablelogic/go-research/pkg/session"
	text "github.com/mutablelogic/go-research/pkg/ui/text"
	prometheus "github.com/prometheus/client_golang/prometheus"
	zerolog "github.com/rs/zerolog"
	assert "github.com/stretchr/testify/assert"
)

type replayResearcher []string

type replayStream struct {
	records []string
}

func (replayResearcher) Name() string { return "replay" }

func (r replayResearcher) Research(context.Context, research.Model, ...opt.Opt) (research.Stream, error) {
	return &replayStream{records: r}, nil
}

func (s *replayStream) Next() (schema.Event, error) {
	if len(s.records) == 0 {
		return nil, io.EOF
	}
	record := s.records[0]
	s.records = s.records[1:]
	return schema.DecodeEvent([]byte(record))
}

func (*replayStream) Close() error { return nil }

func Test_run_001(t *testing.T) {
	// Research is written to a text display
	assert := assert.New(t)
	r := replayResearcher{
		`{"type":"response.output_item.done","item":{"type":"web_search_call","action":{"type":"search","query":"click to cancel"}}}`,
		`{"type":"response.completed","response":{"status":"completed","output":[{"type":"message","content":[{"type":"output_text","text":"Done."}]}]}}`,
	}
	m, err := manager.New(func(string) (research.Researcher, error) { return r, nil },
		manager.WithRegisterer(prometheus.NewRegistry()),
		manager.WithLogger(zerolog.Nop()),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	config, err := m.Config(session.WithCredential("sk-test"))
	if !assert.NoError(err) {
		t.FailNow()
	}

	var progress, out bytes.Buffer
	assert.NoError(runDisplay(context.Background(), m, config, text.New(&progress, &out)))
	assert.Contains(progress.String(), "1. **Search:** click to cancel")
	assert.Contains(out.String(), "Done.")
}

func Test_run_002(t *testing.T) {
	// Defaults come from the command line when there is no defaults file
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "")
	g := Globals{
		OpenAIKey: "sk-flag",
		Config:    filepath.Join(t.TempDir(), "missing.yaml"),
	}
	config, err := g.Defaults()
	if assert.NoError(err) {
		assert.Equal("sk-flag", config.Credential)
		assert.Equal(research.DefaultModel, config.Model)
	}

	// The defaults file is read when it exists
	saved, err := session.New(session.WithModel(string(research.O4MiniDeepResearch)))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NoError(saved.Save(g.Config))
	config, err = g.Defaults()
	if assert.NoError(err) {
		assert.Equal("sk-flag", config.Credential)
		assert.Equal(research.O4MiniDeepResearch, config.Model)
	}
}
