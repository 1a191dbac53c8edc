package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	// Packages
	research "github.com/mutablelogic/go-research"
	session "github.com/mutablelogic/go-research/pkg/session"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// FILE TESTS

func Test_file_001(t *testing.T) {
	// Save and load, without writing the credential
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "sk-env")
	path := filepath.Join(t.TempDir(), "nested", "defaults.yaml")

	c, err := session.New(
		session.WithCredential("sk-secret"),
		session.WithModel(string(research.O4MiniDeepResearch)),
		session.WithUserPrompt("Summarise the rule"),
		session.WithTimeout(30*time.Minute),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NoError(c.Save(path))

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.NotContains(string(data), "sk-secret")

	info, err := os.Stat(path)
	if assert.NoError(err) {
		assert.Equal(session.FilePerm, info.Mode().Perm())
	}

	loaded, err := session.Load(path)
	if assert.NoError(err) {
		assert.Equal("sk-env", loaded.Credential)
		assert.Equal(research.O4MiniDeepResearch, loaded.Model)
		assert.Equal("Summarise the rule", loaded.UserPrompt)
		assert.Equal(session.DefaultSystemPrompt, loaded.SystemPrompt)
		assert.Equal(30*time.Minute, loaded.Timeout)
	}
}

func Test_file_002(t *testing.T) {
	// Missing fields keep their defaults and options are applied last
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "")
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	assert.NoError(os.WriteFile(path, []byte("user_prompt: From the file\n"), session.FilePerm))

	c, err := session.Load(path, session.WithCredential("sk-flag"))
	if assert.NoError(err) {
		assert.Equal(research.DefaultModel, c.Model)
		assert.Equal("From the file", c.UserPrompt)
		assert.Equal("sk-flag", c.Credential)
	}
}

func Test_file_003(t *testing.T) {
	// Errors for a missing file, bad YAML and an unknown model
	assert := assert.New(t)
	dir := t.TempDir()

	_, err := session.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(err, research.ErrNotFound)

	bad := filepath.Join(dir, "bad.yaml")
	assert.NoError(os.WriteFile(bad, []byte("model: [1, 2\n"), session.FilePerm))
	_, err = session.Load(bad)
	assert.ErrorIs(err, research.ErrBadParameter)

	unknown := filepath.Join(dir, "unknown.yaml")
	assert.NoError(os.WriteFile(unknown, []byte("model: gpt-4o\n"), session.FilePerm))
	_, err = session.Load(unknown)
	assert.ErrorIs(err, research.ErrBadParameter)
}

func Test_file_004(t *testing.T) {
	// A credential in the file is ignored
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "")
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	assert.NoError(os.WriteFile(path, []byte("credential: sk-file\nCredential: sk-file\n"), session.FilePerm))

	c, err := session.Load(path)
	if assert.NoError(err) {
		assert.Equal("", c.Credential)
		assert.ErrorIs(c.Validate(), research.ErrMissingCredential)
	}
}

func Test_file_005(t *testing.T) {
	// The default path is in the user config directory
	assert := assert.New(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	path, err := session.DefaultPath()
	if assert.NoError(err) {
		assert.Equal("defaults.yaml", filepath.Base(path))
		assert.Equal("go-research", filepath.Base(filepath.Dir(path)))
	}
}
