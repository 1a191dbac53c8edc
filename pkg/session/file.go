package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	// Packages
	research "github.com/mutablelogic/go-research"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DirPerm  os.FileMode = 0o700 // Directory permission for the defaults file
	FilePerm os.FileMode = 0o600 // Permission for the defaults file

	defaultsDir  = "go-research"
	defaultsFile = "defaults.yaml"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// DefaultPath returns the path of the defaults file in the user config
// directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", research.ErrInternalServerError.Withf("config dir: %v", err)
	}
	return filepath.Join(dir, defaultsDir, defaultsFile), nil
}

// Load returns a configuration with defaults read from a YAML file, then
// applies the options. Fields missing from the file keep their built-in
// defaults. Returns ErrNotFound if the file does not exist.
func Load(path string, opts ...Opt) (*Config, error) {
	c, err := New()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, research.ErrNotFound.Withf("%q", path)
	} else if err != nil {
		return nil, research.ErrInternalServerError.Withf("read: %v", err)
	}

	// The credential is never read from the file
	credential := c.Credential
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, research.ErrBadParameter.Withf("%s: %v", filepath.Base(path), err)
	}
	c.Credential = credential
	if !c.Model.Valid() {
		return nil, research.ErrBadParameter.Withf("%s: unknown model %q", filepath.Base(path), c.Model)
	}

	// Apply options over the file
	if err := c.apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the model, prompts and request settings to a YAML file,
// creating the directory if needed. The credential is not written.
func (c *Config) Save(path string) error {
	if path == "" {
		return research.ErrBadParameter.With("path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return research.ErrInternalServerError.Withf("mkdir: %v", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return research.ErrInternalServerError.Withf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return research.ErrInternalServerError.Withf("write: %v", err)
	}
	return nil
}
