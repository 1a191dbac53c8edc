package form

import (
	"testing"

	// Packages
	research "github.com/mutablelogic/go-research"
	assert "github.com/stretchr/testify/assert"
)

func Test_form_001(t *testing.T) {
	// An empty credential blocks submission with a warning
	assert := assert.New(t)
	assert.ErrorIs(validateCredential(""), research.ErrMissingCredential)
	assert.ErrorIs(validateCredential("  \t"), research.ErrMissingCredential)
	assert.NoError(validateCredential("sk-test"))
}

func Test_form_002(t *testing.T) {
	// The model options are the two known models, default first
	assert := assert.New(t)
	options := modelOptions()
	if assert.Len(options, 2) {
		assert.Equal(string(research.DefaultModel), options[0].Value)
		assert.Equal(string(research.O4MiniDeepResearch), options[1].Value)
	}
}
