package version_test

import (
	"encoding/json"
	"runtime"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-research/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	// The tag takes precedence over the branch
	assert := assert.New(t)
	tag, branch := version.GitTag, version.GitBranch
	t.Cleanup(func() { version.GitTag, version.GitBranch = tag, branch })

	version.GitTag, version.GitBranch = "v1.2.3", "main"
	assert.Equal("v1.2.3", version.Version())

	version.GitTag = ""
	assert.Equal("main", version.Version())

	version.GitBranch = ""
	assert.NotEmpty(version.Version())
}

func Test_version_002(t *testing.T) {
	// JSON carries the name and compiler
	assert := assert.New(t)
	var info version.Info
	if assert.NoError(json.Unmarshal(version.JSON("research"), &info)) {
		assert.Equal("research", info.Name)
		assert.Equal(runtime.Version(), info.Compiler)
		assert.NotEmpty(info.Version)
	}
}
