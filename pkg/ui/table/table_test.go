package table_test

import (
	"strings"
	"testing"

	// Packages
	research "github.com/mutablelogic/go-research"
	table "github.com/mutablelogic/go-research/pkg/ui/table"
	assert "github.com/stretchr/testify/assert"
)

func Test_table_001(t *testing.T) {
	// Cells format empty and zero values as a dash
	assert := assert.New(t)
	assert.Equal("-", table.FormatCell(nil))
	assert.Equal("-", table.FormatCell(""))
	assert.Equal("-", table.FormatCell(0))
	assert.Equal("-", table.FormatCell(uint(0)))
	assert.Equal("-", table.FormatCell(false))
	assert.Equal("yes", table.FormatCell(true))
	assert.Equal("42", table.FormatCell(42))
	assert.Equal("o3", table.FormatCell(table.Bold{Value: "o3"}))
}

func Test_table_002(t *testing.T) {
	// The models table as markdown
	assert := assert.New(t)
	md := table.RenderMarkdown(table.Models{Models: research.Models(), Selected: research.DefaultModel})
	lines := strings.Split(md, "\n")
	if assert.Len(lines, 4) {
		assert.Equal("| Model | Description | Default |", lines[0])
		assert.Equal("|---|---|---|", lines[1])
		assert.True(strings.HasPrefix(lines[2], "| **o3-deep-research-2025-06-26** |"), lines[2])
		assert.True(strings.HasSuffix(lines[2], "| yes |"), lines[2])
		assert.True(strings.HasPrefix(lines[3], "| o4-mini-deep-research-2025-06-26 |"), lines[3])
		assert.True(strings.HasSuffix(lines[3], "| - |"), lines[3])
	}
}

func Test_table_003(t *testing.T) {
	// The models table for a terminal contains every model
	assert := assert.New(t)
	out := table.Render(table.Models{Models: research.Models(), Selected: research.O4MiniDeepResearch})
	for _, model := range research.Models() {
		assert.Contains(out, model.String())
	}
	assert.Contains(out, "Description")
}
