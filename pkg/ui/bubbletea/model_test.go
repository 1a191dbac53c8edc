package bubbletea

import (
	"errors"
	"strings"
	"testing"

	// Packages
	tea "github.com/charmbracelet/bubbletea"
	ui "github.com/mutablelogic/go-research/pkg/ui"
	assert "github.com/stretchr/testify/assert"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	m := newModel("What is the rule?", "notty")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

func Test_model_001(t *testing.T) {
	// The three sections appear in order
	assert := assert.New(t)
	m := newTestModel(t)
	content := m.content()

	activity := strings.Index(content, ui.HeadingActivity)
	reasoning := strings.Index(content, ui.HeadingReasoning)
	answer := strings.Index(content, ui.HeadingAnswer)
	assert.True(activity >= 0 && activity < reasoning && reasoning < answer, content)
	assert.Contains(content, "What is the rule?")
}

func Test_model_002(t *testing.T) {
	// Regions are replaced by the latest message
	assert := assert.New(t)
	m := newTestModel(t)

	m.Update(activityMsg{activity: "searching alpha"})
	m.Update(reasoningMsg{log: []string{"first step", "second step"}})
	m.Update(answerMsg{answer: "draft"})
	m.Update(answerMsg{answer: "final answer"})

	content := m.content()
	assert.Contains(content, "searching alpha")
	assert.Contains(content, "first step")
	assert.Contains(content, "second step")
	assert.Contains(content, "final answer")
	assert.NotContains(content, "draft")
}

func Test_model_003(t *testing.T) {
	// Completion replaces the activity with the completed text
	assert := assert.New(t)
	m := newTestModel(t)
	m.Update(activityMsg{activity: "searching alpha"})
	m.Update(activityMsg{activity: "searching alpha", completed: true})

	content := m.content()
	assert.Contains(content, ui.CompletedText)
	assert.NotContains(content, "searching alpha")
}

func Test_model_004(t *testing.T) {
	// Notes and errors are shown in the activity section
	assert := assert.New(t)
	m := newTestModel(t)
	m.Update(noteMsg{text: "Unhandled item type: hologram_call"})
	m.Update(errorMsg{err: errors.New("connection reset")})

	content := m.content()
	assert.Contains(content, "Unhandled item type: hologram_call")
	assert.Contains(content, "connection reset")
	assert.Less(strings.Index(content, "connection reset"), strings.Index(content, ui.HeadingReasoning))
}

func Test_model_005(t *testing.T) {
	// The spinner text is shown while busy, and quitting while busy interrupts
	assert := assert.New(t)
	m := newTestModel(t)

	m.Update(busyMsg{busy: true})
	assert.Contains(m.View(), ui.BusyText)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(cmd)
	assert.True(m.quitting)
	assert.True(m.interrupted)
	assert.Equal("", m.View())
}

func Test_model_006(t *testing.T) {
	// Quitting after the research has ended does not interrupt
	assert := assert.New(t)
	m := newTestModel(t)
	m.Update(busyMsg{busy: true})
	m.Update(busyMsg{busy: false})
	assert.NotContains(m.View(), ui.BusyText)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(m.quitting)
	assert.False(m.interrupted)
}
