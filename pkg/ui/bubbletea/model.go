package bubbletea

import (
	"strings"

	// Packages
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/mutablelogic/go-research/pkg/ui"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// model is the bubbletea model that manages the TUI state.
type model struct {
	viewport    viewport.Model
	spinner     spinner.Model
	renderer    *glamour.TermRenderer
	stylePath   string // glamour style ("dark" or "light"), detected before TUI starts
	title       string
	activity    string
	completed   bool
	reasoning   []string
	answer      string
	notes       []string
	err         error
	busy        bool
	interrupted bool
	width       int
	height      int
	ready       bool
	quitting    bool
}

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // cyan
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")) // blue
	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // red
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newModel(title, stylePath string) *model {
	return &model{
		title:     title,
		stylePath: stylePath,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

///////////////////////////////////////////////////////////////////////////////
// BUBBLETEA MODEL

func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			m.interrupted = m.busy
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		footerHeight := 1 // status line
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.YPosition = 0
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}

		// (Re)create glamour renderer with new width
		m.newRenderer()
		m.updateViewport()
		return m, nil

	case activityMsg:
		m.activity = msg.activity
		m.completed = msg.completed
		m.updateViewport()
		return m, nil

	case reasoningMsg:
		m.reasoning = msg.log
		m.updateViewport()
		return m, nil

	case answerMsg:
		m.answer = msg.answer
		m.updateViewport()
		return m, nil

	case noteMsg:
		m.notes = append(m.notes, msg.text)
		m.updateViewport()
		return m, nil

	case errorMsg:
		m.err = msg.err
		m.updateViewport()
		return m, nil

	case busyMsg:
		m.busy = msg.busy
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Forward everything else, including navigation keys, to the viewport
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	// Status line
	var status string
	if m.busy {
		status = m.spinner.View() + " " + ui.BusyText
	} else {
		status = dimStyle.Render("↑/↓ to scroll, q to quit")
	}

	return m.viewport.View() + "\n" + status
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// content renders the three sections
func (m *model) content() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(wordwrap.String(m.title, m.wrapWidth())) + "\n\n")
	}

	// Current activity, notes and any error
	b.WriteString(headingStyle.Render(ui.HeadingActivity) + "\n")
	switch {
	case m.completed:
		b.WriteString(indentText(doneStyle.Render(ui.CompletedText)) + "\n")
	case m.activity != "":
		b.WriteString(m.markdown(m.activity) + "\n")
	}
	for _, note := range m.notes {
		b.WriteString(indentText(noteStyle.Render(wordwrap.String(note, m.wrapWidth()))) + "\n")
	}
	if m.err != nil {
		b.WriteString(indentText(errorStyle.Render(wordwrap.String(m.err.Error(), m.wrapWidth()))) + "\n")
	}

	// Reasoning log
	b.WriteString("\n" + headingStyle.Render(ui.HeadingReasoning) + "\n")
	if len(m.reasoning) > 0 {
		b.WriteString(m.markdown(ui.NumberedList(m.reasoning)) + "\n")
	}

	// Answer
	b.WriteString("\n" + headingStyle.Render(ui.HeadingAnswer) + "\n")
	if m.answer != "" {
		b.WriteString(m.markdown(m.answer) + "\n")
	}

	return b.String()
}

// markdown renders text with glamour, falling back to wrapped plain text
func (m *model) markdown(text string) string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(text); err == nil {
			return trimGlamour(out)
		}
	}
	return indentText(wordwrap.String(text, m.wrapWidth()))
}

// trimGlamour trims leading/trailing blank lines from glamour output.
func trimGlamour(s string) string {
	return strings.Trim(s, "\n")
}

// indentText ensures every line has a 2-space indent, matching glamour's
// default left margin so all content is visually consistent.
func indentText(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "  ") {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

// wrapWidth returns the available text width for content
func (m *model) wrapWidth() int {
	const margin = 4
	return max(m.width-margin, 20)
}

// newRenderer creates a glamour terminal renderer with the current wrap
// width. Uses the pre-detected style path to avoid querying the terminal
// inside bubbletea's event loop.
func (m *model) newRenderer() {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.stylePath),
		glamour.WithWordWrap(m.wrapWidth()),
	)
	if err == nil {
		m.renderer = r
	}
}

// updateViewport replaces the content, following the end of the answer
// unless the user has scrolled up
func (m *model) updateViewport() {
	if !m.ready {
		return
	}
	follow := m.viewport.AtBottom()
	m.viewport.SetContent(m.content())
	if follow {
		m.viewport.GotoBottom()
	}
}
