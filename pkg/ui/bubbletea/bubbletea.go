// Package bubbletea implements ui.Display for interactive terminals using
// the Charm bubbletea framework. It shows the current activity, a
// numbered reasoning log and the answer in one scrollable view, with
// Markdown rendered by glamour and a spinner while the research runs.
package bubbletea

import (
	"fmt"
	"sync"

	// Packages
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	research "github.com/mutablelogic/go-research"
	"github.com/mutablelogic/go-research/pkg/ui"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Terminal implements ui.Display for interactive terminal sessions.
type Terminal struct {
	program *tea.Program
	done    chan struct{} // closed when the program exits
	err     error         // error from program.Run
	mu      sync.Mutex
	model   *model
}

var _ ui.Display = (*Terminal)(nil)

///////////////////////////////////////////////////////////////////////////////
// MESSAGES (bubbletea internal)

type activityMsg struct {
	activity  string
	completed bool
}

type reasoningMsg struct {
	log []string
}

type answerMsg struct {
	answer string
}

type noteMsg struct {
	text string
}

type busyMsg struct {
	busy bool
}

type errorMsg struct {
	err error
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new terminal display with the prompt as its title. The
// display takes over the terminal and should be closed when done.
func New(title string, opts ...tea.ProgramOption) (*Terminal, error) {
	// Detect terminal background BEFORE starting bubbletea, so that
	// the escape-sequence response is consumed here rather than leaking
	// into bubbletea's input reader.
	stylePath := "dark"
	if !termenv.HasDarkBackground() {
		stylePath = "light"
	}

	m := newModel(title, stylePath)
	t := &Terminal{
		done:  make(chan struct{}),
		model: m,
	}
	t.program = tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)

	// Run the TUI in a background goroutine
	go func() {
		defer close(t.done)
		if _, err := t.program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return t, nil
}

///////////////////////////////////////////////////////////////////////////////
// projector.Observer IMPLEMENTATION

func (t *Terminal) ActivityChanged(activity string, completed bool) {
	t.program.Send(activityMsg{activity: activity, completed: completed})
}

func (t *Terminal) ReasoningChanged(log []string) {
	t.program.Send(reasoningMsg{log: log})
}

func (t *Terminal) AnswerChanged(answer string) {
	t.program.Send(answerMsg{answer: answer})
}

func (t *Terminal) Note(text string) {
	t.program.Send(noteMsg{text: text})
}

///////////////////////////////////////////////////////////////////////////////
// ui.Display IMPLEMENTATION

// SetBusy shows or hides the spinner. Quitting while busy interrupts
// the research.
func (t *Terminal) SetBusy(busy bool) {
	t.program.Send(busyMsg{busy: busy})
}

// Error shows an error below the activity
func (t *Terminal) Error(err error) {
	if err != nil {
		t.program.Send(errorMsg{err: err})
	}
}

// Wait blocks until the user quits the display
func (t *Terminal) Wait() error {
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	if t.model.interrupted {
		return research.ErrCancelled.With("quit before research ended")
	}
	return nil
}

// Close shuts down the terminal display.
func (t *Terminal) Close() error {
	t.program.Quit()
	<-t.done
	return nil
}

func (t *Terminal) String() string {
	return fmt.Sprintf("<bubbletea.Terminal %q>", t.model.title)
}
