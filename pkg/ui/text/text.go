// Package text implements ui.Display as plain line output, for pipes and
// terminals where a full-screen display is not wanted. Each new activity
// and reasoning entry is written as one line, and the answer is written
// once when the research completes.
package text

import (
	"fmt"
	"io"
	"strings"
	"sync"

	// Packages
	"github.com/mutablelogic/go-research/pkg/ui"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Writer implements ui.Display by writing lines
type Writer struct {
	mu        sync.Mutex
	progress  io.Writer // activity, reasoning and notes
	out       io.Writer // answer
	activity  string    // pending activity, not yet written
	reasoning int       // number of reasoning entries written
	answer    string
	written   bool
	err       error
}

var _ ui.Display = (*Writer)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a display which writes progress to one writer and the
// answer to another. Progress may be io.Discard for quiet output.
func New(progress, out io.Writer) *Writer {
	if progress == nil {
		progress = io.Discard
	}
	return &Writer{
		progress: progress,
		out:      out,
	}
}

///////////////////////////////////////////////////////////////////////////////
// projector.Observer IMPLEMENTATION

func (w *Writer) ActivityChanged(activity string, completed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.flushActivity()
	if completed {
		w.println(w.progress, ui.CompletedText)
		w.writeAnswer()
		return
	}
	w.activity = activity
}

func (w *Writer) ReasoningChanged(log []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Write only the new entries
	for i := w.reasoning; i < len(log); i++ {
		if log[i] == w.activity {
			w.activity = ""
		}
		w.println(w.progress, fmt.Sprintf("%d. %s", i+1, log[i]))
	}
	w.reasoning = len(log)
}

func (w *Writer) AnswerChanged(answer string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.answer = answer
}

func (w *Writer) Note(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.println(w.progress, "note: "+text)
}

///////////////////////////////////////////////////////////////////////////////
// ui.Display IMPLEMENTATION

func (w *Writer) SetBusy(busy bool) {
	if busy {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.println(w.progress, ui.BusyText)
	}
}

func (w *Writer) Error(err error) {
	if err == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.println(w.progress, "error: "+err.Error())
}

// Wait returns immediately, with any error from writing
func (w *Writer) Wait() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Close writes the answer if it was not written on completion, so that a
// partial answer is not lost
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.flushActivity()
	w.writeAnswer()
	return w.err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// flushActivity writes an activity which did not also become a
// reasoning entry, such as a failure
func (w *Writer) flushActivity() {
	if w.activity != "" {
		w.println(w.progress, w.activity)
		w.activity = ""
	}
}

func (w *Writer) writeAnswer() {
	if w.written || w.answer == "" {
		return
	}
	w.written = true
	w.println(w.out, strings.TrimRight(w.answer, "\n"))
}

func (w *Writer) println(dst io.Writer, line string) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintln(dst, line); err != nil {
		w.err = err
	}
}
