// Package ui defines the interface for research displays.
//
// A [Display] receives the three regions of a research projection
// (current activity, reasoning log and answer) as they change, and
// shows them on a particular surface such as a full-screen terminal or
// plain line output.
package ui

import (
	// Packages
	projector "github.com/mutablelogic/go-research/pkg/projector"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACES

// Display shows a research projection. The observer methods may be called
// from any goroutine, one at a time.
type Display interface {
	projector.Observer

	// SetBusy shows or hides the in-flight indicator
	SetBusy(busy bool)

	// Error shows a failure which ended the research
	Error(err error)

	// Wait blocks until the display is dismissed by the user, or returns
	// immediately for displays which cannot be dismissed. Returns
	// ErrCancelled when the user quit before the research ended.
	Wait() error

	// Close releases the display. The final regions remain visible where
	// the surface allows it.
	Close() error
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Section headings, in display order
const (
	HeadingActivity  = "Current Activity"
	HeadingReasoning = "Research Process"
	HeadingAnswer    = "Research Results"
)

const (
	BusyText      = "Running Deep Research..."
	CompletedText = "✅ Research completed!"
)
