package ui

import (
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// NumberedList returns the entries as a numbered markdown list, one entry
// per line, numbered from one
func NumberedList(entries []string) string {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, oneLine(entry))
	}
	return b.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// oneLine collapses line breaks so an entry stays inside its list item
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
