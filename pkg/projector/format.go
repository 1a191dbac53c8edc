package projector

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-research/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// ENTRIES

func reasoningEntry(text string) string {
	return "**Reasoning:** " + text
}

func searchEntry(query string) string {
	return "**Search:** " + query
}

func readingEntry(url string) string {
	return "**Reading page:** " + url
}

func pageSearchEntry(pattern, url string) string {
	return fmt.Sprintf(`**Page search:** "%s" on %s`, pattern, url)
}

func unhandledItemNote(itemType string) string {
	return "Unhandled item type: " + itemType
}

// failedActivity describes a response which ended without completing
func failedActivity(response schema.Response) string {
	switch {
	case response.Error != nil && response.Error.Message != "":
		return "**Research failed:** " + response.Error.Message
	case response.IncompleteDetails != nil && response.IncompleteDetails.Reason != "":
		return "**Research incomplete:** " + response.IncompleteDetails.Reason
	case response.Status != "":
		return "**Research " + response.Status + "**"
	default:
		return "**Research failed**"
	}
}
