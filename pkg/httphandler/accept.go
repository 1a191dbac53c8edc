package httphandler

import (
	"net/http"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// acceptKind classifies the negotiated response format.
type acceptKind int

const (
	acceptJSON        acceptKind = iota // application/json (or no Accept header)
	acceptStream                        // text/event-stream
	acceptUnsupported                   // anything else
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// acceptType inspects the Accept header and returns the first format which
// is understood. When no Accept header is present, defaults to JSON.
func acceptType(r *http.Request) acceptKind {
	header := r.Header.Get("Accept")
	if header == "" {
		return acceptJSON
	}
	for _, part := range strings.Split(header, ",") {
		mt := strings.TrimSpace(part)
		// Strip quality parameters (e.g. ";q=0.9")
		if idx := strings.IndexByte(mt, ';'); idx >= 0 {
			mt = strings.TrimSpace(mt[:idx])
		}
		switch mt {
		case "text/event-stream":
			return acceptStream
		case "application/json", "*/*":
			return acceptJSON
		}
	}
	return acceptUnsupported
}
