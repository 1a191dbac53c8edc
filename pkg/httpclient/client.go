/*
httpclient implements a client for the research web surface, so that
research can be run on a remote server and projected locally.
*/
package httpclient

import (
	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is a research HTTP client that wraps the base HTTP client
// and provides typed methods for the research server.
type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new research HTTP client with the given base URL and
// options. The url parameter should point to the research server, e.g.
// "http://localhost:8080/".
func New(url string, opts ...client.ClientOpt) (*Client, error) {
	c := new(Client)
	if client, err := client.New(append(opts, client.OptEndpoint(url))...); err != nil {
		return nil, err
	} else {
		c.Client = client
	}
	return c, nil
}
