package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-research/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns the models the server can research with
func (c *Client) ListModels(ctx context.Context) (*schema.ListModelsResponse, error) {
	var response schema.ListModelsResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("model")); err != nil {
		return nil, err
	}
	return &response, nil
}
