package consolesdk

import (
	"context"
	"encoding/json"
	"net/http"
)

const clientsPath = "/clients"

// ClientsAPI manages the firm's clients.
type ClientsAPI struct {
	r Requester
}

// List returns clients matching params, e.g. search, status, priority,
// sort_by and sort_order.
func (c *ClientsAPI) List(ctx context.Context, params Params) ([]Client, error) {
	return call[[]Client](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   clientsPath,
		Query:  params,
	})
}

// Get returns a single client.
func (c *ClientsAPI) Get(ctx context.Context, id int64) (*Client, error) {
	client, err := call[Client](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   resourcePath(clientsPath, id),
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Create adds a client and returns the created record.
func (c *ClientsAPI) Create(ctx context.Context, in ClientInput) (*Client, error) {
	client, err := call[Client](ctx, c.r, &Request{
		Method: http.MethodPost,
		Path:   clientsPath,
		Body:   in,
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Update modifies a client and returns the updated record.
func (c *ClientsAPI) Update(ctx context.Context, id int64, in ClientInput) (*Client, error) {
	client, err := call[Client](ctx, c.r, &Request{
		Method: http.MethodPut,
		Path:   resourcePath(clientsPath, id),
		Body:   in,
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Delete removes a client and returns the server's response body.
func (c *ClientsAPI) Delete(ctx context.Context, id int64) (json.RawMessage, error) {
	return raw(ctx, c.r, &Request{
		Method: http.MethodDelete,
		Path:   resourcePath(clientsPath, id),
	})
}

// Projects lists the projects of a client.
func (c *ClientsAPI) Projects(ctx context.Context, id int64) ([]Project, error) {
	return call[[]Project](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   resourcePath(clientsPath, id) + "/projects",
	})
}

// Invoices lists the invoices of a client.
func (c *ClientsAPI) Invoices(ctx context.Context, id int64) ([]Invoice, error) {
	return call[[]Invoice](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   resourcePath(clientsPath, id) + "/invoices",
	})
}
