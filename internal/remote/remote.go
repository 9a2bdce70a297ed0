// Package remote fetches dynamically permissioned routes from the backend.
package remote

import (
	"context"
	"encoding/json"
	"net/http"
)

// Endpoint is the fixed path serving async routes.
const Endpoint = "/get-async-routes"

// Result is the envelope returned by the async route endpoint. Data records
// are left undecoded; their meaning is assigned by the caller.
type Result struct {
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
}

// Transport performs a request and decodes the JSON response into out.
// *transport.Client satisfies it.
type Transport interface {
	Do(ctx context.Context, method, path string, out any) error
}

// Fetcher retrieves async routes through a Transport.
type Fetcher struct {
	transport Transport
}

// New creates a Fetcher over the given transport.
func New(t Transport) *Fetcher {
	return &Fetcher{transport: t}
}

// GetAsyncRoutes issues one GET against Endpoint and returns the decoded
// envelope unmodified. Transport errors are returned as-is.
func (f *Fetcher) GetAsyncRoutes(ctx context.Context) (*Result, error) {
	var result Result
	if err := f.transport.Do(ctx, http.MethodGet, Endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
