// Package httpclient builds the HTTP client the monitoring client uses by default:
// a plain *http.Client whose transport is wrapped in a middleware chain.
package httpclient

import (
	"net/http"
)

// Client is an HTTP client that supports middleware chaining.
// It satisfies transport.Doer.
type Client struct {
	base       *http.Client
	middleware []Middleware
}

// Middleware wraps an http.RoundTripper to add behavior.
// Middleware is applied in order: first middleware is outermost.
type Middleware func(http.RoundTripper) http.RoundTripper

// New creates a new HTTP client with the given options.
// Without WithTimeout the client imposes no timeout of its own; request
// contexts decide when to give up.
func New(opts ...Option) *Client {
	c := &Client{
		base:       &http.Client{},
		middleware: []Middleware{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.middleware) > 0 {
		transport := c.base.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}

		// Apply middleware in reverse order so first middleware is outermost
		for i := len(c.middleware) - 1; i >= 0; i-- {
			transport = c.middleware[i](transport)
		}

		c.base.Transport = transport
	}

	return c
}

// Do executes an HTTP request using the configured middleware chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	//nolint:wrapcheck // Errors are classified by internal/response
	return c.base.Do(req)
}

