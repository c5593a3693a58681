package httpclient

import (
	"net/http"
	"time"
)

// Option is a functional option for configuring the HTTP client.
type Option func(*Client)

// WithHTTPClient starts from a shallow copy of client, so wrapping its transport
// with middleware never mutates the caller's value. A nil client is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			copied := *client
			c.base = &copied
		}
	}
}

// WithTimeout sets the request timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.base.Timeout = timeout
	}
}

// WithMiddleware adds middleware to the client.
// The first middleware in the slice becomes the outermost layer:
//
//	WithMiddleware(A, B) creates chain: A(B(transport))
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}
