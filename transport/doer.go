// Package transport defines the HTTP transport contract used by the monitoring
// client and ships a resty-backed implementation of it.
package transport

import "net/http"

// Doer performs a single HTTP round trip.
// *http.Client satisfies it, as does anything produced by NewRestyDoer.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts an ordinary function to the Doer interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

// Do calls f(req).
func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

var _ Doer = (*http.Client)(nil)
