// Package testutil provides common testing utilities and helpers.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// APIKeyHeader is the header carrying the Algolia API key.
	APIKeyHeader = "X-Algolia-API-Key"
	// ApplicationIDHeader is the header carrying the Algolia application ID.
	ApplicationIDHeader = "X-Algolia-Application-Id"
)

// Credentials are the values a mock server expects in the auth headers.
// Empty fields are not checked.
type Credentials struct {
	APIKey        string
	ApplicationID string
}

// NewMockServer creates a test HTTP server with a predefined response.
// It validates the method, the escaped request path and the auth headers,
// then writes statusCode and responseBody.
func NewMockServer(t *testing.T, expectedPath string, creds Credentials, responseBody string, statusCode int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method, "Request method should be GET")
		assert.Equal(t, expectedPath, r.URL.EscapedPath(), "Request path should match expected")
		AssertCredentials(t, r, creds)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err := w.Write([]byte(responseBody))
		require.NoError(t, err, "Failed to write response body")
	}))
}

// NewMockServerWithHandler creates a test HTTP server with custom handler.
func NewMockServerWithHandler(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

// NewMockServerMulti creates a test HTTP server with multiple path handlers.
// The handlers map keys are URL paths, values are handler functions.
func NewMockServerMulti(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("Unexpected request path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
}

// NewClosedServerURL returns the URL of a server that has already been shut down,
// so every request to it fails at the connection level.
func NewClosedServerURL(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	return url
}

// AssertCredentials checks the Algolia auth headers on r.
func AssertCredentials(t *testing.T, r *http.Request, creds Credentials) {
	t.Helper()

	if creds.APIKey != "" {
		assert.Equal(t, creds.APIKey, r.Header.Get(APIKeyHeader), "%s header should be set", APIKeyHeader)
	}
	if creds.ApplicationID != "" {
		assert.Equal(t, creds.ApplicationID, r.Header.Get(ApplicationIDHeader), "%s header should be set", ApplicationIDHeader)
	}
}

// CountingRoundTripper counts calls and fails the test on any of them when Forbid is set.
type CountingRoundTripper struct {
	T      *testing.T
	Forbid bool
	calls  atomic.Int64
}

// RoundTrip implements http.RoundTripper.
func (c *CountingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	if c.Forbid {
		c.T.Errorf("unexpected request: %s %s", req.Method, req.URL)
	}
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
}

// Calls reports how many round trips were attempted.
func (c *CountingRoundTripper) Calls() int64 {
	return c.calls.Load()
}
