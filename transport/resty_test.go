package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-algolia-monitoring/transport"
)

func TestRestyDoer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/1/status/c1-de", r.URL.Path)
		assert.Equal(t, "app456", r.Header.Get("X-Algolia-Application-Id"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"reason":"short and stout"}`))
	}))
	defer server.Close()

	doer := transport.NewRestyDoer(resty.New())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/1/status/c1-de", nil)
	require.NoError(t, err)
	req.Header.Set("X-Algolia-Application-Id", "app456")

	resp, err := doer.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"reason":"short and stout"}`, string(body))
}

func TestRestyDoerConnectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	doer := transport.NewRestyDoer(nil)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := doer.Do(req)
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestDoerFunc(t *testing.T) {
	t.Parallel()

	called := false
	var doer transport.Doer = transport.DoerFunc(func(req *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody, Request: req}, nil
	})

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.invalid", nil)
	require.NoError(t, err)

	resp, err := doer.Do(req)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
