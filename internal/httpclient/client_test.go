package httpclient_test

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-algolia-monitoring/internal/httpclient"
	"github.com/lexfrei/go-algolia-monitoring/internal/testutil"
	"github.com/lexfrei/go-algolia-monitoring/transport"
)

var _ transport.Doer = (*httpclient.Client)(nil)

func TestNew(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New()
	require.NotNil(t, client)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err, "default client must not impose a timeout")
	defer resp.Body.Close()
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(httpclient.WithTimeout(20 * time.Millisecond))

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	if resp != nil {
		resp.Body.Close()
	}

	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	base := &testutil.CountingRoundTripper{T: t}
	customClient := &http.Client{Transport: base}

	var wrapped int
	marker := func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			wrapped++
			return next.RoundTrip(req)
		})
	}

	client := httpclient.New(
		httpclient.WithHTTPClient(customClient),
		httpclient.WithMiddleware(marker),
	)

	req, err := http.NewRequest(http.MethodGet, "http://status.example.invalid/1/status", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 1, wrapped, "middleware must wrap the caller's transport")
	assert.Equal(t, int64(1), base.Calls(), "caller's transport must carry the request")
	assert.Same(t, base, customClient.Transport, "caller's client must not be mutated")
}

func TestWithHTTPClientNil(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := httpclient.New(httpclient.WithHTTPClient(nil))

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestMiddlewareChaining(t *testing.T) {
	t.Parallel()

	var order []string

	recordingMiddleware := func(name string) httpclient.Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				order = append(order, name+"-before")
				resp, err := next.RoundTrip(req)
				order = append(order, name+"-after")
				return resp, err
			})
		}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "server")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(
		httpclient.WithMiddleware(recordingMiddleware("middleware1"), recordingMiddleware("middleware2")),
	)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, []string{
		"middleware1-before",
		"middleware2-before",
		"server",
		"middleware2-after",
		"middleware1-after",
	}, order)
}

func TestDo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":{}}`))
	}))
	defer server.Close()

	client := httpclient.New()
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"status":{}}`, string(body))
}

// roundTripperFunc is an adapter to use functions as http.RoundTripper
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
