// Package middleware provides http.RoundTripper middleware used by the monitoring client.
package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/lexfrei/go-algolia-monitoring/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP requests.
// Only method, path, status and duration are logged; headers (which carry the
// credentials) and query strings never are. Failed round trips are logged but not
// counted: the client records them once per operation via RecordError.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	path := req.URL.Path

	t.logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "host", Value: req.URL.Host},
		observability.Field{Key: "path", Value: path},
	)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "path", Value: path},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		//nolint:wrapcheck // Observability middleware logs error but passes it through unchanged
		return nil, err
	}

	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "path", Value: path},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http request completed with error", fields...)
	} else {
		t.logger.Debug("http request completed", fields...)
	}

	t.metrics.RecordHTTPRequest(req.Method, normalizePath(path), resp.StatusCode, duration)

	return resp, nil
}

var (
	// clusterListPattern matches the comma-joined cluster segment that follows a
	// filterable endpoint: /status/c1-de,c2-us → /status/:clusters.
	clusterListPattern = regexp.MustCompile(`/(status|incidents|latency|indexing)/[^/]+`)
	// reachabilityPattern only matches when a cluster segment precedes /probes.
	reachabilityPattern = regexp.MustCompile(`/reachability/[^/]+/probes`)
	// infrastructurePattern matches /infrastructure/{metric}/period/{period}.
	infrastructurePattern = regexp.MustCompile(`/infrastructure/[^/]+/period/[^/]+`)

	// normalizedPathCache caches normalized paths. Callers usually query a fixed
	// set of clusters, so the set of distinct paths stays small.
	normalizedPathCache sync.Map
)

// normalizePath replaces cluster lists and infrastructure parameters with
// placeholders so they do not become metric label values.
//
// Examples:
//   - /1/status/c1-de,c2-us → /1/status/:clusters
//   - /1/reachability/c1-de/probes → /1/reachability/:clusters/probes
//   - /1/infrastructure/cpu_usage/period/day → /1/infrastructure/:metric/period/:period
func normalizePath(path string) string {
	if cached, ok := normalizedPathCache.Load(path); ok {
		//nolint:forcetypeassert // Cache only stores strings, type assertion is safe
		return cached.(string)
	}

	normalized := clusterListPattern.ReplaceAllString(path, "/$1/:clusters")
	normalized = reachabilityPattern.ReplaceAllString(normalized, "/reachability/:clusters/probes")
	normalized = infrastructurePattern.ReplaceAllString(normalized, "/infrastructure/:metric/period/:period")

	normalizedPathCache.Store(path, normalized)

	return normalized
}
