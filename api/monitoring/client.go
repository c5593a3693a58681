package monitoring

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-algolia-monitoring/internal/httpclient"
	"github.com/lexfrei/go-algolia-monitoring/internal/middleware"
	"github.com/lexfrei/go-algolia-monitoring/internal/response"
	"github.com/lexfrei/go-algolia-monitoring/observability"
	"github.com/lexfrei/go-algolia-monitoring/transport"
)

const (
	// DefaultBaseURL is the Algolia Monitoring API host.
	DefaultBaseURL = "https://status.algolia.com"

	// DefaultUserAgent is sent when ClientConfig.UserAgent is empty.
	DefaultUserAgent = "go-algolia-monitoring"

	// APIKeyHeader carries the API key on every request.
	APIKeyHeader = "X-Algolia-API-Key"
	// ApplicationIDHeader carries the application ID on every request.
	ApplicationIDHeader = "X-Algolia-Application-Id"

	apiVersion = "1"
)

// Client is an Algolia Monitoring API client.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL       *url.URL
	doer          transport.Doer
	apiKey        string
	applicationID string
	userAgent     string
	logger        observability.Logger
	metrics       observability.MetricsRecorder
}

// Compile-time check to ensure Client implements MonitoringAPIClient interface.
var _ MonitoringAPIClient = (*Client)(nil)

// ClientConfig holds configuration for the Monitoring API client.
type ClientConfig struct {
	// APIKey is the Algolia API key (required)
	APIKey string

	// ApplicationID is the Algolia application ID (required)
	ApplicationID string

	// BaseURL is the base URL for the API (defaults to https://status.algolia.com)
	BaseURL string

	// HTTPClient is the HTTP client to use (optional). It is copied, never modified.
	HTTPClient *http.Client

	// Doer replaces the HTTP transport entirely (optional, takes precedence over HTTPClient).
	// No middleware is wrapped around it.
	Doer transport.Doer

	// Timeout sets the HTTP client timeout (optional, zero leaves timeouts to the request context)
	Timeout time.Duration

	// UserAgent overrides the User-Agent header (optional)
	UserAgent string

	// Logger for observability (optional, uses noop logger if nil)
	Logger observability.Logger

	// Metrics recorder for observability (optional, uses noop recorder if nil)
	Metrics observability.MetricsRecorder
}

// New creates a new Monitoring API client with default settings.
// No network activity happens until a method is called.
//
// Example:
//
//	client, err := monitoring.New("your-api-key", "your-app-id")
func New(apiKey, applicationID string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		APIKey:        apiKey,
		ApplicationID: applicationID,
	})
}

// NewWithConfig creates a new Monitoring API client with custom configuration.
// The config is read once; later changes to it do not affect the client.
//
// Example:
//
//	client, err := monitoring.NewWithConfig(&monitoring.ClientConfig{
//	    APIKey:        "your-api-key",
//	    ApplicationID: "your-app-id",
//	    Timeout:       10 * time.Second,
//	    Logger:        observability.NewZapLogger(zapLogger),
//	})
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.Wrap(ErrMissingCredentials, "API key is required")
	}
	if cfg.ApplicationID == "" {
		return nil, errors.Wrap(ErrMissingCredentials, "application ID is required")
	}

	rawBaseURL := cfg.BaseURL
	if rawBaseURL == "" {
		rawBaseURL = DefaultBaseURL
	}

	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base URL")
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Newf("invalid base URL %q: scheme and host are required", rawBaseURL)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	doer := cfg.Doer
	if doer == nil {
		opts := []httpclient.Option{
			httpclient.WithHTTPClient(cfg.HTTPClient),
			httpclient.WithMiddleware(middleware.Observability(logger, metrics)),
		}
		if cfg.Timeout > 0 {
			opts = append(opts, httpclient.WithTimeout(cfg.Timeout))
		}
		doer = httpclient.New(opts...)
	}

	return &Client{
		baseURL:       baseURL,
		doer:          doer,
		apiKey:        cfg.APIKey,
		applicationID: cfg.ApplicationID,
		userAgent:     userAgent,
		logger:        logger.With(observability.Field{Key: "component", Value: "algolia-monitoring"}),
		metrics:       metrics,
	}, nil
}

// GetStatus retrieves the status of the given clusters (GET /1/status/{clusters}).
// A nil or empty filter returns every cluster (GET /1/status).
func (c *Client) GetStatus(ctx context.Context, clusters []string) (*StatusResponse, error) {
	return filtered[StatusResponse](ctx, c, "get_status", "failed to get status", clusters, "status")
}

// GetIncidents retrieves the incidents of the given clusters (GET /1/incidents/{clusters}).
// A nil or empty filter returns every cluster (GET /1/incidents).
func (c *Client) GetIncidents(ctx context.Context, clusters []string) (*IncidentsResponse, error) {
	return filtered[IncidentsResponse](ctx, c, "get_incidents", "failed to get incidents", clusters, "incidents")
}

// GetInventory retrieves the server inventory (GET /1/inventory/servers).
// A non-empty filter is sent as the clusters query parameter.
func (c *Client) GetInventory(ctx context.Context, clusters []string) (*InventoryResponse, error) {
	joined, err := joinClusters(clusters)
	if err != nil {
		return nil, err
	}

	var rawQuery string
	if joined != "" {
		rawQuery = "clusters=" + escapeList(joined, url.QueryEscape)
	}

	return get[InventoryResponse](ctx, c, "get_inventory", "failed to get inventory",
		[]string{"inventory", "servers"}, rawQuery)
}

// GetLatency retrieves the search latency of the given clusters (GET /1/latency/{clusters}).
func (c *Client) GetLatency(ctx context.Context, clusters []string) (*LatencyResponse, error) {
	return filtered[LatencyResponse](ctx, c, "get_latency", "failed to get latency", clusters, "latency")
}

// GetReachability retrieves probe reachability of the given clusters
// (GET /1/reachability/{clusters}/probes).
func (c *Client) GetReachability(ctx context.Context, clusters []string) (*ReachabilityResponse, error) {
	return filtered[ReachabilityResponse](ctx, c, "get_reachability", "failed to get reachability",
		clusters, "reachability", "probes")
}

// GetIndexingTime retrieves the indexing time of the given clusters (GET /1/indexing/{clusters}).
func (c *Client) GetIndexingTime(ctx context.Context, clusters []string) (*IndexingResponse, error) {
	return filtered[IndexingResponse](ctx, c, "get_indexing_time", "failed to get indexing time", clusters, "indexing")
}

// GetInfrastructureMetrics retrieves a server metric over a period
// (GET /1/infrastructure/{metric}/period/{period}).
func (c *Client) GetInfrastructureMetrics(ctx context.Context, metric Metric, period Period) (*InfrastructureResponse, error) {
	if !metric.Valid() {
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown metric %q", metric)
	}
	if !period.Valid() {
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown period %q", period)
	}

	return get[InfrastructureResponse](ctx, c, "get_infrastructure_metrics",
		"failed to get infrastructure metrics "+string(metric)+"/"+string(period),
		[]string{"infrastructure", string(metric), "period", string(period)}, "")
}

// filtered issues GET /1/{endpoint}[/{clusters}]{suffix...}.
func filtered[T any](ctx context.Context, c *Client, op, errorMsg string, clusters []string, endpoint string, suffix ...string) (*T, error) {
	joined, err := joinClusters(clusters)
	if err != nil {
		return nil, err
	}

	segments := []string{endpoint}
	if joined != "" {
		segments = append(segments, joined)
	}
	segments = append(segments, suffix...)

	return get[T](ctx, c, op, errorMsg, segments, "")
}

// get performs one round trip and classifies its outcome.
func get[T any](ctx context.Context, c *Client, op, errorMsg string, segments []string, rawQuery string) (*T, error) {
	req, err := c.newRequest(ctx, segments, rawQuery)
	if err != nil {
		return nil, err
	}

	resp, err := c.doer.Do(req)
	data, err := response.Decode[T](resp, err, errorMsg)
	if err != nil {
		kind := response.Kind(err)
		c.metrics.RecordError(op, kind)
		c.logger.Debug("monitoring request failed",
			observability.Field{Key: "operation", Value: op},
			observability.Field{Key: "error_type", Value: kind},
		)
		return nil, err
	}

	return data, nil
}

// newRequest builds an authenticated GET for /1/{segments...}?{rawQuery}. Every
// segment is path-escaped; commas separating cluster names are kept as-is.
func (c *Client) newRequest(ctx context.Context, segments []string, rawQuery string) (*http.Request, error) {
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, apiVersion)
	for _, segment := range segments {
		escaped = append(escaped, escapeList(segment, pathEscape))
	}

	rawPath := strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request path")
	}

	target := *c.baseURL
	target.Path = path
	target.RawPath = rawPath
	target.RawQuery = rawQuery

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set(ApplicationIDHeader, c.applicationID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

// escapeList escapes each comma-separated part of list and keeps the commas literal.
func escapeList(list string, escape func(string) string) string {
	parts := strings.Split(list, ",")
	for i, part := range parts {
		parts[i] = escape(part)
	}
	return strings.Join(parts, ",")
}

// pathEscape escapes a path segment but keeps '*', the API's "all metrics" wildcard.
func pathEscape(segment string) string {
	return strings.ReplaceAll(url.PathEscape(segment), "%2A", "*")
}
