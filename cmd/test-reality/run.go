package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lexfrei/go-algolia-monitoring/api/monitoring"
	"github.com/lexfrei/go-algolia-monitoring/observability"
)

const maxConcurrentChecks = 4

// testResult is the outcome of one endpoint check.
type testResult struct {
	Endpoint   string
	Success    bool
	Skipped    string
	Error      string
	ErrorType  string
	Issues     []string
	JSONSample string
	Duration   time.Duration
	StatusCode int
}

// check calls one endpoint and inspects the decoded record.
type check struct {
	endpoint      string
	needsClusters bool
	call          func(ctx context.Context) (any, error)
	inspect       func(record any) []string
}

func run(ctx context.Context, out io.Writer, cfg *config) error {
	zapLogger := zap.NewNop()
	if cfg.Verbose {
		var err error
		zapLogger, err = zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "failed to create logger")
		}
	}
	defer func() { _ = zapLogger.Sync() }()

	registry := prometheus.NewRegistry()
	recorder, err := observability.NewPrometheusRecorder(registry)
	if err != nil {
		return err
	}

	client, err := monitoring.NewWithConfig(&monitoring.ClientConfig{
		APIKey:        cfg.APIKey,
		ApplicationID: cfg.ApplicationID,
		BaseURL:       cfg.BaseURL,
		Timeout:       cfg.Timeout,
		UserAgent:     "go-algolia-monitoring/test-reality",
		Logger:        observability.NewZapLogger(zapLogger),
		Metrics:       recorder,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create client")
	}

	fmt.Fprintln(out, "🧪 Testing go-algolia-monitoring against reality...")
	fmt.Fprintln(out, strings.Repeat("=", 61))
	if len(cfg.Clusters) > 0 {
		fmt.Fprintf(out, "   Clusters: %s\n", strings.Join(cfg.Clusters, ", "))
	}
	fmt.Fprintln(out)

	results := runChecks(ctx, checks(client, cfg.Clusters), cfg.Clusters)

	issues := printSummary(out, results, cfg.Verbose)
	printMetrics(out, registry)

	if issues > 0 {
		return errors.Newf("found %d issues", issues)
	}
	return nil
}

func checks(client monitoring.MonitoringAPIClient, clusters []string) []check {
	return []check{
		{
			endpoint: "GET /1/status",
			call:     func(ctx context.Context) (any, error) { return client.GetStatus(ctx, clusters) },
			inspect:  inspectStatus,
		},
		{
			endpoint: "GET /1/incidents",
			call:     func(ctx context.Context) (any, error) { return client.GetIncidents(ctx, clusters) },
			inspect:  inspectIncidents,
		},
		{
			endpoint: "GET /1/inventory/servers",
			call:     func(ctx context.Context) (any, error) { return client.GetInventory(ctx, clusters) },
			inspect:  inspectInventory,
		},
		{
			endpoint:      "GET /1/latency/{clusters}",
			needsClusters: true,
			call:          func(ctx context.Context) (any, error) { return client.GetLatency(ctx, clusters) },
			inspect: func(record any) []string {
				return inspectSeries("latency", record.(*monitoring.LatencyResponse).Metrics.Latency)
			},
		},
		{
			endpoint:      "GET /1/indexing/{clusters}",
			needsClusters: true,
			call:          func(ctx context.Context) (any, error) { return client.GetIndexingTime(ctx, clusters) },
			inspect: func(record any) []string {
				return inspectSeries("indexing", record.(*monitoring.IndexingResponse).Metrics.Indexing)
			},
		},
		{
			endpoint:      "GET /1/reachability/{clusters}/probes",
			needsClusters: true,
			call:          func(ctx context.Context) (any, error) { return client.GetReachability(ctx, clusters) },
			inspect:       inspectReachability,
		},
		{
			endpoint: "GET /1/infrastructure/*/period/day",
			call: func(ctx context.Context) (any, error) {
				return client.GetInfrastructureMetrics(ctx, monitoring.MetricAll, monitoring.PeriodDay)
			},
			inspect: inspectInfrastructure,
		},
	}
}

// runChecks executes every check concurrently. Results keep the order of checks.
func runChecks(ctx context.Context, list []check, clusters []string) []testResult {
	results := make([]testResult, len(list))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentChecks)

	for i, c := range list {
		if c.needsClusters && len(clusters) == 0 {
			results[i] = testResult{Endpoint: c.endpoint, Skipped: "requires --clusters"}
			continue
		}

		i, c := i, c
		group.Go(func() error {
			results[i] = runCheck(groupCtx, c)
			return nil
		})
	}

	_ = group.Wait() //nolint:errcheck // checks never return errors

	return results
}

func runCheck(ctx context.Context, c check) testResult {
	result := testResult{Endpoint: c.endpoint}

	start := time.Now()
	record, err := c.call(ctx)
	result.Duration = time.Since(start).Round(time.Millisecond)

	if err != nil {
		result.Error = err.Error()
		result.ErrorType = errorType(err)
		if code, ok := monitoring.StatusCode(err); ok {
			result.StatusCode = code
		}
		var decodeErr *monitoring.DeserializationError
		if errors.As(err, &decodeErr) {
			result.StatusCode = http.StatusOK
			result.JSONSample = string(decodeErr.Body)
		}
		return result
	}

	result.Success = true
	result.StatusCode = http.StatusOK
	result.Issues = c.inspect(record)

	if sample, err := json.Marshal(record); err == nil {
		result.JSONSample = string(sample)
	}

	return result
}

func errorType(err error) string {
	var (
		transportErr *monitoring.TransportError
		httpErr      *monitoring.HTTPError
		decodeErr    *monitoring.DeserializationError
	)

	switch {
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &decodeErr):
		return "schema"
	default:
		return "unknown"
	}
}

func inspectStatus(record any) []string {
	resp := record.(*monitoring.StatusResponse)

	var issues []string
	if len(resp.Status) == 0 {
		issues = append(issues, "status map is empty")
	}
	for cluster, status := range resp.Status {
		if !status.Known() {
			issues = append(issues, fmt.Sprintf("%s: undocumented status %q", cluster, status))
		}
	}
	return issues
}

func inspectIncidents(record any) []string {
	resp := record.(*monitoring.IncidentsResponse)

	var issues []string
	for cluster, incidents := range resp.Incidents {
		for i, incident := range incidents {
			if !incident.V.Status.Known() {
				issues = append(issues, fmt.Sprintf("%s[%d]: undocumented status %q", cluster, i, incident.V.Status))
			}
			if i > 0 && incident.T < incidents[i-1].T {
				issues = append(issues, fmt.Sprintf("%s[%d]: incidents are not ordered by time", cluster, i))
			}
		}
	}
	return issues
}

func inspectInventory(record any) []string {
	resp := record.(*monitoring.InventoryResponse)

	if len(resp.Inventory) == 0 {
		return []string{"inventory is empty"}
	}
	return nil
}

func inspectSeries(name string, series map[string][]monitoring.DataPoint) []string {
	var issues []string
	if len(series) == 0 {
		issues = append(issues, name+" map is empty")
	}
	for cluster, points := range series {
		if len(points) == 0 {
			issues = append(issues, fmt.Sprintf("%s: no data points", cluster))
		}
	}
	return issues
}

func inspectReachability(record any) []string {
	resp := record.(*monitoring.ReachabilityResponse)

	var issues []string
	for cluster, probes := range resp.Clusters {
		if len(probes) == 0 {
			issues = append(issues, fmt.Sprintf("%s: no probes", cluster))
		}
	}
	return issues
}

func inspectInfrastructure(record any) []string {
	metrics := record.(*monitoring.InfrastructureResponse).Metrics

	series := map[string]map[string][]monitoring.DataPoint{
		"avg_build_time":     metrics.AvgBuildTime,
		"ssd_usage":          metrics.SSDUsage,
		"ram_search_usage":   metrics.RAMSearchUsage,
		"ram_indexing_usage": metrics.RAMIndexingUsage,
		"cpu_usage":          metrics.CPUUsage,
	}

	var issues []string
	for name, values := range series {
		if values == nil {
			issues = append(issues, name+" missing from * query")
		}
	}
	return issues
}

func printSummary(out io.Writer, results []testResult, verbose bool) int {
	fmt.Fprintln(out, "📊 Test Summary")
	fmt.Fprintln(out, strings.Repeat("=", 61))
	fmt.Fprintln(out)

	total := 0
	for _, result := range results {
		switch {
		case result.Skipped != "":
			fmt.Fprintf(out, "⏭️  %s (skipped: %s)\n\n", result.Endpoint, result.Skipped)
			continue
		case !result.Success:
			fmt.Fprintf(out, "❌ %s (HTTP %d, %v)\n", result.Endpoint, result.StatusCode, result.Duration)
			fmt.Fprintf(out, "   Error [%s]: %s\n", result.ErrorType, result.Error)
			total++
		case len(result.Issues) > 0:
			fmt.Fprintf(out, "⚠️  %s (HTTP %d, %v)\n", result.Endpoint, result.StatusCode, result.Duration)
		default:
			fmt.Fprintf(out, "✅ %s (HTTP %d, %v)\n", result.Endpoint, result.StatusCode, result.Duration)
		}

		if len(result.Issues) > 0 {
			fmt.Fprintf(out, "   ⚠️  Issues: %d\n", len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "      - %s\n", issue)
			}
			total += len(result.Issues)
		}

		if verbose && result.JSONSample != "" {
			fmt.Fprintf(out, "   JSON Sample:\n%s\n", indentJSON(result.JSONSample, "      "))
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, strings.Repeat("=", 61))
	if total == 0 {
		fmt.Fprintln(out, "✅ All endpoints decoded without issues.")
	} else {
		fmt.Fprintf(out, "⚠️  Found %d issues\n", total)
	}

	return total
}

// printMetrics prints the request counters collected during the run.
func printMetrics(out io.Writer, gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		return
	}

	for _, family := range families {
		if family.GetName() != "algolia_monitoring_http_requests_total" {
			continue
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "📈 Requests")
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			fmt.Fprintf(out, "   %s: %.0f\n", strings.Join(labels, " "), metric.GetCounter().GetValue())
		}
	}
}

func indentJSON(raw, indent string) string {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return indent + raw
	}

	pretty, err := json.MarshalIndent(value, indent, "  ")
	if err != nil {
		return indent + raw
	}

	const maxSample = 2000
	text := indent + string(pretty)
	if len(text) > maxSample {
		text = text[:maxSample] + "\n" + indent + "..."
	}
	return text
}
