package observability

import "time"

// MetricsRecorder is an interface for recording client metrics.
// Implementations can use any metrics library (Prometheus, StatsD, etc.).
type MetricsRecorder interface {
	// RecordHTTPRequest records a completed round trip with method, normalized path,
	// status code and duration.
	RecordHTTPRequest(method, path string, statusCode int, duration time.Duration)

	// RecordError records one failed client call, e.g. ("get_status", "HTTPError").
	RecordError(operation, errorType string)
}

type noopMetricsRecorder struct{}

// NoopMetricsRecorder returns a metrics recorder that does nothing.
// It is used when ClientConfig.Metrics is nil.
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NoopMetricsRecorder() MetricsRecorder {
	return &noopMetricsRecorder{}
}

func (m *noopMetricsRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}
func (m *noopMetricsRecorder) RecordError(string, string)                           {}
