// Package observability provides interfaces for logging and metrics collection
// in the go-algolia-monitoring library.
//
// # Logger Interface
//
// The Logger interface supports structured logging with key-value pairs:
//
//	client, err := monitoring.NewWithConfig(&monitoring.ClientConfig{
//		APIKey:        apiKey,
//		ApplicationID: appID,
//		Logger:        observability.NewZapLogger(zapLogger),
//	})
//
// Credentials are sent as request headers only; no logger ever receives them.
//
// # MetricsRecorder Interface
//
// The MetricsRecorder interface tracks HTTP round trips and errors.
// NewPrometheusRecorder provides a ready-made implementation:
//
//	recorder, err := observability.NewPrometheusRecorder(prometheus.DefaultRegisterer)
//
// Request paths are normalized before being recorded, so cluster names never
// become label values.
//
// # Default Behavior
//
// If no logger or metrics recorder is provided, the client uses no-op
// implementations that discard all events.
package observability
