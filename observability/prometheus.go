package observability

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "algolia_monitoring"

// PrometheusRecorder is a MetricsRecorder backed by Prometheus collectors.
type PrometheusRecorder struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewPrometheusRecorder creates the collectors and registers them on reg.
// A nil reg registers on prometheus.DefaultRegisterer.
//
// Registered series:
//   - algolia_monitoring_http_requests_total{method,path,status}
//   - algolia_monitoring_http_request_duration_seconds{method,path}
//   - algolia_monitoring_errors_total{operation,type}
//
// errors_total is incremented once per failed client call. operation is the
// method (get_status, get_incidents, ...) and type is TransportError, HTTPError
// or DeserializationError.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &PrometheusRecorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP round trips to the Algolia Monitoring API.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP round trips to the Algolia Monitoring API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "errors_total",
			Help:      "Number of failed client operations by error type.",
		}, []string{"operation", "type"}),
	}

	for _, c := range []prometheus.Collector{r.requests, r.duration, r.errors} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return r, nil
}

// RecordHTTPRequest implements MetricsRecorder.
func (r *PrometheusRecorder) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	r.requests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	r.duration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordError implements MetricsRecorder.
func (r *PrometheusRecorder) RecordError(operation, errorType string) {
	r.errors.WithLabelValues(operation, errorType).Inc()
}
