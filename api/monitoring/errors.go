package monitoring

import (
	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-algolia-monitoring/internal/response"
)

// Error classes returned by every API method. Use errors.As to branch on them:
//
//	var httpErr *monitoring.HTTPError
//	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
//	    // ...
//	}
type (
	// TransportError reports a failed round trip (DNS, connection, timeout, cancellation).
	TransportError = response.TransportError
	// HTTPError reports a non-2xx response with its status code and raw body.
	HTTPError = response.HTTPError
	// DeserializationError reports a 2xx body that does not match the expected schema.
	DeserializationError = response.DeserializationError
)

var (
	// ErrMissingCredentials is returned by New and NewWithConfig when the API key
	// or the application ID is empty.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrInvalidParameter is returned before any I/O when an argument cannot be sent,
	// e.g. a blank cluster name or an unknown Metric.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// StatusCode returns the HTTP status carried by err when it is (or wraps) an HTTPError.
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}
