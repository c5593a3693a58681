package response

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// TransportError reports that the round trip itself failed: DNS, refused
// connection, timeout, cancelled context, or a body that could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError reports a non-2xx response.
// Reason holds the "reason" (or "message") field of the error body when the API sent one.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Reason     string
}

func (e *HTTPError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("API error: status=%d reason=%q", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("API error: status=%d", e.StatusCode)
}

// DeserializationError reports a 2xx body that does not match the expected schema,
// either because it is not valid JSON for the target type or because required
// fields are missing.
type DeserializationError struct {
	Body []byte
	Err  error
}

func (e *DeserializationError) Error() string {
	return "failed to decode response: " + e.Err.Error()
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// Kind names the error class of err for metrics labels.
func Kind(err error) string {
	var (
		transportErr *TransportError
		httpErr      *HTTPError
		decodeErr    *DeserializationError
	)

	switch {
	case errors.As(err, &transportErr):
		return "TransportError"
	case errors.As(err, &httpErr):
		return "HTTPError"
	case errors.As(err, &decodeErr):
		return "DeserializationError"
	default:
		return "Unknown"
	}
}
