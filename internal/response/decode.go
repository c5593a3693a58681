// Package response turns raw HTTP round trips into typed records or classified errors.
package response

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// errNoResponse reports a transport that returned neither a response nor an error.
var errNoResponse = errors.New("transport returned no response")

// Decode classifies the outcome of a round trip and, on success, decodes the
// body into a fresh *T and validates its `validate` tags.
//
//   - err != nil or nil resp → *TransportError
//   - status outside 2xx  → *HTTPError carrying status and raw body
//   - bad JSON or schema  → *DeserializationError carrying raw body
//
// Every returned error is wrapped with errorMsg. The response body is always closed.
//
// Usage:
//
//	resp, err := c.doer.Do(req)
//	return response.Decode[StatusResponse](resp, err, "failed to get status")
func Decode[T any](resp *http.Response, err error, errorMsg string) (*T, error) {
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, errors.Wrap(&TransportError{Err: err}, errorMsg)
	}
	if resp == nil {
		return nil, errors.Wrap(&TransportError{Err: errNoResponse}, errorMsg)
	}
	if resp.Body == nil {
		resp.Body = http.NoBody
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(&TransportError{Err: err}, errorMsg)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrap(&HTTPError{
			StatusCode: resp.StatusCode,
			Body:       body,
			Reason:     errorReason(body),
		}, errorMsg)
	}

	data := new(T)
	if err := json.Unmarshal(body, data); err != nil {
		return nil, errors.Wrap(&DeserializationError{Body: body, Err: err}, errorMsg)
	}

	if err := validate.Struct(data); err != nil {
		return nil, errors.Wrap(&DeserializationError{Body: body, Err: err}, errorMsg)
	}

	return data, nil
}

// errorReason extracts the human readable part of an API error body.
func errorReason(body []byte) string {
	var payload struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return ""
	}
	if payload.Reason != "" {
		return payload.Reason
	}
	return payload.Message
}
