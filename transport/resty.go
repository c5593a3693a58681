package transport

import (
	"bytes"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

// RestyDoer adapts a resty.Client to the Doer interface.
// The request's method, URL, headers and context are forwarded unchanged.
type RestyDoer struct {
	client *resty.Client
}

var _ Doer = (*RestyDoer)(nil)

// NewRestyDoer wraps client. A nil client yields resty.New().
// Retries are disabled on the wrapped client: every Do is one round trip.
func NewRestyDoer(client *resty.Client) *RestyDoer {
	if client == nil {
		client = resty.New()
	}
	client.SetRetryCount(0)
	return &RestyDoer{client: client}
}

// Do executes req through resty and rebuilds an *http.Response whose body
// holds the bytes resty already read.
func (d *RestyDoer) Do(req *http.Request) (*http.Response, error) {
	r := d.client.R().
		SetContext(req.Context()).
		SetHeaderMultiValues(req.Header)

	if req.Body != nil && req.Body != http.NoBody {
		body, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read request body")
		}
		r.SetBody(body)
	}

	resp, err := r.Execute(req.Method, req.URL.String())
	if err != nil {
		//nolint:wrapcheck // Transport errors are classified by the caller
		return nil, err
	}

	raw := resp.RawResponse
	out := &http.Response{
		Status:        resp.Status(),
		StatusCode:    resp.StatusCode(),
		Proto:         resp.Proto(),
		Header:        resp.Header(),
		Body:          io.NopCloser(bytes.NewReader(resp.Body())),
		ContentLength: int64(len(resp.Body())),
		Request:       req,
	}
	if raw != nil {
		out.ProtoMajor = raw.ProtoMajor
		out.ProtoMinor = raw.ProtoMinor
	}

	return out, nil
}
