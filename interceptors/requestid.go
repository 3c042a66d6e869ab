package interceptors

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/fetchkit/fetch"
)

// DefaultRequestIDHeader is the header stamped by RequestID when no header
// name is given.
const DefaultRequestIDHeader = "X-Request-ID"

// RequestID returns an interceptor that stamps each outgoing request with a
// fresh UUIDv4 under the given header. An empty header selects
// DefaultRequestIDHeader. A value already present on the request is kept, so
// callers can propagate an upstream ID instead.
func RequestID(header string) fetch.Interceptor {
	if header == "" {
		header = DefaultRequestIDHeader
	}
	return fetch.Interceptor{
		Request: func(_ context.Context, req *http.Request) (*http.Request, *http.Response, error) {
			if req.Header.Get(header) == "" {
				req.Header.Set(header, uuid.NewString())
			}
			return req, nil, nil
		},
	}
}
