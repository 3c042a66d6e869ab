package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

// ResponseError is the failure raised by the RejectErrorResponses interceptor:
// an HTTP exchange completed, but with a status outside [200, 299]. It carries
// the full response so callers can inspect status, headers, and body instead
// of only a generic error. The body is not consumed; the caller that handles
// the error owns closing it.
type ResponseError struct {
	// Response is the offending response, body unread.
	Response *http.Response
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if e.Response == nil {
		return "fetch: response rejected"
	}
	return fmt.Sprintf("fetch: HTTP %d %s", e.Response.StatusCode, http.StatusText(e.Response.StatusCode))
}

// IsResponseError reports whether err is (or wraps) a *ResponseError.
func IsResponseError(err error) bool {
	var e *ResponseError
	return errors.As(err, &e)
}

// AsResponseError extracts a *ResponseError from err, if any.
func AsResponseError(err error) (*ResponseError, bool) {
	var e *ResponseError
	ok := errors.As(err, &e)
	return e, ok
}
