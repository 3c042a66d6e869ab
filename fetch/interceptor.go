package fetch

import (
	"context"
	"net/http"
)

// RequestHandler runs before the transport sends. It may rewrite the request,
// short-circuit the exchange by returning a non-nil response (the transport is
// skipped and the response chain runs as usual), or fail it by returning an
// error. On the success path a handler must return a request; a nil request
// without a response or error fails the exchange before the transport.
type RequestHandler func(ctx context.Context, req *http.Request) (*http.Request, *http.Response, error)

// RequestErrorHandler runs in place of RequestHandler when an earlier stage
// failed. It may recover by returning a request, or keep the failure by
// returning an error (typically the one it was given). Recovering with a nil
// request fails the exchange before the transport.
type RequestErrorHandler func(ctx context.Context, err error) (*http.Request, error)

// ResponseHandler runs after the transport completes. It may replace the
// response or fail the exchange by returning an error.
type ResponseHandler func(ctx context.Context, resp *http.Response) (*http.Response, error)

// ResponseErrorHandler runs in place of ResponseHandler when an earlier stage
// failed. It may recover by returning a response, or keep the failure.
type ResponseErrorHandler func(ctx context.Context, err error) (*http.Response, error)

// Interceptor hooks into the request/response cycle. Every slot is optional;
// an unset slot passes the current outcome to the next interceptor untouched.
// Request/RequestError run in insertion order before send, Response/
// ResponseError in insertion order after receipt, with the error variant
// running in place of its success counterpart on the failure channel.
type Interceptor struct {
	Request       RequestHandler
	RequestError  RequestErrorHandler
	Response      ResponseHandler
	ResponseError ResponseErrorHandler
}

func rejectErrorResponse(_ context.Context, resp *http.Response) (*http.Response, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ResponseError{Response: resp}
	}
	return resp, nil
}
