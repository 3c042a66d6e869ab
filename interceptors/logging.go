package interceptors

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kbukum/fetchkit/fetch"
)

// Logging returns an interceptor that logs the request/response cycle with the
// given zerolog logger: requests at debug, responses at debug with the status
// code, and failures on either channel at warn. Errors are re-raised untouched
// so logging never changes the outcome of an exchange.
func Logging(log zerolog.Logger) fetch.Interceptor {
	return fetch.Interceptor{
		Request: func(_ context.Context, req *http.Request) (*http.Request, *http.Response, error) {
			log.Debug().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Msg("request")
			return req, nil, nil
		},
		RequestError: func(_ context.Context, err error) (*http.Request, error) {
			log.Warn().Err(err).Msg("request failed before send")
			return nil, err
		},
		Response: func(_ context.Context, resp *http.Response) (*http.Response, error) {
			log.Debug().
				Int("status", resp.StatusCode).
				Msg("response")
			return resp, nil
		},
		ResponseError: func(_ context.Context, err error) (*http.Response, error) {
			evt := log.Warn().Err(err)
			if re, ok := fetch.AsResponseError(err); ok && re.Response != nil {
				evt = evt.Int("status", re.Response.StatusCode)
			}
			evt.Msg("response failed")
			return nil, err
		},
	}
}
