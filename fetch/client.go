package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
)

// Client executes HTTP requests under an immutable Configuration. It prepends
// the base URL to relative paths, merges defaults into requests it builds
// itself, and runs the interceptor chain around the transport's send/receive
// cycle. The zero concerns net/http owns — retries, caching, pooling — stay
// with the injected transport.
//
// A Client is safe for concurrent use: the configuration is immutable and the
// pipeline keeps no per-client state.
type Client struct {
	config    Configuration
	transport http.RoundTripper
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTransport sets the http.RoundTripper used to send requests.
// Defaults to http.DefaultTransport.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		if rt != nil {
			c.transport = rt
		}
	}
}

// NewClient creates a Client bound to cfg.
func NewClient(cfg Configuration, opts ...ClientOption) *Client {
	c := &Client{
		config:    cfg,
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configuration returns the configuration the client executes under.
func (c *Client) Configuration() Configuration {
	return c.config
}

// Fetch builds a request from method, path, and body, applies the configured
// defaults, and executes it through the interceptor chain. A relative path is
// resolved against the base URL; an absolute URL is used as-is. An empty
// method falls back to the defaults' method, then to GET.
func (c *Client) Fetch(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := c.buildRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, req)
}

// Do executes a caller-built request through the interceptor chain. Defaults
// and the base URL are not applied here — they only affect requests the
// client constructs itself (see Fetch).
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("fetch: nil request")
	}
	ctx := req.Context()
	return c.execute(ctx, req)
}

// buildRequest constructs an *http.Request from the configuration and the
// given parts, in that order: defaults first, request-specific values win.
func (c *Client) buildRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	defaults := c.config.defaults

	if method == "" {
		method = defaults.Method()
	}
	if method == "" {
		method = http.MethodGet
	}

	url := path
	if c.config.baseURL != "" && !isAbsoluteURL(path) {
		url = strings.TrimRight(c.config.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for k, v := range defaults.Headers() {
		req.Header.Set(k, v)
	}

	return req, nil
}

// execute runs the interceptor pipeline around a single transport round trip.
//
// Request phase: each interceptor's Request handler runs in insertion order on
// the success channel; RequestError runs instead on the failure channel and
// may recover. A short-circuit response from a Request handler skips the
// remaining request handlers and the transport entirely.
//
// Response phase: Response handlers run in insertion order on the success
// channel; ResponseError runs instead on the failure channel and may recover.
func (c *Client) execute(ctx context.Context, req *http.Request) (*http.Response, error) {
	var (
		resp *http.Response
		err  error
	)

	for _, in := range c.config.interceptors {
		if err != nil {
			if in.RequestError == nil {
				continue
			}
			req, err = in.RequestError(ctx, err)
			if err == nil && req != nil {
				ctx = req.Context()
			}
			continue
		}
		if in.Request == nil {
			continue
		}
		req, resp, err = in.Request(ctx, req)
		if err != nil {
			continue
		}
		if resp != nil {
			break
		}
		if req != nil {
			// A handler may thread values (spans, deadlines) via the
			// request context; later stages observe them.
			ctx = req.Context()
		}
	}
	if err != nil {
		return nil, err
	}

	if resp == nil {
		if req == nil {
			return nil, errors.New("fetch: request interceptor returned no request")
		}
		resp, err = c.transport.RoundTrip(req)
	}

	for _, in := range c.config.interceptors {
		if err != nil {
			if in.ResponseError == nil {
				continue
			}
			resp, err = in.ResponseError(ctx, err)
			continue
		}
		if in.Response == nil {
			continue
		}
		resp, err = in.Response(ctx, resp)
	}
	if err != nil {
		// Nobody downstream will see the response unless the error carries it.
		if resp != nil && !carriesResponse(err, resp) {
			_ = resp.Body.Close()
		}
		return nil, err
	}
	return resp, nil
}

func carriesResponse(err error, resp *http.Response) bool {
	re, ok := AsResponseError(err)
	return ok && re.Response == resp
}

func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
