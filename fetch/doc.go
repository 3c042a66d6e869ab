// Package fetch provides an immutable configuration builder for HTTP clients
// plus a small client that executes requests under such a configuration.
//
// A Configuration holds a base URL, default request options, and an ordered
// chain of interceptors. Every transformation returns a new Configuration and
// leaves the receiver untouched, so configurations can be shared freely across
// goroutines and layered without surprises:
//
//	cfg := fetch.New().
//	    WithBaseURL("https://api.example.com").
//	    UseStandardConfiguration().
//	    AddInterceptor(interceptors.RequestID(""))
//
//	client := fetch.NewClient(cfg)
//	resp, err := client.Fetch(ctx, http.MethodGet, "/users/123", nil)
//
// UseStandardConfiguration installs the opinionated baseline: same-origin
// credential defaults plus promotion of non-2xx responses to a *ResponseError.
// Without it, HTTP error statuses are returned as ordinary responses and the
// caller inspects the status code manually, mirroring net/http semantics.
//
// The actual send is delegated to an http.RoundTripper; retry, caching, and
// connection management belong to that transport, not to this package.
package fetch
