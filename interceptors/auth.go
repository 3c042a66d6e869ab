package interceptors

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/fetchkit/fetch"
)

// BearerAuth returns an interceptor that sets a Bearer Authorization header on
// every request.
func BearerAuth(token string) fetch.Interceptor {
	return fetch.Interceptor{
		Request: func(_ context.Context, req *http.Request) (*http.Request, *http.Response, error) {
			req.Header.Set("Authorization", "Bearer "+token)
			return req, nil, nil
		},
	}
}

// BasicAuth returns an interceptor that sets HTTP Basic credentials on every
// request.
func BasicAuth(username, password string) fetch.Interceptor {
	return fetch.Interceptor{
		Request: func(_ context.Context, req *http.Request) (*http.Request, *http.Response, error) {
			req.SetBasicAuth(username, password)
			return req, nil, nil
		},
	}
}

// APIKeyAuth returns an interceptor that sends an API key via the given
// header. An empty header name defaults to "X-API-Key".
func APIKeyAuth(key, header string) fetch.Interceptor {
	if header == "" {
		header = "X-API-Key"
	}
	return fetch.Interceptor{
		Request: func(_ context.Context, req *http.Request) (*http.Request, *http.Response, error) {
			req.Header.Set(header, key)
			return req, nil, nil
		},
	}
}

// JWTBearer returns a bearer interceptor that inspects the token's exp claim
// before each send and fails the request phase when the token has expired,
// instead of burning a round trip on a guaranteed 401. The signature is not
// verified; this is a client-side freshness check, not validation.
func JWTBearer(token string) fetch.Interceptor {
	parser := jwt.NewParser()
	return fetch.Interceptor{
		Request: func(_ context.Context, req *http.Request) (*http.Request, *http.Response, error) {
			claims := jwt.MapClaims{}
			if _, _, err := parser.ParseUnverified(token, claims); err != nil {
				return nil, nil, fmt.Errorf("parse bearer token: %w", err)
			}
			exp, err := claims.GetExpirationTime()
			if err != nil {
				return nil, nil, fmt.Errorf("read bearer token expiry: %w", err)
			}
			if exp != nil && exp.Before(time.Now()) {
				return nil, nil, fmt.Errorf("bearer token expired at %s: %w", exp.Format(time.RFC3339), jwt.ErrTokenExpired)
			}
			req.Header.Set("Authorization", "Bearer "+token)
			return req, nil, nil
		},
	}
}
