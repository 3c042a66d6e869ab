// Package interceptors provides ready-made fetch.Interceptor values for the
// usual cross-cutting concerns: structured logging, request IDs, bearer/basic/
// API-key authentication, and OpenTelemetry tracing.
//
// Each constructor returns a plain fetch.Interceptor, so built-ins compose
// with application-defined interceptors through the same AddInterceptor call:
//
//	cfg := fetch.New().
//	    WithBaseURL("https://api.example.com").
//	    AddInterceptor(interceptors.RequestID("")).
//	    AddInterceptor(interceptors.BearerAuth(token)).
//	    AddInterceptor(interceptors.Logging(log)).
//	    UseStandardConfiguration()
package interceptors
