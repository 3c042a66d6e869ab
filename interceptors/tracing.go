package interceptors

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/fetchkit/fetch"
)

const tracerName = "github.com/kbukum/fetchkit/interceptors"

// TracingOption configures the Tracing interceptor.
type TracingOption func(*tracingConfig)

type tracingConfig struct {
	provider   trace.TracerProvider
	propagator propagation.TextMapPropagator
}

// WithTracerProvider sets the provider used to create the tracer. Defaults to
// the globally registered provider, so applications that install one at
// startup need no extra wiring.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *tracingConfig) {
		if tp != nil {
			c.provider = tp
		}
	}
}

// WithPropagator sets the propagator used to inject trace context into
// request headers. Defaults to W3C TraceContext.
func WithPropagator(p propagation.TextMapPropagator) TracingOption {
	return func(c *tracingConfig) {
		if p != nil {
			c.propagator = p
		}
	}
}

// Tracing returns an interceptor that opens a client span per exchange, named
// spanName, and injects the trace context into the outgoing headers. The span
// ends when the response (or failure) passes back through this interceptor,
// recording the status code, or the error, on the way out.
//
// The span travels via the request context, so Tracing should be added before
// interceptors that want to see it and the handlers between the two phases
// must preserve the context they are given.
func Tracing(spanName string, opts ...TracingOption) fetch.Interceptor {
	cfg := tracingConfig{
		propagator: propagation.TraceContext{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	tracer := func() trace.Tracer {
		if cfg.provider != nil {
			return cfg.provider.Tracer(tracerName)
		}
		return otel.Tracer(tracerName)
	}

	return fetch.Interceptor{
		Request: func(ctx context.Context, req *http.Request) (*http.Request, *http.Response, error) {
			ctx, _ = tracer().Start(ctx, spanName,
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("url.full", req.URL.String()),
				),
			)
			cfg.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))
			return req.WithContext(ctx), nil, nil
		},
		Response: func(ctx context.Context, resp *http.Response) (*http.Response, error) {
			span := trace.SpanFromContext(ctx)
			span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
			if resp.StatusCode >= 400 {
				span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
			}
			span.End()
			return resp, nil
		},
		ResponseError: func(ctx context.Context, err error) (*http.Response, error) {
			span := trace.SpanFromContext(ctx)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			return nil, err
		},
	}
}
