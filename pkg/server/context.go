package server

import "context"

type (
	requestIDKey  struct{}
	apiVersionKey struct{}
)

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID set by the request ID
// middleware, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withAPIVersion(ctx context.Context, version string) context.Context {
	return context.WithValue(ctx, apiVersionKey{}, version)
}

// APIVersionFromContext returns the negotiated API version, DefaultAPIVersion
// when none was negotiated.
func APIVersionFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(apiVersionKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultAPIVersion
}
