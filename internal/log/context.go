package log

import "context"

// ContextKey is the type used for request-scoped values carried in a
// context, such as the request ID attached by the HTTP middleware.
type ContextKey string

// RequestIDFromContext returns the request ID attached by the HTTP
// middleware, or "" when the context carries none.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKey(FieldRequestID)).(string); ok {
		return id
	}
	return ""
}
