package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the key type for values stored in a request context.
type ContextKey string

// Context keys for request-scoped values.
const (
	// CurrentUserContextKey is the context key under which the
	// authentication middleware stores the resolved *domain.User.
	CurrentUserContextKey ContextKey = "currentUser"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context, used to correlate logs
// and error responses for a single request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
