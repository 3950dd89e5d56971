package log

import (
	"context"
	"testing"
)

func TestRequestIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ContextKey(FieldRequestID), "req_abc123")
	if got := RequestIDFromContext(ctx); got != "req_abc123" {
		t.Errorf("RequestIDFromContext() = %q, want req_abc123", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext() on bare context = %q, want empty", got)
	}
}
