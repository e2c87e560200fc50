package context

import (
	"context"
	"testing"
)

func TestWithCorrelationID_RoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc-123")

	if got := GetCorrelationID(ctx); got != "abc-123" {
		t.Errorf("expected correlation ID 'abc-123', got %q", got)
	}
}

func TestGetCorrelationID_Missing(t *testing.T) {
	if got := GetCorrelationID(context.Background()); got != "" {
		t.Errorf("expected empty correlation ID, got %q", got)
	}
}
