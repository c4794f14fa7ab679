package telemetry

import (
	"context"
	"testing"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := Setup(context.Background(), "  ", "segmentvet-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export happens.
	shutdown, err := Setup(context.Background(), "http://192.0.2.1:4318", "segmentvet-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
