package store

import (
	"context"
	"testing"
)

func TestFileBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}

	got, err := backend.Get(ctx, "caretrack_users")
	if err != nil {
		t.Fatalf("get absent: %v", err)
	}
	if got != nil {
		t.Fatalf("want nil for absent key, got %q", got)
	}

	payload := []byte(`[{"id":"1_abc"}]`)
	if err := backend.Set(ctx, "caretrack_users", payload); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err = backend.Get(ctx, "caretrack_users")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("want %q, got %q", payload, got)
	}

	if err := backend.Delete(ctx, "caretrack_users"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = backend.Get(ctx, "caretrack_users")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("key survived delete: %q", got)
	}

	// Deleting a missing key is not an error.
	if err := backend.Delete(ctx, "caretrack_users"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}
