package services

import (
	"context"
	"errors"
	"testing"

	"github.com/georgesofianosgr/care-track/repository"
	"github.com/georgesofianosgr/care-track/store"
)

func newEntryService() (*EntryService, *repository.ActivityEntryRepository) {
	entries := repository.NewActivityEntryRepository(store.NewMemoryBackend(), "caretrack")
	return NewEntryService(entries), entries
}

func TestToggleIdempotence(t *testing.T) {
	ctx := context.Background()
	svc, entries := newEntryService()

	for i := 0; i < 2; i++ {
		if _, err := svc.ToggleCompletion(ctx, "a1", "u1", "2024-02-15", true); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}

	all, err := entries.FindByActivityID(ctx, "a1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("want exactly one entry, got %d", len(all))
	}
	if !all[0].Completed {
		t.Fatal("entry should be completed")
	}
}

func TestToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, entries := newEntryService()

	first, err := svc.ToggleCompletion(ctx, "a1", "u1", "2024-02-15", true)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	second, err := svc.ToggleCompletion(ctx, "a1", "u1", "2024-02-15", false)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}

	if second.ID != first.ID {
		t.Fatal("toggle off replaced the entry instead of updating it")
	}
	if second.Completed {
		t.Fatal("entry should be uncompleted")
	}

	all, err := entries.FindByActivityID(ctx, "a1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("want exactly one entry, got %d", len(all))
	}
}

func TestToggleRejectsMalformedDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEntryService()

	for _, date := range []string{"2024-2-5", "15/02/2024", "yesterday", ""} {
		if _, err := svc.ToggleCompletion(ctx, "a1", "u1", date, true); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("date %q: want ErrInvalidDate, got %v", date, err)
		}
	}
}

func TestTogglePreservesOtherFields(t *testing.T) {
	ctx := context.Background()
	svc, entries := newEntryService()

	created, err := svc.ToggleCompletion(ctx, "a1", "u1", "2024-02-15", true)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	updated, err := svc.ToggleCompletion(ctx, "a1", "u1", "2024-02-15", false)
	if err != nil {
		t.Fatalf("toggle again: %v", err)
	}
	if updated.ActivityID != "a1" || updated.UserID != "u1" || updated.Date != "2024-02-15" {
		t.Fatalf("fields lost on update: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("createdAt changed on update")
	}

	got, err := entries.FindByActivityAndDate(ctx, "a1", "2024-02-15")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.Completed {
		t.Fatalf("unexpected persisted state: %+v", got)
	}
}
