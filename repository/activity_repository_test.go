package repository

import (
	"context"
	"testing"

	"github.com/georgesofianosgr/care-track/models"
	"github.com/georgesofianosgr/care-track/store"
)

func seedActivities(t *testing.T) (*ActivityRepository, context.Context) {
	t.Helper()
	ctx := context.Background()
	activities := NewActivityRepository(store.NewMemoryBackend(), "caretrack")

	fixtures := []models.Activity{
		{Name: "run", Category: "fitness", UserID: "u1", IsActive: true, Days: []int{1, 3, 5}},
		{Name: "read", Category: "mind", UserID: "u1", IsActive: false, Days: []int{0}},
		{Name: "swim", Category: "fitness", UserID: "u2", IsActive: true, Days: []int{6}},
	}
	for i := range fixtures {
		if err := activities.Create(ctx, &fixtures[i]); err != nil {
			t.Fatalf("create %s: %v", fixtures[i].Name, err)
		}
	}
	return activities, ctx
}

func TestActivityFindByUserID(t *testing.T) {
	activities, ctx := seedActivities(t)

	got, err := activities.FindByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("find by user: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 activities for u1, got %d", len(got))
	}

	active, err := activities.FindActiveByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if len(active) != 1 || active[0].Name != "run" {
		t.Fatalf("want only the active activity, got %+v", active)
	}
}

func TestActivityFindByCategory(t *testing.T) {
	activities, ctx := seedActivities(t)

	fitness, err := activities.FindByCategory(ctx, "fitness", "")
	if err != nil {
		t.Fatalf("find by category: %v", err)
	}
	if len(fitness) != 2 {
		t.Fatalf("want 2 fitness activities, got %d", len(fitness))
	}

	scoped, err := activities.FindByCategory(ctx, "fitness", "u1")
	if err != nil {
		t.Fatalf("find by category scoped: %v", err)
	}
	if len(scoped) != 1 || scoped[0].Name != "run" {
		t.Fatalf("want only u1's fitness activity, got %+v", scoped)
	}
}
