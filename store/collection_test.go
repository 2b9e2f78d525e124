package store

import (
	"context"
	"testing"
)

type note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

func (n *note) GetID() string   { return n.ID }
func (n *note) SetID(id string) { n.ID = id }

func newNotes() *Collection[note, *note] {
	return NewCollection[note](NewMemoryBackend(), "test", "notes")
}

func TestCreateAssignsIDAndPersists(t *testing.T) {
	ctx := context.Background()
	col := newNotes()

	n := &note{Title: "water plants"}
	if err := col.Create(ctx, n); err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.ID == "" {
		t.Fatal("expected a generated id")
	}

	got, err := col.FindByID(ctx, n.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.Title != "water plants" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestFindAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	col := newNotes()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		if err := col.Create(ctx, &note{Title: title}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	all, err := col.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != len(titles) {
		t.Fatalf("want %d records, got %d", len(titles), len(all))
	}
	for i, title := range titles {
		if all[i].Title != title {
			t.Fatalf("position %d: want %q, got %q", i, title, all[i].Title)
		}
	}
}

func TestUpdateMergesShallowly(t *testing.T) {
	ctx := context.Background()
	col := newNotes()

	n := &note{Title: "stretch", Done: false}
	if err := col.Create(ctx, n); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := col.Update(ctx, n.ID, map[string]any{"done": true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated record")
	}
	if !updated.Done {
		t.Fatal("patched field not applied")
	}
	if updated.Title != "stretch" {
		t.Fatalf("unpatched field lost: %q", updated.Title)
	}
}

func TestUpdateUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	col := newNotes()

	if err := col.Create(ctx, &note{Title: "read"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := col.Update(ctx, "nonexistent", map[string]any{"done": true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != nil {
		t.Fatalf("want nil for unknown id, got %+v", updated)
	}

	all, err := col.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 1 || all[0].Done {
		t.Fatalf("collection changed: %+v", all)
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	ctx := context.Background()
	col := newNotes()

	n := &note{Title: "journal"}
	if err := col.Create(ctx, n); err != nil {
		t.Fatalf("create: %v", err)
	}

	removed, err := col.Delete(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	if removed {
		t.Fatal("unknown id reported as removed")
	}

	removed, err = col.Delete(ctx, n.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !removed {
		t.Fatal("existing id not reported as removed")
	}

	got, err := col.FindByID(ctx, n.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Fatalf("record still present: %+v", got)
	}
}
