package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgesofianosgr/care-track/models"
	"github.com/georgesofianosgr/care-track/store"
)

// ActivityEntryRepository handles persistence for per-day completion entries.
type ActivityEntryRepository struct {
	col *store.Collection[models.ActivityEntry, *models.ActivityEntry]
}

func NewActivityEntryRepository(backend store.Backend, prefix string) *ActivityEntryRepository {
	return &ActivityEntryRepository{col: store.NewCollection[models.ActivityEntry](backend, prefix, "activityEntries")}
}

// Create stamps timestamps and persists the entry. At most one entry may
// exist per (activityId, date); a duplicate is rejected with
// ErrDuplicateEntry.
func (r *ActivityEntryRepository) Create(ctx context.Context, entry *models.ActivityEntry) error {
	existing, err := r.FindByActivityAndDate(ctx, entry.ActivityID, entry.Date)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateEntry
	}

	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if err := r.col.Create(ctx, entry); err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// FindByID returns the entry or (nil, nil) when the id is unknown.
func (r *ActivityEntryRepository) FindByID(ctx context.Context, id string) (*models.ActivityEntry, error) {
	return r.col.FindByID(ctx, id)
}

func (r *ActivityEntryRepository) FindAll(ctx context.Context) ([]models.ActivityEntry, error) {
	return r.col.FindAll(ctx)
}

func (r *ActivityEntryRepository) FindByUserID(ctx context.Context, userID string) ([]models.ActivityEntry, error) {
	return r.col.Filter(ctx, func(e *models.ActivityEntry) bool { return e.UserID == userID })
}

func (r *ActivityEntryRepository) FindByActivityID(ctx context.Context, activityID string) ([]models.ActivityEntry, error) {
	return r.col.Filter(ctx, func(e *models.ActivityEntry) bool { return e.ActivityID == activityID })
}

// FindByDate returns the entries for an exact date; userID narrows to one
// user when non-empty.
func (r *ActivityEntryRepository) FindByDate(ctx context.Context, date, userID string) ([]models.ActivityEntry, error) {
	return r.col.Filter(ctx, func(e *models.ActivityEntry) bool {
		return e.Date == date && (userID == "" || e.UserID == userID)
	})
}

// FindByDateRange returns the entries with start <= date <= end. Plain string
// comparison is correct because dates are fixed-width zero-padded
// "YYYY-MM-DD".
func (r *ActivityEntryRepository) FindByDateRange(ctx context.Context, start, end, userID string) ([]models.ActivityEntry, error) {
	return r.col.Filter(ctx, func(e *models.ActivityEntry) bool {
		return e.Date >= start && e.Date <= end && (userID == "" || e.UserID == userID)
	})
}

// FindByActivityAndDate returns the single entry for the pair, or (nil, nil).
func (r *ActivityEntryRepository) FindByActivityAndDate(ctx context.Context, activityID, date string) (*models.ActivityEntry, error) {
	return r.col.FindOne(ctx, func(e *models.ActivityEntry) bool {
		return e.ActivityID == activityID && e.Date == date
	})
}

// CompletedCount counts completed entries for an activity, optionally bounded
// to an inclusive date range when both start and end are non-empty.
func (r *ActivityEntryRepository) CompletedCount(ctx context.Context, activityID, start, end string) (int, error) {
	entries, err := r.col.Filter(ctx, func(e *models.ActivityEntry) bool {
		if e.ActivityID != activityID || !e.Completed {
			return false
		}
		if start != "" && end != "" {
			return e.Date >= start && e.Date <= end
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Update merges patch into the entry and refreshes updatedAt. Returns
// (nil, nil) when the id is unknown.
func (r *ActivityEntryRepository) Update(ctx context.Context, id string, patch map[string]any) (*models.ActivityEntry, error) {
	stamped := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		stamped[k] = v
	}
	stamped["updatedAt"] = time.Now().UTC()
	return r.col.Update(ctx, id, stamped)
}

func (r *ActivityEntryRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}
