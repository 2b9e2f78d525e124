package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgesofianosgr/care-track/models"
	"github.com/georgesofianosgr/care-track/store"
)

// ActivityRepository handles persistence for activities.
type ActivityRepository struct {
	col *store.Collection[models.Activity, *models.Activity]
}

func NewActivityRepository(backend store.Backend, prefix string) *ActivityRepository {
	return &ActivityRepository{col: store.NewCollection[models.Activity](backend, prefix, "activities")}
}

// Create stamps timestamps and persists the activity.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	now := time.Now().UTC()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	if err := r.col.Create(ctx, activity); err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// FindByID returns the activity or (nil, nil) when the id is unknown.
func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*models.Activity, error) {
	return r.col.FindByID(ctx, id)
}

func (r *ActivityRepository) FindAll(ctx context.Context) ([]models.Activity, error) {
	return r.col.FindAll(ctx)
}

func (r *ActivityRepository) FindByUserID(ctx context.Context, userID string) ([]models.Activity, error) {
	return r.col.Filter(ctx, func(a *models.Activity) bool { return a.UserID == userID })
}

func (r *ActivityRepository) FindActiveByUserID(ctx context.Context, userID string) ([]models.Activity, error) {
	return r.col.Filter(ctx, func(a *models.Activity) bool {
		return a.UserID == userID && a.IsActive
	})
}

// FindByCategory filters by category; userID narrows to one user when
// non-empty.
func (r *ActivityRepository) FindByCategory(ctx context.Context, category, userID string) ([]models.Activity, error) {
	return r.col.Filter(ctx, func(a *models.Activity) bool {
		return a.Category == category && (userID == "" || a.UserID == userID)
	})
}

// Update merges patch into the activity and refreshes updatedAt. Returns
// (nil, nil) when the id is unknown.
func (r *ActivityRepository) Update(ctx context.Context, id string, patch map[string]any) (*models.Activity, error) {
	stamped := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		stamped[k] = v
	}
	stamped["updatedAt"] = time.Now().UTC()
	return r.col.Update(ctx, id, stamped)
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}
