package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgesofianosgr/care-track/models"
	"github.com/georgesofianosgr/care-track/store"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	col *store.Collection[models.User, *models.User]
}

func NewUserRepository(backend store.Backend, prefix string) *UserRepository {
	return &UserRepository{col: store.NewCollection[models.User](backend, prefix, "users")}
}

// Create stamps timestamps and persists the user. The email must not already
// be registered.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := r.col.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByID returns the user or (nil, nil) when the id is unknown.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.col.FindByID(ctx, id)
}

// FindByEmail returns the first user with the given email, or (nil, nil).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.col.FindOne(ctx, func(u *models.User) bool { return u.Email == email })
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.col.FindAll(ctx)
}

// Update merges patch into the user and refreshes updatedAt. Returns
// (nil, nil) when the id is unknown.
func (r *UserRepository) Update(ctx context.Context, id string, patch map[string]any) (*models.User, error) {
	stamped := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		stamped[k] = v
	}
	stamped["updatedAt"] = time.Now().UTC()
	return r.col.Update(ctx, id, stamped)
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}
