package services

import (
	"context"
	"errors"
	"strings"

	"github.com/georgesofianosgr/care-track/models"
	"github.com/georgesofianosgr/care-track/repository"
	"github.com/georgesofianosgr/care-track/store"
)

var ErrInvalidEmail = errors.New("invalid email address")

// AuthService resolves users by email and tracks the active session pointer
// in the backing store.
type AuthService struct {
	users      *repository.UserRepository
	backend    store.Backend
	sessionKey string
}

func NewAuthService(users *repository.UserRepository, backend store.Backend, prefix string) *AuthService {
	return &AuthService{
		users:      users,
		backend:    backend,
		sessionKey: prefix + "_current_user_id",
	}
}

// LoginWithEmail resolves a user by email, creating one with the given names
// on first login, and persists the session pointer.
func (s *AuthService) LoginWithEmail(ctx context.Context, email, firstName, lastName string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &models.User{
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
		}
		if err := s.users.Create(ctx, user); err != nil {
			// A concurrent login may have created the user first.
			if errors.Is(err, repository.ErrEmailTaken) {
				if user, err = s.users.FindByEmail(ctx, email); err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
	}

	if err := s.backend.Set(ctx, s.sessionKey, []byte(user.ID)); err != nil {
		return nil, err
	}
	return user, nil
}

// CurrentUser resolves the session pointer to a user. A missing pointer means
// logged out. A pointer to a missing user record is stale: it is cleared and
// reported as logged out rather than as an error.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := s.backend.Get(ctx, s.sessionKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	user, err := s.users.FindByID(ctx, string(raw))
	if err != nil {
		return nil, err
	}
	if user == nil {
		if err := s.backend.Delete(ctx, s.sessionKey); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return user, nil
}

// Logout clears the session pointer.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.backend.Delete(ctx, s.sessionKey)
}
