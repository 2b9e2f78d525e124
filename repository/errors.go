package repository

import "errors"

var (
	// ErrEmailTaken is returned when creating a user with an email that is
	// already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrDuplicateEntry is returned when creating a second entry for the
	// same (activityId, date) pair.
	ErrDuplicateEntry = errors.New("entry already exists for activity and date")
)
