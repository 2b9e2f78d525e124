package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgesofianosgr/care-track/models"
	"github.com/georgesofianosgr/care-track/repository"
	"github.com/georgesofianosgr/care-track/utils"
)

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	ErrIDRequired  = errors.New("activity and user ids are required")
)

// EntryService manages per-day completion entries.
type EntryService struct {
	entries *repository.ActivityEntryRepository
}

func NewEntryService(entries *repository.ActivityEntryRepository) *EntryService {
	return &EntryService{entries: entries}
}

// ToggleCompletion upserts the completion state of one activity on one date:
// an existing entry for (activityId, date) is updated in place, otherwise a
// new entry is created. After it returns, exactly one entry exists for the
// pair with the requested flag.
func (s *EntryService) ToggleCompletion(ctx context.Context, activityID, userID, date string, completed bool) (*models.ActivityEntry, error) {
	if activityID == "" || userID == "" {
		return nil, ErrIDRequired
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	existing, err := s.entries.FindByActivityAndDate(ctx, activityID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.entries.Update(ctx, existing.ID, map[string]any{"completed": completed})
	}

	entry := &models.ActivityEntry{
		ActivityID: activityID,
		UserID:     userID,
		Date:       date,
		Completed:  completed,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListByDate returns a user's entries for one date.
func (s *EntryService) ListByDate(ctx context.Context, userID, date string) ([]models.ActivityEntry, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return s.entries.FindByDate(ctx, date, userID)
}

// ListByRange returns a user's entries with start <= date <= end.
func (s *EntryService) ListByRange(ctx context.Context, userID, start, end string) ([]models.ActivityEntry, error) {
	if _, err := utils.ParseDate(start); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, start)
	}
	if _, err := utils.ParseDate(end); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, end)
	}
	return s.entries.FindByDateRange(ctx, start, end, userID)
}
