package services

import (
	"context"
	"errors"

	"github.com/georgesofianosgr/care-track/models"
	"github.com/georgesofianosgr/care-track/repository"
)

var (
	ErrNameRequired = errors.New("activity name is required")
	ErrInvalidDay   = errors.New("days must be weekday indexes 0-6")
)

// ActivityInput carries caller-supplied fields for a new activity.
type ActivityInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"isActive"`
	Days        []int  `json:"days"`
}

// ActivityUpdate carries partial fields for an update; nil means unchanged.
type ActivityUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"isActive"`
	Days        *[]int  `json:"days"`
}

// ActivityService manages activities and their cascade to entries.
type ActivityService struct {
	activities *repository.ActivityRepository
	entries    *repository.ActivityEntryRepository
}

func NewActivityService(activities *repository.ActivityRepository, entries *repository.ActivityEntryRepository) *ActivityService {
	return &ActivityService{activities: activities, entries: entries}
}

func validDays(days []int) bool {
	for _, d := range days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}

// Create validates the input and persists a new activity for the user.
// IsActive defaults to true when omitted. An empty Days slice is allowed; the
// activity is simply never scheduled.
func (s *ActivityService) Create(ctx context.Context, userID string, input ActivityInput) (*models.Activity, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if !validDays(input.Days) {
		return nil, ErrInvalidDay
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	days := input.Days
	if days == nil {
		days = []int{}
	}

	activity := &models.Activity{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Color:       input.Color,
		Icon:        input.Icon,
		UserID:      userID,
		IsActive:    active,
		Days:        days,
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Get returns the activity or (nil, nil) when the id is unknown.
func (s *ActivityService) Get(ctx context.Context, id string) (*models.Activity, error) {
	return s.activities.FindByID(ctx, id)
}

func (s *ActivityService) ListByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	return s.activities.FindByUserID(ctx, userID)
}

func (s *ActivityService) ListActiveByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	return s.activities.FindActiveByUserID(ctx, userID)
}

func (s *ActivityService) ListByCategory(ctx context.Context, category, userID string) ([]models.Activity, error) {
	return s.activities.FindByCategory(ctx, category, userID)
}

// Update applies the non-nil fields of input. Returns (nil, nil) when the id
// is unknown.
func (s *ActivityService) Update(ctx context.Context, id string, input ActivityUpdate) (*models.Activity, error) {
	patch := map[string]any{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		patch["name"] = *input.Name
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}
	if input.Category != nil {
		patch["category"] = *input.Category
	}
	if input.Color != nil {
		patch["color"] = *input.Color
	}
	if input.Icon != nil {
		patch["icon"] = *input.Icon
	}
	if input.IsActive != nil {
		patch["isActive"] = *input.IsActive
	}
	if input.Days != nil {
		if !validDays(*input.Days) {
			return nil, ErrInvalidDay
		}
		patch["days"] = *input.Days
	}

	return s.activities.Update(ctx, id, patch)
}

// DeleteWithEntries removes the activity's entries and then the activity
// itself. The cascade is explicit: entries are deleted first so none is
// orphaned if the activity delete fails. Reports whether the activity
// existed.
func (s *ActivityService) DeleteWithEntries(ctx context.Context, id string) (bool, error) {
	entries, err := s.entries.FindByActivityID(ctx, id)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if _, err := s.entries.Delete(ctx, entry.ID); err != nil {
			return false, err
		}
	}
	return s.activities.Delete(ctx, id)
}
