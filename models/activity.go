package models

import "time"

// Activity is a recurring habit with a weekly schedule.
// Days holds weekday indexes 0-6 (Sunday to Saturday); an activity with an
// empty Days slice is never scheduled.
type Activity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon,omitempty"`
	UserID      string    `json:"userId"`
	IsActive    bool      `json:"isActive"`
	Days        []int     `json:"days"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *Activity) GetID() string   { return a.ID }
func (a *Activity) SetID(id string) { a.ID = id }

// ScheduledOn reports whether the activity is scheduled on the given weekday.
func (a *Activity) ScheduledOn(weekday int) bool {
	for _, d := range a.Days {
		if d == weekday {
			return true
		}
	}
	return false
}
