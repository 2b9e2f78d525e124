package models

import "time"

// ActivityEntry records the completion state of one activity on one calendar
// day. Date uses the fixed "YYYY-MM-DD" format. At most one entry exists per
// (activityId, date) pair.
type ActivityEntry struct {
	ID         string    `json:"id"`
	ActivityID string    `json:"activityId"`
	UserID     string    `json:"userId"`
	Date       string    `json:"date"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (e *ActivityEntry) GetID() string   { return e.ID }
func (e *ActivityEntry) SetID(id string) { e.ID = id }
