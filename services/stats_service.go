package services

import (
	"context"
	"math"
	"time"

	"github.com/georgesofianosgr/care-track/repository"
	"github.com/georgesofianosgr/care-track/utils"
)

// ActivityStats is the scheduled/completed breakdown for one activity over a
// reporting period.
type ActivityStats struct {
	ActivityID string `json:"activityId"`
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	Scheduled  int    `json:"scheduled"`
	Percentage int    `json:"percentage"`
}

type WeeklyReport struct {
	WeekStart  string          `json:"weekStart"`
	WeekEnd    string          `json:"weekEnd"`
	Activities []ActivityStats `json:"activities"`
}

type MonthlyReport struct {
	Month      string          `json:"month"`
	Activities []ActivityStats `json:"activities"`
}

// StatsService derives completion reports from activities and entries. It is
// read only and recomputes from scratch on every call; data volumes per user
// are small enough that no indexing or caching is kept.
type StatsService struct {
	activities *repository.ActivityRepository
	entries    *repository.ActivityEntryRepository
}

func NewStatsService(activities *repository.ActivityRepository, entries *repository.ActivityEntryRepository) *StatsService {
	return &StatsService{activities: activities, entries: entries}
}

// Weekly reports on the week containing ref. Weeks start on Sunday.
func (s *StatsService) Weekly(ctx context.Context, userID string, ref time.Time) (*WeeklyReport, error) {
	dates := utils.WeekDates(ref)
	stats, err := s.statsFor(ctx, userID, dates)
	if err != nil {
		return nil, err
	}
	return &WeeklyReport{
		WeekStart:  utils.FormatDate(dates[0]),
		WeekEnd:    utils.FormatDate(dates[len(dates)-1]),
		Activities: stats,
	}, nil
}

// Monthly reports on the calendar month containing ref.
func (s *StatsService) Monthly(ctx context.Context, userID string, ref time.Time) (*MonthlyReport, error) {
	dates := utils.MonthDates(ref)
	stats, err := s.statsFor(ctx, userID, dates)
	if err != nil {
		return nil, err
	}
	return &MonthlyReport{
		Month:      ref.Format("2006-01"),
		Activities: stats,
	}, nil
}

func (s *StatsService) statsFor(ctx context.Context, userID string, dates []time.Time) ([]ActivityStats, error) {
	activities, err := s.activities.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := utils.FormatDate(dates[0])
	end := utils.FormatDate(dates[len(dates)-1])
	entries, err := s.entries.FindByDateRange(ctx, start, end, userID)
	if err != nil {
		return nil, err
	}

	// completed entries indexed by (activityId, date)
	done := map[string]map[string]bool{}
	for _, e := range entries {
		if !e.Completed {
			continue
		}
		if done[e.ActivityID] == nil {
			done[e.ActivityID] = map[string]bool{}
		}
		done[e.ActivityID][e.Date] = true
	}

	stats := make([]ActivityStats, 0, len(activities))
	for _, activity := range activities {
		scheduled := 0
		completed := 0
		for _, d := range dates {
			if activity.ScheduledOn(int(d.Weekday())) {
				scheduled++
			}
			if done[activity.ID][utils.FormatDate(d)] {
				completed++
			}
		}
		stats = append(stats, ActivityStats{
			ActivityID: activity.ID,
			Name:       activity.Name,
			Completed:  completed,
			Scheduled:  scheduled,
			Percentage: percentage(completed, scheduled),
		})
	}
	return stats, nil
}

// percentage rounds half-up to the nearest integer; zero scheduled days yield
// zero rather than a division by zero.
func percentage(completed, scheduled int) int {
	if scheduled <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(scheduled) * 100))
}
