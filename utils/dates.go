package utils

import "time"

// DateLayout is the calendar-day format used across the wire and the store.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a strict zero-padded "YYYY-MM-DD" date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDates returns the 7 calendar dates of the week containing ref. Weeks
// start on Sunday (weekday index 0).
func WeekDates(ref time.Time) []time.Time {
	start := dayStart(ref).AddDate(0, 0, -int(ref.Weekday()))
	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// MonthDates returns every calendar date of the month containing ref,
// including the leap-year 29th of February.
func MonthDates(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	lastDay := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
	dates := make([]time.Time, 0, lastDay)
	for d := 0; d < lastDay; d++ {
		dates = append(dates, first.AddDate(0, 0, d))
	}
	return dates
}
