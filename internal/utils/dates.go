package utils

import "time"

// DateLayout is the canonical calendar-date format used across the app.
const DateLayout = "2006-01-02"

// QuizDate formats an instant as a calendar date in the given location.
func QuizDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// Today returns the current calendar date in the given location. The
// quiz day rolls over at midnight in that location regardless of the
// host timezone.
func Today(loc *time.Location) string {
	return QuizDate(time.Now(), loc)
}

// AddDays shifts a calendar date by delta days (delta may be negative).
// The arithmetic is pure calendar math in UTC; no timezone
// reinterpretation happens after parsing.
func AddDays(date string, delta int) (string, error) {
	parsed, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return "", err
	}
	return parsed.AddDate(0, 0, delta).Format(DateLayout), nil
}
