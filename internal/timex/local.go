package timex

import (
	"fmt"
	"time"
)

// Layouts accepted for the schedule date and time inputs.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// LocalToUTC combines a wall-clock date and time, interprets them in loc,
// and returns the corresponding UTC instant.
//
// The UTC offset applied is the one in effect in loc at that specific local
// datetime, so dates on either side of a daylight-saving transition convert
// with different offsets. Inputs that name a skipped wall-clock time (e.g.
// 02:30 during a spring-forward gap) are normalized by the time package to
// the instant the clocks jumped to.
func LocalToUTC(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	clock, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	local := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
	return local.UTC(), nil
}
