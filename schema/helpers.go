package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayFormat is the store's date-only encoding.
const DayFormat = "2006-01-02"

// NormalizeCallStatus maps a raw status string to a known CallStatus.
// Empty or unrecognized values map to CallUnknown so distributions always
// have a well-defined bucket.
func NormalizeCallStatus(raw string) CallStatus {
	switch CallStatus(strings.TrimSpace(strings.ToLower(raw))) {
	case CallCompleted:
		return CallCompleted
	case CallMissed:
		return CallMissed
	case CallFailed:
		return CallFailed
	case CallOngoing:
		return CallOngoing
	default:
		return CallUnknown
	}
}

// ParseClockHour extracts the hour from a "HH:MM" time-of-day string.
func ParseClockHour(clock string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed time of day %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time of day %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range in %q", clock)
	}
	return hour, nil
}

// ParseDay parses a date-only string in the store's encoding.
func ParseDay(date string) (time.Time, error) {
	return time.Parse(DayFormat, strings.TrimSpace(date))
}

// DayKey formats a timestamp as a date-only bucket key.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// WeekdayName returns the display name for a weekday index (Sunday = 0).
func WeekdayName(i int) string {
	return time.Weekday(i % 7).String()
}
