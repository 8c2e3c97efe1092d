package timetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimeRange is a start/end pair in minutes since midnight.
type TimeRange struct {
	Start int
	End   int
}

// ErrBadTime marks a time-of-day or time-range string the parser could
// not make sense of. Callers drop the owning record rather than failing.
var ErrBadTime = errors.New("malformed time of day")

// ParseTimeOfDay converts "H:MM" or "HH:MM", with an optional
// case-insensitive AM/PM marker, into minutes since midnight. Upstream
// producers emit both 24-hour and 12-hour notation interchangeably, so
// the marker is detected per call instead of picking one format.
func ParseTimeOfDay(text string) (int, error) {
	s := strings.TrimSpace(text)
	meridiem := ""
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		meridiem = upper[len(upper)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, text)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, text)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, text)
	}

	switch meridiem {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, text)
	}
	return hour*60 + minute, nil
}

// ParseTimeRange splits text on a dash into a start and end time of day.
// The whole range fails if either side fails.
func ParseTimeRange(text string) (TimeRange, error) {
	left, right, found := strings.Cut(text, "-")
	if !found {
		return TimeRange{}, fmt.Errorf("%w: range %q", ErrBadTime, text)
	}
	start, err := ParseTimeOfDay(left)
	if err != nil {
		return TimeRange{}, err
	}
	end, err := ParseTimeOfDay(right)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// FormatTimeOfDay renders minutes since midnight as "H:MM AM/PM".
// Inverse of ParseTimeOfDay for every offset in [0, 1440).
func FormatTimeOfDay(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour
	if hour == 0 {
		display = 12
	} else if hour > 12 {
		display = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}
