package availability

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var twentyFourHourRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// NormalizeTime converts a time-of-day string to its canonical form.
// Already-24-hour "HH:MM" input passes through unchanged; 12-hour
// "H:MM AM/PM" (or bare "H PM") input is converted and returned as a
// zero-padded "HH:00" since blocking operates at hour granularity.
// Every call site that compares times must normalize through this
// function so the stored and queried forms never drift apart.
func NormalizeTime(s string) (string, error) {
	if twentyFourHourRe.MatchString(s) {
		return s, nil
	}

	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return "", invalidInputf("unrecognized time %q", s)
	}
	clock, period := parts[0], strings.ToUpper(parts[1])
	if period != "AM" && period != "PM" {
		return "", invalidInputf("unrecognized period in time %q", s)
	}

	hourStr, minuteStr, hasMinutes := strings.Cut(clock, ":")
	hours, err := strconv.Atoi(hourStr)
	if err != nil {
		return "", invalidInputf("non-numeric hour in time %q", s)
	}
	if hasMinutes {
		if _, err := strconv.Atoi(minuteStr); err != nil {
			return "", invalidInputf("non-numeric minutes in time %q", s)
		}
	}

	if period == "PM" && hours != 12 {
		hours += 12
	}
	if period == "AM" && hours == 12 {
		hours = 0
	}
	return fmt.Sprintf("%02d:00", hours), nil
}

// minutesOfDay converts a time-of-day string to minutes from midnight.
func minutesOfDay(s string) (int, error) {
	normalized, err := NormalizeTime(s)
	if err != nil {
		return 0, err
	}
	hourStr, minuteStr, _ := strings.Cut(normalized, ":")
	hours, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, invalidInputf("non-numeric hour in time %q", s)
	}
	minutes, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, invalidInputf("non-numeric minutes in time %q", s)
	}
	return hours*60 + minutes, nil
}

// parseDate parses a "YYYY-MM-DD" calendar date.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, invalidInputf("unparseable date %q", s)
	}
	return d, nil
}

// dayOnly strips the time-of-day component for day-granularity
// comparisons.
func dayOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
