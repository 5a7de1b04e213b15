package sleepcycle

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of one clock day.
const MinutesPerDay = 24 * 60

// Clock is a time of day in minutes since local midnight, in [0, 1440).
type Clock int

// TimeFormat selects how a Clock is displayed.
type TimeFormat string

const (
	Format24h TimeFormat = "24h"
	Format12h TimeFormat = "12h"
)

// ParseTimeFormat accepts "24h" or "12h". An empty string yields 24h.
func ParseTimeFormat(s string) (TimeFormat, error) {
	switch TimeFormat(strings.TrimSpace(s)) {
	case "", Format24h:
		return Format24h, nil
	case Format12h:
		return Format12h, nil
	default:
		return "", fmt.Errorf("%w: %q, expected 12h or 24h", ErrUnknownFormat, s)
	}
}

// ParseClock parses an "HH:MM" string. The hour may have one or two digits,
// the minute must have exactly two.
func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeFormat, s)
	}

	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidTimeFormat, s)
	}
	return Clock(h*60 + m), nil
}

// ClockOf wraps any minute count, including negative ones, into a time of day.
func ClockOf(minutes int) Clock {
	return Clock(((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay)
}

func (c Clock) Minutes() int { return int(c) }
func (c Clock) Hour() int    { return int(c) / 60 }
func (c Clock) Minute() int  { return int(c) % 60 }

// Format renders the clock as "HH:MM" (24h) or "H:MM AM/PM" (12h, midnight
// and noon shown as 12).
func (c Clock) Format(f TimeFormat) string {
	h, m := c.Hour(), c.Minute()
	if f != Format12h {
		return fmt.Sprintf("%02d:%02d", h, m)
	}

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, suffix)
}

func (c Clock) String() string {
	return c.Format(Format24h)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
