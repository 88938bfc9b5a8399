// Package domain contains core domain types for the sleep calculator.
package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes on a 24-hour clock.
const MinutesPerDay = 24 * 60

// ErrInvalidClock is returned when a string is not a 24-hour H:MM or HH:MM time.
var ErrInvalidClock = errors.New("invalid clock time")

// ClockTime is a time of day expressed as minutes since midnight.
// Valid values are in [0, MinutesPerDay).
type ClockTime int

// NewClockTime builds a ClockTime from an hour and minute pair.
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidClock, hour, minute)
	}
	return ClockTime(hour*60 + minute), nil
}

// ParseClock parses a 24-hour time such as "07:00", "7:00" or "23:45".
func ParseClock(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := parseField(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := parseField(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return NewClockTime(hour, minute)
}

// parseField accepts one or two ASCII digits and nothing else.
func parseField(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, ErrInvalidClock
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, ErrInvalidClock
		}
	}
	return strconv.Atoi(s)
}

// ClockFromTime returns the wall-clock time of t in its own location.
// Seconds are dropped.
func ClockFromTime(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

// Hour returns the hour in 0..23.
func (c ClockTime) Hour() int { return int(c.normalize()) / 60 }

// Minute returns the minute in 0..59.
func (c ClockTime) Minute() int { return int(c.normalize()) % 60 }

// Add returns c shifted by the given number of minutes, wrapping around midnight.
func (c ClockTime) Add(minutes int) ClockTime {
	return (c + ClockTime(minutes)).normalize()
}

// Sub returns c shifted back by the given number of minutes.
func (c ClockTime) Sub(minutes int) ClockTime {
	return c.Add(-minutes)
}

// String renders the time on a 12-hour clock, e.g. "7:45 AM" or "12:05 PM".
func (c ClockTime) String() string {
	hour := c.Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute(), period)
}

// Format24 renders the time as zero-padded HH:MM.
func (c ClockTime) Format24() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) normalize() ClockTime {
	m := int(c) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return ClockTime(m)
}
