package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTime is returned when a time string is not a valid HH:MM value
	ErrInvalidTime = errors.New("invalid time")

	// ErrNoSchedule is returned when a user has no registered schedule
	ErrNoSchedule = errors.New("no schedule registered")
)

// TimeOfDay is a wall-clock minute within a day, timezone-agnostic
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a strict "HH:MM" string. Both fields must be numeric
// and in range; anything else wraps ErrInvalidTime.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: expected HH:MM, got %q", ErrInvalidTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: hour %q is not a number", ErrInvalidTime, parts[0])
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: minute %q is not a number", ErrInvalidTime, parts[1])
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidTime, hour)
	}

	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range", ErrInvalidTime, minute)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// FromTime truncates an instant to its hour and minute. The caller decides
// the zone; tick evaluation always passes UTC instants.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TotalMinutes returns minutes since midnight
func (t TimeOfDay) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

// AddMinutes shifts the time by delta minutes, wrapping around midnight in
// both directions. The result is always a valid TimeOfDay.
func (t TimeOfDay) AddMinutes(delta int) TimeOfDay {
	total := (t.TotalMinutes() + delta) % MinutesPerDay
	if total < 0 {
		total += MinutesPerDay
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// InferOffset derives a UTC offset in minutes from a claimed local wall time
// and the actual UTC wall time, normalized into (-720, 720]. A local clock
// ahead of UTC yields a positive offset.
func InferOffset(local, utc TimeOfDay) int {
	offset := local.TotalMinutes() - utc.TotalMinutes()
	if offset > HalfDayMinutes {
		offset -= MinutesPerDay
	}
	if offset <= -HalfDayMinutes {
		offset += MinutesPerDay
	}
	return offset
}

// FormatOffset renders an offset in minutes as e.g. "UTC+8:00" or "UTC-3:30"
func FormatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, minutes/60, minutes%60)
}
