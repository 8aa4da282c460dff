package kernel

import (
	"fmt"
	"time"

	"eats/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a value object for a wall-clock time within a day, stored as
// minutes since midnight. Restaurants use a pair of these for their
// operating window, which may wrap past midnight (e.g. 18:00–02:00).
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay creates a TimeOfDay from hour and minute components.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// TimeOfDayFromString parses "HH:MM".
func TimeOfDayFromString(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	return NewTimeOfDay(hour, minute)
}

// TimeOfDayFromMinutes restores a TimeOfDay from its persisted form.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, minutesPerDay-1)
	}
	return TimeOfDay{minutes: minutes}, nil
}

// TimeOfDayFromClock extracts the wall-clock component of an instant.
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

// Minutes returns the persisted minutes-since-midnight form.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// After reports whether t is strictly later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// IsEqual compares two times of day.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}
