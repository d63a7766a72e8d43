package datemath

import (
	"errors"
	"fmt"
	"time"
)

// TimeOfDayLayout is the wall-clock "HH:MM" format used by habit reset policies.
const TimeOfDayLayout = "15:04"

var ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM")

// FormatTimeOfDay renders t as zero-padded 24h "HH:MM" in t's own location.
func FormatTimeOfDay(t time.Time) string {
	return t.Format(TimeOfDayLayout)
}

// ParseTimeOfDay validates an "HH:MM" string and returns its components.
func ParseTimeOfDay(value string) (hour, minute int, err error) {
	if len(value) != len(TimeOfDayLayout) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	t, err := time.Parse(TimeOfDayLayout, value)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	return t.Hour(), t.Minute(), nil
}

// ValidTimeOfDay reports whether value is a well-formed "HH:MM".
func ValidTimeOfDay(value string) bool {
	_, _, err := ParseTimeOfDay(value)
	return err == nil
}
