package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ClockMinutes is a wall-clock time of day stored as minutes since midnight.
// The JSON and API boundary speaks zero-padded 24-hour "HH:MM" strings; all
// interval arithmetic happens on the integer form so comparisons stay correct
// regardless of string formatting.
type ClockMinutes int

// ParseClock parses a zero-padded 24-hour "HH:MM" string.
func ParseClock(s string) (ClockMinutes, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}
	return ClockMinutes(hour*60 + minute), nil
}

// String renders the time back to zero-padded "HH:MM".
func (c ClockMinutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// MarshalJSON renders the time as an "HH:MM" JSON string.
func (c ClockMinutes) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts an "HH:MM" JSON string.
func (c *ClockMinutes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// intersect. Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 ClockMinutes) bool {
	return s1 < e2 && e1 > s2
}
