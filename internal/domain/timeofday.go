package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses an "HH:mm" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse time of day %q: out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

// TimeOfDayFrom extracts the wall-clock minute of t in its own location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Window is a daily restriction interval in zone-local wall-clock time.
// Start and End need not be ordered: Start > End wraps past midnight,
// Start == End means the window never matches (unrestricted).
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Contains reports whether t falls inside the window (Start <= t < End).
func (w Window) Contains(t TimeOfDay) bool {
	switch {
	case w.Start == w.End:
		return false
	case w.Start < w.End:
		return t >= w.Start && t < w.End
	default:
		return t >= w.Start || t < w.End
	}
}
