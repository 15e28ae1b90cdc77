package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWeekday   = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidTimeOfDay = errors.New("time of day must be in HH:MM format between 00:00 and 24:00")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

// Weekday numbers days Monday=0 through Sunday=6, matching how guides
// declare weekly availability rows.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func NewWeekday(n int) (Weekday, error) {
	if n < 0 || n > 6 {
		return 0, ErrInvalidWeekday
	}
	return Weekday(n), nil
}

// WeekdayOf maps a calendar date to its Weekday. time.Weekday puts
// Sunday at 0, so the value is shifted to the Monday-based numbering.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (w Weekday) Int() int { return int(w) }

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "invalid"
	}
	return weekdayNames[w]
}

// TimeOfDay is minutes since midnight. Using a plain minute count keeps
// interval arithmetic exact and avoids timezone handling entirely, since
// availability windows and booking slots are wall-clock local times.
type TimeOfDay int

const MinutesPerDay = 1440

func NewTimeOfDay(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(minutes), nil
}

// ParseTimeOfDay accepts "HH:MM" (and "HH:MM:SS", ignoring seconds).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, ErrInvalidTimeOfDay
		}
	}
	if h < 0 || m < 0 || m > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	total := h*60 + m
	if total > MinutesPerDay {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(total), nil
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeRange is a half-open interval [start, end) of minutes within a day.
// Half-open bounds make back-to-back slots (09:00-10:00 and 10:00-11:00)
// non-overlapping without any epsilon adjustments.
type TimeRange struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if start >= end {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

func (r TimeRange) Start() TimeOfDay { return r.start }
func (r TimeRange) End() TimeOfDay   { return r.end }

func (r TimeRange) DurationMinutes() int {
	return int(r.end) - int(r.start)
}

// Overlaps reports whether two half-open intervals share any minute.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start < other.end && other.start < r.end
}

// Contains reports whether other lies entirely within r.
func (r TimeRange) Contains(other TimeRange) bool {
	return r.start <= other.start && other.end <= r.end
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.start, r.end)
}
