package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/FSM-SchedulingService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при неизвестном дне недели
	ErrInvalidWeekday = errors.New("domain: invalid weekday")

	// ErrInvalidWindow возвращается при некорректном окне доступности
	ErrInvalidWindow = errors.New("domain: invalid availability window")
)

// Weekday is the single symbolic day-of-week representation used by the
// engine. External inputs (numeric indexes, time.Weekday) are converted
// at the boundary and never propagated as an ambiguous union
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekdayFromTime converts a time.Weekday to the symbolic Weekday
func WeekdayFromTime(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ParseWeekday accepts a weekday name ("monday") or a legacy numeric
// index ("0".."6", Sunday-based) and returns the symbolic Weekday
func ParseWeekday(s string) (Weekday, error) {
	if idx, err := strconv.Atoi(s); err == nil {
		if idx < 0 || idx > 6 {
			return "", fmt.Errorf("%w: index %d", ErrInvalidWeekday, idx)
		}
		// Индексация с воскресенья, как в time.Weekday
		return WeekdayFromTime(time.Weekday(idx)), nil
	}

	switch Weekday(strings.ToLower(s)) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return Weekday(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
	}
}

// AvailabilityWindow represents a declared period during which a
// professional is bookable. Two shapes:
//   - recurring: applies to every date whose weekday matches DayOfWeek,
//     within [ValidFrom, ValidTo] (nil bound = open)
//   - one-off: applies only to dates within [ValidFrom, ValidTo],
//     DayOfWeek is irrelevant
type AvailabilityWindow struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      Weekday
	StartTime      types.TimeString
	EndTime        types.TimeString
	IsRecurring    bool
	ValidFrom      *time.Time
	ValidTo        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the window invariants: start < end, format correctness,
// weekday present for recurring windows, valid-from date present for
// one-off windows
func (w *AvailabilityWindow) Validate() error {
	if err := w.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidWindow, err)
	}
	if err := w.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidWindow, err)
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return fmt.Errorf("%w: start time must be earlier than end time", ErrInvalidWindow)
	}
	if w.IsRecurring {
		if _, err := ParseWeekday(string(w.DayOfWeek)); err != nil {
			return fmt.Errorf("%w: day of week is required for recurring windows", ErrInvalidWindow)
		}
	} else if w.ValidFrom == nil {
		return fmt.Errorf("%w: valid from date is required for one-off windows", ErrInvalidWindow)
	}
	return nil
}

// AppliesTo reports whether the window offers time on the given calendar date
func (w *AvailabilityWindow) AppliesTo(date time.Time) bool {
	day := truncateToDay(date)

	if w.IsRecurring {
		if WeekdayFromTime(date.Weekday()) != w.DayOfWeek {
			return false
		}
		if w.ValidFrom != nil && day.Before(truncateToDay(*w.ValidFrom)) {
			return false
		}
		if w.ValidTo != nil && day.After(truncateToDay(*w.ValidTo)) {
			return false
		}
		return true
	}

	// Разовое окно: дата должна попадать в [ValidFrom, ValidTo]
	if w.ValidFrom == nil {
		return false
	}
	if day.Before(truncateToDay(*w.ValidFrom)) {
		return false
	}
	if w.ValidTo != nil && day.After(truncateToDay(*w.ValidTo)) {
		return false
	}
	return true
}

// Covers reports whether the window wholly contains the civil interval
// [start, end] on a date it applies to
func (w *AvailabilityWindow) Covers(start, end types.TimeString) bool {
	return !w.StartTime.IsAfter(start) && !w.EndTime.IsBefore(end)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
