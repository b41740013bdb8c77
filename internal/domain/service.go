package domain

import (
	"errors"
	"time"
)

var (
	// ErrDurationNotAligned длительность не кратна шагу услуги
	ErrDurationNotAligned = errors.New("domain: duration is not a multiple of the service increment")

	// ErrDurationTooShort длительность меньше базовой
	ErrDurationTooShort = errors.New("domain: duration is less than the service base duration")

	// ErrDurationTooLong длительность превышает максимальную
	ErrDurationTooLong = errors.New("domain: duration exceeds the service max duration")

	// ErrInvalidDurationGrid сетка длительностей услуги некорректна
	ErrInvalidDurationGrid = errors.New("domain: invalid service duration grid")
)

// Service represents a service offered by a professional.
// BaseDuration, MaxDuration and DurationIncrement define the grid of
// legal appointment lengths: base, base+inc, ..., max (minutes)
type Service struct {
	ID                int64
	ProfessionalID    int64
	Name              string
	Description       *string
	BaseDuration      int
	MaxDuration       int
	DurationIncrement int
	Price             float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the duration grid invariants:
// increment > 0, base <= max, base and max are multiples of the increment
func (s *Service) Validate() error {
	if s.DurationIncrement <= 0 {
		return ErrInvalidDurationGrid
	}
	if s.BaseDuration <= 0 || s.BaseDuration > s.MaxDuration {
		return ErrInvalidDurationGrid
	}
	if s.BaseDuration%s.DurationIncrement != 0 || s.MaxDuration%s.DurationIncrement != 0 {
		return ErrInvalidDurationGrid
	}
	return nil
}

// ValidateDuration checks a requested appointment length against the grid.
// Checks run in order, first failure wins: alignment, lower bound, upper bound
func (s *Service) ValidateDuration(minutes int) error {
	if minutes%s.DurationIncrement != 0 {
		return ErrDurationNotAligned
	}
	if minutes < s.BaseDuration {
		return ErrDurationTooShort
	}
	if minutes > s.MaxDuration {
		return ErrDurationTooLong
	}
	return nil
}

// AllowedDurations enumerates the legal appointment lengths in minutes,
// strictly increasing from base to max inclusive
func (s *Service) AllowedDurations() []int {
	durations := make([]int, 0)
	for d := s.BaseDuration; d <= s.MaxDuration; d += s.DurationIncrement {
		durations = append(durations, d)
	}
	return durations
}
