package validate_duration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	serviceRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/service"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return s.service, s.err
}

func newUseCaseWithGrid(base, max, inc int) *UseCase {
	return NewUseCase(&stubServiceRepo{
		service: &domain.Service{
			ID:                1,
			ProfessionalID:    100,
			BaseDuration:      base,
			MaxDuration:       max,
			DurationIncrement: inc,
		},
	}, nopLogger{})
}

func TestExecute_Reasons(t *testing.T) {
	uc := newUseCaseWithGrid(30, 90, 30)

	tests := []struct {
		name       string
		duration   int
		wantValid  bool
		wantReason string
	}{
		{name: "base duration", duration: 30, wantValid: true},
		{name: "max duration", duration: 90, wantValid: true},
		{name: "not aligned", duration: 45, wantReason: "duration_not_aligned"},
		{name: "too short", duration: 15, wantReason: "duration_not_aligned"},
		{name: "too long", duration: 120, wantReason: "duration_too_long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, DurationMinutes: tt.duration})
			require.NoError(t, err)

			assert.Equal(t, tt.wantValid, resp.Valid)
			assert.Equal(t, tt.wantReason, resp.Reason)
			// Список допустимых длительностей возвращается всегда
			assert.Equal(t, []int{30, 60, 90}, resp.AllowedDurations)
		})
	}
}

func TestExecute_TooShortReason(t *testing.T) {
	uc := newUseCaseWithGrid(60, 120, 30)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, DurationMinutes: 30})
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.Equal(t, "duration_too_short", resp.Reason)
	assert.Equal(t, []int{60, 90, 120}, resp.AllowedDurations)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(&stubServiceRepo{err: serviceRepo.ErrServiceNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 42, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCaseWithGrid(30, 90, 30)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1, DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
