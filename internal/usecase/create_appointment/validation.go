package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	"github.com/m04kA/FSM-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isWithinAvailability проверяет, что интервал [start, end] целиком покрыт
// хотя бы одним окном доступности, действующим на дату.
// Пересекающиеся окна трактуются как объединение, но интервал должен
// помещаться в одно окно целиком
func isWithinAvailability(windows []*domain.AvailabilityWindow, date time.Time, start, end types.TimeString) bool {
	for _, w := range windows {
		if !w.AppliesTo(date) {
			continue
		}
		if w.Covers(start, end) {
			return true
		}
	}
	return false
}

// hasBlockingConflict проверяет, что интервал [start, end) пересекается
// хотя бы с одной блокирующей записью. Отмененные записи время не держат,
// касание границ пересечением не считается
func hasBlockingConflict(appointments []*domain.Appointment, start, end time.Time) bool {
	for _, a := range appointments {
		if !a.Blocks() {
			continue
		}
		if a.Overlaps(start, end) {
			return true
		}
	}
	return false
}
