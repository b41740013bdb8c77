package validate_duration

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	serviceRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/service"
)

// Request модель запроса на проверку длительности
type Request struct {
	ServiceID       int64 // ID услуги
	DurationMinutes int   // Запрошенная длительность в минутах
}

// Response модель ответа с результатом проверки
type Response struct {
	Valid            bool   // Попадает ли длительность в сетку услуги
	Reason           string // Причина отказа (пусто при Valid=true)
	AllowedDurations []int  // Все допустимые длительности для услуги, по возрастанию
}

// UseCase use case проверки длительности против сетки услуги
type UseCase struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(serviceRepo ServiceRepository, logger Logger) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку длительности.
// Некорректная длительность - это не ошибка, а валидный ответ с Valid=false
// и причиной отказа. Список допустимых длительностей возвращается всегда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateDuration: service=%d, duration=%d", req.ServiceID, req.DurationMinutes)

	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("ValidateDuration: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ValidateDuration: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	resp := &Response{
		Valid:            true,
		AllowedDurations: service.AllowedDurations(),
	}

	if err := service.ValidateDuration(req.DurationMinutes); err != nil {
		resp.Valid = false
		resp.Reason = reasonFor(err)
	}

	return resp, nil
}

// reasonFor преобразует доменную ошибку сетки в машиночитаемую причину
func reasonFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrDurationNotAligned):
		return "duration_not_aligned"
	case errors.Is(err, domain.ErrDurationTooShort):
		return "duration_too_short"
	case errors.Is(err, domain.ErrDurationTooLong):
		return "duration_too_long"
	default:
		return "invalid_duration"
	}
}
