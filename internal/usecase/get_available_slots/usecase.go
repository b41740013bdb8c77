package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	serviceRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Чтение выполняется вне транзакции: список слотов - это снимок на момент
// запроса, гарантию от гонки дает создание записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Определяем длительность: запрошенная или базовая для услуги.
	// Запрошенная длительность проверяется против сетки услуги
	duration := service.BaseDuration
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
		if err := service.ValidateDuration(duration); err != nil {
			uc.logger.Warn("GetAvailableSlots: duration %d rejected for service id=%d: %v",
				duration, req.ServiceID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
	}

	// 5. Строим слоты по окнам и записям профессионала
	slots, err := uc.slotsForProfessional(ctx, service.ProfessionalID, req.Date, duration, now)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, professional=%d, date=%s",
		len(slots), req.ServiceID, service.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		ProfessionalID:  service.ProfessionalID,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

// ExecuteForProfessional строит слоты профессионала на дату без привязки
// к услуге. Длительность либо задана явно, либо берется
// domain.DefaultSlotDurationMinutes; сетка услуги здесь не проверяется
func (uc *UseCase) ExecuteForProfessional(ctx context.Context, req *ProfessionalRequest) (*ProfessionalResponse, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, date=%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat))

	if err := validateProfessionalRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	duration := domain.DefaultSlotDurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	slots, err := uc.slotsForProfessional(ctx, req.ProfessionalID, req.Date, duration, uc.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%d, date=%s",
		len(slots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &ProfessionalResponse{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

// slotsForProfessional получает окна доступности и записи профессионала
// за день и генерирует слоты. Нет окон - нет слотов, это не ошибка
func (uc *UseCase) slotsForProfessional(ctx context.Context, professionalID int64, date time.Time, duration int, now time.Time) ([]Slot, error) {
	windows, err := uc.availabilityRepo.ListForDate(ctx, professionalID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: professional id=%d has no windows on %s",
			professionalID, date.Format(domain.DateFormat))
		return []Slot{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.ListForProfessionalBetween(ctx, professionalID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots, err := generateSlots(windows, appointments, date, duration, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	return slots, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return nil
}

// validateProfessionalRequest валидирует запрос слотов по профессионалу
func validateProfessionalRequest(req *ProfessionalRequest) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return nil
}
