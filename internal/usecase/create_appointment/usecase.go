package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/service"
	profileClient "github.com/m04kA/FSM-SchedulingService/internal/integrations/profileservice"
)

// UseCase use case для создания записи на услугу
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	profileClient    ProfileServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		profileClient:    profileClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка конфликтов и вставка выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Проверяем существование клиента
	if _, err := uc.profileClient.GetProfile(ctx, req.ClientID); err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 4. Определяем длительность: запрошенная или базовая для услуги.
	// Запрошенная длительность проверяется против сетки услуги
	duration := service.BaseDuration
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
		if err := service.ValidateDuration(duration); err != nil {
			uc.logger.Warn("CreateAppointment: duration %d rejected for service id=%d: %v",
				duration, req.ServiceID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
	}

	// 5. Проверяем существование профессионала, которому принадлежит услуга
	if _, err := uc.profileClient.GetProfessional(ctx, service.ProfessionalID); err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) || errors.Is(err, profileClient.ErrNotProfessional) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", service.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", service.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 6. Вычисляем абсолютные границы интервала и проверяем, что начало не в прошлом
	startAt, err := req.StartTime.OnDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateAppointment: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endAt := startAt.Add(time.Duration(duration) * time.Minute)

	now := uc.timeProvider.Now()
	if !startAt.After(now) {
		uc.logger.Warn("CreateAppointment: start time %s is in the past", startAt.Format(time.RFC3339))
		return nil, ErrStartTimeInPast
	}

	endCivil, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		uc.logger.Warn("CreateAppointment: interval extends past the end of day: %v", err)
		return nil, fmt.Errorf("%w: interval extends past the end of day", ErrInvalidInput)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем проверки доступности и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Интервал должен целиком попадать в окно доступности
		windows, err := uc.availabilityRepo.ListForDate(txCtx, service.ProfessionalID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get availability windows: %v", err)
			return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
		}

		if !isWithinAvailability(windows, req.Date, req.StartTime, endCivil) {
			uc.logger.Warn("CreateAppointment: professional id=%d unavailable on %s at %s-%s",
				service.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime, endCivil)
			return ErrProfessionalUnavailable
		}

		// 7.2. Получаем записи профессионала за весь день с блокировкой (FOR UPDATE)
		dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		appointments, err := uc.appointmentRepo.ListForProfessionalBetween(txCtx, service.ProfessionalID, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.3. Проверяем пересечение с существующими записями
		if hasBlockingConflict(appointments, startAt, endAt) {
			uc.logger.Warn("CreateAppointment: slot %s-%s already taken for professional id=%d",
				startAt.Format(time.RFC3339), endAt.Format(time.RFC3339), service.ProfessionalID)
			return ErrSlotTaken
		}

		// 7.4. Создаем запись в статусе pending
		appointment := &domain.Appointment{
			ServiceID:       req.ServiceID,
			ProfessionalID:  service.ProfessionalID,
			ClientID:        req.ClientID,
			StartTime:       startAt,
			EndTime:         endAt,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Exclusion constraint в БД - вторая линия защиты от гонки
			if errors.Is(err, appointmentRepo.ErrIntervalTaken) {
				uc.logger.Warn("CreateAppointment: interval rejected by exclusion constraint")
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, status=%s", result.ID, result.Status)

	return toResponse(result), nil
}

// toResponse преобразует доменную модель в модель ответа
func toResponse(a *domain.Appointment) *Response {
	return &Response{
		ID:              a.ID,
		ServiceID:       a.ServiceID,
		ProfessionalID:  a.ProfessionalID,
		ClientID:        a.ClientID,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
