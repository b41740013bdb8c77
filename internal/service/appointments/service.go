package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/FSM-SchedulingService/internal/service/appointments/models"
)

// DefaultUpcomingLimit количество записей в списке ближайших по умолчанию
const DefaultUpcomingLimit = 10

// Service сервис для работы с жизненным циклом записей
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Запись видят только её участники: клиент и профессионал
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appointment, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи с фильтрацией
// Пользователь может запрашивать только записи, в которых участвует сам:
// фильтр должен указывать его как клиента или как профессионала
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d", req.UserID)

	isOwnClient := req.ClientID != nil && *req.ClientID == req.UserID
	isOwnProfessional := req.ProfessionalID != nil && *req.ProfessionalID == req.UserID
	if !isOwnClient && !isOwnProfessional {
		s.logger.Warn("List: user=%d requested appointments of another user", req.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// ListUpcoming получает ближайшие незавершенные записи пользователя
// в любой из его ролей, отсортированные по времени начала
func (s *Service) ListUpcoming(ctx context.Context, userID int64, limit uint64) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListUpcoming: fetching upcoming appointments for user=%d", userID)

	if limit == 0 {
		limit = DefaultUpcomingLimit
	}

	appointments, err := s.appointmentRepo.ListUpcoming(ctx, userID, s.timeProvider.Now(), limit)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: successfully fetched %d appointments for user=%d", len(appointments), userID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus переводит запись в новый статус
// Подтверждать и завершать запись может только профессионал
// Отмена идет через Cancel, где действует правило 24 часов
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d, user=%d, status=%s", id, req.UserID, req.Status)

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if status == domain.StatusCancelled {
		return s.Cancel(ctx, id, &models.CancelAppointmentRequest{UserID: req.UserID})
	}

	appointment, err := s.getOwned(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	// Менять статус (кроме отмены) может только профессионал
	if appointment.ProfessionalID != req.UserID {
		s.logger.Warn("UpdateStatus: user=%d is not the professional of appointment id=%d", req.UserID, id)
		return nil, ErrAccessDenied
	}

	if !appointment.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for appointment id=%d",
			appointment.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appointment.Status = status

	s.logger.Info("UpdateStatus: appointment id=%d moved to status=%s", id, status)
	return models.FromDomainAppointment(appointment), nil
}

// Cancel отменяет запись
// Отменить запись может любой из её участников, но не позднее чем
// за 24 часа до начала
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", id, req.UserID)

	appointment, err := s.getOwned(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appointment.Status)
		return nil, ErrCannotCancel
	}

	// Правило 24 часов: до начала записи должно оставаться не меньше суток
	now := s.timeProvider.Now()
	if now.Add(domain.CancellationNotice).After(appointment.StartTime) {
		s.logger.Warn("Cancel: appointment id=%d starts at %s, too late to cancel at %s",
			id, appointment.StartTime, now)
		return nil, ErrTooLateToCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appointment.Status = domain.StatusCancelled

	s.logger.Info("Cancel: appointment id=%d cancelled by user=%d", id, req.UserID)
	return models.FromDomainAppointment(appointment), nil
}

// getOwned получает запись и проверяет, что пользователь является её участником
func (s *Service) getOwned(ctx context.Context, id int64, userID int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if appointment.ClientID != userID && appointment.ProfessionalID != userID {
		s.logger.Warn("access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return appointment, nil
}
