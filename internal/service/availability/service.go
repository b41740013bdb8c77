package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/availability"
	profileClient "github.com/m04kA/FSM-SchedulingService/internal/integrations/profileservice"
	"github.com/m04kA/FSM-SchedulingService/internal/service/availability/models"
)

// Service сервис для управления расписанием доступности профессионала
type Service struct {
	availabilityRepo AvailabilityRepository
	profileClient    ProfileServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		profileClient:    profileClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// CreateWindows добавляет окна доступности к расписанию профессионала
// Существующие окна не затрагиваются
func (s *Service) CreateWindows(ctx context.Context, req *models.CreateWindowsRequest) (*models.WindowListResponse, error) {
	s.logger.Info("CreateWindows: professional=%d, windows=%d", req.UserID, len(req.Windows))

	windows, err := s.prepareWindows(ctx, req.UserID, req.Windows)
	if err != nil {
		return nil, err
	}

	created, err := s.availabilityRepo.CreateBulk(ctx, windows)
	if err != nil {
		s.logger.Error("CreateWindows: repository error for professional=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateWindows - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWindows: created %d windows for professional=%d", len(created), req.UserID)
	return models.FromDomainWindowList(created), nil
}

// ReplaceSchedule полностью заменяет расписание профессионала:
// старые окна удаляются, новые создаются в одной транзакции.
// Пустой список окон очищает расписание
func (s *Service) ReplaceSchedule(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.WindowListResponse, error) {
	s.logger.Info("ReplaceSchedule: professional=%d, windows=%d", req.UserID, len(req.Windows))

	windows, err := s.prepareWindows(ctx, req.UserID, req.Windows)
	if err != nil {
		return nil, err
	}

	var created []*domain.AvailabilityWindow

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.availabilityRepo.DeleteByProfessional(txCtx, req.UserID); err != nil {
			return fmt.Errorf("%w: ReplaceSchedule - delete old windows: %v", ErrInternal, err)
		}

		result, err := s.availabilityRepo.CreateBulk(txCtx, windows)
		if err != nil {
			return fmt.Errorf("%w: ReplaceSchedule - create new windows: %v", ErrInternal, err)
		}

		created = result
		return nil
	})

	if err != nil {
		s.logger.Error("ReplaceSchedule: failed for professional=%d: %v", req.UserID, err)
		return nil, err
	}

	s.logger.Info("ReplaceSchedule: schedule replaced with %d windows for professional=%d", len(created), req.UserID)
	return models.FromDomainWindowList(created), nil
}

// List получает все окна доступности профессионала
func (s *Service) List(ctx context.Context, professionalID int64) (*models.WindowListResponse, error) {
	s.logger.Info("List: fetching windows for professional=%d", professionalID)

	windows, err := s.availabilityRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("List: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// ListForDate получает окна доступности профессионала, действующие на дату
func (s *Service) ListForDate(ctx context.Context, professionalID int64, date time.Time) (*models.WindowListResponse, error) {
	s.logger.Info("ListForDate: professional=%d, date=%s", professionalID, date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	windows, err := s.availabilityRepo.ListForDate(ctx, professionalID, date)
	if err != nil {
		s.logger.Error("ListForDate: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// DeleteWindow удаляет окно доступности профессионала
func (s *Service) DeleteWindow(ctx context.Context, id int64, professionalID int64) error {
	s.logger.Info("DeleteWindow: window id=%d, professional=%d", id, professionalID)

	if err := s.availabilityRepo.Delete(ctx, id, professionalID); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("DeleteWindow: window id=%d not found for professional=%d", id, professionalID)
			return ErrWindowNotFound
		}
		s.logger.Error("DeleteWindow: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWindow: window id=%d deleted", id)
	return nil
}

// prepareWindows проверяет профессионала и конвертирует входные окна в domain модели
func (s *Service) prepareWindows(ctx context.Context, professionalID int64, inputs []models.WindowInput) ([]*domain.AvailabilityWindow, error) {
	if _, err := s.profileClient.GetProfessional(ctx, professionalID); err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) || errors.Is(err, profileClient.ErrNotProfessional) {
			s.logger.Warn("professional id=%d not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("failed to get professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	windows := make([]*domain.AvailabilityWindow, 0, len(inputs))
	for i, input := range inputs {
		window, err := input.ToDomainWindow(professionalID)
		if err != nil {
			s.logger.Warn("window %d rejected for professional=%d: %v", i, professionalID, err)
			return nil, fmt.Errorf("%w: window %d: %v", ErrInvalidWindow, i, err)
		}
		windows = append(windows, window)
	}

	return windows, nil
}
