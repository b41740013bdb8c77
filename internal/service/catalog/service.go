package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	serviceRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/service"
	profileClient "github.com/m04kA/FSM-SchedulingService/internal/integrations/profileservice"
	"github.com/m04kA/FSM-SchedulingService/internal/service/catalog/models"
)

// Service сервис каталога услуг профессионалов
type Service struct {
	serviceRepo   ServiceRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, profileClient ProfileServiceClient, logger Logger) *Service {
	return &Service{
		serviceRepo:   serviceRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// Create создает новую услугу профессионала
// Сетка длительностей проверяется до записи в БД
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: professional=%d, name=%s", req.UserID, req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if err := s.checkProfessional(ctx, req.UserID); err != nil {
		return nil, err
	}

	svc := req.ToDomainService()
	if err := svc.Validate(); err != nil {
		s.logger.Warn("Create: invalid duration grid for professional=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDurationGrid, err)
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error for professional=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created service id=%d for professional=%d", created.ID, req.UserID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// ListByProfessional получает все услуги профессионала
func (s *Service) ListByProfessional(ctx context.Context, professionalID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("ListByProfessional: fetching services for professional=%d", professionalID)

	services, err := s.serviceRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("ListByProfessional: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: ListByProfessional - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Update обновляет услугу профессионала
// Изменять услугу может только её владелец
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: service id=%d, professional=%d", id, req.UserID)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	svc := &domain.Service{
		ID:                id,
		ProfessionalID:    req.UserID,
		Name:              req.Name,
		Description:       req.Description,
		BaseDuration:      req.BaseDuration,
		MaxDuration:       req.MaxDuration,
		DurationIncrement: req.DurationIncrement,
		Price:             req.Price,
	}

	if err := svc.Validate(); err != nil {
		s.logger.Warn("Update: invalid duration grid for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDurationGrid, err)
	}

	updated, err := s.serviceRepo.Update(ctx, svc)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found for professional=%d", id, req.UserID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service id=%d updated", id)
	return models.FromDomainService(updated), nil
}

// checkProfessional проверяет, что пользователь является профессионалом
func (s *Service) checkProfessional(ctx context.Context, userID int64) error {
	if _, err := s.profileClient.GetProfessional(ctx, userID); err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) || errors.Is(err, profileClient.ErrNotProfessional) {
			s.logger.Warn("professional id=%d not found", userID)
			return ErrProfessionalNotFound
		}
		s.logger.Error("failed to get professional id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
	return nil
}
