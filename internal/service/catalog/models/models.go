package models

import (
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	UserID            int64   `json:"userId"`
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	BaseDuration      int     `json:"baseDuration"`
	MaxDuration       int     `json:"maxDuration"`
	DurationIncrement int     `json:"durationIncrement"`
	Price             float64 `json:"price"`
}

// ToDomainService конвертирует запрос в domain модель
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	return &domain.Service{
		ProfessionalID:    r.UserID,
		Name:              r.Name,
		Description:       r.Description,
		BaseDuration:      r.BaseDuration,
		MaxDuration:       r.MaxDuration,
		DurationIncrement: r.DurationIncrement,
		Price:             r.Price,
	}
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	UserID            int64   `json:"userId"`
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	BaseDuration      int     `json:"baseDuration"`
	MaxDuration       int     `json:"maxDuration"`
	DurationIncrement int     `json:"durationIncrement"`
	Price             float64 `json:"price"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID                int64   `json:"id"`
	ProfessionalID    int64   `json:"professionalId"`
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	BaseDuration      int     `json:"baseDuration"`
	MaxDuration       int     `json:"maxDuration"`
	DurationIncrement int     `json:"durationIncrement"`
	Price             float64 `json:"price"`
	AllowedDurations  []int   `json:"allowedDurations"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:                s.ID,
		ProfessionalID:    s.ProfessionalID,
		Name:              s.Name,
		Description:       s.Description,
		BaseDuration:      s.BaseDuration,
		MaxDuration:       s.MaxDuration,
		DurationIncrement: s.DurationIncrement,
		Price:             s.Price,
		AllowedDurations:  s.AllowedDurations(),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, *FromDomainService(s))
	}
	return &ServiceListResponse{Services: result}
}
