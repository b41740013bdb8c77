package models

import (
	"errors"
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID int64 `json:"userId"`
}

// ListAppointmentsRequest запрос на получение записей с фильтрацией
type ListAppointmentsRequest struct {
	UserID         int64      `json:"userId"`
	ProfessionalID *int64     `json:"professionalId,omitempty"` // Фильтр по профессионалу (опционально)
	ClientID       *int64     `json:"clientId,omitempty"`       // Фильтр по клиенту (опционально)
	Status         *string    `json:"status,omitempty"`         // Фильтр по статусу (опционально)
	DateFrom       *time.Time `json:"dateFrom,omitempty"`       // Начало периода (опционально)
	DateTo         *time.Time `json:"dateTo,omitempty"`         // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		ProfessionalID: r.ProfessionalID,
		ClientID:       r.ClientID,
		DateFrom:       r.DateFrom,
		DateTo:         r.DateTo,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	ServiceID       int64     `json:"serviceId"`
	ProfessionalID  int64     `json:"professionalId"`
	ClientID        int64     `json:"clientId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
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

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: result}
}

// ToDomainStatus конвертирует строку в domain статус
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.AppointmentStatus(s), nil
}
