package models

import (
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	"github.com/m04kA/FSM-SchedulingService/pkg/types"
)

// Request модели

// WindowInput входная модель окна доступности
type WindowInput struct {
	DayOfWeek   string     `json:"dayOfWeek,omitempty"` // Имя дня недели или числовой индекс (0-6, с воскресенья)
	StartTime   string     `json:"startTime"`           // "09:00"
	EndTime     string     `json:"endTime"`             // "17:00"
	IsRecurring bool       `json:"isRecurring"`
	ValidFrom   *time.Time `json:"validFrom,omitempty"`
	ValidTo     *time.Time `json:"validTo,omitempty"`
}

// ToDomainWindow конвертирует входную модель в domain окно
func (w *WindowInput) ToDomainWindow(professionalID int64) (*domain.AvailabilityWindow, error) {
	startTime, err := types.NewTimeStringFromString(w.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(w.EndTime)
	if err != nil {
		return nil, err
	}

	window := &domain.AvailabilityWindow{
		ProfessionalID: professionalID,
		StartTime:      startTime,
		EndTime:        endTime,
		IsRecurring:    w.IsRecurring,
		ValidFrom:      w.ValidFrom,
		ValidTo:        w.ValidTo,
	}

	if w.IsRecurring {
		weekday, err := domain.ParseWeekday(w.DayOfWeek)
		if err != nil {
			return nil, err
		}
		window.DayOfWeek = weekday
	}

	if err := window.Validate(); err != nil {
		return nil, err
	}

	return window, nil
}

// CreateWindowsRequest запрос на добавление окон доступности
type CreateWindowsRequest struct {
	UserID  int64         `json:"userId"`
	Windows []WindowInput `json:"windows"`
}

// ReplaceScheduleRequest запрос на полную замену расписания
type ReplaceScheduleRequest struct {
	UserID  int64         `json:"userId"`
	Windows []WindowInput `json:"windows"`
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID             int64      `json:"id"`
	ProfessionalID int64      `json:"professionalId"`
	DayOfWeek      string     `json:"dayOfWeek,omitempty"`
	StartTime      string     `json:"startTime"`
	EndTime        string     `json:"endTime"`
	IsRecurring    bool       `json:"isRecurring"`
	ValidFrom      *time.Time `json:"validFrom,omitempty"`
	ValidTo        *time.Time `json:"validTo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WindowListResponse ответ со списком окон доступности
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// Методы конвертации

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:             w.ID,
		ProfessionalID: w.ProfessionalID,
		DayOfWeek:      string(w.DayOfWeek),
		StartTime:      w.StartTime.String(),
		EndTime:        w.EndTime.String(),
		IsRecurring:    w.IsRecurring,
		ValidFrom:      w.ValidFrom,
		ValidTo:        w.ValidTo,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	result := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		result = append(result, *FromDomainWindow(w))
	}
	return &WindowListResponse{Windows: result}
}
