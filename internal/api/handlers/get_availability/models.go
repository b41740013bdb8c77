package get_availability

import (
	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	"github.com/m04kA/FSM-SchedulingService/internal/service/availability/models"
	getAvailableSlots "github.com/m04kA/FSM-SchedulingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// AvailabilityResponse HTTP модель ответа с окнами доступности
// и свободными слотами профессионала на дату
type AvailabilityResponse struct {
	ProfessionalID  int64                   `json:"professionalId"`
	Date            string                  `json:"date"` // "2026-09-14"
	DurationMinutes int                     `json:"durationMinutes"`
	Windows         []models.WindowResponse `json:"windows"`
	Slots           []SlotResponse          `json:"slots"`
}

// FromServiceResponses собирает ответ из окон на дату и сгенерированных слотов
func FromServiceResponses(windows *models.WindowListResponse, slots *getAvailableSlots.ProfessionalResponse) *AvailabilityResponse {
	result := make([]SlotResponse, 0, len(slots.Slots))
	for _, s := range slots.Slots {
		result = append(result, SlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return &AvailabilityResponse{
		ProfessionalID:  slots.ProfessionalID,
		Date:            slots.Date.Format(domain.DateFormat),
		DurationMinutes: slots.DurationMinutes,
		Windows:         windows.Windows,
		Slots:           result,
	}
}
