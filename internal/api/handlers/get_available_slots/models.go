package get_available_slots

import (
	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/FSM-SchedulingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "10:30"
}

// SlotsResponse HTTP модель ответа со слотами
type SlotsResponse struct {
	Date            string         `json:"date"` // "2026-09-14"
	ServiceID       int64          `json:"serviceId"`
	ProfessionalID  int64          `json:"professionalId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		ProfessionalID:  resp.ProfessionalID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
