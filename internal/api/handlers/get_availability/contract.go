package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/service/availability/models"
	getAvailableSlots "github.com/m04kA/FSM-SchedulingService/internal/usecase/get_available_slots"
)

type AvailabilityService interface {
	List(ctx context.Context, professionalID int64) (*models.WindowListResponse, error)
	ListForDate(ctx context.Context, professionalID int64, date time.Time) (*models.WindowListResponse, error)
}

type SlotsUseCase interface {
	ExecuteForProfessional(ctx context.Context, req *getAvailableSlots.ProfessionalRequest) (*getAvailableSlots.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
