package replace_availability

import (
	"context"

	"github.com/m04kA/FSM-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	ReplaceSchedule(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
