package list_upcoming_appointments

import (
	"context"

	"github.com/m04kA/FSM-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListUpcoming(ctx context.Context, userID int64, limit uint64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
