package list_services

import (
	"context"

	"github.com/m04kA/FSM-SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListByProfessional(ctx context.Context, professionalID int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
