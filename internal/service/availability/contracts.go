package availability

import (
	"context"
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	"github.com/m04kA/FSM-SchedulingService/internal/integrations/profileservice"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	CreateBulk(ctx context.Context, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error)
	ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityWindow, error)
	ListForDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id int64, professionalID int64) error
	DeleteByProfessional(ctx context.Context, professionalID int64) error
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetProfessional(ctx context.Context, userID int64) (*profileservice.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
