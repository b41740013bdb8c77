package create_appointment

import (
	"time"

	"github.com/m04kA/FSM-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID        int64            // ID клиента
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes *int             // Длительность в минутах (по умолчанию - базовая длительность услуги)
	Notes           *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64     // ID созданной записи
	ServiceID       int64     // ID услуги
	ProfessionalID  int64     // ID профессионала
	ClientID        int64     // ID клиента
	StartTime       time.Time // Абсолютное время начала
	EndTime         time.Time // Абсолютное время окончания
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус записи
	Notes           *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
