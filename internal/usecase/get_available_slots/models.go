package get_available_slots

import (
	"time"

	"github.com/m04kA/FSM-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID       int64     // ID услуги
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes *int      // Длительность в минутах (по умолчанию - базовая длительность услуги)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ServiceID       int64     // ID услуги
	ProfessionalID  int64     // ID профессионала
	DurationMinutes int       // Длительность, для которой строились слоты
	Slots           []Slot    // Список доступных слотов, отсортированный по времени начала
}

// ProfessionalRequest модель запроса слотов по профессионалу, без привязки
// к конкретной услуге
type ProfessionalRequest struct {
	ProfessionalID  int64     // ID профессионала
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes *int      // Длительность в минутах (по умолчанию domain.DefaultSlotDurationMinutes)
}

// ProfessionalResponse модель ответа со слотами профессионала
type ProfessionalResponse struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ProfessionalID  int64     // ID профессионала
	DurationMinutes int       // Длительность, для которой строились слоты
	Slots           []Slot    // Список доступных слотов, отсортированный по времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время окончания слота
}
