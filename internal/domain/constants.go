package domain

import "time"

// Slot generation constants
const (
	// SlotStepMinutes фиксированный шаг между кандидатами слотов.
	// Шаг не зависит от запрошенной длительности - сетка грубая намеренно
	SlotStepMinutes = 30

	// DefaultSlotDurationMinutes длительность слота по умолчанию, когда запрос
	// слотов идет по профессионалу и не привязан к сетке конкретной услуги
	DefaultSlotDurationMinutes = 60
)

// Cancellation policy
const (
	// CancellationNotice минимальный срок до начала записи, после которого отмена запрещена
	CancellationNotice = 24 * time.Hour
)

// Business validation constants
const (
	MaxNotesLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
