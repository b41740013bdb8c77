package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a client booking of a professional's service
type Appointment struct {
	ID             int64
	ServiceID      int64
	ProfessionalID int64
	ClientID       int64
	StartTime      time.Time
	EndTime        time.Time // StartTime + DurationMinutes
	DurationMinutes int
	Status         AppointmentStatus
	Notes          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks returns true if the appointment occupies its time interval:
// every status except cancelled keeps the professional busy
func (a *Appointment) Blocks() bool {
	return a.Status != StatusCancelled
}

// IsTerminal returns true if no further status transition is permitted
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status transition is allowed.
// pending -> confirmed | completed | cancelled
// confirmed -> completed | cancelled
// completed and cancelled are terminal; same-state transitions are rejected
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCompleted || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Overlaps reports whether the appointment's [start, end) interval shares
// any instant with [from, to). Half-open: touching endpoints do not overlap
func (a *Appointment) Overlaps(from, to time.Time) bool {
	return a.StartTime.Before(to) && a.EndTime.After(from)
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	ProfessionalID *int64             // Фильтр по профессионалу (опционально)
	ClientID       *int64             // Фильтр по клиенту (опционально)
	Status         *AppointmentStatus // Фильтр по статусу (опционально)
	DateFrom       *time.Time         // Начало периода (опционально)
	DateTo         *time.Time         // Конец периода (опционально)
}
