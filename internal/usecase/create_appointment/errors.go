package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrInvalidDuration возвращается, когда длительность не попадает в сетку услуги
	ErrInvalidDuration = errors.New("create_appointment: invalid duration for this service")

	// ErrStartTimeInPast возвращается, когда время начала уже прошло
	ErrStartTimeInPast = errors.New("create_appointment: start time is in the past")

	// ErrProfessionalUnavailable возвращается, когда интервал не покрыт ни одним окном доступности
	ErrProfessionalUnavailable = errors.New("create_appointment: professional is not available at this time")

	// ErrSlotTaken возвращается, когда интервал пересекается с существующей записью
	ErrSlotTaken = errors.New("create_appointment: time slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
