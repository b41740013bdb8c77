package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/FSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/FSM-SchedulingService/internal/api/middleware"
	createAppointment "github.com/m04kA/FSM-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody       = "некорректное тело запроса"
	msgInvalidDateOrTime        = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID            = "отсутствует ID пользователя"
	msgServiceNotFound          = "услуга не найдена"
	msgClientNotFound           = "клиент не найден"
	msgProfessionalNotFound     = "профессионал не найден"
	msgInvalidDuration          = "длительность не входит в сетку услуги"
	msgStartTimeInPast          = "время начала уже прошло"
	msgProfessionalUnavailable  = "профессионал недоступен в выбранное время"
	msgSlotTaken                = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: client_id=%d, service_id=%d", clientID, req.ServiceID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrProfessionalUnavailable):
			h.logger.Warn("POST /appointments - Professional unavailable: client_id=%d, service_id=%d", clientID, req.ServiceID)
			handlers.RespondError(w, http.StatusConflict, msgProfessionalUnavailable)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid duration: client_id=%d, service_id=%d", clientID, req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrStartTimeInPast):
			h.logger.Warn("POST /appointments - Start time in past: client_id=%d, service_id=%d", clientID, req.ServiceID)
			handlers.RespondBadRequest(w, msgStartTimeInPast)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, service_id=%d, error=%v",
				clientID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, service_id=%d",
		result.ID, clientID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
