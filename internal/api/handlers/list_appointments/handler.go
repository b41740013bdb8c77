package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/FSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/FSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	"github.com/m04kA/FSM-SchedulingService/internal/service/appointments"
	"github.com/m04kA/FSM-SchedulingService/internal/service/appointments/models"
)

const (
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidFilter  = "некорректные параметры фильтрации"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query параметры: role (client|professional), status, dateFrom, dateTo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := parseListRequest(r, userID)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid filter: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Retrieved %d appointments for user_id=%d", len(result.Appointments), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseListRequest разбирает query параметры в модель сервиса
// Роль определяет, в каком качестве пользователь запрашивает свои записи
func parseListRequest(r *http.Request, userID int64) (*models.ListAppointmentsRequest, error) {
	query := r.URL.Query()

	req := &models.ListAppointmentsRequest{UserID: userID}

	switch query.Get("role") {
	case "professional":
		req.ProfessionalID = &userID
	default:
		req.ClientID = &userID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if dateFromStr := query.Get("dateFrom"); dateFromStr != "" {
		dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
		if err != nil {
			return nil, err
		}
		req.DateFrom = &dateFrom
	}

	if dateToStr := query.Get("dateTo"); dateToStr != "" {
		dateTo, err := time.Parse(domain.DateFormat, dateToStr)
		if err != nil {
			return nil, err
		}
		req.DateTo = &dateTo
	}

	// Совместимость с прямыми фильтрами по ID: разрешаем только свои
	if clientIDStr := query.Get("clientId"); clientIDStr != "" {
		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ClientID = &clientID
		req.ProfessionalID = nil
	}

	return req, nil
}
