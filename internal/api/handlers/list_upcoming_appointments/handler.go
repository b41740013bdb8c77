package list_upcoming_appointments

import (
	"net/http"
	"strconv"

	"github.com/m04kA/FSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/FSM-SchedulingService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidLimit  = "некорректное значение limit"
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

// Handle GET /api/v1/appointments/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/upcoming - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var limit uint64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments/upcoming - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListUpcoming(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("GET /appointments/upcoming - Failed to list appointments: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/upcoming - Retrieved %d appointments for user_id=%d", len(result.Appointments), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
