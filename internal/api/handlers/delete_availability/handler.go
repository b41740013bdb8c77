package delete_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/FSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/FSM-SchedulingService/internal/service/availability"
)

const (
	msgInvalidWindowID = "некорректный ID окна доступности"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotFound        = "окно доступности не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/availability/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	windowID, err := strconv.ParseInt(vars["windowId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /availability/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /availability/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteWindow(r.Context(), windowID, userID); err != nil {
		switch {
		case errors.Is(err, availability.ErrWindowNotFound):
			h.logger.Warn("DELETE /availability/{id} - Window not found: window_id=%d, user_id=%d", windowID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /availability/{id} - Failed to delete window: window_id=%d, error=%v", windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/{id} - Window deleted: window_id=%d, user_id=%d", windowID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
