package replace_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/FSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/FSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/FSM-SchedulingService/internal/service/availability"
	"github.com/m04kA/FSM-SchedulingService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgProfessionalNotFound = "профессионал не найден"
	msgInvalidWindow        = "некорректное окно доступности"
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

// WindowsRequest HTTP модель запроса на замену расписания
// Пустой список окон очищает расписание
type WindowsRequest struct {
	Windows []models.WindowInput `json:"windows"`
}

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req WindowsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceSchedule(r.Context(), &models.ReplaceScheduleRequest{
		UserID:  userID,
		Windows: req.Windows,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrProfessionalNotFound):
			h.logger.Warn("PUT /availability - Professional not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, availability.ErrInvalidWindow):
			h.logger.Warn("PUT /availability - Invalid window: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("PUT /availability - Failed to replace schedule: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability - Schedule replaced with %d windows: user_id=%d", len(result.Windows), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
