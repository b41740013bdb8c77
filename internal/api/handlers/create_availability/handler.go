package create_availability

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
	msgEmptyWindows         = "список окон не может быть пустым"
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

// WindowsRequest HTTP модель запроса на добавление окон
type WindowsRequest struct {
	Windows []models.WindowInput `json:"windows"`
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req WindowsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len(req.Windows) == 0 {
		h.logger.Warn("POST /availability - Empty windows list: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgEmptyWindows)
		return
	}

	result, err := h.service.CreateWindows(r.Context(), &models.CreateWindowsRequest{
		UserID:  userID,
		Windows: req.Windows,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrProfessionalNotFound):
			h.logger.Warn("POST /availability - Professional not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, availability.ErrInvalidWindow):
			h.logger.Warn("POST /availability - Invalid window: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("POST /availability - Failed to create windows: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Created %d windows: user_id=%d", len(result.Windows), userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
