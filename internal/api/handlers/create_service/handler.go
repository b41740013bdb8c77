package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/FSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/FSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/FSM-SchedulingService/internal/service/catalog"
	"github.com/m04kA/FSM-SchedulingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgProfessionalNotFound = "профессионал не найден"
	msgInvalidDurationGrid  = "некорректная сетка длительностей"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ServiceRequest HTTP модель запроса на создание услуги
type ServiceRequest struct {
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	BaseDuration      int     `json:"baseDuration"`
	MaxDuration       int     `json:"maxDuration"`
	DurationIncrement int     `json:"durationIncrement"`
	Price             float64 `json:"price"`
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateServiceRequest{
		UserID:            userID,
		Name:              req.Name,
		Description:       req.Description,
		BaseDuration:      req.BaseDuration,
		MaxDuration:       req.MaxDuration,
		DurationIncrement: req.DurationIncrement,
		Price:             req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProfessionalNotFound):
			h.logger.Warn("POST /services - Professional not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, catalog.ErrInvalidDurationGrid):
			h.logger.Warn("POST /services - Invalid duration grid: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDurationGrid)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /services - Failed to create service: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
