package update_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/FSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/FSM-SchedulingService/internal/service/catalog"
	"github.com/m04kA/FSM-SchedulingService/internal/service/catalog/models"
)

const (
	msgInvalidServiceID    = "некорректный ID услуги"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgNotFound            = "услуга не найдена"
	msgInvalidDurationGrid = "некорректная сетка длительностей"
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

// ServiceRequest HTTP модель запроса на обновление услуги
type ServiceRequest struct {
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	BaseDuration      int     `json:"baseDuration"`
	MaxDuration       int     `json:"maxDuration"`
	DurationIncrement int     `json:"durationIncrement"`
	Price             float64 `json:"price"`
}

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /services/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, &models.UpdateServiceRequest{
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
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: service_id=%d, user_id=%d", serviceID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidDurationGrid):
			h.logger.Warn("PUT /services/{id} - Invalid duration grid: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidDurationGrid)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: service_id=%d, user_id=%d", serviceID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
