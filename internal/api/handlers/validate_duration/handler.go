package validate_duration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FSM-SchedulingService/internal/api/handlers"
	validateDuration "github.com/m04kA/FSM-SchedulingService/internal/usecase/validate_duration"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDuration  = "некорректное значение длительности"
	msgMissingDuration  = "параметр duration обязателен"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase ValidateDurationUseCase
	logger  Logger
}

func NewHandler(useCase ValidateDurationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ValidationResponse HTTP модель результата проверки
type ValidationResponse struct {
	Valid            bool   `json:"valid"`
	Reason           string `json:"reason,omitempty"`
	AllowedDurations []int  `json:"allowedDurations"`
}

// Handle GET /api/v1/services/{serviceId}/validate-duration?duration=90
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/validate-duration - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	durationStr := r.URL.Query().Get("duration")
	if durationStr == "" {
		h.logger.Warn("GET /services/{id}/validate-duration - Missing duration parameter")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /services/{id}/validate-duration - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &validateDuration.Request{
		ServiceID:       serviceID,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, validateDuration.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/validate-duration - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, validateDuration.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/validate-duration - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /services/{id}/validate-duration - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/validate-duration - service_id=%d, duration=%d, valid=%t",
		serviceID, duration, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, ValidationResponse{
		Valid:            result.Valid,
		Reason:           result.Reason,
		AllowedDurations: result.AllowedDurations,
	})
}
