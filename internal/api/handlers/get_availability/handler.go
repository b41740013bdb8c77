package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/FSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/FSM-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration       = "некорректное значение длительности"
)

type Handler struct {
	service      AvailabilityService
	slotsUseCase SlotsUseCase
	logger       Logger
}

func NewHandler(service AvailabilityService, slotsUseCase SlotsUseCase, logger Logger) *Handler {
	return &Handler{
		service:      service,
		slotsUseCase: slotsUseCase,
		logger:       logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/availability?date=YYYY-MM-DD&duration=60
// Без параметра date возвращает все окна расписания, с датой - окна,
// действующие на дату, вместе со свободными слотами
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		result, err := h.service.List(r.Context(), professionalID)
		if err != nil {
			h.logger.Error("GET /professionals/{id}/availability - Failed: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /professionals/{id}/availability - Retrieved %d windows: professional_id=%d",
			len(result.Windows), professionalID)
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var duration *int
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		parsed, err := strconv.Atoi(durationStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /professionals/{id}/availability - Invalid duration: %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		duration = &parsed
	}

	windows, err := h.service.ListForDate(r.Context(), professionalID, date)
	if err != nil {
		h.logger.Error("GET /professionals/{id}/availability - Failed: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	slots, err := h.slotsUseCase.ExecuteForProfessional(r.Context(), &getAvailableSlots.ProfessionalRequest{
		ProfessionalID:  professionalID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/availability - Invalid input: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /professionals/{id}/availability - Failed to generate slots: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/availability - Retrieved %d windows, %d slots: professional_id=%d, date=%s",
		len(windows.Windows), len(slots.Slots), professionalID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponses(windows, slots))
}
