package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FSM-SchedulingService/internal/service/availability/models"
	getAvailableSlots "github.com/m04kA/FSM-SchedulingService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubService struct {
	listResp        *models.WindowListResponse
	listForDateResp *models.WindowListResponse
	err             error
}

func (s *stubService) List(ctx context.Context, professionalID int64) (*models.WindowListResponse, error) {
	return s.listResp, s.err
}

func (s *stubService) ListForDate(ctx context.Context, professionalID int64, date time.Time) (*models.WindowListResponse, error) {
	return s.listForDateResp, s.err
}

type stubSlotsUseCase struct {
	gotReq *getAvailableSlots.ProfessionalRequest
	resp   *getAvailableSlots.ProfessionalResponse
	err    error
}

func (s *stubSlotsUseCase) ExecuteForProfessional(ctx context.Context, req *getAvailableSlots.ProfessionalRequest) (*getAvailableSlots.ProfessionalResponse, error) {
	s.gotReq = req
	return s.resp, s.err
}

func doRequest(t *testing.T, service *stubService, useCase *stubSlotsUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(service, useCase, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/professionals/{professionalId}/availability", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WindowsAndSlotsForDate(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	service := &stubService{
		listForDateResp: &models.WindowListResponse{Windows: []models.WindowResponse{
			{ID: 1, ProfessionalID: 100, DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00", IsRecurring: true},
		}},
	}
	useCase := &stubSlotsUseCase{
		resp: &getAvailableSlots.ProfessionalResponse{
			Date:            date,
			ProfessionalID:  100,
			DurationMinutes: 60,
			Slots: []getAvailableSlots.Slot{
				{StartTime: "09:00", EndTime: "10:00"},
				{StartTime: "09:30", EndTime: "10:30"},
			},
		},
	}

	rec := doRequest(t, service, useCase, "/api/v1/professionals/100/availability?date=2026-03-16")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(100), resp.ProfessionalID)
	assert.Equal(t, "2026-03-16", resp.Date)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, "monday", resp.Windows[0].DayOfWeek)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, SlotResponse{StartTime: "09:00", EndTime: "10:00"}, resp.Slots[0])

	require.NotNil(t, useCase.gotReq)
	assert.Equal(t, int64(100), useCase.gotReq.ProfessionalID)
	assert.Nil(t, useCase.gotReq.DurationMinutes)
}

func TestHandle_DurationPassedToUseCase(t *testing.T) {
	service := &stubService{listForDateResp: &models.WindowListResponse{Windows: []models.WindowResponse{}}}
	useCase := &stubSlotsUseCase{
		resp: &getAvailableSlots.ProfessionalResponse{
			Date:            time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
			ProfessionalID:  100,
			DurationMinutes: 90,
			Slots:           []getAvailableSlots.Slot{},
		},
	}

	rec := doRequest(t, service, useCase, "/api/v1/professionals/100/availability?date=2026-03-16&duration=90")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, useCase.gotReq)
	require.NotNil(t, useCase.gotReq.DurationMinutes)
	assert.Equal(t, 90, *useCase.gotReq.DurationMinutes)
}

func TestHandle_WithoutDateReturnsAllWindows(t *testing.T) {
	service := &stubService{
		listResp: &models.WindowListResponse{Windows: []models.WindowResponse{
			{ID: 1, ProfessionalID: 100, DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00", IsRecurring: true},
			{ID: 2, ProfessionalID: 100, DayOfWeek: "tuesday", StartTime: "10:00", EndTime: "18:00", IsRecurring: true},
		}},
	}
	useCase := &stubSlotsUseCase{}

	rec := doRequest(t, service, useCase, "/api/v1/professionals/100/availability")
	require.Equal(t, http.StatusOK, rec.Code)

	// Без даты слоты не генерируются
	assert.Nil(t, useCase.gotReq)

	var resp models.WindowListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Windows, 2)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "invalid professional id", url: "/api/v1/professionals/abc/availability"},
		{name: "invalid date", url: "/api/v1/professionals/100/availability?date=16.03.2026"},
		{name: "invalid duration", url: "/api/v1/professionals/100/availability?date=2026-03-16&duration=abc"},
		{name: "non-positive duration", url: "/api/v1/professionals/100/availability?date=2026-03-16&duration=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubService{}, &stubSlotsUseCase{}, tt.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
