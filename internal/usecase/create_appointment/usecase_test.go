package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/service"
	"github.com/m04kA/FSM-SchedulingService/internal/integrations/profileservice"
	"github.com/m04kA/FSM-SchedulingService/pkg/ptr"
)

// 2026-03-16 - понедельник
var testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *appointment
	created.ID = 777
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) ListForProfessionalBetween(ctx context.Context, professionalID int64, from, to time.Time) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
}

func (f *fakeAvailabilityRepo) ListForDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeProfileClient struct {
	profileErr      error
	professionalErr error
}

func (f *fakeProfileClient) GetProfile(ctx context.Context, userID int64) (*profileservice.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return &profileservice.Profile{ID: userID, Name: "Client"}, nil
}

func (f *fakeProfileClient) GetProfessional(ctx context.Context, userID int64) (*profileservice.Profile, error) {
	if f.professionalErr != nil {
		return nil, f.professionalErr
	}
	return &profileservice.Profile{ID: userID, Name: "Professional", IsProfessional: true}, nil
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	appointments *fakeAppointmentRepo
	availability *fakeAvailabilityRepo
	services     *fakeServiceRepo
	profiles     *fakeProfileClient
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		availability: &fakeAvailabilityRepo{
			windows: []*domain.AvailabilityWindow{
				{
					ProfessionalID: 100,
					DayOfWeek:      domain.Monday,
					StartTime:      "09:00",
					EndTime:        "18:00",
					IsRecurring:    true,
				},
			},
		},
		services: &fakeServiceRepo{
			service: &domain.Service{
				ID:                1,
				ProfessionalID:    100,
				Name:              "Haircut",
				BaseDuration:      30,
				MaxDuration:       90,
				DurationIncrement: 30,
			},
		},
		profiles: &fakeProfileClient{},
	}
	f.uc = NewUseCase(f.appointments, f.availability, f.services, f.profiles, inlineTxManager{}, nopLogger{})
	f.uc.timeProvider = &fixedTime{now: testDate.AddDate(0, 0, -1)}
	return f
}

func validRequest() *Request {
	return &Request{
		ClientID:  200,
		ServiceID: 1,
		Date:      testDate,
		StartTime: "10:00",
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(777), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(100), resp.ProfessionalID)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, testDate.Add(10*time.Hour), resp.StartTime)
	assert.Equal(t, testDate.Add(10*time.Hour+30*time.Minute), resp.EndTime)

	require.NotNil(t, f.appointments.created)
	assert.Equal(t, domain.StatusPending, f.appointments.created.Status)
}

func TestExecute_CustomDuration(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.DurationMinutes = ptr.Ptr(90)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, testDate.Add(11*time.Hour+30*time.Minute), resp.EndTime)
}

func TestExecute_InvalidDuration(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.DurationMinutes = ptr.Ptr(45)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture()
	f.services.service = nil
	f.services.err = serviceRepo.ErrServiceNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ClientNotFound(t *testing.T) {
	f := newFixture()
	f.profiles.profileErr = profileservice.ErrProfileNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ClientCheckedBeforeDuration(t *testing.T) {
	f := newFixture()
	f.profiles.profileErr = profileservice.ErrProfileNotFound

	// Клиент не существует и длительность не попадает в сетку:
	// клиент проверяется раньше
	req := validRequest()
	req.DurationMinutes = ptr.Ptr(45)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	f := newFixture()
	f.profiles.professionalErr = profileservice.ErrNotProfessional

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_StartTimeInPast(t *testing.T) {
	f := newFixture()
	f.uc.timeProvider = &fixedTime{now: testDate.Add(10 * time.Hour)}

	// Начало ровно в текущий момент тоже считается прошлым
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStartTimeInPast)
}

func TestExecute_ProfessionalUnavailable(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = "17:45"

	// 17:45-18:15 не помещается в окно 09:00-18:00
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalUnavailable)
}

func TestExecute_NoWindowsOnDate(t *testing.T) {
	f := newFixture()
	f.availability.windows = nil

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalUnavailable)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture()
	f.appointments.existing = []*domain.Appointment{
		{
			ProfessionalID: 100,
			StartTime:      testDate.Add(10 * time.Hour),
			EndTime:        testDate.Add(11 * time.Hour),
			Status:         domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_TouchingAppointmentDoesNotConflict(t *testing.T) {
	f := newFixture()
	f.appointments.existing = []*domain.Appointment{
		{
			ProfessionalID: 100,
			StartTime:      testDate.Add(9 * time.Hour),
			EndTime:        testDate.Add(10 * time.Hour),
			Status:         domain.StatusConfirmed,
		},
	}

	// Существующая запись заканчивается ровно в момент начала новой
	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestExecute_CancelledAppointmentDoesNotConflict(t *testing.T) {
	f := newFixture()
	f.appointments.existing = []*domain.Appointment{
		{
			ProfessionalID: 100,
			StartTime:      testDate.Add(10 * time.Hour),
			EndTime:        testDate.Add(11 * time.Hour),
			Status:         domain.StatusCancelled,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_ExclusionConstraintMapsToSlotTaken(t *testing.T) {
	f := newFixture()
	f.appointments.createErr = appointmentRepo.ErrIntervalTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero client", mutate: func(req *Request) { req.ClientID = 0 }},
		{name: "zero service", mutate: func(req *Request) { req.ServiceID = 0 }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
		{name: "empty start time", mutate: func(req *Request) { req.StartTime = "" }},
		{name: "bad start time format", mutate: func(req *Request) { req.StartTime = "10am" }},
		{name: "negative duration", mutate: func(req *Request) { req.DurationMinutes = ptr.Ptr(-30) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
