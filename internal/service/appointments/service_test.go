package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/FSM-SchedulingService/internal/service/appointments/models"
)

const (
	testClientID       = int64(200)
	testProfessionalID = int64(100)
	testStrangerID     = int64(999)
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	appointment   *domain.Appointment
	appointments  []*domain.Appointment
	getErr        error
	updateErr     error
	updatedStatus *domain.AppointmentStatus
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.appointment
	return &copied, nil
}

func (f *fakeRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeRepo) ListUpcoming(ctx context.Context, userID int64, now time.Time, limit uint64) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = &status
	return nil
}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}
	return svc
}

func testAppointment(status domain.AppointmentStatus, startTime time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:              1,
		ServiceID:       10,
		ProfessionalID:  testProfessionalID,
		ClientID:        testClientID,
		StartTime:       startTime,
		EndTime:         startTime.Add(time.Hour),
		DurationMinutes: 60,
		Status:          status,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{appointment: testAppointment(domain.StatusConfirmed, now.Add(48*time.Hour))}
	svc := newTestService(repo, now)

	resp, err := svc.GetByID(context.Background(), 1, testClientID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 1, testProfessionalID)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, testStrangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	svc := newTestService(repo, time.Now())

	_, err := svc.GetByID(context.Background(), 1, testClientID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_RequiresOwnParticipation(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, time.Now())

	clientID := testClientID
	professionalID := testProfessionalID

	// Пользователь запрашивает свои записи как клиент
	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		UserID:   testClientID,
		ClientID: &clientID,
	})
	require.NoError(t, err)

	// Пользователь запрашивает свои записи как профессионал
	_, err = svc.List(context.Background(), &models.ListAppointmentsRequest{
		UserID:         testProfessionalID,
		ProfessionalID: &professionalID,
	})
	require.NoError(t, err)

	// Чужие записи недоступны
	_, err = svc.List(context.Background(), &models.ListAppointmentsRequest{
		UserID:   testStrangerID,
		ClientID: &clientID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Фильтр без указания роли запрещен
	_, err = svc.List(context.Background(), &models.ListAppointmentsRequest{UserID: testClientID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_ProfessionalConfirms(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{appointment: testAppointment(domain.StatusPending, now.Add(48*time.Hour))}
	svc := newTestService(repo, now)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: testProfessionalID,
		Status: "confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
}

func TestUpdateStatus_ClientCannotConfirm(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{appointment: testAppointment(domain.StatusPending, now.Add(48*time.Hour))}
	svc := newTestService(repo, now)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: testClientID,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidTransitions(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		from   domain.AppointmentStatus
		to     string
		errIs  error
	}{
		{name: "completed is terminal", from: domain.StatusCompleted, to: "confirmed", errIs: ErrInvalidTransition},
		{name: "confirmed back to pending", from: domain.StatusConfirmed, to: "pending", errIs: ErrInvalidTransition},
		{name: "same state", from: domain.StatusConfirmed, to: "confirmed", errIs: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusPending, to: "archived", errIs: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{appointment: testAppointment(tt.from, now.Add(48*time.Hour))}
			svc := newTestService(repo, now)

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				UserID: testProfessionalID,
				Status: tt.to,
			})
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestUpdateStatus_CancelGoesThroughCancellationPolicy(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	// До начала записи меньше 24 часов: отмена через статусный endpoint
	// тоже должна быть отклонена
	repo := &fakeRepo{appointment: testAppointment(domain.StatusConfirmed, now.Add(2*time.Hour))}
	svc := newTestService(repo, now)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: testProfessionalID,
		Status: "cancelled",
	})
	assert.ErrorIs(t, err, ErrTooLateToCancel)
}

func TestCancel_NoticePeriod(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startTime time.Time
		wantErr   error
	}{
		{name: "more than 24h before start", startTime: now.Add(24*time.Hour + time.Minute)},
		{name: "exactly 24h before start", startTime: now.Add(24 * time.Hour)},
		{name: "one minute less than 24h", startTime: now.Add(24*time.Hour - time.Minute), wantErr: ErrTooLateToCancel},
		{name: "less than 24h before start", startTime: now.Add(23 * time.Hour), wantErr: ErrTooLateToCancel},
		{name: "already started", startTime: now.Add(-time.Hour), wantErr: ErrTooLateToCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{appointment: testAppointment(domain.StatusConfirmed, tt.startTime)}
			svc := newTestService(repo, now)

			resp, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: testClientID})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "cancelled", resp.Status)
			require.NotNil(t, repo.updatedStatus)
			assert.Equal(t, domain.StatusCancelled, *repo.updatedStatus)
		})
	}
}

func TestCancel_ByEitherParticipant(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	startTime := now.Add(48 * time.Hour)

	for _, userID := range []int64{testClientID, testProfessionalID} {
		repo := &fakeRepo{appointment: testAppointment(domain.StatusPending, startTime)}
		svc := newTestService(repo, now)

		_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: userID})
		require.NoError(t, err)
	}

	repo := &fakeRepo{appointment: testAppointment(domain.StatusPending, startTime)}
	svc := newTestService(repo, now)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: testStrangerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_TerminalStatuses(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		repo := &fakeRepo{appointment: testAppointment(status, now.Add(48*time.Hour))}
		svc := newTestService(repo, now)

		_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: testClientID})
		assert.ErrorIs(t, err, ErrCannotCancel)
	}
}

func TestListUpcoming_DefaultLimit(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		testAppointment(domain.StatusConfirmed, time.Now().Add(time.Hour)),
	}}
	svc := newTestService(repo, time.Now())

	resp, err := svc.ListUpcoming(context.Background(), testClientID, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
}
