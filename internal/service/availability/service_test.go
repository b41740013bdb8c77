package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/FSM-SchedulingService/internal/integrations/profileservice"
	"github.com/m04kA/FSM-SchedulingService/internal/service/availability/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAvailabilityRepo struct {
	windows    []*domain.AvailabilityWindow
	deleteErr  error
	deletedFor *int64
}

func (f *fakeAvailabilityRepo) CreateBulk(ctx context.Context, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error) {
	created := make([]*domain.AvailabilityWindow, 0, len(windows))
	for i, w := range windows {
		c := *w
		c.ID = int64(i + 1)
		created = append(created, &c)
	}
	return created, nil
}

func (f *fakeAvailabilityRepo) GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error) {
	return nil, availabilityRepo.ErrWindowNotFound
}

func (f *fakeAvailabilityRepo) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
}

func (f *fakeAvailabilityRepo) ListForDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
}

func (f *fakeAvailabilityRepo) Delete(ctx context.Context, id int64, professionalID int64) error {
	return f.deleteErr
}

func (f *fakeAvailabilityRepo) DeleteByProfessional(ctx context.Context, professionalID int64) error {
	f.deletedFor = &professionalID
	return nil
}

type fakeProfileClient struct {
	err error
}

func (f *fakeProfileClient) GetProfessional(ctx context.Context, userID int64) (*profileservice.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &profileservice.Profile{ID: userID, IsProfessional: true}, nil
}

type inlineTxManager struct{}

func (inlineTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *fakeAvailabilityRepo, profiles *fakeProfileClient) *Service {
	return NewService(repo, profiles, inlineTxManager{}, nopLogger{})
}

func recurringInput(day, start, end string) models.WindowInput {
	return models.WindowInput{
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		IsRecurring: true,
	}
}

func TestCreateWindows(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{}, &fakeProfileClient{})

	resp, err := svc.CreateWindows(context.Background(), &models.CreateWindowsRequest{
		UserID: 100,
		Windows: []models.WindowInput{
			recurringInput("monday", "09:00", "13:00"),
			recurringInput("monday", "14:00", "18:00"),
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Windows, 2)
	assert.Equal(t, "monday", resp.Windows[0].DayOfWeek)
	assert.Equal(t, "09:00", resp.Windows[0].StartTime)
	assert.Equal(t, int64(100), resp.Windows[0].ProfessionalID)
}

func TestCreateWindows_NumericWeekday(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{}, &fakeProfileClient{})

	// Числовой индекс дня недели (0 - воскресенье)
	resp, err := svc.CreateWindows(context.Background(), &models.CreateWindowsRequest{
		UserID:  100,
		Windows: []models.WindowInput{recurringInput("1", "09:00", "13:00")},
	})
	require.NoError(t, err)
	assert.Equal(t, "monday", resp.Windows[0].DayOfWeek)
}

func TestCreateWindows_OneOff(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{}, &fakeProfileClient{})

	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	resp, err := svc.CreateWindows(context.Background(), &models.CreateWindowsRequest{
		UserID: 100,
		Windows: []models.WindowInput{
			{StartTime: "10:00", EndTime: "14:00", ValidFrom: &day, ValidTo: &day},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Windows, 1)
	assert.False(t, resp.Windows[0].IsRecurring)
	assert.Empty(t, resp.Windows[0].DayOfWeek)
}

func TestCreateWindows_InvalidWindows(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{}, &fakeProfileClient{})

	tests := []struct {
		name  string
		input models.WindowInput
	}{
		{name: "start after end", input: recurringInput("monday", "18:00", "09:00")},
		{name: "bad time format", input: recurringInput("monday", "9am", "17:00")},
		{name: "unknown weekday", input: recurringInput("someday", "09:00", "17:00")},
		{name: "recurring without weekday", input: models.WindowInput{StartTime: "09:00", EndTime: "17:00", IsRecurring: true}},
		{name: "one-off without valid from", input: models.WindowInput{StartTime: "10:00", EndTime: "14:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateWindows(context.Background(), &models.CreateWindowsRequest{
				UserID:  100,
				Windows: []models.WindowInput{tt.input},
			})
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}

func TestCreateWindows_ProfessionalNotFound(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{}, &fakeProfileClient{err: profileservice.ErrNotProfessional})

	_, err := svc.CreateWindows(context.Background(), &models.CreateWindowsRequest{
		UserID:  100,
		Windows: []models.WindowInput{recurringInput("monday", "09:00", "13:00")},
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestReplaceSchedule(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := newTestService(repo, &fakeProfileClient{})

	resp, err := svc.ReplaceSchedule(context.Background(), &models.ReplaceScheduleRequest{
		UserID:  100,
		Windows: []models.WindowInput{recurringInput("tuesday", "10:00", "16:00")},
	})
	require.NoError(t, err)

	// Старое расписание удалено, новое создано
	require.NotNil(t, repo.deletedFor)
	assert.Equal(t, int64(100), *repo.deletedFor)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, "tuesday", resp.Windows[0].DayOfWeek)
}

func TestReplaceSchedule_EmptyClearsSchedule(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := newTestService(repo, &fakeProfileClient{})

	resp, err := svc.ReplaceSchedule(context.Background(), &models.ReplaceScheduleRequest{
		UserID:  100,
		Windows: []models.WindowInput{},
	})
	require.NoError(t, err)

	require.NotNil(t, repo.deletedFor)
	assert.Empty(t, resp.Windows)
}

func TestListForDate_RequiresDate(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{}, &fakeProfileClient{})

	_, err := svc.ListForDate(context.Background(), 100, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteWindow_NotFound(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{deleteErr: availabilityRepo.ErrWindowNotFound}, &fakeProfileClient{})

	err := svc.DeleteWindow(context.Background(), 5, 100)
	assert.ErrorIs(t, err, ErrWindowNotFound)
}
