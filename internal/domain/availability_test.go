package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FSM-SchedulingService/pkg/types"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Weekday
		wantErr bool
	}{
		{name: "lowercase name", input: "monday", want: Monday},
		{name: "mixed case name", input: "Friday", want: Friday},
		{name: "numeric sunday", input: "0", want: Sunday},
		{name: "numeric monday", input: "1", want: Monday},
		{name: "numeric saturday", input: "6", want: Saturday},
		{name: "numeric out of range", input: "7", wantErr: true},
		{name: "negative index", input: "-1", wantErr: true},
		{name: "unknown name", input: "someday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidWeekday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailabilityWindow_Validate(t *testing.T) {
	tests := []struct {
		name    string
		window  AvailabilityWindow
		wantErr bool
	}{
		{
			name:   "valid recurring",
			window: AvailabilityWindow{DayOfWeek: Monday, StartTime: "09:00", EndTime: "17:00", IsRecurring: true},
		},
		{
			name:   "valid one-off without weekday",
			window: AvailabilityWindow{StartTime: "09:00", EndTime: "12:00", ValidFrom: datePtr(2026, 3, 16)},
		},
		{
			name:    "start equals end",
			window:  AvailabilityWindow{DayOfWeek: Monday, StartTime: "09:00", EndTime: "09:00", IsRecurring: true},
			wantErr: true,
		},
		{
			name:    "start after end",
			window:  AvailabilityWindow{DayOfWeek: Monday, StartTime: "17:00", EndTime: "09:00", IsRecurring: true},
			wantErr: true,
		},
		{
			name:    "invalid start format",
			window:  AvailabilityWindow{DayOfWeek: Monday, StartTime: "9am", EndTime: "17:00", IsRecurring: true},
			wantErr: true,
		},
		{
			name:    "recurring without weekday",
			window:  AvailabilityWindow{StartTime: "09:00", EndTime: "17:00", IsRecurring: true},
			wantErr: true,
		},
		{
			name:    "one-off without valid from",
			window:  AvailabilityWindow{StartTime: "09:00", EndTime: "12:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWindow)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAvailabilityWindow_AppliesTo(t *testing.T) {
	// 2026-03-16 - понедельник
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		window AvailabilityWindow
		date   time.Time
		want   bool
	}{
		{
			name:   "recurring matching weekday",
			window: AvailabilityWindow{DayOfWeek: Monday, StartTime: "09:00", EndTime: "17:00", IsRecurring: true},
			date:   monday,
			want:   true,
		},
		{
			name:   "recurring wrong weekday",
			window: AvailabilityWindow{DayOfWeek: Monday, StartTime: "09:00", EndTime: "17:00", IsRecurring: true},
			date:   tuesday,
			want:   false,
		},
		{
			name: "recurring before valid_from",
			window: AvailabilityWindow{
				DayOfWeek: Monday, StartTime: "09:00", EndTime: "17:00", IsRecurring: true,
				ValidFrom: datePtr(2026, 3, 23),
			},
			date: monday,
			want: false,
		},
		{
			name: "recurring after valid_to",
			window: AvailabilityWindow{
				DayOfWeek: Monday, StartTime: "09:00", EndTime: "17:00", IsRecurring: true,
				ValidTo: datePtr(2026, 3, 9),
			},
			date: monday,
			want: false,
		},
		{
			name: "recurring inside validity bounds",
			window: AvailabilityWindow{
				DayOfWeek: Monday, StartTime: "09:00", EndTime: "17:00", IsRecurring: true,
				ValidFrom: datePtr(2026, 3, 16), ValidTo: datePtr(2026, 3, 16),
			},
			date: monday,
			want: true,
		},
		{
			name:   "one-off matching date",
			window: AvailabilityWindow{StartTime: "09:00", EndTime: "12:00", ValidFrom: datePtr(2026, 3, 16), ValidTo: datePtr(2026, 3, 16)},
			date:   monday,
			want:   true,
		},
		{
			name:   "one-off open upper bound",
			window: AvailabilityWindow{StartTime: "09:00", EndTime: "12:00", ValidFrom: datePtr(2026, 3, 10)},
			date:   tuesday,
			want:   true,
		},
		{
			name:   "one-off before range",
			window: AvailabilityWindow{StartTime: "09:00", EndTime: "12:00", ValidFrom: datePtr(2026, 3, 17)},
			date:   monday,
			want:   false,
		},
		{
			name:   "one-off without valid_from never applies",
			window: AvailabilityWindow{StartTime: "09:00", EndTime: "12:00"},
			date:   monday,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.AppliesTo(tt.date))
		})
	}
}

func TestAvailabilityWindow_Covers(t *testing.T) {
	w := AvailabilityWindow{StartTime: "09:00", EndTime: "17:00"}

	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  bool
	}{
		{name: "fully inside", start: "10:00", end: "11:00", want: true},
		{name: "exact window bounds", start: "09:00", end: "17:00", want: true},
		{name: "starts before window", start: "08:30", end: "10:00", want: false},
		{name: "ends after window", start: "16:30", end: "17:30", want: false},
		{name: "completely outside", start: "18:00", end: "19:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Covers(tt.start, tt.end))
		})
	}
}

func TestWeekdayFromTime(t *testing.T) {
	assert.Equal(t, Monday, WeekdayFromTime(time.Monday))
	assert.Equal(t, Sunday, WeekdayFromTime(time.Sunday))
	assert.Equal(t, Saturday, WeekdayFromTime(time.Saturday))
}
