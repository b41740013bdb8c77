package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to completed", from: StatusPending, to: StatusCompleted, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pending to pending", from: StatusPending, to: StatusPending, want: false},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "confirmed to confirmed", from: StatusConfirmed, to: StatusConfirmed, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "cancelled to cancelled", from: StatusCancelled, to: StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointment_Overlaps(t *testing.T) {
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	appointment := &Appointment{
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want bool
	}{
		{name: "ends exactly at start", from: day.Add(9 * time.Hour), to: day.Add(10 * time.Hour), want: false},
		{name: "starts exactly at end", from: day.Add(11 * time.Hour), to: day.Add(12 * time.Hour), want: false},
		{name: "partial overlap from the right", from: day.Add(10*time.Hour + 30*time.Minute), to: day.Add(11*time.Hour + 30*time.Minute), want: true},
		{name: "partial overlap from the left", from: day.Add(9*time.Hour + 30*time.Minute), to: day.Add(10*time.Hour + 30*time.Minute), want: true},
		{name: "fully inside", from: day.Add(10*time.Hour + 15*time.Minute), to: day.Add(10*time.Hour + 45*time.Minute), want: true},
		{name: "fully covers", from: day.Add(9 * time.Hour), to: day.Add(12 * time.Hour), want: true},
		{name: "disjoint before", from: day.Add(8 * time.Hour), to: day.Add(9 * time.Hour), want: false},
		{name: "disjoint after", from: day.Add(12 * time.Hour), to: day.Add(13 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appointment.Overlaps(tt.from, tt.to))
		})
	}
}

func TestAppointment_Blocks(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).Blocks())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).Blocks())
	assert.True(t, (&Appointment{Status: StatusCompleted}).Blocks())
	assert.False(t, (&Appointment{Status: StatusCancelled}).Blocks())
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeCancelled())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("pending"))
	assert.True(t, IsValidStatus("confirmed"))
	assert.True(t, IsValidStatus("completed"))
	assert.True(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus("canceled"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("PENDING"))
}
