package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_IsOver(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	appt := &Appointment{StartAt: start, DurationMinutes: 30}

	end := start.Add(30 * time.Minute)

	assert.False(t, appt.IsOver(start), "not over at start")
	assert.False(t, appt.IsOver(end.Add(-time.Second)), "not over just before the end")
	assert.True(t, appt.IsOver(end), "over exactly at the end")
	assert.True(t, appt.IsOver(end.Add(time.Minute)), "over after the end")
}

func TestAppointment_Overlaps(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	appt := &Appointment{StartAt: start, DurationMinutes: 60} // 14:00-15:00

	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{"identical slot", start, 60, true},
		{"starts inside", start.Add(30 * time.Minute), 60, true},
		{"ends inside", start.Add(-30 * time.Minute), 60, true},
		{"contains", start.Add(-30 * time.Minute), 120, true},
		{"contained", start.Add(15 * time.Minute), 15, true},
		{"back to back before", start.Add(-60 * time.Minute), 60, false},
		{"back to back after", start.Add(60 * time.Minute), 60, false},
		{"well before", start.Add(-3 * time.Hour), 60, false},
		{"well after", start.Add(3 * time.Hour), 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appt.Overlaps(tt.start, tt.duration))
		})
	}
}

func TestAppointment_EndAt(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)
	appt := &Appointment{StartAt: start, DurationMinutes: 45}
	assert.Equal(t, start.Add(45*time.Minute), appt.EndAt())
}
