package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"pending to rejected", BookingStatusPending, BookingStatusRejected, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"confirmed to cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed to rejected", BookingStatusConfirmed, BookingStatusRejected, false},
		{"confirmed to pending", BookingStatusConfirmed, BookingStatusPending, false},
		{"rejected is terminal", BookingStatusRejected, BookingStatusCancelled, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusConfirmed, false},
		{"unknown status", "draft", BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestOccupiesSchedule(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, true},
		{BookingStatusRejected, false},
		{BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			b := Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.OccupiesSchedule())
		})
	}
}

func TestConfigFor(t *testing.T) {
	days := 7
	override := &AvailabilityConfig{AlwaysBlockedTimes: []string{"09:00"}}
	c := Court{
		Availability: AvailabilityConfig{MaxAdvanceBookingDays: &days},
		SubCourts: []SubCourt{
			{ID: "sc-1", Name: "Court A", Availability: override},
			{ID: "sc-2", Name: "Court B"},
		},
	}

	t.Run("listing-level config for empty sub-court", func(t *testing.T) {
		got := c.ConfigFor("")
		assert.Equal(t, &days, got.MaxAdvanceBookingDays)
	})

	t.Run("sub-court override wins", func(t *testing.T) {
		got := c.ConfigFor("sc-1")
		assert.Equal(t, []string{"09:00"}, got.AlwaysBlockedTimes)
		assert.Nil(t, got.MaxAdvanceBookingDays)
	})

	t.Run("sub-court without override inherits", func(t *testing.T) {
		got := c.ConfigFor("sc-2")
		assert.Equal(t, &days, got.MaxAdvanceBookingDays)
	})
}
