package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtshare/models"
)

func intPtr(v int) *int { return &v }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name      string
		startA    string
		durationA int
		startB    string
		durationB int
		want      bool
	}{
		{name: "back to back do not overlap", startA: "10:00", durationA: 1, startB: "11:00", durationB: 1, want: false},
		{name: "second starts inside first", startA: "10:00", durationA: 2, startB: "11:00", durationB: 1, want: true},
		{name: "identical ranges", startA: "10:00", durationA: 1, startB: "10:00", durationB: 1, want: true},
		{name: "fully disjoint", startA: "08:00", durationA: 1, startB: "15:00", durationB: 2, want: false},
		{name: "first inside second", startA: "11:00", durationA: 1, startB: "10:00", durationB: 3, want: true},
		{name: "touching the other way", startA: "11:00", durationA: 1, startB: "10:00", durationB: 1, want: false},
		{name: "twelve hour input", startA: "10:00 AM", durationA: 2, startB: "11:00", durationB: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RangesOverlap(tt.startA, tt.durationA, tt.startB, tt.durationB)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// The predicate must be symmetric.
			mirrored, err := RangesOverlap(tt.startB, tt.durationB, tt.startA, tt.durationA)
			require.NoError(t, err)
			assert.Equal(t, got, mirrored)
		})
	}

	_, err := RangesOverlap("bogus", 1, "10:00", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsSlotBlocked(t *testing.T) {
	cfg := models.AvailabilityConfig{
		AlwaysBlockedTimes: []string{"12:00"},
		AlwaysBlockedTimesByDayOfWeek: map[string][]string{
			"1": {"09:00"}, // Mondays
		},
		BlockedTimesByDate: map[string][]string{
			"2025-03-14": {"3:00 PM"}, // stored in 12-hour form
		},
	}

	tests := []struct {
		name string
		date string
		time string
		want bool
	}{
		{name: "always blocked", date: "2025-03-12", time: "12:00", want: true},
		{name: "always blocked matches 12-hour query", date: "2025-03-12", time: "12:00 PM", want: true},
		{name: "weekday block on a Monday", date: "2025-03-10", time: "09:00", want: true},
		{name: "weekday block not on other days", date: "2025-03-11", time: "09:00", want: false},
		{name: "one-off date block normalizes stored value", date: "2025-03-14", time: "15:00", want: true},
		{name: "one-off block only on its date", date: "2025-03-15", time: "15:00", want: false},
		{name: "unblocked hour", date: "2025-03-12", time: "10:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsSlotBlocked(cfg, tt.date, tt.time)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := IsSlotBlocked(cfg, "14-03-2025", "10:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsWithinBookingWindow(t *testing.T) {
	today := mustDate(t, "2025-01-01")

	unlimited := models.AvailabilityConfig{}
	ok, err := IsWithinBookingWindow(unlimited, "2030-06-01", today)
	require.NoError(t, err)
	assert.True(t, ok, "nil max days means unlimited")

	cfg := models.AvailabilityConfig{MaxAdvanceBookingDays: intPtr(7)}

	ok, err = IsWithinBookingWindow(cfg, "2025-01-08", today)
	require.NoError(t, err)
	assert.True(t, ok, "boundary day is bookable")

	ok, err = IsWithinBookingWindow(cfg, "2025-01-09", today)
	require.NoError(t, err)
	assert.False(t, ok, "one past the boundary is not")
}

func TestEvaluateCandidate(t *testing.T) {
	today := mustDate(t, "2025-01-01")

	baseCfg := models.AvailabilityConfig{
		MaxAdvanceBookingDays: intPtr(7),
		AlwaysBlockedTimes:    []string{"09:00"},
	}

	tests := []struct {
		name      string
		cfg       models.AvailabilityConfig
		existing  []models.Booking
		candidate models.CandidateBooking
		want      Decision
	}{
		{
			name:      "past date",
			cfg:       baseCfg,
			candidate: models.CandidateBooking{Date: "2024-12-31", Time: "10:00", DurationMinutes: 60},
			want:      Block(ReasonPastDate),
		},
		{
			name:      "beyond advance window",
			cfg:       baseCfg,
			candidate: models.CandidateBooking{Date: "2025-01-09", Time: "10:00", DurationMinutes: 60},
			want:      Block(ReasonBeyondAdvanceWindow),
		},
		{
			name:      "window boundary is allowed",
			cfg:       baseCfg,
			candidate: models.CandidateBooking{Date: "2025-01-08", Time: "10:00", DurationMinutes: 60},
			want:      Allow,
		},
		{
			name:      "start hour blocked",
			cfg:       baseCfg,
			candidate: models.CandidateBooking{Date: "2025-01-03", Time: "09:00", DurationMinutes: 60},
			want:      Block(ReasonSlotBlocked),
		},
		{
			name:      "second hour of a two-hour booking falls on a blocked hour",
			cfg:       baseCfg,
			candidate: models.CandidateBooking{Date: "2025-01-03", Time: "08:00", DurationMinutes: 120},
			want:      Block(ReasonSlotBlocked),
		},
		{
			name: "conflicts with confirmed booking",
			cfg:  models.AvailabilityConfig{},
			existing: []models.Booking{
				{Date: "2025-01-03", Time: "10:00", DurationMinutes: 120, Status: models.BookingStatusConfirmed},
			},
			candidate: models.CandidateBooking{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60},
			want:      Block(ReasonConflictsWithBooking),
		},
		{
			name: "rejected booking never blocks",
			cfg:  models.AvailabilityConfig{},
			existing: []models.Booking{
				{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60, Status: models.BookingStatusRejected},
			},
			candidate: models.CandidateBooking{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60},
			want:      Allow,
		},
		{
			name: "cancelled booking never blocks",
			cfg:  models.AvailabilityConfig{},
			existing: []models.Booking{
				{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60, Status: models.BookingStatusCancelled},
			},
			candidate: models.CandidateBooking{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60},
			want:      Allow,
		},
		{
			name: "pending booking blocks like confirmed",
			cfg:  models.AvailabilityConfig{},
			existing: []models.Booking{
				{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60, Status: models.BookingStatusPending},
			},
			candidate: models.CandidateBooking{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60},
			want:      Block(ReasonConflictsWithBooking),
		},
		{
			name: "back to back with existing booking is allowed",
			cfg:  models.AvailabilityConfig{},
			existing: []models.Booking{
				{Date: "2025-01-03", Time: "10:00", DurationMinutes: 60, Status: models.BookingStatusConfirmed},
			},
			candidate: models.CandidateBooking{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60},
			want:      Allow,
		},
		{
			name: "fractional duration rounds up to whole hours",
			cfg:  models.AvailabilityConfig{},
			existing: []models.Booking{
				{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60, Status: models.BookingStatusConfirmed},
			},
			candidate: models.CandidateBooking{Date: "2025-01-03", Time: "10:00", DurationMinutes: 90},
			want:      Block(ReasonConflictsWithBooking),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateCandidate(tt.cfg, tt.existing, tt.candidate, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateCandidateMixedStatusesOnSameDate(t *testing.T) {
	// A confirmed 10:00-12:00 booking blocks an 11:00 candidate even
	// though a rejected booking sits at 11:00 and would not itself block.
	today := mustDate(t, "2025-01-01")
	existing := []models.Booking{
		{Date: "2025-01-03", Time: "10:00", DurationMinutes: 120, Status: models.BookingStatusConfirmed},
		{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60, Status: models.BookingStatusRejected},
	}
	got, err := EvaluateCandidate(models.AvailabilityConfig{}, existing,
		models.CandidateBooking{Date: "2025-01-03", Time: "11:00", DurationMinutes: 60}, today)
	require.NoError(t, err)
	assert.Equal(t, Block(ReasonConflictsWithBooking), got)
}

func TestEvaluateCandidateInvalidInput(t *testing.T) {
	today := mustDate(t, "2025-01-01")

	_, err := EvaluateCandidate(models.AvailabilityConfig{}, nil,
		models.CandidateBooking{Date: "2025-01-03", Time: "10:00", DurationMinutes: 0}, today)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EvaluateCandidate(models.AvailabilityConfig{}, nil,
		models.CandidateBooking{Date: "03/01/2025", Time: "10:00", DurationMinutes: 60}, today)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EvaluateCandidate(models.AvailabilityConfig{}, nil,
		models.CandidateBooking{Date: "2025-01-03", Time: "sometime", DurationMinutes: 60}, today)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAvailableSlots(t *testing.T) {
	today := mustDate(t, "2025-01-01")
	cfg := models.AvailabilityConfig{
		AlwaysBlockedTimes: []string{"12:00"},
	}
	existing := []models.Booking{
		{Date: "2025-01-03", Time: "10:00", DurationMinutes: 120, Status: models.BookingStatusConfirmed},
	}

	slots, err := ListAvailableSlots(cfg, existing, "2025-01-03", 60, DefaultSlotGrid(), today)
	require.NoError(t, err)

	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "11:00")
	assert.NotContains(t, slots, "12:00")
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "13:00")
	assert.IsNonDecreasing(t, slots)
}

func TestListAvailableSlotsAgreesWithEvaluateCandidate(t *testing.T) {
	// Nothing offered in the slot list may be rejected by the
	// authoritative check, and nothing the check allows may be missing.
	today := mustDate(t, "2025-01-01")
	cfg := models.AvailabilityConfig{
		MaxAdvanceBookingDays: intPtr(14),
		AlwaysBlockedTimes:    []string{"08:00", "19:00"},
		AlwaysBlockedTimesByDayOfWeek: map[string][]string{
			"5": {"06:00", "07:00"},
		},
		BlockedTimesByDate: map[string][]string{
			"2025-01-03": {"14:00"},
		},
	}
	existing := []models.Booking{
		{Date: "2025-01-03", Time: "10:00", DurationMinutes: 120, Status: models.BookingStatusConfirmed},
		{Date: "2025-01-03", Time: "16:00", DurationMinutes: 60, Status: models.BookingStatusPending},
		{Date: "2025-01-03", Time: "17:00", DurationMinutes: 60, Status: models.BookingStatusCancelled},
	}

	for _, duration := range []int{60, 90, 120} {
		slots, err := ListAvailableSlots(cfg, existing, "2025-01-03", duration, DefaultSlotGrid(), today)
		require.NoError(t, err)

		listed := make(map[string]bool, len(slots))
		for _, s := range slots {
			listed[s] = true
		}
		for _, slot := range DefaultSlotGrid() {
			decision, err := EvaluateCandidate(cfg, existing, models.CandidateBooking{
				Date:            "2025-01-03",
				Time:            slot,
				DurationMinutes: duration,
			}, today)
			require.NoError(t, err)
			assert.Equal(t, decision.Allowed, listed[slot],
				"slot %s duration %d: list and evaluate disagree", slot, duration)
		}
	}
}

func TestDefaultSlotGrid(t *testing.T) {
	grid := DefaultSlotGrid()
	require.Len(t, grid, 16)
	assert.Equal(t, "06:00", grid[0])
	assert.Equal(t, "21:00", grid[len(grid)-1])
}
