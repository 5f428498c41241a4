// Package availability decides whether court time may be booked. It is
// the single authority consulted by both the slot-list endpoint and the
// booking-creation flow, so the times a player is offered can never be
// rejected later purely because two copies of the rules drifted apart.
// The engine is pure and performs no I/O; callers fetch the court's
// configuration and the day's bookings and hand them in.
package availability

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"courtshare/models"
)

// Reason codes for a blocked decision.
type Reason string

const (
	ReasonPastDate             Reason = "past_date"
	ReasonBeyondAdvanceWindow  Reason = "beyond_advance_window"
	ReasonSlotBlocked          Reason = "slot_blocked"
	ReasonConflictsWithBooking Reason = "conflicts_with_booking"
)

// Decision is the outcome of evaluating a candidate booking. A blocked
// decision is an ordinary negative result, not an error.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  Reason `json:"reason,omitempty"`
}

// Allow is the positive decision.
var Allow = Decision{Allowed: true}

// Block builds a negative decision with the given reason.
func Block(r Reason) Decision {
	return Decision{Reason: r}
}

// RangesOverlap reports whether two bookings of the given start times
// and whole-hour durations overlap. Intervals are half-open: a booking
// ending exactly when another starts does not conflict.
func RangesOverlap(startA string, durationHoursA int, startB string, durationHoursB int) (bool, error) {
	aStart, err := minutesOfDay(startA)
	if err != nil {
		return false, err
	}
	bStart, err := minutesOfDay(startB)
	if err != nil {
		return false, err
	}
	aEnd := aStart + durationHoursA*60
	bEnd := bStart + durationHoursB*60
	return aStart < bEnd && bStart < aEnd, nil
}

// IsSlotBlocked reports whether the owner has blocked the given hour on
// the given date, through any of the three block sources. Union
// semantics: any one source blocking the slot blocks it.
func IsSlotBlocked(cfg models.AvailabilityConfig, date, timeOfDay string) (bool, error) {
	t, err := NormalizeTime(timeOfDay)
	if err != nil {
		return false, err
	}

	if blocked, err := containsNormalized(cfg.AlwaysBlockedTimes, t); err != nil || blocked {
		return blocked, err
	}

	d, err := parseDate(date)
	if err != nil {
		return false, err
	}
	weekday := strconv.Itoa(int(d.Weekday()))
	if blocked, err := containsNormalized(cfg.AlwaysBlockedTimesByDayOfWeek[weekday], t); err != nil || blocked {
		return blocked, err
	}
	return containsNormalized(cfg.BlockedTimesByDate[date], t)
}

// IsWithinBookingWindow reports whether date falls within the court's
// maximum-advance-booking window, counted from today. A nil limit
// means unlimited. The boundary day itself is bookable. Past dates are
// handled by a separate, always-enforced check in EvaluateCandidate.
func IsWithinBookingWindow(cfg models.AvailabilityConfig, date string, today time.Time) (bool, error) {
	if cfg.MaxAdvanceBookingDays == nil {
		return true, nil
	}
	d, err := parseDate(date)
	if err != nil {
		return false, err
	}
	latest := dayOnly(today).AddDate(0, 0, *cfg.MaxAdvanceBookingDays)
	return !dayOnly(d).After(latest), nil
}

// EvaluateCandidate applies the booking rules in order and returns the
// first failure: past date, advance window, blocked hours, then
// conflicts against existing bookings. Only pending and confirmed
// bookings occupy the schedule. A multi-hour candidate is rejected if
// any hour it spans is blocked, not just its starting hour.
func EvaluateCandidate(
	cfg models.AvailabilityConfig,
	existing []models.Booking,
	candidate models.CandidateBooking,
	today time.Time,
) (Decision, error) {
	if candidate.DurationMinutes <= 0 {
		return Decision{}, invalidInputf("non-positive duration %d", candidate.DurationMinutes)
	}

	date, err := parseDate(candidate.Date)
	if err != nil {
		return Decision{}, err
	}
	if dayOnly(date).Before(dayOnly(today)) {
		return Block(ReasonPastDate), nil
	}

	within, err := IsWithinBookingWindow(cfg, candidate.Date, today)
	if err != nil {
		return Decision{}, err
	}
	if !within {
		return Block(ReasonBeyondAdvanceWindow), nil
	}

	startMinutes, err := minutesOfDay(candidate.Time)
	if err != nil {
		return Decision{}, err
	}
	durationHours := (candidate.DurationMinutes + 59) / 60
	startHour := startMinutes / 60
	for h := startHour; h < startHour+durationHours; h++ {
		blocked, err := IsSlotBlocked(cfg, candidate.Date, fmt.Sprintf("%02d:00", h))
		if err != nil {
			return Decision{}, err
		}
		if blocked {
			return Block(ReasonSlotBlocked), nil
		}
	}

	for _, b := range existing {
		if !b.OccupiesSchedule() {
			continue
		}
		existingHours := (b.DurationMinutes + 59) / 60
		overlaps, err := RangesOverlap(candidate.Time, durationHours, b.Time, existingHours)
		if err != nil {
			return Decision{}, err
		}
		if overlaps {
			return Block(ReasonConflictsWithBooking), nil
		}
	}

	return Allow, nil
}

// ListAvailableSlots filters the candidate slot grid through
// EvaluateCandidate and returns the bookable start times for the date
// in ascending order. It shares the exact decision path with the
// authoritative server-side check.
func ListAvailableSlots(
	cfg models.AvailabilityConfig,
	existing []models.Booking,
	date string,
	durationMinutes int,
	candidateTimeSlots []string,
	today time.Time,
) ([]string, error) {
	available := make([]string, 0, len(candidateTimeSlots))
	for _, slot := range candidateTimeSlots {
		normalized, err := NormalizeTime(slot)
		if err != nil {
			return nil, err
		}
		decision, err := EvaluateCandidate(cfg, existing, models.CandidateBooking{
			Date:            date,
			Time:            normalized,
			DurationMinutes: durationMinutes,
		}, today)
		if err != nil {
			return nil, err
		}
		if decision.Allowed {
			available = append(available, normalized)
		}
	}
	sort.Strings(available)
	return available, nil
}

// DefaultSlotGrid is the fixed daily grid of hourly start times offered
// in the booking UI, 06:00 through 21:00.
func DefaultSlotGrid() []string {
	grid := make([]string, 0, 16)
	for h := 6; h <= 21; h++ {
		grid = append(grid, fmt.Sprintf("%02d:00", h))
	}
	return grid
}

// containsNormalized compares after normalizing each stored value, so
// configs written in 12-hour form still block correctly.
func containsNormalized(times []string, normalized string) (bool, error) {
	for _, raw := range times {
		t, err := NormalizeTime(raw)
		if err != nil {
			return false, err
		}
		if t == normalized {
			return true, nil
		}
	}
	return false, nil
}
