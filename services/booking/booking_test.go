package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "courtshare/database/repository/booking"
	courtRepo "courtshare/database/repository/court"
	"courtshare/models"
)

// stubCourtRepo serves a single court. Methods the tests never reach
// come from the embedded nil interface and would panic if called.
type stubCourtRepo struct {
	courtRepo.CourtRepository
	court *models.Court
}

func (s *stubCourtRepo) GetByID(ctx context.Context, id string) (*models.Court, error) {
	if s.court == nil || s.court.ID != id {
		return nil, courtRepo.ErrNotFound
	}
	return s.court, nil
}

type stubBookingRepo struct {
	bookingRepo.BookingRepository
	bookings []models.Booking
}

func (s *stubBookingRepo) ListForSchedule(ctx context.Context, courtID, subCourtID, date string) ([]models.Booking, error) {
	return s.bookings, nil
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func TestAvailableSlotsRejectsInactiveCourt(t *testing.T) {
	svc := &DefaultBookingService{
		CourtRepo: &stubCourtRepo{court: &models.Court{ID: "c-1", Active: false}},
		Repo:      &stubBookingRepo{},
	}

	_, err := svc.AvailableSlots(context.Background(), "c-1", "", tomorrow(), 60)
	assert.ErrorIs(t, err, ErrCourtInactive)
}

func TestAvailableSlotsActiveCourt(t *testing.T) {
	svc := &DefaultBookingService{
		CourtRepo: &stubCourtRepo{court: &models.Court{ID: "c-1", Active: true}},
		Repo: &stubBookingRepo{bookings: []models.Booking{
			{CourtID: "c-1", Date: tomorrow(), Time: "10:00", DurationMinutes: 60, Status: models.BookingStatusConfirmed},
		}},
	}

	slots, err := svc.AvailableSlots(context.Background(), "c-1", "", tomorrow(), 60)
	require.NoError(t, err)
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "11:00")
}

func TestAvailableSlotsUnknownCourt(t *testing.T) {
	svc := &DefaultBookingService{
		CourtRepo: &stubCourtRepo{},
		Repo:      &stubBookingRepo{},
	}

	_, err := svc.AvailableSlots(context.Background(), "missing", "", tomorrow(), 60)
	assert.ErrorIs(t, err, courtRepo.ErrNotFound)
}
