package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "courtshare/database/repository/booking"
	"courtshare/models"
	"courtshare/services/availability"
	"courtshare/services/tasks"
	"courtshare/utils"
)

func (s *DefaultBookingService) AvailableSlots(ctx context.Context, courtID, subCourtID, date string, durationMinutes int) ([]string, error) {
	if err := s.validateDateAndDuration(date, durationMinutes); err != nil {
		return nil, err
	}

	court, err := s.CourtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	// Same gate as Create, so the UI never offers times the create
	// flow would refuse.
	if !court.Active {
		return nil, ErrCourtInactive
	}
	if subCourtID != "" && !court.HasSubCourt(subCourtID) {
		return nil, fmt.Errorf("%w: unknown sub-court %s", ErrValidation, subCourtID)
	}

	existing, err := s.Repo.ListForSchedule(ctx, courtID, subCourtID, date)
	if err != nil {
		return nil, err
	}

	return availability.ListAvailableSlots(
		court.ConfigFor(subCourtID),
		existing,
		date,
		durationMinutes,
		availability.DefaultSlotGrid(),
		time.Now(),
	)
}

// Create reserves a short-lived pending hold for the slot and opens a
// checkout session for it. The hold is written through the repository's
// transactional conditional insert so two concurrent requests for
// overlapping slots cannot both land, and it expires if payment is
// abandoned.
func (s *DefaultBookingService) Create(ctx context.Context, userID string, req CreateBookingRequest) (*models.CheckoutResult, error) {
	logger := utils.GetLogger()

	if err := s.validateDateAndDuration(req.Date, req.DurationMinutes); err != nil {
		return nil, err
	}
	startTime, err := availability.NormalizeTime(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	court, err := s.CourtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}
	if !court.Active {
		return nil, ErrCourtInactive
	}
	if req.SubCourtID != "" && !court.HasSubCourt(req.SubCourtID) {
		return nil, fmt.Errorf("%w: unknown sub-court %s", ErrValidation, req.SubCourtID)
	}

	cfg := court.ConfigFor(req.SubCourtID)
	now := time.Now()

	candidate := models.CandidateBooking{
		CourtID:         req.CourtID,
		SubCourtID:      req.SubCourtID,
		Date:            req.Date,
		Time:            startTime,
		DurationMinutes: req.DurationMinutes,
	}

	// First pass: cheap rejection with a user-facing reason. The
	// authoritative check re-runs inside the insert transaction.
	existing, err := s.Repo.ListForSchedule(ctx, req.CourtID, req.SubCourtID, req.Date)
	if err != nil {
		return nil, err
	}
	decision, err := availability.EvaluateCandidate(cfg, existing, candidate, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !decision.Allowed {
		return nil, blockedError(decision.Reason, cfg)
	}

	hold := &models.Booking{
		ID:              uuid.New().String(),
		CourtID:         court.ID,
		SubCourtID:      req.SubCourtID,
		UserID:          userID,
		OwnerID:         court.OwnerID,
		Date:            req.Date,
		Time:            startTime,
		DurationMinutes: req.DurationMinutes,
		Status:          models.BookingStatusPending,
		TotalAmount:     MinorUnitAmount(court.PricePerHour, req.DurationMinutes),
		Currency:        court.Currency,
		PaymentStatus:   models.PaymentStatusAwaiting,
		HoldExpiresAt:   now.Add(s.HoldTTL),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.CreateIfAvailable(ctx, cfg, hold, now); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotConflict) {
			return nil, blockedError(availability.ReasonConflictsWithBooking, cfg)
		}
		return nil, err
	}

	checkoutURL, sessionID, err := s.createCheckoutSession(court, hold)
	if err != nil {
		// Release the hold so the slot is not stranded behind a session
		// that never opened.
		if cancelErr := s.Repo.UpdateStatus(ctx, hold.ID, models.BookingStatusPending, models.BookingStatusCancelled); cancelErr != nil {
			logger.Error("failed to release hold after checkout failure",
				zap.String("bookingID", hold.ID), zap.Error(cancelErr))
		}
		return nil, fmt.Errorf("failed to open checkout session: %w", err)
	}
	if err := s.Repo.SetCheckoutSession(ctx, hold.ID, sessionID); err != nil {
		logger.Error("failed to attach checkout session to hold",
			zap.String("bookingID", hold.ID), zap.Error(err))
	}

	s.scheduleHoldExpiry(hold)
	s.Notifier.NotifyBookingEvent(court.OwnerID,
		"New booking request",
		fmt.Sprintf("%s on %s at %s", court.Name, hold.Date, hold.Time),
		map[string]string{"bookingId": hold.ID, "courtId": court.ID})

	return &models.CheckoutResult{
		BookingID:   hold.ID,
		CheckoutURL: checkoutURL,
		Amount:      hold.TotalAmount,
		Currency:    hold.Currency,
		ExpiresAt:   hold.HoldExpiresAt.Format(time.RFC3339),
	}, nil
}

func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultBookingService) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// ExpireHold releases an unpaid hold whose TTL has passed. Called from
// the background worker; a hold that was paid in the meantime is left
// alone.
func (s *DefaultBookingService) ExpireHold(ctx context.Context, bookingID string) error {
	released, err := s.Repo.CancelIfUnpaid(ctx, bookingID)
	if err != nil {
		return err
	}
	if released {
		utils.GetLogger().Info("released expired booking hold", zap.String("bookingID", bookingID))
	}
	return nil
}

func (s *DefaultBookingService) scheduleHoldExpiry(hold *models.Booking) {
	logger := utils.GetLogger()
	if s.TaskClient == nil {
		logger.Warn("no task client configured, hold will not auto-expire",
			zap.String("bookingID", hold.ID))
		return
	}
	task, opts, err := tasks.NewHoldExpiryTask(models.HoldExpiryPayload{BookingID: hold.ID}, hold.HoldExpiresAt)
	if err != nil {
		logger.Error("failed to build hold expiry task",
			zap.String("bookingID", hold.ID), zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		logger.Error("failed to enqueue hold expiry task",
			zap.String("bookingID", hold.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) validateDateAndDuration(date string, durationMinutes int) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	if s.MaxDuration > 0 && durationMinutes > s.MaxDuration {
		return fmt.Errorf("%w: duration exceeds %d minutes", ErrValidation, s.MaxDuration)
	}
	return nil
}
