package court

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	courtRepo "courtshare/database/repository/court"
	"courtshare/models"
	"courtshare/services/availability"
)

func (s *DefaultCourtService) Create(ctx context.Context, ownerID string, court models.Court) (*models.Court, error) {
	now := time.Now()
	court.ID = uuid.New().String()
	court.OwnerID = ownerID
	court.Active = true
	court.CreatedAt = now
	court.UpdatedAt = now

	for i := range court.SubCourts {
		if court.SubCourts[i].ID == "" {
			court.SubCourts[i].ID = uuid.New().String()
		}
	}

	normalized, err := normalizeConfig(court.Availability)
	if err != nil {
		return nil, err
	}
	court.Availability = normalized
	for i, sc := range court.SubCourts {
		if sc.Availability == nil {
			continue
		}
		cfg, err := normalizeConfig(*sc.Availability)
		if err != nil {
			return nil, err
		}
		court.SubCourts[i].Availability = &cfg
	}

	if err := s.Repo.Create(ctx, &court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (s *DefaultCourtService) GetByID(ctx context.Context, id string) (*models.Court, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCourtService) Update(ctx context.Context, ownerID string, court models.Court) (*models.Court, error) {
	current, err := s.ownedCourt(ctx, ownerID, court.ID)
	if err != nil {
		return nil, err
	}

	current.Name = court.Name
	current.Description = court.Description
	current.Address = court.Address
	current.City = court.City
	current.Surface = court.Surface
	current.Indoor = court.Indoor
	current.PricePerHour = court.PricePerHour
	current.Currency = court.Currency
	current.Active = court.Active

	if err := s.Repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DefaultCourtService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.ownedCourt(ctx, ownerID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultCourtService) ListByOwner(ctx context.Context, ownerID string) ([]models.Court, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *DefaultCourtService) Search(ctx context.Context, filter courtRepo.SearchFilter) ([]models.Court, error) {
	return s.Repo.Search(ctx, filter)
}

func (s *DefaultCourtService) SetAvailability(ctx context.Context, ownerID, courtID, subCourtID string, cfg models.AvailabilityConfig) error {
	current, err := s.ownedCourt(ctx, ownerID, courtID)
	if err != nil {
		return err
	}
	if subCourtID != "" && !current.HasSubCourt(subCourtID) {
		return ErrUnknownSubCourt
	}

	normalized, err := normalizeConfig(cfg)
	if err != nil {
		return err
	}
	return s.Repo.UpdateAvailability(ctx, courtID, subCourtID, normalized)
}

func (s *DefaultCourtService) AttachPhoto(ctx context.Context, ownerID, courtID, localFilePath string) (string, error) {
	if _, err := s.ownedCourt(ctx, ownerID, courtID); err != nil {
		return "", err
	}

	publicID, err := s.Storage.UploadFile(ctx, localFilePath, "courts/"+courtID)
	if err != nil {
		return "", err
	}
	if err := s.Repo.AddPhoto(ctx, courtID, publicID); err != nil {
		return "", err
	}
	return s.Storage.GetDownloadURL(publicID), nil
}

func (s *DefaultCourtService) RemovePhoto(ctx context.Context, ownerID, courtID, publicID string) error {
	if _, err := s.ownedCourt(ctx, ownerID, courtID); err != nil {
		return err
	}
	if err := s.Repo.RemovePhoto(ctx, courtID, publicID); err != nil {
		return err
	}
	return s.Storage.DeleteFile(ctx, publicID)
}

func (s *DefaultCourtService) ownedCourt(ctx context.Context, ownerID, courtID string) (*models.Court, error) {
	current, err := s.Repo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if current.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return current, nil
}

// normalizeConfig canonicalizes every time in the config through the
// availability engine so stored data compares correctly at read time,
// and validates the map keys.
func normalizeConfig(cfg models.AvailabilityConfig) (models.AvailabilityConfig, error) {
	if cfg.MaxAdvanceBookingDays != nil && *cfg.MaxAdvanceBookingDays < 0 {
		return models.AvailabilityConfig{}, fmt.Errorf("%w: negative advance booking window", ErrInvalidConfig)
	}

	out := models.AvailabilityConfig{MaxAdvanceBookingDays: cfg.MaxAdvanceBookingDays}

	var err error
	if out.AlwaysBlockedTimes, err = normalizeTimes(cfg.AlwaysBlockedTimes); err != nil {
		return models.AvailabilityConfig{}, err
	}

	if len(cfg.AlwaysBlockedTimesByDayOfWeek) > 0 {
		out.AlwaysBlockedTimesByDayOfWeek = make(map[string][]string, len(cfg.AlwaysBlockedTimesByDayOfWeek))
		for day, times := range cfg.AlwaysBlockedTimesByDayOfWeek {
			n, convErr := strconv.Atoi(day)
			if convErr != nil || n < 0 || n > 6 {
				return models.AvailabilityConfig{}, fmt.Errorf("%w: day-of-week key %q", ErrInvalidConfig, day)
			}
			if out.AlwaysBlockedTimesByDayOfWeek[day], err = normalizeTimes(times); err != nil {
				return models.AvailabilityConfig{}, err
			}
		}
	}

	if len(cfg.BlockedTimesByDate) > 0 {
		out.BlockedTimesByDate = make(map[string][]string, len(cfg.BlockedTimesByDate))
		for date, times := range cfg.BlockedTimesByDate {
			if _, parseErr := time.Parse("2006-01-02", date); parseErr != nil {
				return models.AvailabilityConfig{}, fmt.Errorf("%w: date key %q", ErrInvalidConfig, date)
			}
			if out.BlockedTimesByDate[date], err = normalizeTimes(times); err != nil {
				return models.AvailabilityConfig{}, err
			}
		}
	}

	return out, nil
}

func normalizeTimes(times []string) ([]string, error) {
	if len(times) == 0 {
		return nil, nil
	}
	out := make([]string, len(times))
	for i, t := range times {
		normalized, err := availability.NormalizeTime(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		out[i] = normalized
	}
	return out, nil
}
