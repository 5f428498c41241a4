package court

import (
	"context"

	courtRepo "courtshare/database/repository/court"
	"courtshare/models"
	"courtshare/services/storage"
)

// CourtService manages court listings and their availability
// configuration. Mutating operations verify that the caller owns the
// listing; the caller's UID always comes from the identity middleware,
// never from the request body.
type CourtService interface {
	Create(ctx context.Context, ownerID string, court models.Court) (*models.Court, error)
	GetByID(ctx context.Context, id string) (*models.Court, error)
	Update(ctx context.Context, ownerID string, court models.Court) (*models.Court, error)
	Delete(ctx context.Context, ownerID, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.Court, error)
	Search(ctx context.Context, filter courtRepo.SearchFilter) ([]models.Court, error)

	// SetAvailability normalizes and stores a listing-level or
	// sub-court-level availability config.
	SetAvailability(ctx context.Context, ownerID, courtID, subCourtID string, cfg models.AvailabilityConfig) error

	AttachPhoto(ctx context.Context, ownerID, courtID, localFilePath string) (string, error)
	RemovePhoto(ctx context.Context, ownerID, courtID, publicID string) error
}

// DefaultCourtService is the production implementation.
type DefaultCourtService struct {
	Repo    courtRepo.CourtRepository
	Storage storage.StorageService
}
