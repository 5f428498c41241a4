package courtRepo

import (
	"context"

	"courtshare/models"
)

// SearchFilter narrows court listing searches.
type SearchFilter struct {
	City            string
	Surface         string
	Indoor          *bool
	MaxPricePerHour float64
	Limit           int64
	Offset          int64
}

// CourtRepository defines persistence operations for court listings.
type CourtRepository interface {
	Create(ctx context.Context, court *models.Court) error
	GetByID(ctx context.Context, id string) (*models.Court, error)
	Update(ctx context.Context, court *models.Court) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.Court, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.Court, error)
	UpdateAvailability(ctx context.Context, id, subCourtID string, cfg models.AvailabilityConfig) error
	AddPhoto(ctx context.Context, id, publicID string) error
	RemovePhoto(ctx context.Context, id, publicID string) error
}
