package user

import (
	"context"

	userRepo "courtshare/database/repository/user"
	"courtshare/models"
)

// UserService manages profile records for authenticated accounts.
// Identity itself is owned by Firebase; this service only stores the
// profile attached to a verified UID.
type UserService interface {
	// EnsureProfile returns the profile for a verified UID, creating it
	// on first sight.
	EnsureProfile(ctx context.Context, uid, email string) (*models.User, error)
	GetByID(ctx context.Context, uid string) (*models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (*models.User, error)
	UpdateFCMToken(ctx context.Context, uid, token string) error
	Delete(ctx context.Context, uid string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
