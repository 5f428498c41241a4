package userRepo

import (
	"context"
	"errors"

	"courtshare/models"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// UserRepository defines persistence operations for user profiles.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	UpdateFCMToken(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
}
