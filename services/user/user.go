package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "courtshare/database/repository/user"
	"courtshare/models"
)

func (s *DefaultUserService) EnsureProfile(ctx context.Context, uid, email string) (*models.User, error) {
	existing, err := s.Repo.GetByID(ctx, uid)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up profile for %s: %w", uid, err)
	}

	now := time.Now()
	profile := &models.User{
		ID:        uid,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, uid string) (*models.User, error) {
	return s.Repo.GetByID(ctx, uid)
}

// UpdateProfile stores mutable profile fields. The UID and email come
// from the identity provider and are never changed here.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	current, err := s.Repo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	current.Name = user.Name
	current.Phone = user.Phone
	if err := s.Repo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, uid, token string) error {
	return s.Repo.UpdateFCMToken(ctx, uid, token)
}

func (s *DefaultUserService) Delete(ctx context.Context, uid string) error {
	return s.Repo.Delete(ctx, uid)
}
