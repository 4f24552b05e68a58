package services

import (
	"context"

	"github.com/deniz/eventhub/internal/app/auth"
	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
)

// ProfileStore is the data-access contract the profile service consumes.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	List(ctx context.Context, offset uint64, limit int) ([]models.Profile, int64, error)
	Update(ctx context.Context, profile *models.Profile) error
}

// ProfileService defines the interface for profile-related operations
type ProfileService interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	List(ctx context.Context, page, size int) ([]models.Profile, int64, error)
	Update(ctx context.Context, caller auth.Caller, userID int64, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	profiles ProfileStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(profiles ProfileStore) ProfileService {
	return &profileServiceImpl{profiles: profiles}
}

// GetByUserID retrieves a profile; profiles are publicly readable.
func (s *profileServiceImpl) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("invalid user ID")
	}
	return s.profiles.GetByUserID(ctx, userID)
}

// List retrieves a page of profiles.
func (s *profileServiceImpl) List(ctx context.Context, page, size int) ([]models.Profile, int64, error) {
	offset, limit := offsetLimit(page, size)
	return s.profiles.List(ctx, offset, limit)
}

// Update applies a partial update to a profile. Only the owning user may
// change it.
func (s *profileServiceImpl) Update(ctx context.Context, caller auth.Caller, userID int64, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeWrite(caller, profile, auth.ActionUpdate); err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.PictureURL != nil {
		profile.PictureURL = *req.PictureURL
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
