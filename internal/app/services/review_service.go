package services

import (
	"context"
	"fmt"

	"github.com/deniz/eventhub/internal/app/auth"
	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
)

// ReviewStore is the data-access contract the review service consumes.
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	ExistsByEventAndUser(ctx context.Context, eventID, userID int64) (bool, error)
	ListByEvent(ctx context.Context, eventID int64, offset uint64, limit int) ([]models.Review, int64, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int64) error
}

// ReviewService defines the interface for review-related operations
type ReviewService interface {
	ListByEvent(ctx context.Context, caller auth.Caller, eventID int64, page, size int) ([]models.Review, int64, error)
	Create(ctx context.Context, caller auth.Caller, eventID int64, req *dto.CreateReviewRequest) (*models.Review, error)
	Update(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, caller auth.Caller, id int64) error
}

// reviewServiceImpl implements the ReviewService interface
type reviewServiceImpl struct {
	reviews ReviewStore
	events  EventStore
}

// NewReviewService creates a new review service instance
func NewReviewService(reviews ReviewStore, events EventStore) ReviewService {
	return &reviewServiceImpl{reviews: reviews, events: events}
}

func validateRating(rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return apperrors.NewValidationError(fmt.Sprintf("rating must be between %d and %d", models.MinRating, models.MaxRating))
	}
	return nil
}

// ListByEvent returns a page of reviews for an event visible to the caller.
func (s *reviewServiceImpl) ListByEvent(ctx context.Context, caller auth.Caller, eventID int64, page, size int) ([]models.Review, int64, error) {
	if _, err := s.events.GetByID(ctx, auth.ScopeEvents(caller), eventID); err != nil {
		return nil, 0, err
	}

	offset, limit := offsetLimit(page, size)
	return s.reviews.ListByEvent(ctx, eventID, offset, limit)
}

// Create records the caller's review of an event. Rating bounds are checked
// before anything reaches the store. The duplicate pre-check exists for a
// friendlier error message only; the store's unique constraint is the
// authoritative guard, so a race between two creates still yields exactly
// one review and a conflict for the loser.
func (s *reviewServiceImpl) Create(ctx context.Context, caller auth.Caller, eventID int64, req *dto.CreateReviewRequest) (*models.Review, error) {
	if err := auth.AuthorizeWrite(caller, nil, auth.ActionCreate); err != nil {
		return nil, err
	}

	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	if _, err := s.events.GetByID(ctx, auth.ScopeEvents(caller), eventID); err != nil {
		return nil, err
	}

	exists, err := s.reviews.ExistsByEventAndUser(ctx, eventID, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing review: %w", err)
	}
	if exists {
		return nil, apperrors.ErrReviewExists
	}

	review := &models.Review{
		EventID: eventID,
		UserID:  caller.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	review.User = &models.UserSummary{ID: caller.ID, Username: caller.Username}
	return review, nil
}

// Update rewrites the rating and/or comment of the caller's own review.
func (s *reviewServiceImpl) Update(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeWrite(caller, review, auth.ActionUpdate); err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := validateRating(review.Rating); err != nil {
		return nil, err
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Delete removes the caller's own review.
func (s *reviewServiceImpl) Delete(ctx context.Context, caller auth.Caller, id int64) error {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.AuthorizeWrite(caller, review, auth.ActionDelete); err != nil {
		return err
	}

	return s.reviews.Delete(ctx, review.ID)
}
