package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
	"github.com/deniz/eventhub/internal/pkg/dberrors"
	"github.com/deniz/eventhub/internal/pkg/logger"
)

// ReviewRepository handles review database operations
type ReviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new review. A unique violation on (event_id, user_id)
// means the author already reviewed this event; the constraint, not the
// service-level pre-check, is the authoritative guard against races.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	sql, args, err := r.sb.Insert("reviews").
		Columns("event_id", "user_id", "rating", "comment").
		Values(review.EventID, review.UserID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create review query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrReviewExists
		}
		logger.Error().Err(err).Int64("eventID", review.EventID).Msg("Error executing create review query")
		return fmt.Errorf("error creating review: %w", err)
	}

	return nil
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, r.rating, r.comment, r.created_at,
		       u.username, COALESCE(p.full_name, '')
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		LEFT JOIN profiles p ON p.user_id = r.user_id
		WHERE r.id = $1`

	var review models.Review
	var user models.UserSummary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID, &review.EventID, &review.UserID, &review.Rating, &review.Comment,
		&review.CreatedAt, &user.Username, &user.FullName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, fmt.Errorf("error querying review: %w", err)
	}

	user.ID = review.UserID
	review.User = &user
	return &review, nil
}

// ExistsByEventAndUser reports whether the user already reviewed the event.
// Only an optimization for a friendlier error; the unique constraint decides.
func (r *ReviewRepository) ExistsByEventAndUser(ctx context.Context, eventID, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE event_id = $1 AND user_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, eventID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking review existence: %w", err)
	}

	return exists, nil
}

// ListByEvent retrieves a page of reviews for an event, newest first.
func (r *ReviewRepository) ListByEvent(ctx context.Context, eventID int64, offset uint64, limit int) ([]models.Review, int64, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, r.rating, r.comment, r.created_at,
		       u.username, COALESCE(p.full_name, ''), COUNT(*) OVER() AS total_count
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		LEFT JOIN profiles p ON p.user_id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, eventID, limit, offset)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Msg("Error executing list reviews query")
		return nil, 0, fmt.Errorf("error querying reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	var total int64
	for rows.Next() {
		var review models.Review
		var user models.UserSummary
		err := rows.Scan(
			&review.ID, &review.EventID, &review.UserID, &review.Rating, &review.Comment,
			&review.CreatedAt, &user.Username, &user.FullName, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning review row: %w", err)
		}
		user.ID = review.UserID
		review.User = &user
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, total, nil
}

// Update rewrites the rating and comment of a review. Event and author are
// immutable after creation.
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	sql, args, err := r.sb.Update("reviews").
		SetMap(map[string]interface{}{
			"rating":     review.Rating,
			"comment":    review.Comment,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": review.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update review query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reviewID", review.ID).Msg("Error executing update review query")
		return fmt.Errorf("error updating review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review by ID
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete review query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reviewID", id).Msg("Error executing delete review query")
		return fmt.Errorf("error deleting review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}
