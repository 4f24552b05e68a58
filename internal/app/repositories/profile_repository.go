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
	"github.com/deniz/eventhub/internal/pkg/logger"
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const profileSelect = `
	SELECT p.user_id, p.full_name, p.bio, p.location, p.picture_url, p.updated_at,
	       u.id, u.username, u.email, u.created_at, u.updated_at
	FROM profiles p
	JOIN users u ON u.id = p.user_id`

// GetByUserID retrieves a profile with its user by the owning user's ID.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := profileSelect + ` WHERE p.user_id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error getting profile: %w", err)
	}

	return profile, nil
}

// List retrieves a page of profiles ordered by username.
func (r *ProfileRepository) List(ctx context.Context, offset uint64, limit int) ([]models.Profile, int64, error) {
	query := profileSelect + `
		ORDER BY u.username ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list profiles query")
		return nil, 0, fmt.Errorf("error querying profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning profile row: %w", err)
		}
		profiles = append(profiles, *profile)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating profile rows: %w", err)
	}

	// Profiles are 1:1 with users, so the user count is the total.
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting profiles: %w", err)
	}

	return profiles, total, nil
}

// Update rewrites the mutable profile columns.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	sql, args, err := r.sb.Update("profiles").
		SetMap(map[string]interface{}{
			"full_name":   profile.FullName,
			"bio":         profile.Bio,
			"location":    profile.Location,
			"picture_url": profile.PictureURL,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	var user models.User
	err := row.Scan(
		&profile.UserID, &profile.FullName, &profile.Bio, &profile.Location,
		&profile.PictureURL, &profile.UpdatedAt,
		&user.ID, &user.Username, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	profile.User = &user
	return &profile, nil
}
