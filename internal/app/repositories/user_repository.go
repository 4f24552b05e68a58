package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/db"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
	"github.com/deniz/eventhub/internal/pkg/dberrors"
	"github.com/deniz/eventhub/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateWithProfile inserts a user and its profile in one transaction, so a
// user row never exists without a profile row.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userSQL := `
			INSERT INTO users (username, email, password)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRow(ctx, userSQL, user.Username, user.Email, user.Password).
			Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			if dberrors.IsUniqueViolationOn(err, "users_username_key") {
				return apperrors.ErrUsernameExists
			}
			if dberrors.IsUniqueViolationOn(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			logger.Error().Err(err).Msg("Error executing create user query")
			return fmt.Errorf("error creating user: %w", err)
		}

		profile.UserID = user.ID
		profileSQL := `
			INSERT INTO profiles (user_id, full_name, bio, location, picture_url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING updated_at`

		err = tx.QueryRow(ctx, profileSQL, profile.UserID, profile.FullName, profile.Bio, profile.Location, profile.PictureURL).
			Scan(&profile.UpdatedAt)
		if err != nil {
			logger.Error().Err(err).Int64("userID", user.ID).Msg("Error executing create profile query")
			return fmt.Errorf("error creating profile: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) getBy(ctx context.Context, pred squirrel.Eq) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "username", "email", "password", "created_at", "updated_at").
		From("users").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}
