package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/pkg/logger"
)

// RSVPRepository handles rsvp database operations. The unique constraint on
// (event_id, user_id) is the authoritative guard; writes go through a single
// atomic upsert so concurrent responses for the same pair resolve to one row.
type RSVPRepository struct {
	db *pgxpool.Pool
}

// NewRSVPRepository creates a new RSVPRepository
func NewRSVPRepository(db *pgxpool.Pool) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Upsert inserts or updates the caller's RSVP for an event in one statement.
// The returned flag reports whether a new row was created. xmax = 0 holds
// only for rows inserted by the current transaction.
func (r *RSVPRepository) Upsert(ctx context.Context, eventID, userID int64, status models.RSVPStatus) (*models.RSVP, bool, error) {
	query := `
		INSERT INTO rsvps (event_id, user_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, event_id, user_id, status, created_at, updated_at, (xmax = 0) AS inserted`

	var rsvp models.RSVP
	var inserted bool
	err := r.db.QueryRow(ctx, query, eventID, userID, status).Scan(
		&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Status,
		&rsvp.CreatedAt, &rsvp.UpdatedAt, &inserted,
	)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Error executing rsvp upsert")
		return nil, false, fmt.Errorf("error upserting rsvp: %w", err)
	}

	return &rsvp, inserted, nil
}

// GetByEventAndUser looks up the single RSVP row for an (event, user) pair.
// A nil result with nil error means the user has not responded.
func (r *RSVPRepository) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*models.RSVP, error) {
	query := `
		SELECT id, event_id, user_id, status, created_at, updated_at
		FROM rsvps
		WHERE event_id = $1 AND user_id = $2`

	var rsvp models.RSVP
	err := r.db.QueryRow(ctx, query, eventID, userID).Scan(
		&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Status,
		&rsvp.CreatedAt, &rsvp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying rsvp: %w", err)
	}

	return &rsvp, nil
}

// ListByUser retrieves a page of the user's RSVPs, newest first, with the
// event title attached for display.
func (r *RSVPRepository) ListByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]models.RSVP, int64, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, r.status, r.created_at, r.updated_at,
		       e.title, COUNT(*) OVER() AS total_count
		FROM rsvps r
		JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list rsvps query")
		return nil, 0, fmt.Errorf("error querying rsvps: %w", err)
	}
	defer rows.Close()

	rsvps := []models.RSVP{}
	var total int64
	for rows.Next() {
		var rsvp models.RSVP
		err := rows.Scan(
			&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Status,
			&rsvp.CreatedAt, &rsvp.UpdatedAt, &rsvp.EventTitle, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning rsvp row: %w", err)
		}
		rsvps = append(rsvps, rsvp)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rsvp rows: %w", err)
	}

	return rsvps, total, nil
}
