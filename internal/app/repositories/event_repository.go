package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/eventhub/internal/app/auth"
	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
	"github.com/deniz/eventhub/internal/pkg/logger"
)

// EventFilter captures the optional list filters on top of the visibility scope.
type EventFilter struct {
	Search   string
	Location string
	OrderBy  string
}

// eventOrderings whitelists client-supplied orderings; anything else falls
// back to newest start time first.
var eventOrderings = map[string]string{
	"start_time":  "e.start_time ASC",
	"-start_time": "e.start_time DESC",
	"created_at":  "e.created_at ASC",
	"-created_at": "e.created_at DESC",
	"title":       "e.title ASC",
	"-title":      "e.title DESC",
}

// EventRepository handles event database operations. Every read carries the
// caller's visibility scope into the WHERE clause, and the listing query
// computes the derived fields (going count, rating aggregate, the viewer's
// own RSVP) in the same round trip.
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const eventSelectColumns = `
	e.id, e.title, e.description, e.organizer_id, e.location,
	e.start_time, e.end_time, e.is_public, e.created_at, e.updated_at,
	u.username, COALESCE(p.full_name, ''),
	COALESCE(g.going_count, 0),
	COALESCE(rv.rating_sum, 0), COALESCE(rv.rating_count, 0),
	ur.status`

const eventJoins = `
	FROM events e
	JOIN users u ON u.id = e.organizer_id
	LEFT JOIN profiles p ON p.user_id = e.organizer_id
	LEFT JOIN (
		SELECT event_id, COUNT(*) AS going_count
		FROM rsvps WHERE status = 'Going' GROUP BY event_id
	) g ON g.event_id = e.id
	LEFT JOIN (
		SELECT event_id, SUM(rating) AS rating_sum, COUNT(*) AS rating_count
		FROM reviews GROUP BY event_id
	) rv ON rv.event_id = e.id
	LEFT JOIN rsvps ur ON ur.event_id = e.id AND ur.user_id = $1`

// List retrieves a page of events visible to the scope, with derived fields.
func (r *EventRepository) List(ctx context.Context, scope auth.EventScope, filter EventFilter, offset uint64, limit int) ([]models.Event, int64, error) {
	query := "SELECT" + eventSelectColumns + ", COUNT(*) OVER() AS total_count" + eventJoins +
		" WHERE (e.is_public OR e.organizer_id = $1)"

	args := []interface{}{scope.ViewerID}
	argIndex := 2

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query += fmt.Sprintf(" AND (e.title ILIKE $%d OR e.description ILIKE $%d OR e.location ILIKE $%d)", argIndex, argIndex, argIndex)
		args = append(args, pattern)
		argIndex++
	}

	if filter.Location != "" {
		query += fmt.Sprintf(" AND e.location ILIKE $%d", argIndex)
		args = append(args, "%"+filter.Location+"%")
		argIndex++
	}

	ordering, ok := eventOrderings[filter.OrderBy]
	if !ok {
		ordering = eventOrderings["-start_time"]
	}
	query += " ORDER BY " + ordering
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, 0, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	var total int64
	for rows.Next() {
		event, err := scanEvent(rows, &total)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning event row")
			return nil, 0, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, total, nil
}

// GetByID retrieves a single event within the scope, with derived fields.
// An event outside the scope is reported as not found, the same as a truly
// absent one, so private events never leak their existence.
func (r *EventRepository) GetByID(ctx context.Context, scope auth.EventScope, id int64) (*models.Event, error) {
	query := "SELECT" + eventSelectColumns + eventJoins +
		" WHERE e.id = $2 AND (e.is_public OR e.organizer_id = $1)"

	rows, err := r.db.Query(ctx, query, scope.ViewerID, id)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing get event query")
		return nil, fmt.Errorf("error querying event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error reading event row: %w", err)
		}
		return nil, apperrors.ErrEventNotFound
	}

	event, err := scanEvent(rows, nil)
	if err != nil {
		return nil, fmt.Errorf("error scanning event row: %w", err)
	}

	return event, nil
}

// scanEvent scans one row of the shared event projection. total is non-nil
// for the listing query, which appends a COUNT(*) OVER() column.
func scanEvent(rows pgx.Rows, total *int64) (*models.Event, error) {
	var event models.Event
	var organizer models.UserSummary
	var ratingSum, ratingCount int64
	var viewerStatus *string

	dest := []interface{}{
		&event.ID, &event.Title, &event.Description, &event.OrganizerID, &event.Location,
		&event.StartTime, &event.EndTime, &event.IsPublic, &event.CreatedAt, &event.UpdatedAt,
		&organizer.Username, &organizer.FullName,
		&event.RSVPCount,
		&ratingSum, &ratingCount,
		&viewerStatus,
	}
	if total != nil {
		dest = append(dest, total)
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	organizer.ID = event.OrganizerID
	event.Organizer = &organizer
	event.AverageRating = models.AverageRating(ratingSum, ratingCount)
	if viewerStatus != nil {
		status := models.RSVPStatus(*viewerStatus)
		event.UserRSVP = &status
	}

	return &event, nil
}

// Create inserts a new event and fills in its generated fields.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "organizer_id", "location", "start_time", "end_time", "is_public").
		Values(event.Title, event.Description, event.OrganizerID, event.Location, event.StartTime, event.EndTime, event.IsPublic).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// Update rewrites the mutable columns of an event. The organizer column is
// never part of the update; it is fixed at creation.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Update("events").
		SetMap(map[string]interface{}{
			"title":       event.Title,
			"description": event.Description,
			"location":    event.Location,
			"start_time":  event.StartTime,
			"end_time":    event.EndTime,
			"is_public":   event.IsPublic,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event; RSVPs and reviews cascade at the database level.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
