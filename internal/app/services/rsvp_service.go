package services

import (
	"context"
	"fmt"

	"github.com/deniz/eventhub/internal/app/auth"
	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
)

// RSVPStore is the data-access contract the rsvp service consumes.
type RSVPStore interface {
	Upsert(ctx context.Context, eventID, userID int64, status models.RSVPStatus) (*models.RSVP, bool, error)
	GetByEventAndUser(ctx context.Context, eventID, userID int64) (*models.RSVP, error)
	ListByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]models.RSVP, int64, error)
}

// RSVPService defines the interface for rsvp-related operations
type RSVPService interface {
	Respond(ctx context.Context, caller auth.Caller, eventID int64, status string) (*models.RSVP, bool, error)
	CallerStatus(ctx context.Context, caller auth.Caller, eventID int64) (*models.RSVPStatus, error)
	ListMine(ctx context.Context, caller auth.Caller, page, size int) ([]models.RSVP, int64, error)
}

// rsvpServiceImpl implements the RSVPService interface
type rsvpServiceImpl struct {
	rsvps  RSVPStore
	events EventStore
}

// NewRSVPService creates a new rsvp service instance
func NewRSVPService(rsvps RSVPStore, events EventStore) RSVPService {
	return &rsvpServiceImpl{rsvps: rsvps, events: events}
}

// Respond records the caller's response to an event. One row per
// (event, caller) pair: a repeat response updates the status in place via the
// store's atomic upsert, so concurrent responses settle on a single row.
// An omitted status defaults to Maybe. The returned flag reports whether the
// RSVP was newly created.
func (s *rsvpServiceImpl) Respond(ctx context.Context, caller auth.Caller, eventID int64, status string) (*models.RSVP, bool, error) {
	if err := auth.AuthorizeWrite(caller, nil, auth.ActionCreate); err != nil {
		return nil, false, err
	}

	// The event must be visible to the caller; invisible and absent events
	// are both not found.
	if _, err := s.events.GetByID(ctx, auth.ScopeEvents(caller), eventID); err != nil {
		return nil, false, err
	}

	rsvpStatus := models.RSVPMaybe
	if status != "" {
		rsvpStatus = models.RSVPStatus(status)
		if !rsvpStatus.Valid() {
			return nil, false, apperrors.NewValidationError("status must be one of: Going, Maybe, Not Going")
		}
	}

	rsvp, created, err := s.rsvps.Upsert(ctx, eventID, caller.ID, rsvpStatus)
	if err != nil {
		return nil, false, fmt.Errorf("error recording rsvp: %w", err)
	}

	return rsvp, created, nil
}

// CallerStatus looks up the caller's own RSVP status for an event; nil when
// the caller is anonymous or has not responded.
func (s *rsvpServiceImpl) CallerStatus(ctx context.Context, caller auth.Caller, eventID int64) (*models.RSVPStatus, error) {
	if !caller.Authenticated() {
		return nil, nil
	}

	rsvp, err := s.rsvps.GetByEventAndUser(ctx, eventID, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("error looking up rsvp: %w", err)
	}
	if rsvp == nil {
		return nil, nil
	}

	return &rsvp.Status, nil
}

// ListMine returns a page of the caller's own RSVPs.
func (s *rsvpServiceImpl) ListMine(ctx context.Context, caller auth.Caller, page, size int) ([]models.RSVP, int64, error) {
	if !caller.Authenticated() {
		return nil, 0, apperrors.ErrNotAuthenticated
	}

	offset, limit := offsetLimit(page, size)
	return s.rsvps.ListByUser(ctx, caller.ID, offset, limit)
}
