package services

import (
	"context"
	"fmt"

	"github.com/deniz/eventhub/internal/app/auth"
	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/app/repositories"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
)

// EventStore is the data-access contract the event service consumes.
// *repositories.EventRepository satisfies it; tests use in-memory fakes.
type EventStore interface {
	List(ctx context.Context, scope auth.EventScope, filter repositories.EventFilter, offset uint64, limit int) ([]models.Event, int64, error)
	GetByID(ctx context.Context, scope auth.EventScope, id int64) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService defines the interface for event-related operations
type EventService interface {
	List(ctx context.Context, caller auth.Caller, filter repositories.EventFilter, page, size int) ([]models.Event, int64, error)
	GetByID(ctx context.Context, caller auth.Caller, id int64) (*models.Event, error)
	Create(ctx context.Context, caller auth.Caller, req *dto.CreateEventRequest) (*models.Event, error)
	Update(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, caller auth.Caller, id int64) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	events EventStore
}

// NewEventService creates a new event service instance
func NewEventService(events EventStore) EventService {
	return &eventServiceImpl{events: events}
}

// validateEventTimes enforces the end-after-start invariant. On update it
// runs against the merged effective values, so supplying only one of the two
// still validates against the other's stored value.
func validateEventTimes(event *models.Event) error {
	if !event.EndTime.After(event.StartTime) {
		return apperrors.NewValidationError("endTime must be after startTime")
	}
	return nil
}

// List returns a page of events visible to the caller, with derived fields.
// The visibility scope is pushed into the store query, so totals and page
// boundaries are computed over exactly the visible set.
func (s *eventServiceImpl) List(ctx context.Context, caller auth.Caller, filter repositories.EventFilter, page, size int) ([]models.Event, int64, error) {
	offset, limit := offsetLimit(page, size)

	events, total, err := s.events.List(ctx, auth.ScopeEvents(caller), filter, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	return events, total, nil
}

// GetByID returns one visible event. Events outside the caller's scope are
// not found, never forbidden, so private events don't leak their existence.
func (s *eventServiceImpl) GetByID(ctx context.Context, caller auth.Caller, id int64) (*models.Event, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid event ID")
	}
	return s.events.GetByID(ctx, auth.ScopeEvents(caller), id)
}

// Create creates an event organized by the caller. The organizer always comes
// from the verified identity; any client-supplied organizer is ignored by
// construction since the request carries no organizer field.
func (s *eventServiceImpl) Create(ctx context.Context, caller auth.Caller, req *dto.CreateEventRequest) (*models.Event, error) {
	if err := auth.AuthorizeWrite(caller, nil, auth.ActionCreate); err != nil {
		return nil, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		OrganizerID: caller.ID,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsPublic:    isPublic,
	}

	if err := validateEventTimes(event); err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	event.Organizer = &models.UserSummary{ID: caller.ID, Username: caller.Username}
	return event, nil
}

// Update applies a partial update to an event owned by the caller.
func (s *eventServiceImpl) Update(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.events.GetByID(ctx, auth.ScopeEvents(caller), id)
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeWrite(caller, event, auth.ActionUpdate); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.IsPublic != nil {
		event.IsPublic = *req.IsPublic
	}

	if err := validateEventTimes(event); err != nil {
		return nil, err
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes an event owned by the caller.
func (s *eventServiceImpl) Delete(ctx context.Context, caller auth.Caller, id int64) error {
	event, err := s.events.GetByID(ctx, auth.ScopeEvents(caller), id)
	if err != nil {
		return err
	}

	if err := auth.AuthorizeWrite(caller, event, auth.ActionDelete); err != nil {
		return err
	}

	return s.events.Delete(ctx, event.ID)
}
