package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/eventhub/internal/app/auth"
	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
)

func TestRSVPServiceRespond(t *testing.T) {
	ctx := context.Background()
	events := newMemEventStore()
	rsvps := newMemRSVPStore()
	svc := NewRSVPService(rsvps, events)

	organizer := auth.Caller{ID: 1, Username: "owner"}
	caller := auth.Caller{ID: 2, Username: "guest"}

	public := seedEvent(t, events, organizer.ID, true)
	private := seedEvent(t, events, organizer.ID, false)

	t.Run("omitted status defaults to Maybe", func(t *testing.T) {
		rsvp, created, err := svc.Respond(ctx, caller, public.ID, "")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.RSVPMaybe, rsvp.Status)
		assert.Equal(t, caller.ID, rsvp.UserID)
	})

	t.Run("repeat response updates in place", func(t *testing.T) {
		first, _, err := svc.Respond(ctx, caller, public.ID, string(models.RSVPGoing))
		require.NoError(t, err)

		second, created, err := svc.Respond(ctx, caller, public.ID, string(models.RSVPNotGoing))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID, "still one row per (event, user)")
		assert.Equal(t, models.RSVPNotGoing, second.Status)
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		_, _, err := svc.Respond(ctx, caller, public.ID, "Attending")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		_, _, err := svc.Respond(ctx, auth.Anonymous, public.ID, string(models.RSVPGoing))
		assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
	})

	t.Run("invisible event is not found", func(t *testing.T) {
		_, _, err := svc.Respond(ctx, caller, private.ID, string(models.RSVPGoing))
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("organizer can respond to own private event", func(t *testing.T) {
		rsvp, created, err := svc.Respond(ctx, organizer, private.ID, string(models.RSVPGoing))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.RSVPGoing, rsvp.Status)
	})
}

func TestRSVPServiceCallerStatus(t *testing.T) {
	ctx := context.Background()
	events := newMemEventStore()
	rsvps := newMemRSVPStore()
	svc := NewRSVPService(rsvps, events)

	organizer := auth.Caller{ID: 1, Username: "owner"}
	caller := auth.Caller{ID: 2, Username: "guest"}
	event := seedEvent(t, events, organizer.ID, true)

	status, err := svc.CallerStatus(ctx, auth.Anonymous, event.ID)
	require.NoError(t, err)
	assert.Nil(t, status, "anonymous callers have no status")

	status, err = svc.CallerStatus(ctx, caller, event.ID)
	require.NoError(t, err)
	assert.Nil(t, status, "no response yet")

	_, _, err = svc.Respond(ctx, caller, event.ID, string(models.RSVPGoing))
	require.NoError(t, err)

	status, err = svc.CallerStatus(ctx, caller, event.ID)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, models.RSVPGoing, *status)
}

func TestRSVPServiceListMine(t *testing.T) {
	ctx := context.Background()
	events := newMemEventStore()
	rsvps := newMemRSVPStore()
	svc := NewRSVPService(rsvps, events)

	organizer := auth.Caller{ID: 1, Username: "owner"}
	caller := auth.Caller{ID: 2, Username: "guest"}

	_, _, err := svc.ListMine(ctx, auth.Anonymous, 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	first := seedEvent(t, events, organizer.ID, true)
	second := seedEvent(t, events, organizer.ID, true)

	_, _, err = svc.Respond(ctx, caller, first.ID, string(models.RSVPGoing))
	require.NoError(t, err)
	_, _, err = svc.Respond(ctx, caller, second.ID, string(models.RSVPMaybe))
	require.NoError(t, err)

	listed, total, err := svc.ListMine(ctx, caller, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, listed, 2)

	// Another user's listing stays empty.
	listed, total, err = svc.ListMine(ctx, organizer, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, listed)
}
