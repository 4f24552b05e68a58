package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/eventhub/internal/app/auth"
	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
)

func TestReviewServiceCreate(t *testing.T) {
	ctx := context.Background()
	events := newMemEventStore()
	reviews := newMemReviewStore()
	svc := NewReviewService(reviews, events)

	organizer := auth.Caller{ID: 1, Username: "owner"}
	caller := auth.Caller{ID: 2, Username: "guest"}

	public := seedEvent(t, events, organizer.ID, true)
	private := seedEvent(t, events, organizer.ID, false)

	t.Run("author comes from the caller", func(t *testing.T) {
		review, err := svc.Create(ctx, caller, public.ID, &dto.CreateReviewRequest{Rating: 4, Comment: "Nice"})
		require.NoError(t, err)
		assert.Equal(t, caller.ID, review.UserID)
		assert.Equal(t, public.ID, review.EventID)
		assert.NotZero(t, review.ID)
	})

	t.Run("second review of the same event conflicts", func(t *testing.T) {
		_, err := svc.Create(ctx, caller, public.ID, &dto.CreateReviewRequest{Rating: 5})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rating bounds are enforced", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6, 100} {
			_, err := svc.Create(ctx, organizer, public.ID, &dto.CreateReviewRequest{Rating: rating})
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "rating %d", rating)
		}
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, auth.Anonymous, public.ID, &dto.CreateReviewRequest{Rating: 3})
		assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
	})

	t.Run("invisible event is not found", func(t *testing.T) {
		_, err := svc.Create(ctx, caller, private.ID, &dto.CreateReviewRequest{Rating: 3})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestReviewServiceListByEvent(t *testing.T) {
	ctx := context.Background()
	events := newMemEventStore()
	reviews := newMemReviewStore()
	svc := NewReviewService(reviews, events)

	organizer := auth.Caller{ID: 1, Username: "owner"}
	caller := auth.Caller{ID: 2, Username: "guest"}
	private := seedEvent(t, events, organizer.ID, false)

	// Reviews of an invisible event are as hidden as the event itself.
	_, _, err := svc.ListByEvent(ctx, caller, private.ID, 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.Create(ctx, organizer, private.ID, &dto.CreateReviewRequest{Rating: 5, Comment: "My own event"})
	require.NoError(t, err)

	listed, total, err := svc.ListByEvent(ctx, organizer, private.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, listed, 1)
}

func TestReviewServiceUpdate(t *testing.T) {
	ctx := context.Background()
	events := newMemEventStore()
	reviews := newMemReviewStore()
	svc := NewReviewService(reviews, events)

	organizer := auth.Caller{ID: 1, Username: "owner"}
	author := auth.Caller{ID: 2, Username: "guest"}
	event := seedEvent(t, events, organizer.ID, true)

	review, err := svc.Create(ctx, author, event.ID, &dto.CreateReviewRequest{Rating: 3, Comment: "Okay"})
	require.NoError(t, err)

	t.Run("author updates rating and comment", func(t *testing.T) {
		rating := 5
		comment := "Better on reflection"
		updated, err := svc.Update(ctx, author, review.ID, &dto.UpdateReviewRequest{Rating: &rating, Comment: &comment})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Rating)
		assert.Equal(t, comment, updated.Comment)
	})

	t.Run("absent comment keeps stored value", func(t *testing.T) {
		rating := 4
		updated, err := svc.Update(ctx, author, review.ID, &dto.UpdateReviewRequest{Rating: &rating})
		require.NoError(t, err)
		assert.Equal(t, 4, updated.Rating)
		assert.Equal(t, "Better on reflection", updated.Comment)
	})

	t.Run("out of range rating fails", func(t *testing.T) {
		rating := 9
		_, err := svc.Update(ctx, author, review.ID, &dto.UpdateReviewRequest{Rating: &rating})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		rating := 1
		_, err := svc.Update(ctx, organizer, review.ID, &dto.UpdateReviewRequest{Rating: &rating})
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})
}

func TestReviewServiceDelete(t *testing.T) {
	ctx := context.Background()
	events := newMemEventStore()
	reviews := newMemReviewStore()
	svc := NewReviewService(reviews, events)

	organizer := auth.Caller{ID: 1, Username: "owner"}
	author := auth.Caller{ID: 2, Username: "guest"}
	event := seedEvent(t, events, organizer.ID, true)

	review, err := svc.Create(ctx, author, event.ID, &dto.CreateReviewRequest{Rating: 2})
	require.NoError(t, err)

	err = svc.Delete(ctx, organizer, review.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	require.NoError(t, svc.Delete(ctx, author, review.ID))

	err = svc.Delete(ctx, author, review.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	// After deleting, the author may review the event again.
	_, err = svc.Create(ctx, author, event.ID, &dto.CreateReviewRequest{Rating: 4})
	assert.NoError(t, err)
}
