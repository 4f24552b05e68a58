package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/eventhub/internal/app/auth"
	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
)

func TestProfileServiceGet(t *testing.T) {
	ctx := context.Background()
	store := newMemProfileStore()
	store.profiles[1] = models.Profile{UserID: 1, FullName: "John Doe"}
	svc := NewProfileService(store)

	profile, err := svc.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", profile.FullName)

	_, err = svc.GetByUserID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.GetByUserID(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestProfileServiceUpdate(t *testing.T) {
	ctx := context.Background()
	store := newMemProfileStore()
	store.profiles[1] = models.Profile{UserID: 1, FullName: "John Doe", Location: "Istanbul"}
	svc := NewProfileService(store)

	owner := auth.Caller{ID: 1, Username: "jdoe"}
	stranger := auth.Caller{ID: 2, Username: "other"}

	t.Run("owner updates, absent fields survive", func(t *testing.T) {
		bio := "Organizing meetups since 2019"
		profile, err := svc.Update(ctx, owner, 1, &dto.UpdateProfileRequest{Bio: &bio})
		require.NoError(t, err)
		assert.Equal(t, bio, profile.Bio)
		assert.Equal(t, "John Doe", profile.FullName)
		assert.Equal(t, "Istanbul", profile.Location)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		bio := "not mine"
		_, err := svc.Update(ctx, stranger, 1, &dto.UpdateProfileRequest{Bio: &bio})
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		bio := "anon"
		_, err := svc.Update(ctx, auth.Anonymous, 1, &dto.UpdateProfileRequest{Bio: &bio})
		assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
	})
}

func TestProfileServiceList(t *testing.T) {
	ctx := context.Background()
	store := newMemProfileStore()
	for i := int64(1); i <= 5; i++ {
		store.profiles[i] = models.Profile{UserID: i}
	}
	svc := NewProfileService(store)

	profiles, total, err := svc.List(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, profiles, 3)

	profiles, total, err = svc.List(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, profiles, 2)
}
