package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
	jwtauth "github.com/deniz/eventhub/internal/pkg/auth"
)

func newTestJWTService() *jwtauth.JWTService {
	return jwtauth.NewJWTService(jwtauth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func newRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret-pass",
		FullName: "John Doe",
	}
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()
	users := newMemUserStore()
	svc := NewAuthService(users, newTestJWTService())

	user, tokens, err := svc.Register(ctx, newRegisterRequest())
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// The stored password is a bcrypt hash, not the plaintext.
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.True(t, jwtauth.CheckPassword(user.Password, "s3cret-pass"))

	t.Run("duplicate username conflicts", func(t *testing.T) {
		req := newRegisterRequest()
		req.Email = "other@example.com"
		_, _, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		req := newRegisterRequest()
		req.Username = "other"
		_, _, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	users := newMemUserStore()
	svc := NewAuthService(users, newTestJWTService())

	_, _, err := svc.Register(ctx, newRegisterRequest())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "jdoe@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "jdoe", user.Username)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, &dto.LoginRequest{Email: "jdoe@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	ctx := context.Background()
	users := newMemUserStore()
	svc := NewAuthService(users, newTestJWTService())

	_, tokens, err := svc.Register(ctx, newRegisterRequest())
	require.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		fresh, err := svc.Refresh(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, fresh.AccessToken)
		assert.NotEmpty(t, fresh.RefreshToken)
	})

	t.Run("access token is rejected as refresh token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, tokens.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})
}
