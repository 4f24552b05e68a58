package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
	jwtauth "github.com/deniz/eventhub/internal/pkg/auth"
	"github.com/deniz/eventhub/internal/pkg/logger"
)

// UserStore is the data-access contract the auth service consumes.
type UserStore interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService defines the interface for account and token operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *jwtauth.TokenPair, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *jwtauth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*jwtauth.TokenPair, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users UserStore
	jwt   *jwtauth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, jwt *jwtauth.JWTService) AuthService {
	return &authServiceImpl{
		users: users,
		jwt:   jwt,
	}
}

// Register creates a user account together with its profile in one
// transaction, so no user ever exists without a profile, then issues a token
// pair for the fresh account.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *jwtauth.TokenPair, error) {
	hashed, err := jwtauth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	profile := &models.Profile{
		FullName: req.FullName,
	}

	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, nil, err
	}

	tokens, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("error issuing tokens: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return user, tokens, nil
}

// Login verifies credentials and issues a token pair. Unknown email and bad
// password are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *jwtauth.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !jwtauth.CheckPassword(user.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("error issuing tokens: %w", err)
	}

	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*jwtauth.TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	tokens, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing tokens: %w", err)
	}

	return tokens, nil
}
