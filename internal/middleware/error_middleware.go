package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
	"github.com/deniz/eventhub/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	// Custom errors carry a message meant for the client.
	message := ""
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewErrorResponse(
			newErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed", message)))
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		c.JSON(401, dto.NewErrorResponse(
			newErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required", message)))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(
			newErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials", message)))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(
			newErrorDetail(dto.ErrorCodeExpiredToken, "Token expired", message)))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse(
			newErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token", message)))
	case errors.Is(err, apperrors.ErrNotOwner):
		c.JSON(403, dto.NewErrorResponse(
			newErrorDetail(dto.ErrorCodeForbidden, "Permission denied", message)))
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse(
			newErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found", message)))
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrUsernameExists),
		errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(
			newErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists", message)))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse(
			newErrorDetail(dto.ErrorCodeInternalServer, "Internal server error", "")))
	}
}

func newErrorDetail(code dto.ErrorCode, fallback, message string) *dto.ErrorDetail {
	if message != "" {
		return dto.NewErrorDetail(code, message)
	}
	return dto.NewErrorDetail(code, fallback)
}
