package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roshr/careertrack/internal/app/models/dto"
	"github.com/roshr/careertrack/internal/pkg/apperrors"
	"github.com/roshr/careertrack/internal/pkg/logger"
)

// errorMessage prefers the application error's own message over the generic one
func errorMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}

// HandleAPIError maps application errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errorMessage(err, "Resource not found")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, errorMessage(err, "Resource already exists")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrUnsupportedMediaType):
		c.JSON(415, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeUnsupportedMedia, errorMessage(err, "Unsupported attachment type")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errorMessage(err, "Validation failed")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, errorMessage(err, "Invalid request")),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Backing store unavailable")
		c.JSON(500, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Backing store unavailable"),
			Timestamp: time.Now(),
		})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
			Timestamp: time.Now(),
		})
	}
}
