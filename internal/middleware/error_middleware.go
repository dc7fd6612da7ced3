package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/logger"
)

// HandleAPIError classifies a service error by its taxonomy root and writes
// the uniform error envelope. Unclassified errors are logged and reported
// as a generic 500 so internals never leak to the client.
func HandleAPIError(ctx *gin.Context, err error) {
	status := statusForError(err)

	message := err.Error()
	var docs []dto.ErrorDoc

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		message = custom.Message
		if custom.Path != "" {
			docs = append(docs, dto.ErrorDoc{Path: custom.Path, Message: custom.Message})
		}
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", ctx.Request.URL.Path).
			Str("method", ctx.Request.Method).
			Msg("Unhandled error")
		message = "Something went wrong"
	}

	ctx.JSON(status, dto.NewErrorResponse(message, docs...))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidSemesterCode):
		return http.StatusNotAcceptable
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrAccountDeleted),
		errors.Is(err, apperrors.ErrAccountBlocked):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
