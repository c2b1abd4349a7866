package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
	"github.com/insider-navs/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Expected outcomes
// (not found, validation, conflict) surface their own message with a 4xx
// status; anything else is logged server-side and returned as a generic 500
// so raw store errors never reach the caller.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case isNotFound(err):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(notFoundDetail(err)))
	case isValidation(err), isConflict(err):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unexpected error handling request")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrLocationNotFound) ||
		errors.Is(err, apperrors.ErrFacultyNotFound) ||
		errors.Is(err, apperrors.ErrFlashNewsNotFound)
}

func isValidation(err error) bool {
	return errors.Is(err, apperrors.ErrValidationFailed) ||
		errors.Is(err, apperrors.ErrBadRequest) ||
		errors.Is(err, apperrors.ErrFlashNewsEmptyMessage) ||
		errors.Is(err, apperrors.ErrFacultyLocationMissing)
}

func isConflict(err error) bool {
	return errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrResourceAlreadyExists) ||
		errors.Is(err, apperrors.ErrLocationAlreadyExists) ||
		errors.Is(err, apperrors.ErrLocationInUse)
}

// notFoundDetail keeps the original API's wording for the entity-specific
// not-found responses.
func notFoundDetail(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrLocationNotFound):
		return "Location not found"
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		return "Faculty not found"
	case errors.Is(err, apperrors.ErrFlashNewsNotFound):
		return "Flash news item not found"
	default:
		return "Resource not found"
	}
}
