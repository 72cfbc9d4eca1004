package api

import (
	"net/http"

	"fitcircle/internal/apperror"
	"fitcircle/internal/logger"

	"github.com/gin-gonic/gin"
)

// StatusFor maps a domain error kind to an HTTP status code.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation, apperror.KindRange:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindInvalidState, apperror.KindCapacityExceeded, apperror.KindUnavailable, apperror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as an ErrorResponse. Errors outside the domain
// taxonomy are logged and hidden behind a generic message.
func RespondError(c *gin.Context, err error) {
	kind, ok := apperror.KindOf(err)
	if !ok {
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(StatusFor(kind), ErrorResponse{Error: err.Error(), Kind: string(kind)})
}
