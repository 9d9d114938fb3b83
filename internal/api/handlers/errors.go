package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for a failed service call. Internal errors are logged
// and replaced with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, dto.ErrorResponse{Error: fallback})
		return
	}

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(status, dto.ErrorResponse{Error: "Validation failed", Details: verr.Fields})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
