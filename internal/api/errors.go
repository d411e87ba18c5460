package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const userNotFoundBody = "User not found"

// respondError maps service errors onto HTTP statuses.
// Not-found is plain text; everything else is a JSON error body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.String(http.StatusNotFound, userNotFoundBody)
		c.Abort()
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		loggerFromContext(c).WithError(err).Error("store operation failed")
		abortWithError(c, http.StatusInternalServerError, err.Error())
	}
}
