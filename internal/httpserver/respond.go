package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"printcart-api/internal/domain"
)

// respondError maps the service error taxonomy to HTTP. Anything outside it
// is a store failure; the underlying message is surfaced, which is
// acceptable for this internal-facing API.
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "cart or item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	}
}

// userIDFrom reads the caller-supplied user id from the X-User-Id header,
// falling back to the userId query parameter.
func userIDFrom(c *gin.Context) string {
	if v := c.GetHeader("X-User-Id"); v != "" {
		return v
	}
	return c.Query("userId")
}
