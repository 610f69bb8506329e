package handler

import (
	"errors"
	"net/http"

	"staff-weekly/internal/logger"
	"staff-weekly/internal/service"

	"github.com/gin-gonic/gin"
)

// verboseErrors controls whether 500 responses carry the underlying
// message. Only enabled in development.
var verboseErrors bool

func Init(dev bool) { verboseErrors = dev }

// fail translates a service error into the response taxonomy:
// 400 validation, 401 auth, 404 not found, 500 everything else.
func fail(c *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case service.IsClientError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrUserInactive):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed",
			"request_id", c.GetString("request_id"),
			"path", c.Request.URL.Path,
			"err", err)
		msg := "Internal server error"
		if verboseErrors {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
}
