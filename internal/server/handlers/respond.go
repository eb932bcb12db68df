package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/errs"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// validation failures carry their message back as 400, everything else
// (store faults included) becomes a generic 500 with the cause logged.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	if errs.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Error(fallback, zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
