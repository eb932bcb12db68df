package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/service/farmer"
)

// FarmerHandler exposes profile, awareness and scheme directory endpoints.
type FarmerHandler struct {
	svc    farmer.Directory
	logger *zap.Logger
}

// NewFarmerHandler constructs the HTTP handler adapter.
func NewFarmerHandler(svc farmer.Directory, logger *zap.Logger) *FarmerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FarmerHandler{svc: svc, logger: logger}
}

// SaveProfile stores a farmer profile and returns the generated id.
func (h *FarmerHandler) SaveProfile(c *gin.Context) {
	var profile models.FarmerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.logger.Warn("invalid profile payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.svc.SaveProfile(c.Request.Context(), profile)
	if err != nil {
		respondError(c, h.logger, err, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "farmerId": saved.ID})
}

// CompleteAwareness marks a learning topic as finished.
func (h *FarmerHandler) CompleteAwareness(c *gin.Context) {
	var req models.AwarenessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid awareness payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	completion, err := h.svc.CompleteAwareness(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "failed to save completion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "completion": completion})
}

// Schemes lists the government scheme directory.
func (h *FarmerHandler) Schemes(c *gin.Context) {
	schemes, err := h.svc.GovernmentSchemes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "failed to fetch schemes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"schemes": schemes})
}
