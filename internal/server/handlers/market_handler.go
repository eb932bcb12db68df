package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/service/market"
)

// MarketHandler exposes the marketplace endpoints.
type MarketHandler struct {
	svc    market.Marketplace
	logger *zap.Logger
}

// NewMarketHandler constructs the HTTP handler adapter.
func NewMarketHandler(svc market.Marketplace, logger *zap.Logger) *MarketHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarketHandler{svc: svc, logger: logger}
}

// CreateListing stores a new produce offer.
func (h *MarketHandler) CreateListing(c *gin.Context) {
	var req models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid listing payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	listing, err := h.svc.CreateListing(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create listing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "listingId": listing.ID, "listing": listing})
}

// Listings returns every stored offer.
func (h *MarketHandler) Listings(c *gin.Context) {
	listings, err := h.svc.Listings(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch listings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}
